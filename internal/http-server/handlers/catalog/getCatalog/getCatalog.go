package getCatalog

import (
	"log/slog"
	"net/http"

	"festRegistration/internal/catalog"
	"festRegistration/internal/lib/api/response"

	"github.com/go-chi/render"
)

type CatalogResponse struct {
	response.Response
	Categories []catalog.Category `json:"categories"`
}

func New(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.catalog.getCatalog.New"

		categories := catalog.Categories()

		log.Debug("catalog retrieved", slog.String("op", op), slog.Int("categories", len(categories)))

		render.JSON(w, r, CatalogResponse{
			Response:   response.OK(),
			Categories: categories,
		})
	}
}
