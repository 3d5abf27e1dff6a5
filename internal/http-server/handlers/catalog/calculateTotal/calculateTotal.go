package calculateTotal

import (
	"log/slog"
	"net/http"

	"festRegistration/internal/catalog"
	"festRegistration/internal/lib/api/response"
	"festRegistration/internal/lib/logger/sl"

	"github.com/go-chi/render"
)

type TotalRequest struct {
	Events []string `json:"events"`
}

type TotalResponse struct {
	response.Response
	Total   int      `json:"total"`
	Unknown []string `json:"unknown,omitempty"`
}

func New(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.catalog.calculateTotal.New"

		log := log.With(slog.String("op", op))

		var req TotalRequest

		if err := render.DecodeJSON(r.Body, &req); err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		render.JSON(w, r, TotalResponse{
			Response: response.OK(),
			Total:    catalog.Total(req.Events),
			Unknown:  catalog.Unknown(req.Events),
		})
	}
}
