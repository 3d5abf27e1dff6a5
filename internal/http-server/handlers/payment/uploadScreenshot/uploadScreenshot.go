package uploadScreenshot

import (
	"errors"
	"log/slog"
	"net/http"

	"festRegistration/internal/lib/api/response"
	"festRegistration/internal/lib/logger/sl"
	"festRegistration/internal/lib/screenshot"

	"github.com/go-chi/render"
)

type ScreenshotResponse struct {
	response.Response
	FileName string `json:"file_name,omitempty"`
}

// New accepts a payment proof for display only. Nothing is persisted.
func New(log *slog.Logger, maxBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.payment.uploadScreenshot.New"

		log := log.With(slog.String("op", op))

		file, err := screenshot.FromRequest(w, r, maxBytes)
		if err != nil {
			switch {
			case errors.Is(err, screenshot.ErrTooLarge),
				errors.Is(err, screenshot.ErrNotImage),
				errors.Is(err, screenshot.ErrMissing):
				log.Info("screenshot rejected", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(screenshot.Message(err, maxBytes)))
			default:
				log.Error("failed to read screenshot", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("failed to read screenshot"))
			}
			return
		}

		log.Info("screenshot accepted",
			slog.String("file_name", file.Name),
			slog.Int64("size", file.Size),
			slog.String("mime", file.MIME),
		)

		render.JSON(w, r, ScreenshotResponse{
			Response: response.OK(),
			FileName: file.Name,
		})
	}
}
