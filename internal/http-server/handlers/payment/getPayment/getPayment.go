package getPayment

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"festRegistration/internal/lib/api/response"
	"festRegistration/internal/lib/logger/sl"
	"festRegistration/internal/models"
	"festRegistration/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type PaymentResponse struct {
	response.Response
	Payment *models.Payment `json:"payment"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PaymentGetter
type PaymentGetter interface {
	GetPayment(id int64) (*models.Payment, error)
}

func New(log *slog.Logger, getter PaymentGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.payment.getPayment.New"

		log := log.With(slog.String("op", op))

		idStr := chi.URLParam(r, "id")
		if idStr == "" {
			log.Error("payment id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("payment id is required"))
			return
		}

		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			log.Error("invalid payment id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid payment id format"))
			return
		}

		log = log.With(slog.Int64("payment_id", id))

		payment, err := getter.GetPayment(id)
		if err != nil {
			if errors.Is(err, storage.ErrPaymentNotFound) {
				log.Info("payment not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("payment not found"))
				return
			}

			log.Error("failed to get payment", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get payment"))
			return
		}

		log.Info("payment retrieved", slog.String("status", string(payment.Status)))

		render.JSON(w, r, PaymentResponse{
			Response: response.OK(),
			Payment:  payment,
		})
	}
}
