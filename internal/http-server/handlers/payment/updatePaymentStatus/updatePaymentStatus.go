package updatePaymentStatus

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
	"github.com/go-playground/validator/v10"
)

type StatusRequest struct {
	Status string `json:"status" validate:"required,oneof=confirmed failed"`
}

type StatusResponse struct {
	response.Response
	PaymentStatus models.PaymentStatus `json:"payment_status,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PaymentStatusUpdater
type PaymentStatusUpdater interface {
	UpdatePaymentStatus(id int64, status models.PaymentStatus) error
}

// New lets an organizer settle a pending payment after checking the proof.
func New(log *slog.Logger, updater PaymentStatusUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.payment.updatePaymentStatus.New"

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

		var req StatusRequest

		err = render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		status := models.PaymentStatus(req.Status)

		err = updater.UpdatePaymentStatus(id, status)
		if err != nil {
			switch {
			case errors.Is(err, storage.ErrPaymentNotFound):
				log.Info("payment not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("payment not found"))
			case errors.Is(err, storage.ErrPaymentNotPending):
				log.Info("payment already settled")
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("payment is not pending"))
			default:
				log.Error("failed to update payment status", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to update payment status"))
			}
			return
		}

		log.Info("payment status updated", slog.String("status", req.Status))

		render.JSON(w, r, StatusResponse{
			Response:      response.OK(),
			PaymentStatus: status,
		})
	}
}
