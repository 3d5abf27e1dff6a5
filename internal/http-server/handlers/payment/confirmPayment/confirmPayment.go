package confirmPayment

import (
	"log/slog"
	"net/http"
	"time"

	"festRegistration/internal/lib/api/response"
	"festRegistration/internal/lib/logger/sl"
	"festRegistration/internal/lib/wait"
	"festRegistration/internal/models"

	"github.com/go-chi/render"
)

const SuccessPath = "/payment-success"

type ConfirmResponse struct {
	response.Response
	PaymentID     int64                `json:"payment_id,omitempty"`
	PaymentStatus models.PaymentStatus `json:"payment_status"`
	Redirect      string               `json:"redirect"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PaymentSaver
type PaymentSaver interface {
	SavePayment(p models.Payment) (int64, error)
}

// New records the payment as pending and always sends the payer on to the
// success page after confirmDelay. Verification happens later, out of band.
func New(log *slog.Logger, saver PaymentSaver, confirmDelay time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.payment.confirmPayment.New"

		log := log.With(slog.String("op", op))

		if err := r.ParseForm(); err != nil {
			log.Warn("failed to parse form, confirming without details", sl.Err(err))
		}

		handoff := models.ParseHandoff(r.Form)

		payment := models.Payment{
			Email:          handoff.Email,
			Amount:         handoff.TotalAmount,
			TransactionID:  handoff.TransactionID,
			ScreenshotName: r.Form.Get("screenshot_name"),
			Status:         models.PaymentPending,
		}

		log = log.With(slog.String("email", payment.Email), slog.String("amount", handoff.AmountLabel()))

		id, err := saver.SavePayment(payment)
		if err != nil {
			log.Error("failed to record payment", sl.Err(err))
		}

		if err = wait.For(r.Context(), confirmDelay); err != nil {
			log.Info("client went away before confirmation", sl.Err(err))
			return
		}

		log.Info("payment confirmation accepted", slog.Int64("payment_id", id))

		render.JSON(w, r, ConfirmResponse{
			Response:      response.OK(),
			PaymentID:     id,
			PaymentStatus: models.PaymentPending,
			Redirect:      SuccessPath,
		})
	}
}
