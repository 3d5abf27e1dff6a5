package createRegistration

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"festRegistration/internal/catalog"
	"festRegistration/internal/lib/api/response"
	"festRegistration/internal/lib/logger/sl"
	"festRegistration/internal/lib/validate"
	"festRegistration/internal/lib/wait"
	"festRegistration/internal/models"

	"github.com/go-chi/render"
)

const (
	PaymentPath = "/payment"

	successMessage = "Registration successful! Please check your email for the confirmation and QR code."
	failureMessage = "Failed to submit registration. Please refresh the page and try again."
)

type RegistrationResponse struct {
	response.Response
	TotalAmount int             `json:"total_amount,omitempty"`
	Handoff     *models.Handoff `json:"handoff,omitempty"`
	Redirect    string          `json:"redirect,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RegistrationSubmitter
type RegistrationSubmitter interface {
	Submit(ctx context.Context, reg models.Registration) error
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RegistrationSaver
type RegistrationSaver interface {
	SaveRegistration(reg models.Registration) (int64, error)
}

// New validates the registration, forwards it to the submission endpoint and
// answers with the handoff for the payment screen. redirectDelay holds the
// answer back after a successful submission.
func New(log *slog.Logger, submitter RegistrationSubmitter, saver RegistrationSaver, redirectDelay time.Duration) http.HandlerFunc {
	v := validate.New()

	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.registration.createRegistration.New"

		log := log.With(slog.String("op", op))

		reg, err := decode(r)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		normalize(&reg)

		log.Info("request body decoded",
			slog.String("email", reg.Email),
			slog.Any("events", reg.Events),
		)

		if err = v.Struct(reg); err != nil {
			fields := validate.FieldErrors(err)
			if fields == nil {
				log.Error("failed to validate request", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to validate request"))
				return
			}

			log.Info("invalid request", slog.Any("fields", fields))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.FieldErrors(fields))
			return
		}

		reg.TotalAmount = catalog.Total(reg.Events)

		log = log.With(slog.String("email", reg.Email), slog.Int("total_amount", reg.TotalAmount))

		err = submitter.Submit(r.Context(), reg)
		reg.Submitted = err == nil

		if id, saveErr := saver.SaveRegistration(reg); saveErr != nil {
			log.Error("failed to journal registration", sl.Err(saveErr))
		} else {
			log.Debug("registration journaled", slog.Int64("id", id))
		}

		if err != nil {
			log.Error("failed to submit registration", sl.Err(err))
			render.Status(r, http.StatusBadGateway)
			render.JSON(w, r, response.Error(failureMessage))
			return
		}

		if err = wait.For(r.Context(), redirectDelay); err != nil {
			log.Info("client went away before redirect", sl.Err(err))
			return
		}

		log.Info("registration submitted")

		responseOK(w, r, reg)
	}
}

func decode(r *http.Request) (models.Registration, error) {
	var reg models.Registration

	switch render.GetRequestContentType(r) {
	case render.ContentTypeForm:
		if err := r.ParseForm(); err != nil {
			return reg, fmt.Errorf("failed to parse form: %w", err)
		}
		reg.Name = r.PostForm.Get("name")
		reg.Email = r.PostForm.Get("email")
		reg.Phone = r.PostForm.Get("phone")
		reg.College = r.PostForm.Get("college")
		reg.Events = r.PostForm["events"]
	default:
		if err := render.DecodeJSON(r.Body, &reg); err != nil {
			return reg, err
		}
	}

	return reg, nil
}

// normalize trims the text fields and drops repeated event names.
func normalize(reg *models.Registration) {
	reg.Name = strings.TrimSpace(reg.Name)
	reg.Email = strings.TrimSpace(reg.Email)
	reg.Phone = strings.TrimSpace(reg.Phone)
	reg.College = strings.TrimSpace(reg.College)

	if reg.Events == nil {
		return
	}

	seen := make(map[string]struct{}, len(reg.Events))
	events := make([]string, 0, len(reg.Events))
	for _, e := range reg.Events {
		if _, ok := seen[e]; ok {
			continue
		}
		seen[e] = struct{}{}
		events = append(events, e)
	}
	reg.Events = events
}

func responseOK(w http.ResponseWriter, r *http.Request, reg models.Registration) {
	total := reg.TotalAmount
	handoff := &models.Handoff{
		TotalAmount: &total,
		Email:       reg.Email,
		Message:     successMessage,
		Student: &models.Student{
			Name:    reg.Name,
			Phone:   reg.Phone,
			College: reg.College,
		},
	}

	render.JSON(w, r, RegistrationResponse{
		Response:    response.OK(),
		TotalAmount: total,
		Handoff:     handoff,
		Redirect:    PaymentPath + "?" + handoff.Values().Encode(),
	})
}
