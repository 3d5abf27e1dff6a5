// Package pages renders the three screens of the registration flow.
package pages

import (
	"bytes"
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"festRegistration/internal/catalog"
	"festRegistration/internal/lib/logger/sl"
	"festRegistration/internal/lib/screenshot"
	"festRegistration/internal/lib/upi"
	"festRegistration/internal/models"

	"github.com/go-chi/render"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

const failureMessage = "Failed to submit registration. Please refresh the page and try again."

type Options struct {
	FestName           string
	HomeURL            string
	UPIID              string
	Currency           string
	QRImage            string
	SuccessPath        string
	MaxScreenshotBytes int64
	CopiedReset        time.Duration
}

type appLink struct {
	Key   string
	Label string
	Link  template.URL
}

type registrationView struct {
	Title          string
	FestName       string
	Categories     []catalog.Category
	FailureMessage string
}

type paymentView struct {
	Title              string
	Amount             string
	UPIID              string
	QRImage            string
	Apps               []appLink
	State              url.Values
	MaxScreenshotBytes int64
	TooLargeMessage    string
	CopiedResetMs      int64
	SuccessPath        string
}

type successView struct {
	Title   string
	HomeURL string
}

func NewRegistration(log *slog.Logger, opts Options) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.pages.NewRegistration"

		execute(log.With(slog.String("op", op)), w, r, "registration", registrationView{
			Title:          opts.FestName + " Registration",
			FestName:       opts.FestName,
			Categories:     catalog.Categories(),
			FailureMessage: failureMessage,
		})
	}
}

// NewPayment reads the handoff from the query string. Without one the amount
// shows as N/A and the deep links leave the amount to the payer.
func NewPayment(log *slog.Logger, opts Options) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.pages.NewPayment"

		handoff := models.ParseHandoff(r.URL.Query())

		apps := upi.Apps(opts.UPIID, handoff.TotalAmount, opts.Currency)
		links := make([]appLink, 0, len(apps))
		for _, a := range apps {
			links = append(links, appLink{
				Key:   a.Key,
				Label: a.Label,
				// scheme and payee come from config, the amount is an int
				Link: template.URL(a.Link),
			})
		}

		execute(log.With(slog.String("op", op)), w, r, "payment", paymentView{
			Title:              "Complete Your Payment",
			Amount:             handoff.AmountLabel(),
			UPIID:              opts.UPIID,
			QRImage:            opts.QRImage,
			Apps:               links,
			State:              handoff.Values(),
			MaxScreenshotBytes: opts.MaxScreenshotBytes,
			TooLargeMessage:    screenshot.Message(screenshot.ErrTooLarge, opts.MaxScreenshotBytes),
			CopiedResetMs:      opts.CopiedReset.Milliseconds(),
			SuccessPath:        opts.SuccessPath,
		})
	}
}

func NewSuccess(log *slog.Logger, opts Options) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.pages.NewSuccess"

		execute(log.With(slog.String("op", op)), w, r, "success", successView{
			Title:   "Payment Successful",
			HomeURL: opts.HomeURL,
		})
	}
}

func execute(log *slog.Logger, w http.ResponseWriter, r *http.Request, name string, data any) {
	var buf bytes.Buffer

	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		log.Error("failed to render page", slog.String("page", name), sl.Err(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	render.HTML(w, r, buf.String())
}
