package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"festRegistration/internal/clients/sheets"
	"festRegistration/internal/config"
	"festRegistration/internal/http-server/handlers/catalog/calculateTotal"
	"festRegistration/internal/http-server/handlers/catalog/getCatalog"
	"festRegistration/internal/http-server/handlers/pages"
	"festRegistration/internal/http-server/handlers/payment/confirmPayment"
	"festRegistration/internal/http-server/handlers/payment/getPayment"
	"festRegistration/internal/http-server/handlers/payment/updatePaymentStatus"
	"festRegistration/internal/http-server/handlers/payment/uploadScreenshot"
	"festRegistration/internal/http-server/handlers/registration/createRegistration"
	"festRegistration/internal/http-server/middleware/mwlogger"
	"festRegistration/internal/lib/logger/handlers/slogpretty"
	"festRegistration/internal/lib/logger/sl"
	"festRegistration/internal/models"
	"festRegistration/internal/storage/memory"
	"festRegistration/internal/storage/postgres"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

type Storage interface {
	SaveRegistration(reg models.Registration) (int64, error)
	SavePayment(p models.Payment) (int64, error)
	GetPayment(id int64) (*models.Payment, error)
	UpdatePaymentStatus(id int64, status models.PaymentStatus) error
	ExpirePendingPayments(ttl time.Duration) (int64, error)
	Close() error
}

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting fest registration", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	storage, err := setupStorage(cfg)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	log.Info("storage ready", slog.String("driver", cfg.Storage.Driver))

	submitter := sheets.New(cfg.Submission.URL, cfg.Submission.Timeout)

	router := newRouter(log, cfg, storage, submitter)

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	done := make(chan struct{})

	go func() {
		ticker := time.NewTicker(cfg.Payment.ExpiryInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				n, err := storage.ExpirePendingPayments(cfg.Payment.PendingTTL)
				if err != nil {
					log.Error("failed to expire pending payments", sl.Err(err))
					continue
				}
				if n > 0 {
					log.Info("expired pending payments", slog.Int64("count", n))
				}
			case <-done:
				return
			}
		}
	}()

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop
	close(done)

	log.Info("application stopping", slog.String("signal", sign.String()))

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPServer.Timeout)
	defer cancel()

	if err = srv.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if err = storage.Close(); err != nil {
		log.Error("failed to close storage", sl.Err(err))
	}

	log.Info("storage closed")
}

func newRouter(log *slog.Logger, cfg *config.Config, storage Storage, submitter createRegistration.RegistrationSubmitter) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	fs := http.FileServer(http.Dir(cfg.Pages.StaticDir))
	router.Handle("/static/*", http.StripPrefix("/static/", fs))

	opts := pages.Options{
		FestName:           cfg.Pages.FestName,
		HomeURL:            cfg.Pages.HomeURL,
		UPIID:              cfg.Payment.UPIID,
		Currency:           cfg.Payment.Currency,
		QRImage:            cfg.Payment.QRImage,
		SuccessPath:        confirmPayment.SuccessPath,
		MaxScreenshotBytes: cfg.Payment.MaxScreenshotBytes,
		CopiedReset:        cfg.Payment.CopiedReset,
	}

	router.Get("/", pages.NewRegistration(log, opts))
	router.Get(createRegistration.PaymentPath, pages.NewPayment(log, opts))
	router.Get(confirmPayment.SuccessPath, pages.NewSuccess(log, opts))

	router.Route("/api", func(r chi.Router) {
		r.Get("/catalog", getCatalog.New(log))
		r.Post("/catalog/total", calculateTotal.New(log))
		r.Post("/registrations", createRegistration.New(log, submitter, storage, cfg.Submission.RedirectDelay))
		r.Post("/payments/screenshot", uploadScreenshot.New(log, cfg.Payment.MaxScreenshotBytes))
		r.Post("/payments/confirm", confirmPayment.New(log, storage, cfg.Payment.ConfirmDelay))
		r.Get("/payments/{id}", getPayment.New(log, storage))
		r.Post("/payments/{id}/status", updatePaymentStatus.New(log, storage))
	})

	return router
}

func setupStorage(cfg *config.Config) (Storage, error) {
	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		s, err := postgres.InitDB(&cfg.Database)
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.StorageMemory, "":
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
