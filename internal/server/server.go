// Package server boots the application: configuration, storage backends,
// the worker pool, the HTTP router, and graceful shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bistro/app/models"
	"bistro/app/routes"
	"bistro/config"
	"bistro/pkg/cache"
	"bistro/pkg/database"
	"bistro/pkg/logger"
	"bistro/pkg/mail"
	"bistro/pkg/metrics"
	"bistro/pkg/middleware"
	"bistro/pkg/payments"
	"bistro/pkg/reqid"
	"bistro/pkg/response"
	"bistro/pkg/router"
	"bistro/pkg/storage"
	"bistro/pkg/workerpool"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
	receiptWorkers    = 4
)

// Start runs the server until SIGINT or SIGTERM.
func Start() error {
	if err := config.Load(); err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	client, db, err := database.Connect(ctx)
	cancel()
	if err != nil {
		return fmt.Errorf("connect mongo: %w", err)
	}
	defer database.Disconnect(client)

	if err := cache.Connect(); err != nil {
		logger.Warn("cache unavailable, continuing without it", "error", err)
	}
	storage.Connect()

	pool := workerpool.New(receiptWorkers)
	defer pool.Shutdown()

	r := router.New()
	r.Use(
		reqid.Middleware(),
		middleware.Logger,
		middleware.Recovery,
		middleware.CORS(middleware.DefaultCORSOptions()),
		middleware.RateLimit(300, time.Minute),
		metrics.Middleware(),
	)

	routes.RegisterAPI(r, routes.Deps{
		DB:      db,
		Intents: payments.NewStripeClient(),
		Notify: func(p models.Payment) {
			if err := pool.Submit(func() { sendReceipt(p) }); err != nil {
				logger.Warn("receipt mail skipped", "error", err)
			}
		},
	})

	r.Get("/metrics", "", metrics.Handler())
	r.Get("/healthz", "", func(w http.ResponseWriter, _ *http.Request) {
		response.Success(w, map[string]string{"status": "ok"})
	})
	r.Get("/", "", func(w http.ResponseWriter, _ *http.Request) {
		response.Success(w, map[string]string{"message": "bistro boss is running"})
	})

	srv := &http.Server{
		Addr:              ":" + config.AppPort(),
		Handler:           r.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", "addr", srv.Addr, "env", config.AppEnv())
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// sendReceipt mails an order confirmation. Failures are logged, never
// surfaced to the customer request.
func sendReceipt(p models.Payment) {
	body := fmt.Sprintf(
		"Thanks for your order!\r\n\r\nTransaction: %s\r\nTotal: $%.2f\r\nItems: %d\r\n",
		p.TransactionID, p.TotalPrice, len(p.MenuIDs))

	err := mail.To(p.Email).
		Subject("Your Bistro Boss order").
		Text(body).
		Send()
	if err != nil {
		logger.Warn("receipt mail failed", "email", p.Email, "error", err)
	}
}
