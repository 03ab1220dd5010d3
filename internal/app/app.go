package app

import (
	"context"
	"embed"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mpesa-reconciler/config"
	controller "mpesa-reconciler/internal/controller/http"
	"mpesa-reconciler/internal/controller/http/handlers"
	"mpesa-reconciler/internal/domain/payment"
	payment_repo "mpesa-reconciler/internal/repo/payment"
	"mpesa-reconciler/pkg/health"
	"mpesa-reconciler/pkg/logger"
	"mpesa-reconciler/pkg/postgres"

	"golang.org/x/sync/errgroup"
)

//go:embed migrations/*.sql
var MIGRATION_FS embed.FS

const shutdownTimeout = 10 * time.Second

func Run(cfg config.Config) {
	l := logger.New(logger.Options{Level: cfg.LogLevel, Console: cfg.LogFormat == "console"})

	// Setup graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	pool, err := postgres.New(cfg.PgURL, postgres.MaxPoolSize(cfg.PgPoolMax))
	if err != nil {
		l.Fatal(fmt.Errorf("app - Run - postgres.New: %w", err))
	}
	defer pool.Close()

	if err := ApplyMigrations(cfg.PgURL, MIGRATION_FS); err != nil {
		l.Fatal(fmt.Errorf("app - Run - ApplyMigrations: %w", err))
	}

	paymentRepo := payment_repo.NewPgPaymentRepo(pool)
	reconcileService := payment.NewReconcileService(paymentRepo, cfg.MatchWindow, l)
	callbackHandler := handlers.NewCallbackHandler(reconcileService, l)

	healthRegistry := health.NewRegistry(health.NewPostgresChecker(pool.Pool))

	engine := NewGinEngine(l)
	router := controller.NewRouter(callbackHandler, healthRegistry)
	router.SetUp(engine)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: engine,
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		l.Info("Starting HTTP server: port=%d match_window=%s", cfg.Port, cfg.MatchWindow)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		l.Info("Shutting down gracefully...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		l.Fatal(fmt.Errorf("app - Run: %w", err))
	}
}
