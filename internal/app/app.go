// Package app wires the application together: configuration, logging,
// database, services, HTTP transport, and graceful shutdown.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/kdtech/site-backend/internal/adapter/postgres"
	auditrepo "github.com/kdtech/site-backend/internal/adapter/postgres/audit"
	categoryrepo "github.com/kdtech/site-backend/internal/adapter/postgres/category"
	contactrepo "github.com/kdtech/site-backend/internal/adapter/postgres/contact"
	orderrepo "github.com/kdtech/site-backend/internal/adapter/postgres/order"
	productrepo "github.com/kdtech/site-backend/internal/adapter/postgres/product"
	projectrepo "github.com/kdtech/site-backend/internal/adapter/postgres/project"
	quoterepo "github.com/kdtech/site-backend/internal/adapter/postgres/quote"
	servicerepo "github.com/kdtech/site-backend/internal/adapter/postgres/service"
	"github.com/kdtech/site-backend/internal/config"
	"github.com/kdtech/site-backend/internal/notify"
	"github.com/kdtech/site-backend/internal/service/catalog"
	"github.com/kdtech/site-backend/internal/service/intake"
	"github.com/kdtech/site-backend/internal/service/order"
	"github.com/kdtech/site-backend/internal/transport/middleware"
	"github.com/kdtech/site-backend/internal/transport/rest"
)

// Run is the application entry point. It blocks until the context is
// cancelled or the server stops on its own.
func Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if err := runMigrations(ctx, cfg.Database, logger); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	// Repositories.
	projects := projectrepo.New(pool)
	products := productrepo.New(pool)
	services := servicerepo.New(pool)
	categories := categoryrepo.New(pool)
	orders := orderrepo.New(pool)
	quotes := quoterepo.New(pool)
	contacts := contactrepo.New(pool)
	audit := auditrepo.New(pool)
	txManager := postgres.NewTxManager(pool)

	// Services.
	notifier := notify.NewLogNotifier(logger)
	catalogSvc := catalog.NewService(logger, cfg.Catalog, projects, products, services, categories, audit)
	orderSvc := order.NewService(logger, cfg.Order, orders, orders.Items(), audit, txManager, notifier)
	intakeSvc := intake.NewService(logger, cfg.Order, quotes, contacts, audit, notifier)

	// HTTP transport.
	health := rest.NewHealthHandler(pool, BuildVersion())
	router := rest.NewRouter(catalogSvc, orderSvc, intakeSvc, health, logger)

	mws := []middleware.Middleware{
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	}
	if cfg.Server.RateLimitPerMinute > 0 {
		limiter := middleware.NewRateLimiter(5 * time.Minute)
		defer limiter.Stop()
		mws = append(mws, limiter.Limit(cfg.Server.RateLimitPerMinute))
	}
	handler := middleware.Chain(mws...)(router)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("stopped")
	return nil
}
