package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"revcli/internal/config"
	"revcli/internal/infrastructure"
	"revcli/internal/middleware"
	"revcli/internal/services"
	transporthttp "revcli/internal/transport/http"
)

// App owns the web server's wired components and lifecycle.
type App struct {
	cfg      *config.Config
	logger   *slog.Logger
	otel     *infrastructure.OTelProviders
	server   *http.Server
	shutdown []func(context.Context) error
}

// New wires configuration, observability, services, and routes into a
// runnable application.
func New(cfg *config.Config) (*App, error) {
	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("initialize logger: %w", err)
	}

	providers, err := infrastructure.InitializeOTel(nil, logger)
	if err != nil {
		return nil, fmt.Errorf("initialize opentelemetry: %w", err)
	}

	otelMiddleware, err := middleware.NewOTelMiddleware(providers)
	if err != nil {
		return nil, fmt.Errorf("initialize otel middleware: %w", err)
	}

	reportService := services.NewReportService(logger, otelMiddleware.Metrics())
	healthService := services.NewHealthService(infrastructure.ServiceName, infrastructure.ServiceVersion, logger)

	router := buildRouter(cfg, logger, providers, otelMiddleware, reportService, healthService)

	app := &App{
		cfg:    cfg,
		logger: logger,
		otel:   providers,
		server: &http.Server{
			Addr:           fmt.Sprintf(":%d", cfg.Server.Port),
			Handler:        router,
			ReadTimeout:    cfg.Server.ReadTimeout,
			WriteTimeout:   cfg.Server.WriteTimeout,
			IdleTimeout:    cfg.Server.IdleTimeout,
			MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
		},
	}
	app.shutdown = append(app.shutdown, providers.Shutdown)
	return app, nil
}

// buildRouter assembles the middleware chain and routes.
func buildRouter(
	cfg *config.Config,
	logger *slog.Logger,
	providers *infrastructure.OTelProviders,
	otelMiddleware *middleware.OTelMiddleware,
	reportService *services.ReportService,
	healthService *services.HealthService,
) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(otelMiddleware.Handler)
	r.Use(middleware.StructuredLogger(logger))
	r.Use(middleware.Recoverer(logger))
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.Compress(5))

	if cfg.Security.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.Security.RateLimit.RPS, cfg.Security.RateLimit.Burst, logger)
		r.Use(limiter.Handler)
	}

	reportHandler := transporthttp.NewReportHandler(reportService, cfg.Server.MaxUploadBytes, logger)
	healthHandler := transporthttp.NewHealthHandler(healthService, logger)

	r.Route("/api", func(api chi.Router) {
		api.Mount("/reports", reportHandler.Routes())
		api.Get("/healthz", healthHandler.HealthCheck)
		api.Get("/version", healthHandler.Version)
	})

	if providers.PrometheusHTTP != nil {
		r.Handle("/metrics", providers.PrometheusHTTP)
	}

	return r
}

// Run starts the HTTP server and blocks until a shutdown signal or a server
// failure. Shutdown drains in-flight requests within the configured timeout.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.logger.InfoContext(gctx, "server listening", slog.String("addr", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
		defer cancel()

		a.logger.Info("shutting down server")
		if err := a.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
		for _, fn := range a.shutdown {
			if err := fn(shutdownCtx); err != nil {
				a.logger.Error("shutdown hook failed", slog.String("error", err.Error()))
			}
		}
		return nil
	})

	err := g.Wait()
	infrastructure.CloseLogFile()
	return err
}
