package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/Black-And-White-Club/birdie-buddy/app/modules/practice"
	"github.com/Black-And-White-Club/birdie-buddy/app/modules/round"
	"github.com/Black-And-White-Club/birdie-buddy/app/modules/round/domain/benchmark"
	"github.com/Black-And-White-Club/birdie-buddy/app/modules/stats"
	"github.com/Black-And-White-Club/birdie-buddy/app/shared/metrics"
	"github.com/Black-And-White-Club/birdie-buddy/app/shared/web"
	"github.com/Black-And-White-Club/birdie-buddy/config"
	"github.com/Black-And-White-Club/birdie-buddy/db/bundb"
	"github.com/Black-And-White-Club/birdie-buddy/pkg/jwt"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel"
	"golang.org/x/time/rate"
)

const shutdownTimeout = 10 * time.Second

// Modules holds every application module.
type Modules struct {
	RoundModule    *round.Module
	StatsModule    *stats.Module
	PracticeModule *practice.Module
}

type App struct {
	Config  *config.Config
	Logger  *slog.Logger
	Modules Modules

	db            *bun.DB
	router        chi.Router
	registry      *prometheus.Registry
	server        *http.Server
	metricsServer *http.Server
	wg            sync.WaitGroup
}

// NewApp loads configuration, connects to Postgres and builds the modules.
func NewApp(ctx context.Context, configFile string) (*App, error) {
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := newLogger(cfg)
	logger.InfoContext(ctx, "Configuration loaded", "environment", cfg.Observability.Environment)

	db, err := bundb.NewBunDB(ctx, cfg.Postgres, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	app := &App{
		Config:   cfg,
		Logger:   logger,
		db:       db,
		registry: prometheus.NewRegistry(),
	}
	if err := app.initialize(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return app, nil
}

func (app *App) initialize(ctx context.Context) error {
	cfg := app.Config

	table, err := loadBenchmark(cfg.Benchmark)
	if err != nil {
		return err
	}

	app.registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	serviceMetrics, err := metrics.NewPrometheus(app.registry, "birdie_buddy")
	if err != nil {
		return fmt.Errorf("failed to register metrics: %w", err)
	}

	tracer := otel.Tracer("birdie-buddy")
	tokens := jwt.NewService(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.DefaultTTL)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(web.CORSMiddleware(cfg.HTTP.AllowedOrigins))
	router.Use(web.RateLimitMiddleware(web.NewIPRateLimiter(rate.Limit(cfg.HTTP.RateLimit), cfg.HTTP.RateBurst)))
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := app.db.PingContext(r.Context()); err != nil {
			web.JSON(w, http.StatusServiceUnavailable, web.ErrorResponse{Error: "database unavailable"})
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})

	var modErr error
	router.Route("/api", func(api chi.Router) {
		api.Use(web.AuthMiddleware(tokens))

		app.Modules.RoundModule, modErr = round.NewRoundModule(ctx, cfg, app.Logger, tracer, serviceMetrics, app.db, table, api)
		if modErr != nil {
			modErr = fmt.Errorf("failed to initialize round module: %w", modErr)
			return
		}
		app.Modules.StatsModule, modErr = stats.NewStatsModule(ctx, app.Logger, tracer, serviceMetrics, app.Modules.RoundModule.Repository(), api)
		if modErr != nil {
			modErr = fmt.Errorf("failed to initialize stats module: %w", modErr)
			return
		}
		app.Modules.PracticeModule, modErr = practice.NewPracticeModule(ctx, app.Logger, tracer, serviceMetrics, app.db, api)
		if modErr != nil {
			modErr = fmt.Errorf("failed to initialize practice module: %w", modErr)
		}
	})
	if modErr != nil {
		return modErr
	}

	app.router = router
	return nil
}

// Run serves HTTP until ctx is cancelled, then shuts everything down.
func (app *App) Run(ctx context.Context) error {
	app.server = &http.Server{
		Addr:              app.Config.HTTP.Address,
		Handler:           app.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	if addr := app.Config.Observability.MetricsAddress; addr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(app.registry, promhttp.HandlerOpts{}))
		app.metricsServer = &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 10 * time.Second}
	}

	app.wg.Add(3)
	go app.Modules.RoundModule.Run(ctx, &app.wg)
	go app.Modules.StatsModule.Run(ctx, &app.wg)
	go app.Modules.PracticeModule.Run(ctx, &app.wg)

	errCh := make(chan error, 2)
	go func() {
		app.Logger.Info("HTTP server listening", "address", app.server.Addr)
		if err := app.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()
	if app.metricsServer != nil {
		go func() {
			app.Logger.Info("Metrics server listening", "address", app.metricsServer.Addr)
			if err := app.metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- fmt.Errorf("metrics server: %w", err)
			}
		}()
	}

	var runErr error
	select {
	case <-ctx.Done():
		app.Logger.Info("Shutdown signal received")
	case runErr = <-errCh:
		app.Logger.Error("Server failed", "error", runErr)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := app.server.Shutdown(shutdownCtx); err != nil {
		app.Logger.Error("HTTP server shutdown failed", "error", err)
	}
	if app.metricsServer != nil {
		if err := app.metricsServer.Shutdown(shutdownCtx); err != nil {
			app.Logger.Error("Metrics server shutdown failed", "error", err)
		}
	}
	return runErr
}

// Close stops the modules and closes the database pool.
func (app *App) Close() error {
	var errs []error
	for _, m := range []interface{ Close() error }{
		app.Modules.RoundModule,
		app.Modules.StatsModule,
		app.Modules.PracticeModule,
	} {
		if err := m.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	app.wg.Wait()

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
	}
	app.Logger.Info("Application shut down gracefully")
	return errors.Join(errs...)
}

func loadBenchmark(cfg config.BenchmarkConfig) (*benchmark.Table, error) {
	if cfg.File != "" {
		table, err := benchmark.LoadFile(cfg.File)
		if err != nil {
			return nil, fmt.Errorf("failed to load benchmark file: %w", err)
		}
		return table, nil
	}
	table, err := benchmark.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load built-in benchmark: %w", err)
	}
	return table, nil
}

func newLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel()}
	var handler slog.Handler
	if cfg.Observability.LogFormat == "text" {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}
	return slog.New(handler).With("service", "birdie-buddy", "environment", cfg.Observability.Environment)
}
