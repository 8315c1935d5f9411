package round

import (
	"context"
	"log/slog"
	"sync"

	roundservice "github.com/Black-And-White-Club/birdie-buddy/app/modules/round/application"
	"github.com/Black-And-White-Club/birdie-buddy/app/modules/round/application/parsers"
	"github.com/Black-And-White-Club/birdie-buddy/app/modules/round/domain/benchmark"
	"github.com/Black-And-White-Club/birdie-buddy/app/modules/round/domain/strokesgained"
	roundhandlers "github.com/Black-And-White-Club/birdie-buddy/app/modules/round/infrastructure/handlers"
	rounddb "github.com/Black-And-White-Club/birdie-buddy/app/modules/round/infrastructure/repositories"
	"github.com/Black-And-White-Club/birdie-buddy/app/modules/round/infrastructure/vision"
	"github.com/Black-And-White-Club/birdie-buddy/app/shared/metrics"
	"github.com/Black-And-White-Club/birdie-buddy/config"
	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"
)

// Module represents the round module.
type Module struct {
	RoundService roundservice.Service
	repo         rounddb.Repository
	logger       *slog.Logger
	config       *config.Config
	cancelFunc   context.CancelFunc
}

// NewRoundModule wires the round service against table and mounts its HTTP
// routes on apiRouter when one is given.
func NewRoundModule(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	tracer trace.Tracer,
	serviceMetrics metrics.ServiceMetrics,
	db *bun.DB,
	table *benchmark.Table,
	apiRouter chi.Router,
) (*Module, error) {
	logger.InfoContext(ctx, "Initializing round module", "benchmark", table.Name())

	repo := rounddb.NewRepository(db)

	var reader roundservice.ScorecardReader
	if cfg.Vision.Endpoint != "" {
		reader = vision.NewClient(vision.Config{
			Endpoint:    cfg.Vision.Endpoint,
			APIKey:      cfg.Vision.APIKey,
			Timeout:     cfg.Vision.Timeout,
			MaxFailures: cfg.Vision.MaxFailures,
			OpenTimeout: cfg.Vision.OpenTimeout,
		}, logger)
	} else {
		logger.InfoContext(ctx, "Vision endpoint not configured; photo import disabled")
	}

	service := roundservice.NewRoundService(
		repo,
		strokesgained.NewCalculator(table),
		parsers.NewFactory(),
		reader,
		logger,
		serviceMetrics,
		tracer,
		db,
	)

	if apiRouter != nil {
		roundhandlers.Routes(apiRouter, roundhandlers.NewRoundHandlers(service, logger, tracer))
	}

	return &Module{
		RoundService: service,
		repo:         repo,
		logger:       logger,
		config:       cfg,
	}, nil
}

// Repository exposes the round store to read-side modules.
func (m *Module) Repository() rounddb.Repository {
	return m.repo
}

func (m *Module) Run(ctx context.Context, wg *sync.WaitGroup) {
	m.logger.Info("Starting round module")

	ctx, cancel := context.WithCancel(ctx)
	m.cancelFunc = cancel
	defer cancel()

	if wg != nil {
		defer wg.Done()
	}

	<-ctx.Done()
	m.logger.Info("Round module goroutine stopped")
}

func (m *Module) Close() error {
	m.logger.Info("Stopping round module")

	if m.cancelFunc != nil {
		m.cancelFunc()
	}

	m.logger.Info("Round module stopped")
	return nil
}
