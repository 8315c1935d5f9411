package stats

import (
	"context"
	"log/slog"
	"sync"

	statsservice "github.com/Black-And-White-Club/birdie-buddy/app/modules/stats/application"
	statshandlers "github.com/Black-And-White-Club/birdie-buddy/app/modules/stats/infrastructure/handlers"
	"github.com/Black-And-White-Club/birdie-buddy/app/shared/metrics"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
)

// Module represents the stats module. It owns no storage; holes are read
// through the round module's repository.
type Module struct {
	StatsService statsservice.Service
	logger       *slog.Logger
	cancelFunc   context.CancelFunc
}

func NewStatsModule(
	ctx context.Context,
	logger *slog.Logger,
	tracer trace.Tracer,
	serviceMetrics metrics.ServiceMetrics,
	holes statsservice.HoleSource,
	apiRouter chi.Router,
) (*Module, error) {
	logger.InfoContext(ctx, "Initializing stats module")

	service := statsservice.NewStatsService(holes, logger, serviceMetrics, tracer)
	if apiRouter != nil {
		statshandlers.Routes(apiRouter, statshandlers.NewStatsHandlers(service, logger, tracer))
	}

	return &Module{
		StatsService: service,
		logger:       logger,
	}, nil
}

func (m *Module) Run(ctx context.Context, wg *sync.WaitGroup) {
	m.logger.Info("Starting stats module")

	ctx, cancel := context.WithCancel(ctx)
	m.cancelFunc = cancel
	defer cancel()

	if wg != nil {
		defer wg.Done()
	}

	<-ctx.Done()
	m.logger.Info("Stats module goroutine stopped")
}

func (m *Module) Close() error {
	if m.cancelFunc != nil {
		m.cancelFunc()
	}
	m.logger.Info("Stats module stopped")
	return nil
}
