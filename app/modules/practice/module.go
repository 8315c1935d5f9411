package practice

import (
	"context"
	"log/slog"
	"sync"

	practiceservice "github.com/Black-And-White-Club/birdie-buddy/app/modules/practice/application"
	practicehandlers "github.com/Black-And-White-Club/birdie-buddy/app/modules/practice/infrastructure/handlers"
	practicedb "github.com/Black-And-White-Club/birdie-buddy/app/modules/practice/infrastructure/repositories"
	"github.com/Black-And-White-Club/birdie-buddy/app/shared/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"
)

// Module represents the practice module.
type Module struct {
	PracticeService practiceservice.Service
	logger          *slog.Logger
	cancelFunc      context.CancelFunc
}

func NewPracticeModule(
	ctx context.Context,
	logger *slog.Logger,
	tracer trace.Tracer,
	serviceMetrics metrics.ServiceMetrics,
	db *bun.DB,
	apiRouter chi.Router,
) (*Module, error) {
	logger.InfoContext(ctx, "Initializing practice module")

	service := practiceservice.NewPracticeService(practicedb.NewRepository(db), logger, serviceMetrics, tracer)
	if apiRouter != nil {
		practicehandlers.Routes(apiRouter, practicehandlers.NewPracticeHandlers(service, logger, tracer))
	}

	return &Module{
		PracticeService: service,
		logger:          logger,
	}, nil
}

func (m *Module) Run(ctx context.Context, wg *sync.WaitGroup) {
	m.logger.Info("Starting practice module")

	ctx, cancel := context.WithCancel(ctx)
	m.cancelFunc = cancel
	defer cancel()

	if wg != nil {
		defer wg.Done()
	}

	<-ctx.Done()
	m.logger.Info("Practice module goroutine stopped")
}

func (m *Module) Close() error {
	if m.cancelFunc != nil {
		m.cancelFunc()
	}
	m.logger.Info("Practice module stopped")
	return nil
}
