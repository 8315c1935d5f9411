package statsservice

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	roundtypes "github.com/Black-And-White-Club/birdie-buddy/app/modules/round/domain/types"
	rounddb "github.com/Black-And-White-Club/birdie-buddy/app/modules/round/infrastructure/repositories"
	"github.com/Black-And-White-Club/birdie-buddy/app/shared/attr"
	"github.com/Black-And-White-Club/birdie-buddy/app/shared/metrics"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const serviceName = "StatsService"

// StatsService implements the Service interface.
type StatsService struct {
	holes   HoleSource
	logger  *slog.Logger
	metrics metrics.ServiceMetrics
	tracer  trace.Tracer
	palette ChartPalette
}

func NewStatsService(holes HoleSource, logger *slog.Logger, serviceMetrics metrics.ServiceMetrics, tracer trace.Tracer) *StatsService {
	if logger == nil {
		logger = slog.Default()
	}
	return &StatsService{
		holes:   holes,
		logger:  logger,
		metrics: serviceMetrics,
		tracer:  tracer,
		palette: DefaultPalette,
	}
}

func (s *StatsService) StrokesGained(ctx context.Context, userID uuid.UUID, roundID *uuid.UUID) (StrokesGainedStats, error) {
	return compute(s, ctx, "StrokesGained", userID, roundID, pure(ComputeStrokesGained))
}

func (s *StatsService) Approach(ctx context.Context, userID uuid.UUID, roundID *uuid.UUID) (ApproachStats, error) {
	return compute(s, ctx, "Approach", userID, roundID, pure(ComputeApproach))
}

func (s *StatsService) Putting(ctx context.Context, userID uuid.UUID, roundID *uuid.UUID) (PuttingStats, error) {
	return compute(s, ctx, "Putting", userID, roundID, pure(ComputePutting))
}

func (s *StatsService) ShortGame(ctx context.Context, userID uuid.UUID, roundID *uuid.UUID) (ShortGameStats, error) {
	return compute(s, ctx, "ShortGame", userID, roundID, pure(ComputeShortGame))
}

func (s *StatsService) Driving(ctx context.Context, userID uuid.UUID, roundID *uuid.UUID) (DrivingStats, error) {
	return compute(s, ctx, "Driving", userID, roundID, pure(ComputeDriving))
}

func (s *StatsService) TigerFive(ctx context.Context, userID uuid.UUID, roundID *uuid.UUID) (TigerFiveStats, error) {
	return compute(s, ctx, "TigerFive", userID, roundID, pure(ComputeTigerFive))
}

func (s *StatsService) MentalScorecard(ctx context.Context, userID uuid.UUID, roundID *uuid.UUID) (MentalScorecardStats, error) {
	return compute(s, ctx, "MentalScorecard", userID, roundID, pure(ComputeMentalScorecard))
}

func (s *StatsService) Summary(ctx context.Context, userID uuid.UUID, roundID *uuid.UUID) (Summary, error) {
	return compute(s, ctx, "Summary", userID, roundID, pure(ComputeSummary))
}

func (s *StatsService) StrokesGainedChart(ctx context.Context, userID uuid.UUID, roundID *uuid.UUID) ([]byte, error) {
	return compute(s, ctx, "StrokesGainedChart", userID, roundID, func(holes []roundtypes.Hole, scope Scope) ([]byte, error) {
		png, err := RenderStrokesGainedChart(ComputeStrokesGained(holes, scope), s.palette)
		if err != nil {
			return nil, fmt.Errorf("failed to render chart: %w", err)
		}
		return png, nil
	})
}

func pure[T any](f func([]roundtypes.Hole, Scope) T) func([]roundtypes.Hole, Scope) (T, error) {
	return func(holes []roundtypes.Hole, scope Scope) (T, error) {
		return f(holes, scope), nil
	}
}

// compute loads the holes in scope and applies fn under telemetry.
func compute[T any](
	s *StatsService,
	ctx context.Context,
	operationName string,
	userID uuid.UUID,
	roundID *uuid.UUID,
	fn func([]roundtypes.Hole, Scope) (T, error),
) (result T, err error) {
	identifier := userID.String()
	scope := PerEighteen
	if roundID != nil {
		identifier = roundID.String()
		scope = SingleRound
	}

	var span trace.Span
	if s.tracer != nil {
		ctx, span = s.tracer.Start(ctx, operationName, trace.WithAttributes(
			attribute.String("operation", operationName),
			attribute.String("identifier", identifier),
		))
	} else {
		span = trace.SpanFromContext(ctx)
	}
	defer span.End()

	if s.metrics != nil {
		s.metrics.RecordOperationAttempt(ctx, operationName, serviceName)
	}
	startTime := time.Now()
	defer func() {
		if s.metrics != nil {
			s.metrics.RecordOperationDuration(ctx, operationName, serviceName, time.Since(startTime))
		}
	}()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in %s: %v", operationName, r)
			s.logger.ErrorContext(ctx, "Critical panic recovered",
				attr.ExtractCorrelationID(ctx),
				attr.String("identifier", identifier),
				attr.Error(err),
			)
			if s.metrics != nil {
				s.metrics.RecordOperationFailure(ctx, operationName, serviceName)
			}
			span.RecordError(err)
			var zero T
			result = zero
		}
	}()

	rows, err := s.holes.ListHoles(ctx, nil, userID, roundID)
	if err == nil {
		result, err = fn(rounddb.HolesToDomain(rows), scope)
	}
	if err != nil {
		err = fmt.Errorf("%s: %w", operationName, err)
		s.logger.ErrorContext(ctx, "Operation failed with error",
			attr.ExtractCorrelationID(ctx),
			attr.String("operation", operationName),
			attr.String("identifier", identifier),
			attr.Error(err),
		)
		if s.metrics != nil {
			s.metrics.RecordOperationFailure(ctx, operationName, serviceName)
		}
		span.RecordError(err)
		return result, err
	}

	s.logger.DebugContext(ctx, "Operation completed successfully",
		attr.ExtractCorrelationID(ctx),
		attr.String("operation", operationName),
		attr.String("identifier", identifier),
		attr.Int("holes", len(rows)),
		attr.Bool("per_eighteen", !scope.IsRound()),
	)
	if s.metrics != nil {
		s.metrics.RecordOperationSuccess(ctx, operationName, serviceName)
	}
	return result, nil
}
