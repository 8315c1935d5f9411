package statsservice

import (
	"context"

	rounddb "github.com/Black-And-White-Club/birdie-buddy/app/modules/round/infrastructure/repositories"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Service computes read-only statistics. A nil roundID reports per 18 holes
// over all of the user's holes; otherwise raw figures for that round.
type Service interface {
	StrokesGained(ctx context.Context, userID uuid.UUID, roundID *uuid.UUID) (StrokesGainedStats, error)
	Approach(ctx context.Context, userID uuid.UUID, roundID *uuid.UUID) (ApproachStats, error)
	Putting(ctx context.Context, userID uuid.UUID, roundID *uuid.UUID) (PuttingStats, error)
	ShortGame(ctx context.Context, userID uuid.UUID, roundID *uuid.UUID) (ShortGameStats, error)
	Driving(ctx context.Context, userID uuid.UUID, roundID *uuid.UUID) (DrivingStats, error)
	TigerFive(ctx context.Context, userID uuid.UUID, roundID *uuid.UUID) (TigerFiveStats, error)
	MentalScorecard(ctx context.Context, userID uuid.UUID, roundID *uuid.UUID) (MentalScorecardStats, error)
	Summary(ctx context.Context, userID uuid.UUID, roundID *uuid.UUID) (Summary, error)
	StrokesGainedChart(ctx context.Context, userID uuid.UUID, roundID *uuid.UUID) ([]byte, error)
}

// HoleSource loads holes with their shots ordered by number.
type HoleSource interface {
	ListHoles(ctx context.Context, db bun.IDB, userID uuid.UUID, roundID *uuid.UUID) ([]*rounddb.Hole, error)
}
