package roundservice

import (
	"context"

	roundtypes "github.com/Black-And-White-Club/birdie-buddy/app/modules/round/domain/types"
	"github.com/google/uuid"
)

// Service is the write side of rounds, holes and shots plus round reads.
type Service interface {
	CreateRound(ctx context.Context, userID uuid.UUID, req CreateRoundRequest) (*RoundDetail, error)
	GetRound(ctx context.Context, userID, roundID uuid.UUID) (*RoundDetail, error)
	ListRounds(ctx context.Context, userID uuid.UUID) ([]RoundSummary, error)
	DeleteRound(ctx context.Context, userID, roundID uuid.UUID) error

	RecordHole(ctx context.Context, userID, roundID uuid.UUID, req HoleRequest) (*roundtypes.Hole, error)
	RecordShots(ctx context.Context, userID, holeID uuid.UUID, shots []ShotInput) (*roundtypes.Hole, error)
	DeleteHole(ctx context.Context, userID, holeID uuid.UUID) (*HoleDeletion, error)

	ImportScorecard(ctx context.Context, userID uuid.UUID, req ImportRequest) (*RoundDetail, error)
	ImportScorecardImage(ctx context.Context, userID uuid.UUID, req ImageImportRequest) (*RoundDetail, error)
}

// ScorecardReader turns a scorecard photo into scorecard JSON text.
type ScorecardReader interface {
	ReadScorecard(ctx context.Context, image []byte, mediaType string) (string, error)
}
