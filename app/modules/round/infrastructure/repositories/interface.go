package rounddb

import (
	"context"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Repository defines the contract for round, hole and shot persistence.
// Every method accepts an optional bun.IDB so callers can run it inside a
// transaction; nil falls back to the repository's connection.
//
// Error semantics:
//   - ErrNotFound: the record does not exist or belongs to another user
//   - Other errors: infrastructure failures (connection, query errors)
type Repository interface {
	CreateRound(ctx context.Context, db bun.IDB, round *Round) error
	GetRound(ctx context.Context, db bun.IDB, userID, roundID uuid.UUID) (*Round, error)
	ListRounds(ctx context.Context, db bun.IDB, userID uuid.UUID) ([]*Round, error)
	DeleteRound(ctx context.Context, db bun.IDB, userID, roundID uuid.UUID) error
	DecrementHolesPlayed(ctx context.Context, db bun.IDB, roundID uuid.UUID) error

	InsertHole(ctx context.Context, db bun.IDB, hole *Hole) error
	UpdateHole(ctx context.Context, db bun.IDB, hole *Hole) error
	GetHole(ctx context.Context, db bun.IDB, userID, holeID uuid.UUID) (*Hole, error)
	GetHoleByNumber(ctx context.Context, db bun.IDB, roundID uuid.UUID, number int) (*Hole, error)
	DeleteHole(ctx context.Context, db bun.IDB, holeID uuid.UUID) error
	ShiftHoleNumbersDown(ctx context.Context, db bun.IDB, roundID uuid.UUID, after int) (int, error)
	ListHoles(ctx context.Context, db bun.IDB, userID uuid.UUID, roundID *uuid.UUID) ([]*Hole, error)

	ReplaceShots(ctx context.Context, db bun.IDB, holeID uuid.UUID, shots []*Shot) error

	CreateScorecardUpload(ctx context.Context, db bun.IDB, upload *ScorecardUpload) error
}
