package roundservice

import (
	"context"

	rounddb "github.com/Black-And-White-Club/birdie-buddy/app/modules/round/infrastructure/repositories"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ------------------------
// Fake Round Repo
// ------------------------

type FakeRoundRepo struct {
	trace []string

	CreateRoundFunc           func(ctx context.Context, db bun.IDB, round *rounddb.Round) error
	GetRoundFunc              func(ctx context.Context, db bun.IDB, userID, roundID uuid.UUID) (*rounddb.Round, error)
	ListRoundsFunc            func(ctx context.Context, db bun.IDB, userID uuid.UUID) ([]*rounddb.Round, error)
	DeleteRoundFunc           func(ctx context.Context, db bun.IDB, userID, roundID uuid.UUID) error
	DecrementHolesPlayedFunc  func(ctx context.Context, db bun.IDB, roundID uuid.UUID) error
	InsertHoleFunc            func(ctx context.Context, db bun.IDB, hole *rounddb.Hole) error
	UpdateHoleFunc            func(ctx context.Context, db bun.IDB, hole *rounddb.Hole) error
	GetHoleFunc               func(ctx context.Context, db bun.IDB, userID, holeID uuid.UUID) (*rounddb.Hole, error)
	GetHoleByNumberFunc       func(ctx context.Context, db bun.IDB, roundID uuid.UUID, number int) (*rounddb.Hole, error)
	DeleteHoleFunc            func(ctx context.Context, db bun.IDB, holeID uuid.UUID) error
	ShiftHoleNumbersDownFunc  func(ctx context.Context, db bun.IDB, roundID uuid.UUID, after int) (int, error)
	ListHolesFunc             func(ctx context.Context, db bun.IDB, userID uuid.UUID, roundID *uuid.UUID) ([]*rounddb.Hole, error)
	ReplaceShotsFunc          func(ctx context.Context, db bun.IDB, holeID uuid.UUID, shots []*rounddb.Shot) error
	CreateScorecardUploadFunc func(ctx context.Context, db bun.IDB, upload *rounddb.ScorecardUpload) error
}

func NewFakeRoundRepo() *FakeRoundRepo {
	return &FakeRoundRepo{
		trace: []string{},
	}
}

func (f *FakeRoundRepo) record(step string) {
	f.trace = append(f.trace, step)
}

// --- Repository Interface Implementation ---

func (f *FakeRoundRepo) CreateRound(ctx context.Context, db bun.IDB, round *rounddb.Round) error {
	f.record("CreateRound")
	if f.CreateRoundFunc != nil {
		return f.CreateRoundFunc(ctx, db, round)
	}
	return nil
}

func (f *FakeRoundRepo) GetRound(ctx context.Context, db bun.IDB, userID, roundID uuid.UUID) (*rounddb.Round, error) {
	f.record("GetRound")
	if f.GetRoundFunc != nil {
		return f.GetRoundFunc(ctx, db, userID, roundID)
	}
	return nil, rounddb.ErrNotFound
}

func (f *FakeRoundRepo) ListRounds(ctx context.Context, db bun.IDB, userID uuid.UUID) ([]*rounddb.Round, error) {
	f.record("ListRounds")
	if f.ListRoundsFunc != nil {
		return f.ListRoundsFunc(ctx, db, userID)
	}
	return nil, nil
}

func (f *FakeRoundRepo) DeleteRound(ctx context.Context, db bun.IDB, userID, roundID uuid.UUID) error {
	f.record("DeleteRound")
	if f.DeleteRoundFunc != nil {
		return f.DeleteRoundFunc(ctx, db, userID, roundID)
	}
	return nil
}

func (f *FakeRoundRepo) DecrementHolesPlayed(ctx context.Context, db bun.IDB, roundID uuid.UUID) error {
	f.record("DecrementHolesPlayed")
	if f.DecrementHolesPlayedFunc != nil {
		return f.DecrementHolesPlayedFunc(ctx, db, roundID)
	}
	return nil
}

func (f *FakeRoundRepo) InsertHole(ctx context.Context, db bun.IDB, hole *rounddb.Hole) error {
	f.record("InsertHole")
	if f.InsertHoleFunc != nil {
		return f.InsertHoleFunc(ctx, db, hole)
	}
	return nil
}

func (f *FakeRoundRepo) UpdateHole(ctx context.Context, db bun.IDB, hole *rounddb.Hole) error {
	f.record("UpdateHole")
	if f.UpdateHoleFunc != nil {
		return f.UpdateHoleFunc(ctx, db, hole)
	}
	return nil
}

func (f *FakeRoundRepo) GetHole(ctx context.Context, db bun.IDB, userID, holeID uuid.UUID) (*rounddb.Hole, error) {
	f.record("GetHole")
	if f.GetHoleFunc != nil {
		return f.GetHoleFunc(ctx, db, userID, holeID)
	}
	return nil, rounddb.ErrNotFound
}

func (f *FakeRoundRepo) GetHoleByNumber(ctx context.Context, db bun.IDB, roundID uuid.UUID, number int) (*rounddb.Hole, error) {
	f.record("GetHoleByNumber")
	if f.GetHoleByNumberFunc != nil {
		return f.GetHoleByNumberFunc(ctx, db, roundID, number)
	}
	return nil, rounddb.ErrNotFound
}

func (f *FakeRoundRepo) DeleteHole(ctx context.Context, db bun.IDB, holeID uuid.UUID) error {
	f.record("DeleteHole")
	if f.DeleteHoleFunc != nil {
		return f.DeleteHoleFunc(ctx, db, holeID)
	}
	return nil
}

func (f *FakeRoundRepo) ShiftHoleNumbersDown(ctx context.Context, db bun.IDB, roundID uuid.UUID, after int) (int, error) {
	f.record("ShiftHoleNumbersDown")
	if f.ShiftHoleNumbersDownFunc != nil {
		return f.ShiftHoleNumbersDownFunc(ctx, db, roundID, after)
	}
	return 0, nil
}

func (f *FakeRoundRepo) ListHoles(ctx context.Context, db bun.IDB, userID uuid.UUID, roundID *uuid.UUID) ([]*rounddb.Hole, error) {
	f.record("ListHoles")
	if f.ListHolesFunc != nil {
		return f.ListHolesFunc(ctx, db, userID, roundID)
	}
	return nil, nil
}

func (f *FakeRoundRepo) ReplaceShots(ctx context.Context, db bun.IDB, holeID uuid.UUID, shots []*rounddb.Shot) error {
	f.record("ReplaceShots")
	if f.ReplaceShotsFunc != nil {
		return f.ReplaceShotsFunc(ctx, db, holeID, shots)
	}
	return nil
}

func (f *FakeRoundRepo) CreateScorecardUpload(ctx context.Context, db bun.IDB, upload *rounddb.ScorecardUpload) error {
	f.record("CreateScorecardUpload")
	if f.CreateScorecardUploadFunc != nil {
		return f.CreateScorecardUploadFunc(ctx, db, upload)
	}
	return nil
}

// --- Accessors for assertions ---

func (f *FakeRoundRepo) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

// Ensure the fake actually satisfies the interface
var _ rounddb.Repository = (*FakeRoundRepo)(nil)

// ------------------------
// Fake Scorecard Reader
// ------------------------

type FakeScorecardReader struct {
	ReadScorecardFunc func(ctx context.Context, image []byte, mediaType string) (string, error)
}

func (f *FakeScorecardReader) ReadScorecard(ctx context.Context, image []byte, mediaType string) (string, error) {
	if f.ReadScorecardFunc != nil {
		return f.ReadScorecardFunc(ctx, image, mediaType)
	}
	return "", nil
}

var _ ScorecardReader = (*FakeScorecardReader)(nil)
