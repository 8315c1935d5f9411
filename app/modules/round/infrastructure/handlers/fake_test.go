package roundhandlers

import (
	"context"

	roundservice "github.com/Black-And-White-Club/birdie-buddy/app/modules/round/application"
	roundtypes "github.com/Black-And-White-Club/birdie-buddy/app/modules/round/domain/types"
	"github.com/google/uuid"
)

// ------------------------
// Fake Service
// ------------------------

type FakeService struct {
	trace []string

	CreateRoundFn          func(ctx context.Context, userID uuid.UUID, req roundservice.CreateRoundRequest) (*roundservice.RoundDetail, error)
	GetRoundFn             func(ctx context.Context, userID, roundID uuid.UUID) (*roundservice.RoundDetail, error)
	ListRoundsFn           func(ctx context.Context, userID uuid.UUID) ([]roundservice.RoundSummary, error)
	DeleteRoundFn          func(ctx context.Context, userID, roundID uuid.UUID) error
	RecordHoleFn           func(ctx context.Context, userID, roundID uuid.UUID, req roundservice.HoleRequest) (*roundtypes.Hole, error)
	RecordShotsFn          func(ctx context.Context, userID, holeID uuid.UUID, shots []roundservice.ShotInput) (*roundtypes.Hole, error)
	DeleteHoleFn           func(ctx context.Context, userID, holeID uuid.UUID) (*roundservice.HoleDeletion, error)
	ImportScorecardFn      func(ctx context.Context, userID uuid.UUID, req roundservice.ImportRequest) (*roundservice.RoundDetail, error)
	ImportScorecardImageFn func(ctx context.Context, userID uuid.UUID, req roundservice.ImageImportRequest) (*roundservice.RoundDetail, error)
}

func (f *FakeService) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeService) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeService) CreateRound(ctx context.Context, userID uuid.UUID, req roundservice.CreateRoundRequest) (*roundservice.RoundDetail, error) {
	f.record("CreateRound")
	if f.CreateRoundFn != nil {
		return f.CreateRoundFn(ctx, userID, req)
	}
	return &roundservice.RoundDetail{}, nil
}

func (f *FakeService) GetRound(ctx context.Context, userID, roundID uuid.UUID) (*roundservice.RoundDetail, error) {
	f.record("GetRound")
	if f.GetRoundFn != nil {
		return f.GetRoundFn(ctx, userID, roundID)
	}
	return nil, roundservice.ErrRoundNotFound
}

func (f *FakeService) ListRounds(ctx context.Context, userID uuid.UUID) ([]roundservice.RoundSummary, error) {
	f.record("ListRounds")
	if f.ListRoundsFn != nil {
		return f.ListRoundsFn(ctx, userID)
	}
	return []roundservice.RoundSummary{}, nil
}

func (f *FakeService) DeleteRound(ctx context.Context, userID, roundID uuid.UUID) error {
	f.record("DeleteRound")
	if f.DeleteRoundFn != nil {
		return f.DeleteRoundFn(ctx, userID, roundID)
	}
	return nil
}

func (f *FakeService) RecordHole(ctx context.Context, userID, roundID uuid.UUID, req roundservice.HoleRequest) (*roundtypes.Hole, error) {
	f.record("RecordHole")
	if f.RecordHoleFn != nil {
		return f.RecordHoleFn(ctx, userID, roundID, req)
	}
	return &roundtypes.Hole{}, nil
}

func (f *FakeService) RecordShots(ctx context.Context, userID, holeID uuid.UUID, shots []roundservice.ShotInput) (*roundtypes.Hole, error) {
	f.record("RecordShots")
	if f.RecordShotsFn != nil {
		return f.RecordShotsFn(ctx, userID, holeID, shots)
	}
	return &roundtypes.Hole{}, nil
}

func (f *FakeService) DeleteHole(ctx context.Context, userID, holeID uuid.UUID) (*roundservice.HoleDeletion, error) {
	f.record("DeleteHole")
	if f.DeleteHoleFn != nil {
		return f.DeleteHoleFn(ctx, userID, holeID)
	}
	return &roundservice.HoleDeletion{}, nil
}

func (f *FakeService) ImportScorecard(ctx context.Context, userID uuid.UUID, req roundservice.ImportRequest) (*roundservice.RoundDetail, error) {
	f.record("ImportScorecard")
	if f.ImportScorecardFn != nil {
		return f.ImportScorecardFn(ctx, userID, req)
	}
	return &roundservice.RoundDetail{}, nil
}

func (f *FakeService) ImportScorecardImage(ctx context.Context, userID uuid.UUID, req roundservice.ImageImportRequest) (*roundservice.RoundDetail, error) {
	f.record("ImportScorecardImage")
	if f.ImportScorecardImageFn != nil {
		return f.ImportScorecardImageFn(ctx, userID, req)
	}
	return &roundservice.RoundDetail{}, nil
}

var _ roundservice.Service = (*FakeService)(nil)
