package roundservice

import (
	"context"
	"errors"
	"fmt"

	roundtypes "github.com/Black-And-White-Club/birdie-buddy/app/modules/round/domain/types"
	rounddb "github.com/Black-And-White-Club/birdie-buddy/app/modules/round/infrastructure/repositories"
	"github.com/Black-And-White-Club/birdie-buddy/app/shared/results"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// RecordShots replaces the hole's shots with the given ordered list,
// classifying and scoring each one before it is saved.
func (s *RoundService) RecordShots(ctx context.Context, userID, holeID uuid.UUID, shots []ShotInput) (*roundtypes.Hole, error) {
	recordTx := func(ctx context.Context, db bun.IDB) (results.OperationResult[*roundtypes.Hole, error], error) {
		return s.recordShotsLogic(ctx, db, userID, holeID, shots)
	}
	return unwrap(withTelemetry(s, ctx, "RecordShots", holeID.String(), func(ctx context.Context) (results.OperationResult[*roundtypes.Hole, error], error) {
		return runInTx(s, ctx, recordTx)
	}))
}

func (s *RoundService) recordShotsLogic(ctx context.Context, db bun.IDB, userID, holeID uuid.UUID, shots []ShotInput) (results.OperationResult[*roundtypes.Hole, error], error) {
	if err := validateShots(shots, s.calculator); err != nil {
		return results.FailureResult[*roundtypes.Hole, error](err), nil
	}

	hole, err := s.repo.GetHole(ctx, db, userID, holeID)
	if err != nil {
		if errors.Is(err, rounddb.ErrNotFound) {
			return results.FailureResult[*roundtypes.Hole, error](ErrHoleNotFound), nil
		}
		return results.OperationResult[*roundtypes.Hole, error]{}, fmt.Errorf("failed to get hole: %w", err)
	}

	saved, err := s.saveShots(ctx, db, userID, hole.ID, shots)
	if err != nil {
		return results.OperationResult[*roundtypes.Hole, error]{}, err
	}

	out := hole.ToDomain()
	out.Shots = saved
	return results.SuccessResult[*roundtypes.Hole, error](&out), nil
}

// saveShots scores the shots in order and replaces whatever the hole held.
func (s *RoundService) saveShots(ctx context.Context, db bun.IDB, userID, holeID uuid.UUID, shots []ShotInput) ([]roundtypes.Shot, error) {
	pending := make([]roundtypes.Shot, len(shots))
	for i, in := range shots {
		pending[i] = roundtypes.Shot{
			ID:            uuid.New(),
			HoleID:        holeID,
			UserID:        userID,
			StartDistance: in.StartDistance,
			Lie:           in.Lie,
		}
	}

	scored, err := s.calculator.ScoreHole(pending)
	if err != nil {
		return nil, fmt.Errorf("failed to compute strokes gained: %w", err)
	}

	rows := make([]*rounddb.Shot, len(scored))
	for i, shot := range scored {
		rows[i] = rounddb.ShotFromDomain(shot)
	}
	if err := s.repo.ReplaceShots(ctx, db, holeID, rows); err != nil {
		return nil, fmt.Errorf("failed to save shots: %w", err)
	}
	return scored, nil
}
