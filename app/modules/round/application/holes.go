package roundservice

import (
	"context"
	"errors"
	"fmt"

	roundtypes "github.com/Black-And-White-Club/birdie-buddy/app/modules/round/domain/types"
	rounddb "github.com/Black-And-White-Club/birdie-buddy/app/modules/round/infrastructure/repositories"
	"github.com/Black-And-White-Club/birdie-buddy/app/shared/attr"
	"github.com/Black-And-White-Club/birdie-buddy/app/shared/results"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// RecordHole creates the hole with the given number or updates it if the
// round already has one.
func (s *RoundService) RecordHole(ctx context.Context, userID, roundID uuid.UUID, req HoleRequest) (*roundtypes.Hole, error) {
	recordTx := func(ctx context.Context, db bun.IDB) (results.OperationResult[*roundtypes.Hole, error], error) {
		return s.recordHoleLogic(ctx, db, userID, roundID, req)
	}
	return unwrap(withTelemetry(s, ctx, "RecordHole", roundID.String(), func(ctx context.Context) (results.OperationResult[*roundtypes.Hole, error], error) {
		return runInTx(s, ctx, recordTx)
	}))
}

func (s *RoundService) recordHoleLogic(ctx context.Context, db bun.IDB, userID, roundID uuid.UUID, req HoleRequest) (results.OperationResult[*roundtypes.Hole, error], error) {
	if err := req.validate(); err != nil {
		return results.FailureResult[*roundtypes.Hole, error](err), nil
	}

	round, err := s.repo.GetRound(ctx, db, userID, roundID)
	if err != nil {
		if errors.Is(err, rounddb.ErrNotFound) {
			return results.FailureResult[*roundtypes.Hole, error](ErrRoundNotFound), nil
		}
		return results.OperationResult[*roundtypes.Hole, error]{}, fmt.Errorf("failed to get round: %w", err)
	}
	if round.HolesPlayed != nil && req.Number > *round.HolesPlayed {
		return results.FailureResult[*roundtypes.Hole, error](
			fmt.Errorf("%w: hole %d, round has %d", ErrHoleOutOfRange, req.Number, *round.HolesPlayed)), nil
	}

	hole, err := s.repo.GetHoleByNumber(ctx, db, roundID, req.Number)
	switch {
	case err == nil:
		hole.Par = req.Par
		hole.Score = req.Score
		hole.MentalScorecard = req.MentalScorecard
		if err := s.repo.UpdateHole(ctx, db, hole); err != nil {
			return results.OperationResult[*roundtypes.Hole, error]{}, fmt.Errorf("failed to update hole: %w", err)
		}
	case errors.Is(err, rounddb.ErrNotFound):
		hole = &rounddb.Hole{
			ID:              uuid.New(),
			RoundID:         roundID,
			UserID:          userID,
			Number:          req.Number,
			Par:             req.Par,
			Score:           req.Score,
			MentalScorecard: req.MentalScorecard,
		}
		if err := s.repo.InsertHole(ctx, db, hole); err != nil {
			return results.OperationResult[*roundtypes.Hole, error]{}, fmt.Errorf("failed to insert hole: %w", err)
		}
	default:
		return results.OperationResult[*roundtypes.Hole, error]{}, fmt.Errorf("failed to look up hole: %w", err)
	}

	out := hole.ToDomain()
	return results.SuccessResult[*roundtypes.Hole, error](&out), nil
}

// DeleteHole removes a hole and its shots, moves every later hole in the
// round down by one and lowers holes_played, all in one transaction.
func (s *RoundService) DeleteHole(ctx context.Context, userID, holeID uuid.UUID) (*HoleDeletion, error) {
	deleteTx := func(ctx context.Context, db bun.IDB) (results.OperationResult[*HoleDeletion, error], error) {
		return s.deleteHoleLogic(ctx, db, userID, holeID)
	}
	return unwrap(withTelemetry(s, ctx, "DeleteHole", holeID.String(), func(ctx context.Context) (results.OperationResult[*HoleDeletion, error], error) {
		return runInTx(s, ctx, deleteTx)
	}))
}

func (s *RoundService) deleteHoleLogic(ctx context.Context, db bun.IDB, userID, holeID uuid.UUID) (results.OperationResult[*HoleDeletion, error], error) {
	hole, err := s.repo.GetHole(ctx, db, userID, holeID)
	if err != nil {
		if errors.Is(err, rounddb.ErrNotFound) {
			return results.FailureResult[*HoleDeletion, error](ErrHoleNotFound), nil
		}
		return results.OperationResult[*HoleDeletion, error]{}, fmt.Errorf("failed to get hole: %w", err)
	}

	if err := s.repo.DeleteHole(ctx, db, hole.ID); err != nil {
		return results.OperationResult[*HoleDeletion, error]{}, fmt.Errorf("failed to delete hole: %w", err)
	}
	shifted, err := s.repo.ShiftHoleNumbersDown(ctx, db, hole.RoundID, hole.Number)
	if err != nil {
		return results.OperationResult[*HoleDeletion, error]{}, err
	}
	if err := s.repo.DecrementHolesPlayed(ctx, db, hole.RoundID); err != nil {
		return results.OperationResult[*HoleDeletion, error]{}, err
	}

	s.logger.InfoContext(ctx, "Hole deleted",
		attr.RoundID(hole.RoundID),
		attr.Int("number", hole.Number),
		attr.Int("renumbered", shifted),
	)
	return results.SuccessResult[*HoleDeletion, error](&HoleDeletion{
		RoundID:    hole.RoundID,
		Number:     hole.Number,
		Renumbered: shifted,
	}), nil
}
