package roundservice

import (
	"context"
	"errors"
	"fmt"
	"strings"

	rounddb "github.com/Black-And-White-Club/birdie-buddy/app/modules/round/infrastructure/repositories"
	"github.com/Black-And-White-Club/birdie-buddy/app/shared/results"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// CreateRound starts an empty round.
func (s *RoundService) CreateRound(ctx context.Context, userID uuid.UUID, req CreateRoundRequest) (*RoundDetail, error) {
	createTx := func(ctx context.Context, db bun.IDB) (results.OperationResult[*RoundDetail, error], error) {
		return s.createRoundLogic(ctx, db, userID, req)
	}
	return unwrap(withTelemetry(s, ctx, "CreateRound", userID.String(), func(ctx context.Context) (results.OperationResult[*RoundDetail, error], error) {
		return runInTx(s, ctx, createTx)
	}))
}

func (s *RoundService) createRoundLogic(ctx context.Context, db bun.IDB, userID uuid.UUID, req CreateRoundRequest) (results.OperationResult[*RoundDetail, error], error) {
	if err := req.validate(); err != nil {
		return results.FailureResult[*RoundDetail, error](err), nil
	}

	round := &rounddb.Round{
		ID:          uuid.New(),
		UserID:      userID,
		CourseName:  strings.TrimSpace(req.CourseName),
		HolesPlayed: req.HolesPlayed,
	}
	if req.PlayedAt != nil {
		round.CreatedAt = *req.PlayedAt
	}
	if err := s.repo.CreateRound(ctx, db, round); err != nil {
		return results.OperationResult[*RoundDetail, error]{}, fmt.Errorf("failed to create round: %w", err)
	}
	return results.SuccessResult[*RoundDetail, error](newRoundDetail(round.ToDomain())), nil
}

// GetRound returns a round with holes, shots and totals.
func (s *RoundService) GetRound(ctx context.Context, userID, roundID uuid.UUID) (*RoundDetail, error) {
	getTx := func(ctx context.Context, db bun.IDB) (results.OperationResult[*RoundDetail, error], error) {
		return s.getRoundLogic(ctx, db, userID, roundID)
	}
	return unwrap(withTelemetry(s, ctx, "GetRound", roundID.String(), func(ctx context.Context) (results.OperationResult[*RoundDetail, error], error) {
		return runInTx(s, ctx, getTx)
	}))
}

func (s *RoundService) getRoundLogic(ctx context.Context, db bun.IDB, userID, roundID uuid.UUID) (results.OperationResult[*RoundDetail, error], error) {
	round, err := s.repo.GetRound(ctx, db, userID, roundID)
	if err != nil {
		if errors.Is(err, rounddb.ErrNotFound) {
			return results.FailureResult[*RoundDetail, error](ErrRoundNotFound), nil
		}
		return results.OperationResult[*RoundDetail, error]{}, fmt.Errorf("failed to get round: %w", err)
	}
	return results.SuccessResult[*RoundDetail, error](newRoundDetail(round.ToDomain())), nil
}

// ListRounds returns the user's rounds, newest first.
func (s *RoundService) ListRounds(ctx context.Context, userID uuid.UUID) ([]RoundSummary, error) {
	return unwrap(withTelemetry(s, ctx, "ListRounds", userID.String(), func(ctx context.Context) (results.OperationResult[[]RoundSummary, error], error) {
		rounds, err := s.repo.ListRounds(ctx, nil, userID)
		if err != nil {
			return results.OperationResult[[]RoundSummary, error]{}, fmt.Errorf("failed to list rounds: %w", err)
		}
		out := make([]RoundSummary, 0, len(rounds))
		for _, r := range rounds {
			out = append(out, newRoundSummary(r.ToDomain()))
		}
		return results.SuccessResult[[]RoundSummary, error](out), nil
	}))
}

// DeleteRound removes a round with all of its holes and shots.
func (s *RoundService) DeleteRound(ctx context.Context, userID, roundID uuid.UUID) error {
	deleteTx := func(ctx context.Context, db bun.IDB) (results.OperationResult[bool, error], error) {
		if err := s.repo.DeleteRound(ctx, db, userID, roundID); err != nil {
			if errors.Is(err, rounddb.ErrNotFound) {
				return results.FailureResult[bool, error](ErrRoundNotFound), nil
			}
			return results.OperationResult[bool, error]{}, fmt.Errorf("failed to delete round: %w", err)
		}
		return results.SuccessResult[bool, error](true), nil
	}
	_, err := unwrap(withTelemetry(s, ctx, "DeleteRound", roundID.String(), func(ctx context.Context) (results.OperationResult[bool, error], error) {
		return runInTx(s, ctx, deleteTx)
	}))
	return err
}
