package practiceservice

import (
	"context"
	"errors"
	"fmt"
	"strings"

	practicetypes "github.com/Black-And-White-Club/birdie-buddy/app/modules/practice/domain/types"
	practicedb "github.com/Black-And-White-Club/birdie-buddy/app/modules/practice/infrastructure/repositories"
	"github.com/Black-And-White-Club/birdie-buddy/app/shared/results"
	"github.com/google/uuid"
)

type sessionResult = results.OperationResult[*practicetypes.Session, error]

func (s *PracticeService) CreateSession(ctx context.Context, userID uuid.UUID, req SessionRequest) (*practicetypes.Session, error) {
	return unwrap(withTelemetry(s, ctx, "CreateSession", userID.String(), func(ctx context.Context) (sessionResult, error) {
		if err := req.normalize(); err != nil {
			return results.FailureResult[*practicetypes.Session, error](err), nil
		}
		row := &practicedb.Session{
			ID:           uuid.New(),
			UserID:       userID,
			PracticeType: string(req.Type),
			Outcome:      int(req.Outcome),
			Notes:        strings.TrimSpace(req.Notes),
		}
		if err := s.repo.CreateSession(ctx, nil, row); err != nil {
			return sessionResult{}, fmt.Errorf("failed to create session: %w", err)
		}
		session := row.ToDomain()
		return results.SuccessResult[*practicetypes.Session, error](&session), nil
	}))
}

func (s *PracticeService) GetSession(ctx context.Context, userID, sessionID uuid.UUID) (*practicetypes.Session, error) {
	return unwrap(withTelemetry(s, ctx, "GetSession", sessionID.String(), func(ctx context.Context) (sessionResult, error) {
		row, err := s.repo.GetSession(ctx, nil, userID, sessionID)
		if err != nil {
			return notFoundOr(err, "failed to get session")
		}
		session := row.ToDomain()
		return results.SuccessResult[*practicetypes.Session, error](&session), nil
	}))
}

// ListSessions returns one page of the user's sessions, newest first.
func (s *PracticeService) ListSessions(ctx context.Context, userID uuid.UUID, page Page) ([]practicetypes.Session, error) {
	page = page.clamp()
	return unwrap(withTelemetry(s, ctx, "ListSessions", userID.String(), func(ctx context.Context) (results.OperationResult[[]practicetypes.Session, error], error) {
		rows, err := s.repo.ListSessions(ctx, nil, userID, page.Limit, page.Offset)
		if err != nil {
			return results.OperationResult[[]practicetypes.Session, error]{}, fmt.Errorf("failed to list sessions: %w", err)
		}
		out := make([]practicetypes.Session, 0, len(rows))
		for _, r := range rows {
			out = append(out, r.ToDomain())
		}
		return results.SuccessResult[[]practicetypes.Session, error](out), nil
	}))
}

func (s *PracticeService) UpdateSession(ctx context.Context, userID, sessionID uuid.UUID, req SessionRequest) (*practicetypes.Session, error) {
	return unwrap(withTelemetry(s, ctx, "UpdateSession", sessionID.String(), func(ctx context.Context) (sessionResult, error) {
		if err := req.normalize(); err != nil {
			return results.FailureResult[*practicetypes.Session, error](err), nil
		}
		row, err := s.repo.GetSession(ctx, nil, userID, sessionID)
		if err != nil {
			return notFoundOr(err, "failed to get session")
		}
		row.PracticeType = string(req.Type)
		row.Outcome = int(req.Outcome)
		row.Notes = strings.TrimSpace(req.Notes)
		if err := s.repo.UpdateSession(ctx, nil, row); err != nil {
			return notFoundOr(err, "failed to update session")
		}
		session := row.ToDomain()
		return results.SuccessResult[*practicetypes.Session, error](&session), nil
	}))
}

func (s *PracticeService) DeleteSession(ctx context.Context, userID, sessionID uuid.UUID) error {
	_, err := unwrap(withTelemetry(s, ctx, "DeleteSession", sessionID.String(), func(ctx context.Context) (results.OperationResult[struct{}, error], error) {
		if err := s.repo.DeleteSession(ctx, nil, userID, sessionID); err != nil {
			if errors.Is(err, practicedb.ErrNotFound) {
				return results.FailureResult[struct{}, error](ErrSessionNotFound), nil
			}
			return results.OperationResult[struct{}, error]{}, fmt.Errorf("failed to delete session: %w", err)
		}
		return results.SuccessResult[struct{}, error](struct{}{}), nil
	}))
	return err
}

func notFoundOr(err error, msg string) (sessionResult, error) {
	if errors.Is(err, practicedb.ErrNotFound) {
		return results.FailureResult[*practicetypes.Session, error](ErrSessionNotFound), nil
	}
	return sessionResult{}, fmt.Errorf("%s: %w", msg, err)
}
