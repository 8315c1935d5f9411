package roundservice

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Black-And-White-Club/birdie-buddy/app/modules/round/application/parsers"
	"github.com/Black-And-White-Club/birdie-buddy/app/modules/round/domain/strokesgained"
	rounddb "github.com/Black-And-White-Club/birdie-buddy/app/modules/round/infrastructure/repositories"
	"github.com/Black-And-White-Club/birdie-buddy/app/shared/attr"
	"github.com/Black-And-White-Club/birdie-buddy/app/shared/results"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ImportScorecard parses an uploaded file and creates the round, its holes
// and their scored shots in one transaction.
func (s *RoundService) ImportScorecard(ctx context.Context, userID uuid.UUID, req ImportRequest) (*RoundDetail, error) {
	return unwrap(withTelemetry(s, ctx, "ImportScorecard", req.Filename, func(ctx context.Context) (results.OperationResult[*RoundDetail, error], error) {
		parser, err := s.parsers.GetParser(req.Filename)
		if err != nil {
			return results.FailureResult[*RoundDetail, error](fmt.Errorf("%w: %v", ErrInvalidScorecard, err)), nil
		}
		card, err := parser.Parse(req.Data)
		if err != nil {
			return results.FailureResult[*RoundDetail, error](fmt.Errorf("%w: %v", ErrInvalidScorecard, err)), nil
		}
		return s.importParsed(ctx, userID, req.CourseName, req.Filename, req.PlayedAt, card)
	}))
}

// ImportScorecardImage reads a scorecard photo through the vision service,
// then imports the JSON it returns.
func (s *RoundService) ImportScorecardImage(ctx context.Context, userID uuid.UUID, req ImageImportRequest) (*RoundDetail, error) {
	return unwrap(withTelemetry(s, ctx, "ImportScorecardImage", req.Filename, func(ctx context.Context) (results.OperationResult[*RoundDetail, error], error) {
		if s.reader == nil {
			return results.FailureResult[*RoundDetail, error](fmt.Errorf("%w: no vision service configured", ErrScorecardUnreadable)), nil
		}
		if len(req.Image) == 0 {
			return results.FailureResult[*RoundDetail, error](fmt.Errorf("%w: empty image", ErrInvalidScorecard)), nil
		}

		text, err := s.reader.ReadScorecard(ctx, req.Image, req.MediaType)
		if err != nil {
			s.logger.WarnContext(ctx, "Vision read failed", attr.ExtractCorrelationID(ctx), attr.Error(err))
			return results.FailureResult[*RoundDetail, error](fmt.Errorf("%w: %v", ErrScorecardUnreadable, err)), nil
		}

		card, err := parsers.NewJSONParser().Parse([]byte(text))
		if err != nil {
			return results.FailureResult[*RoundDetail, error](fmt.Errorf("%w: %v", ErrScorecardUnreadable, err)), nil
		}
		return s.importParsed(ctx, userID, req.CourseName, req.Filename, req.PlayedAt, card)
	}))
}

func (s *RoundService) importParsed(ctx context.Context, userID uuid.UUID, courseName, filename string, playedAt *time.Time, card *parsers.Scorecard) (results.OperationResult[*RoundDetail, error], error) {
	holesPlayed := card.HolesPlayed()
	roundReq := CreateRoundRequest{CourseName: courseName, HolesPlayed: &holesPlayed, PlayedAt: playedAt}
	if err := roundReq.validate(); err != nil {
		return results.FailureResult[*RoundDetail, error](fmt.Errorf("%w: %v", ErrInvalidScorecard, err)), nil
	}
	if err := validateScorecard(card, s.calculator); err != nil {
		return results.FailureResult[*RoundDetail, error](err), nil
	}

	payload, err := json.Marshal(card)
	if err != nil {
		return results.OperationResult[*RoundDetail, error]{}, fmt.Errorf("failed to encode scorecard: %w", err)
	}

	importTx := func(ctx context.Context, db bun.IDB) (results.OperationResult[*RoundDetail, error], error) {
		round := &rounddb.Round{
			ID:          uuid.New(),
			UserID:      userID,
			CourseName:  strings.TrimSpace(courseName),
			HolesPlayed: &holesPlayed,
		}
		if playedAt != nil {
			round.CreatedAt = *playedAt
		}
		if err := s.repo.CreateRound(ctx, db, round); err != nil {
			return results.OperationResult[*RoundDetail, error]{}, fmt.Errorf("failed to create round: %w", err)
		}

		for _, ph := range card.Holes {
			hole := &rounddb.Hole{
				ID:      uuid.New(),
				RoundID: round.ID,
				UserID:  userID,
				Number:  ph.Number,
				Par:     ph.Par,
			}
			if ph.Score > 0 {
				score := ph.Score
				hole.Score = &score
			}
			if err := s.repo.InsertHole(ctx, db, hole); err != nil {
				return results.OperationResult[*RoundDetail, error]{}, fmt.Errorf("failed to insert hole %d: %w", ph.Number, err)
			}

			inputs := make([]ShotInput, len(ph.Shots))
			for i, shot := range ph.Shots {
				inputs[i] = ShotInput{StartDistance: shot.StartDistance, Lie: shot.Lie}
			}
			if _, err := s.saveShots(ctx, db, userID, hole.ID, inputs); err != nil {
				return results.OperationResult[*RoundDetail, error]{}, fmt.Errorf("hole %d: %w", ph.Number, err)
			}
		}

		upload := &rounddb.ScorecardUpload{
			ID:         uuid.New(),
			UserID:     userID,
			CourseName: round.CourseName,
			Filename:   filename,
			Payload:    string(payload),
			RoundID:    &round.ID,
		}
		if err := s.repo.CreateScorecardUpload(ctx, db, upload); err != nil {
			return results.OperationResult[*RoundDetail, error]{}, fmt.Errorf("failed to record upload: %w", err)
		}

		saved, err := s.repo.GetRound(ctx, db, userID, round.ID)
		if err != nil {
			return results.OperationResult[*RoundDetail, error]{}, fmt.Errorf("failed to reload imported round: %w", err)
		}
		return results.SuccessResult[*RoundDetail, error](newRoundDetail(saved.ToDomain())), nil
	}

	result, err := runInTx(s, ctx, importTx)
	if err == nil && result.IsSuccess() {
		s.logger.InfoContext(ctx, "Scorecard imported",
			attr.ExtractCorrelationID(ctx),
			attr.RoundID((*result.Success).ID),
			attr.Int("holes", holesPlayed),
		)
	}
	return result, err
}

func validateScorecard(card *parsers.Scorecard, calc *strokesgained.Calculator) error {
	if card.HolesPlayed() == 0 {
		return fmt.Errorf("%w: %v", ErrInvalidScorecard, parsers.ErrEmptyScorecard)
	}
	seen := make(map[int]bool, len(card.Holes))
	for _, h := range card.Holes {
		req := HoleRequest{Number: h.Number, Par: h.Par}
		if err := req.validate(); err != nil {
			return fmt.Errorf("%w: hole %d: %v", ErrInvalidScorecard, h.Number, err)
		}
		if seen[h.Number] {
			return fmt.Errorf("%w: hole %d appears twice", ErrInvalidScorecard, h.Number)
		}
		seen[h.Number] = true
		if h.Score > maxStrokes {
			return fmt.Errorf("%w: hole %d has %d shots", ErrInvalidScorecard, h.Number, h.Score)
		}

		inputs := make([]ShotInput, len(h.Shots))
		for i, shot := range h.Shots {
			inputs[i] = ShotInput{StartDistance: shot.StartDistance, Lie: shot.Lie}
		}
		if err := validateShots(inputs, calc); err != nil {
			return fmt.Errorf("%w: hole %d: %v", ErrInvalidScorecard, h.Number, err)
		}
	}
	return nil
}
