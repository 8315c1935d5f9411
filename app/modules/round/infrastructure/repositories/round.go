package rounddb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

var (
	// ErrNotFound is returned when a round or hole does not exist for the user.
	ErrNotFound = errors.New("not found")
)

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new round repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

// resolveDB returns the provided db handle, falling back to the repository's
// default connection if db is nil.
func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

func orderByNumber(q *bun.SelectQuery) *bun.SelectQuery {
	return q.Order("number ASC")
}

func (r *Impl) CreateRound(ctx context.Context, db bun.IDB, round *Round) error {
	db = r.resolveDB(db)
	if round.ID == uuid.Nil {
		round.ID = uuid.New()
	}
	if _, err := db.NewInsert().Model(round).Returning("created_at").Exec(ctx); err != nil {
		return fmt.Errorf("failed to create round: %w", err)
	}
	return nil
}

// GetRound loads a round with its holes and shots.
func (r *Impl) GetRound(ctx context.Context, db bun.IDB, userID, roundID uuid.UUID) (*Round, error) {
	db = r.resolveDB(db)
	round := new(Round)
	err := db.NewSelect().
		Model(round).
		Relation("Holes", orderByNumber).
		Relation("Holes.Shots", orderByNumber).
		Where("r.id = ?", roundID).
		Where("r.user_id = ?", userID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get round: %w", err)
	}
	return round, nil
}

// ListRounds returns the user's rounds newest first, with holes and shots.
func (r *Impl) ListRounds(ctx context.Context, db bun.IDB, userID uuid.UUID) ([]*Round, error) {
	db = r.resolveDB(db)
	var rounds []*Round
	err := db.NewSelect().
		Model(&rounds).
		Relation("Holes", orderByNumber).
		Relation("Holes.Shots", orderByNumber).
		Where("r.user_id = ?", userID).
		Order("r.created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list rounds: %w", err)
	}
	return rounds, nil
}

// DeleteRound removes a round; holes and shots go with it via cascade.
func (r *Impl) DeleteRound(ctx context.Context, db bun.IDB, userID, roundID uuid.UUID) error {
	db = r.resolveDB(db)
	res, err := db.NewDelete().
		Model((*Round)(nil)).
		Where("id = ?", roundID).
		Where("user_id = ?", userID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete round: %w", err)
	}
	return requireRows(res)
}

// DecrementHolesPlayed lowers holes_played by one. A NULL count stays NULL.
func (r *Impl) DecrementHolesPlayed(ctx context.Context, db bun.IDB, roundID uuid.UUID) error {
	db = r.resolveDB(db)
	res, err := db.NewUpdate().
		Model((*Round)(nil)).
		Set("holes_played = holes_played - 1").
		Where("id = ?", roundID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to decrement holes played: %w", err)
	}
	return requireRows(res)
}

func (r *Impl) InsertHole(ctx context.Context, db bun.IDB, hole *Hole) error {
	db = r.resolveDB(db)
	if hole.ID == uuid.Nil {
		hole.ID = uuid.New()
	}
	if _, err := db.NewInsert().Model(hole).Exec(ctx); err != nil {
		return fmt.Errorf("failed to insert hole: %w", err)
	}
	return nil
}

// UpdateHole writes par, score and mental scorecard.
func (r *Impl) UpdateHole(ctx context.Context, db bun.IDB, hole *Hole) error {
	db = r.resolveDB(db)
	res, err := db.NewUpdate().
		Model(hole).
		Column("par", "score", "mental_scorecard").
		WherePK().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update hole: %w", err)
	}
	return requireRows(res)
}

// GetHole loads a hole with its shots.
func (r *Impl) GetHole(ctx context.Context, db bun.IDB, userID, holeID uuid.UUID) (*Hole, error) {
	db = r.resolveDB(db)
	hole := new(Hole)
	err := db.NewSelect().
		Model(hole).
		Relation("Shots", orderByNumber).
		Where("h.id = ?", holeID).
		Where("h.user_id = ?", userID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get hole: %w", err)
	}
	return hole, nil
}

// GetHoleByNumber returns the lowest-created hole with the given number, if any.
func (r *Impl) GetHoleByNumber(ctx context.Context, db bun.IDB, roundID uuid.UUID, number int) (*Hole, error) {
	db = r.resolveDB(db)
	hole := new(Hole)
	err := db.NewSelect().
		Model(hole).
		Where("h.round_id = ?", roundID).
		Where("h.number = ?", number).
		Order("h.created_at ASC").
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get hole by number: %w", err)
	}
	return hole, nil
}

// DeleteHole removes a hole; its shots go with it via cascade.
func (r *Impl) DeleteHole(ctx context.Context, db bun.IDB, holeID uuid.UUID) error {
	db = r.resolveDB(db)
	res, err := db.NewDelete().
		Model((*Hole)(nil)).
		Where("id = ?", holeID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete hole: %w", err)
	}
	return requireRows(res)
}

// ShiftHoleNumbersDown decrements the number of every hole in the round
// numbered above after, in a single statement. It returns how many holes moved.
func (r *Impl) ShiftHoleNumbersDown(ctx context.Context, db bun.IDB, roundID uuid.UUID, after int) (int, error) {
	db = r.resolveDB(db)
	res, err := db.NewUpdate().
		Model((*Hole)(nil)).
		Set("number = number - 1").
		Where("round_id = ?", roundID).
		Where("number > ?", after).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to renumber holes: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read renumbered rows: %w", err)
	}
	return int(n), nil
}

// ListHoles returns the user's holes with shots, optionally limited to one round.
func (r *Impl) ListHoles(ctx context.Context, db bun.IDB, userID uuid.UUID, roundID *uuid.UUID) ([]*Hole, error) {
	db = r.resolveDB(db)
	var holes []*Hole
	q := db.NewSelect().
		Model(&holes).
		Relation("Shots", orderByNumber).
		Where("h.user_id = ?", userID)
	if roundID != nil {
		q = q.Where("h.round_id = ?", *roundID)
	}
	if err := q.Order("h.round_id", "h.number").Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to list holes: %w", err)
	}
	return holes, nil
}

// ReplaceShots deletes the hole's shots and inserts the given ones.
func (r *Impl) ReplaceShots(ctx context.Context, db bun.IDB, holeID uuid.UUID, shots []*Shot) error {
	db = r.resolveDB(db)
	if _, err := db.NewDelete().Model((*Shot)(nil)).Where("hole_id = ?", holeID).Exec(ctx); err != nil {
		return fmt.Errorf("failed to clear shots: %w", err)
	}
	if len(shots) == 0 {
		return nil
	}
	for _, s := range shots {
		if s.ID == uuid.Nil {
			s.ID = uuid.New()
		}
		s.HoleID = holeID
	}
	if _, err := db.NewInsert().Model(&shots).Exec(ctx); err != nil {
		return fmt.Errorf("failed to insert shots: %w", err)
	}
	return nil
}

func (r *Impl) CreateScorecardUpload(ctx context.Context, db bun.IDB, upload *ScorecardUpload) error {
	db = r.resolveDB(db)
	if upload.ID == uuid.Nil {
		upload.ID = uuid.New()
	}
	if _, err := db.NewInsert().Model(upload).Exec(ctx); err != nil {
		return fmt.Errorf("failed to record scorecard upload: %w", err)
	}
	return nil
}

func requireRows(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
