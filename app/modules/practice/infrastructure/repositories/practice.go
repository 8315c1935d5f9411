package practicedb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

var ErrNotFound = errors.New("not found")

type Impl struct {
	db bun.IDB
}

func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

func (r *Impl) CreateSession(ctx context.Context, db bun.IDB, session *Session) error {
	db = r.resolveDB(db)
	if session.ID == uuid.Nil {
		session.ID = uuid.New()
	}
	if _, err := db.NewInsert().Model(session).Returning("created_at").Exec(ctx); err != nil {
		return fmt.Errorf("failed to create practice session: %w", err)
	}
	return nil
}

func (r *Impl) GetSession(ctx context.Context, db bun.IDB, userID, sessionID uuid.UUID) (*Session, error) {
	db = r.resolveDB(db)
	session := new(Session)
	err := db.NewSelect().
		Model(session).
		Where("ps.id = ?", sessionID).
		Where("ps.user_id = ?", userID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get practice session: %w", err)
	}
	return session, nil
}

// ListSessions returns the user's sessions newest first. A limit of 0 means
// no limit.
func (r *Impl) ListSessions(ctx context.Context, db bun.IDB, userID uuid.UUID, limit, offset int) ([]*Session, error) {
	db = r.resolveDB(db)
	var sessions []*Session
	q := db.NewSelect().
		Model(&sessions).
		Where("ps.user_id = ?", userID).
		Order("ps.created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}
	if err := q.Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to list practice sessions: %w", err)
	}
	return sessions, nil
}

func (r *Impl) UpdateSession(ctx context.Context, db bun.IDB, session *Session) error {
	db = r.resolveDB(db)
	res, err := db.NewUpdate().
		Model(session).
		Column("practice_type", "outcome", "notes").
		Where("ps.id = ?", session.ID).
		Where("ps.user_id = ?", session.UserID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update practice session: %w", err)
	}
	return requireAffected(res)
}

func (r *Impl) DeleteSession(ctx context.Context, db bun.IDB, userID, sessionID uuid.UUID) error {
	db = r.resolveDB(db)
	res, err := db.NewDelete().
		Model((*Session)(nil)).
		Where("id = ?", sessionID).
		Where("user_id = ?", userID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete practice session: %w", err)
	}
	return requireAffected(res)
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
