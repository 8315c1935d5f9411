package practicedb

import (
	"context"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Repository persists practice sessions. Lookups are scoped to the owner;
// another user's session reads as ErrNotFound.
type Repository interface {
	CreateSession(ctx context.Context, db bun.IDB, session *Session) error
	GetSession(ctx context.Context, db bun.IDB, userID, sessionID uuid.UUID) (*Session, error)
	ListSessions(ctx context.Context, db bun.IDB, userID uuid.UUID, limit, offset int) ([]*Session, error)
	UpdateSession(ctx context.Context, db bun.IDB, session *Session) error
	DeleteSession(ctx context.Context, db bun.IDB, userID, sessionID uuid.UUID) error
}
