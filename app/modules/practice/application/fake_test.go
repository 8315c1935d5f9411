package practiceservice

import (
	"context"

	practicedb "github.com/Black-And-White-Club/birdie-buddy/app/modules/practice/infrastructure/repositories"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type FakePracticeRepo struct {
	trace []string

	CreateSessionFunc func(ctx context.Context, db bun.IDB, session *practicedb.Session) error
	GetSessionFunc    func(ctx context.Context, db bun.IDB, userID, sessionID uuid.UUID) (*practicedb.Session, error)
	ListSessionsFunc  func(ctx context.Context, db bun.IDB, userID uuid.UUID, limit, offset int) ([]*practicedb.Session, error)
	UpdateSessionFunc func(ctx context.Context, db bun.IDB, session *practicedb.Session) error
	DeleteSessionFunc func(ctx context.Context, db bun.IDB, userID, sessionID uuid.UUID) error
}

func NewFakePracticeRepo() *FakePracticeRepo {
	return &FakePracticeRepo{trace: []string{}}
}

func (f *FakePracticeRepo) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakePracticeRepo) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakePracticeRepo) CreateSession(ctx context.Context, db bun.IDB, session *practicedb.Session) error {
	f.record("CreateSession")
	if f.CreateSessionFunc != nil {
		return f.CreateSessionFunc(ctx, db, session)
	}
	return nil
}

func (f *FakePracticeRepo) GetSession(ctx context.Context, db bun.IDB, userID, sessionID uuid.UUID) (*practicedb.Session, error) {
	f.record("GetSession")
	if f.GetSessionFunc != nil {
		return f.GetSessionFunc(ctx, db, userID, sessionID)
	}
	return nil, practicedb.ErrNotFound
}

func (f *FakePracticeRepo) ListSessions(ctx context.Context, db bun.IDB, userID uuid.UUID, limit, offset int) ([]*practicedb.Session, error) {
	f.record("ListSessions")
	if f.ListSessionsFunc != nil {
		return f.ListSessionsFunc(ctx, db, userID, limit, offset)
	}
	return nil, nil
}

func (f *FakePracticeRepo) UpdateSession(ctx context.Context, db bun.IDB, session *practicedb.Session) error {
	f.record("UpdateSession")
	if f.UpdateSessionFunc != nil {
		return f.UpdateSessionFunc(ctx, db, session)
	}
	return nil
}

func (f *FakePracticeRepo) DeleteSession(ctx context.Context, db bun.IDB, userID, sessionID uuid.UUID) error {
	f.record("DeleteSession")
	if f.DeleteSessionFunc != nil {
		return f.DeleteSessionFunc(ctx, db, userID, sessionID)
	}
	return nil
}

var _ practicedb.Repository = (*FakePracticeRepo)(nil)
