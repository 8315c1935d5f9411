package statsservice

import (
	"context"

	rounddb "github.com/Black-And-White-Club/birdie-buddy/app/modules/round/infrastructure/repositories"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type FakeHoleSource struct {
	trace []string

	ListHolesFunc func(ctx context.Context, db bun.IDB, userID uuid.UUID, roundID *uuid.UUID) ([]*rounddb.Hole, error)
}

func NewFakeHoleSource() *FakeHoleSource {
	return &FakeHoleSource{trace: []string{}}
}

func (f *FakeHoleSource) ListHoles(ctx context.Context, db bun.IDB, userID uuid.UUID, roundID *uuid.UUID) ([]*rounddb.Hole, error) {
	f.trace = append(f.trace, "ListHoles")
	if f.ListHolesFunc != nil {
		return f.ListHolesFunc(ctx, db, userID, roundID)
	}
	return nil, nil
}

func (f *FakeHoleSource) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

var _ HoleSource = (*FakeHoleSource)(nil)
