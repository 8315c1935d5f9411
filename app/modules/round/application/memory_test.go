package roundservice

import (
	"context"
	"sort"
	"testing"

	"github.com/Black-And-White-Club/birdie-buddy/app/modules/round/domain/benchmark"
	"github.com/Black-And-White-Club/birdie-buddy/app/modules/round/domain/strokesgained"
	rounddb "github.com/Black-And-White-Club/birdie-buddy/app/modules/round/infrastructure/repositories"
	"github.com/Black-And-White-Club/birdie-buddy/app/shared/metrics"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
)

// memoryStore backs a FakeRoundRepo with maps so multi-step operations can
// be checked end to end.
type memoryStore struct {
	rounds  map[uuid.UUID]*rounddb.Round
	holes   map[uuid.UUID]*rounddb.Hole
	shots   map[uuid.UUID][]*rounddb.Shot
	uploads []*rounddb.ScorecardUpload
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		rounds: map[uuid.UUID]*rounddb.Round{},
		holes:  map[uuid.UUID]*rounddb.Hole{},
		shots:  map[uuid.UUID][]*rounddb.Shot{},
	}
}

func (m *memoryStore) install(f *FakeRoundRepo) {
	f.CreateRoundFunc = func(ctx context.Context, db bun.IDB, round *rounddb.Round) error {
		cp := *round
		m.rounds[round.ID] = &cp
		return nil
	}
	f.GetRoundFunc = func(ctx context.Context, db bun.IDB, userID, roundID uuid.UUID) (*rounddb.Round, error) {
		r, ok := m.rounds[roundID]
		if !ok || r.UserID != userID {
			return nil, rounddb.ErrNotFound
		}
		out := *r
		out.Holes = nil
		for _, h := range m.holesOf(roundID) {
			out.Holes = append(out.Holes, m.loadHole(h))
		}
		return &out, nil
	}
	f.DeleteRoundFunc = func(ctx context.Context, db bun.IDB, userID, roundID uuid.UUID) error {
		r, ok := m.rounds[roundID]
		if !ok || r.UserID != userID {
			return rounddb.ErrNotFound
		}
		for _, h := range m.holesOf(roundID) {
			delete(m.shots, h.ID)
			delete(m.holes, h.ID)
		}
		delete(m.rounds, roundID)
		return nil
	}
	f.DecrementHolesPlayedFunc = func(ctx context.Context, db bun.IDB, roundID uuid.UUID) error {
		r, ok := m.rounds[roundID]
		if !ok {
			return rounddb.ErrNotFound
		}
		if r.HolesPlayed != nil {
			n := *r.HolesPlayed - 1
			r.HolesPlayed = &n
		}
		return nil
	}
	f.InsertHoleFunc = func(ctx context.Context, db bun.IDB, hole *rounddb.Hole) error {
		cp := *hole
		m.holes[hole.ID] = &cp
		return nil
	}
	f.UpdateHoleFunc = func(ctx context.Context, db bun.IDB, hole *rounddb.Hole) error {
		if _, ok := m.holes[hole.ID]; !ok {
			return rounddb.ErrNotFound
		}
		cp := *hole
		cp.Shots = nil
		m.holes[hole.ID] = &cp
		return nil
	}
	f.GetHoleFunc = func(ctx context.Context, db bun.IDB, userID, holeID uuid.UUID) (*rounddb.Hole, error) {
		h, ok := m.holes[holeID]
		if !ok || h.UserID != userID {
			return nil, rounddb.ErrNotFound
		}
		return m.loadHole(h), nil
	}
	f.GetHoleByNumberFunc = func(ctx context.Context, db bun.IDB, roundID uuid.UUID, number int) (*rounddb.Hole, error) {
		for _, h := range m.holesOf(roundID) {
			if h.Number == number {
				cp := *h
				return &cp, nil
			}
		}
		return nil, rounddb.ErrNotFound
	}
	f.DeleteHoleFunc = func(ctx context.Context, db bun.IDB, holeID uuid.UUID) error {
		if _, ok := m.holes[holeID]; !ok {
			return rounddb.ErrNotFound
		}
		delete(m.holes, holeID)
		delete(m.shots, holeID)
		return nil
	}
	f.ShiftHoleNumbersDownFunc = func(ctx context.Context, db bun.IDB, roundID uuid.UUID, after int) (int, error) {
		n := 0
		for _, h := range m.holesOf(roundID) {
			if h.Number > after {
				h.Number--
				n++
			}
		}
		return n, nil
	}
	f.ReplaceShotsFunc = func(ctx context.Context, db bun.IDB, holeID uuid.UUID, shots []*rounddb.Shot) error {
		m.shots[holeID] = shots
		return nil
	}
	f.CreateScorecardUploadFunc = func(ctx context.Context, db bun.IDB, upload *rounddb.ScorecardUpload) error {
		m.uploads = append(m.uploads, upload)
		return nil
	}
}

func (m *memoryStore) holesOf(roundID uuid.UUID) []*rounddb.Hole {
	var out []*rounddb.Hole
	for _, h := range m.holes {
		if h.RoundID == roundID {
			out = append(out, h)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out
}

func (m *memoryStore) loadHole(h *rounddb.Hole) *rounddb.Hole {
	cp := *h
	cp.Shots = m.shots[h.ID]
	return &cp
}

func (m *memoryStore) addRound(userID uuid.UUID, holesPlayed *int) *rounddb.Round {
	r := &rounddb.Round{ID: uuid.New(), UserID: userID, CourseName: "Pebble Beach", HolesPlayed: holesPlayed}
	m.rounds[r.ID] = r
	return r
}

func (m *memoryStore) addHole(round *rounddb.Round, number, par int) *rounddb.Hole {
	h := &rounddb.Hole{ID: uuid.New(), RoundID: round.ID, UserID: round.UserID, Number: number, Par: par}
	m.holes[h.ID] = h
	return h
}

func newTestCalculator(t *testing.T) *strokesgained.Calculator {
	t.Helper()
	table, err := benchmark.Load()
	require.NoError(t, err)
	return strokesgained.NewCalculator(table)
}

func newTestService(t *testing.T, repo rounddb.Repository, reader ScorecardReader) *RoundService {
	t.Helper()
	return NewRoundService(repo, newTestCalculator(t), nil, reader, nil, metrics.NewNoop(), nil, nil)
}

func intPtr(v int) *int { return &v }
