package roundservice

import (
	"context"
	"errors"
	"testing"
	"time"

	roundtypes "github.com/Black-And-White-Club/birdie-buddy/app/modules/round/domain/types"
	rounddb "github.com/Black-And-White-Club/birdie-buddy/app/modules/round/infrastructure/repositories"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
)

func TestCreateRound(t *testing.T) {
	userID := uuid.New()
	played := time.Date(2026, 9, 12, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		req     CreateRoundRequest
		repoErr error
		wantErr error
		anyErr  bool
	}{
		{name: "valid", req: CreateRoundRequest{CourseName: " Torrey Pines ", HolesPlayed: intPtr(18), PlayedAt: &played}},
		{name: "unknown holes played", req: CreateRoundRequest{CourseName: "Torrey Pines"}},
		{name: "blank course", req: CreateRoundRequest{CourseName: "  "}, wantErr: ErrInvalidRound},
		{name: "too many holes", req: CreateRoundRequest{CourseName: "Torrey", HolesPlayed: intPtr(19)}, wantErr: ErrInvalidRound},
		{name: "zero holes", req: CreateRoundRequest{CourseName: "Torrey", HolesPlayed: intPtr(0)}, wantErr: ErrInvalidRound},
		{name: "database error", req: CreateRoundRequest{CourseName: "Torrey"}, repoErr: errors.New("connection reset"), anyErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewFakeRoundRepo()
			var created *rounddb.Round
			repo.CreateRoundFunc = func(ctx context.Context, db bun.IDB, round *rounddb.Round) error {
				created = round
				return tt.repoErr
			}
			svc := newTestService(t, repo, nil)

			got, err := svc.CreateRound(context.Background(), userID, tt.req)
			if tt.wantErr != nil || tt.anyErr {
				require.Error(t, err)
				if tt.wantErr != nil {
					assert.ErrorIs(t, err, tt.wantErr)
					assert.Empty(t, repo.Trace())
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Torrey Pines", got.CourseName)
			assert.Equal(t, userID, created.UserID)
			assert.False(t, got.Complete)
			if tt.req.PlayedAt != nil {
				assert.Equal(t, played, created.CreatedAt)
			}
		})
	}
}

func TestGetRound(t *testing.T) {
	userID := uuid.New()
	store := newMemoryStore()
	round := store.addRound(userID, intPtr(2))
	h1 := store.addHole(round, 1, 3)
	h2 := store.addHole(round, 2, 4)

	repo := NewFakeRoundRepo()
	store.install(repo)
	svc := newTestService(t, repo, nil)

	_, err := svc.RecordShots(context.Background(), userID, h1.ID, []ShotInput{
		{StartDistance: 170, Lie: roundtypes.LieTee},
		{StartDistance: 20, Lie: roundtypes.LieGreen},
		{StartDistance: 1, Lie: roundtypes.LieGreen},
	})
	require.NoError(t, err)

	got, err := svc.GetRound(context.Background(), userID, round.ID)
	require.NoError(t, err)
	assert.False(t, got.Complete, "hole 2 has no shots yet")
	assert.InDelta(t, 0.085, got.StrokesGained.Total, 1e-9)
	require.Len(t, got.HoleTotals, 2)
	assert.Equal(t, h2.ID, got.HoleTotals[1].HoleID)

	_, err = svc.RecordShots(context.Background(), userID, h2.ID, []ShotInput{{StartDistance: 300, Lie: roundtypes.LieTee}})
	require.NoError(t, err)
	got, err = svc.GetRound(context.Background(), userID, round.ID)
	require.NoError(t, err)
	assert.True(t, got.Complete)

	_, err = svc.GetRound(context.Background(), uuid.New(), round.ID)
	assert.ErrorIs(t, err, ErrRoundNotFound)
}

func TestListRounds(t *testing.T) {
	userID := uuid.New()
	repo := NewFakeRoundRepo()
	repo.ListRoundsFunc = func(ctx context.Context, db bun.IDB, u uuid.UUID) ([]*rounddb.Round, error) {
		return []*rounddb.Round{
			{ID: uuid.New(), UserID: u, CourseName: "Augusta", HolesPlayed: intPtr(1), Holes: []*rounddb.Hole{
				{Number: 1, Par: 4, Score: intPtr(5), Shots: []*rounddb.Shot{{Number: 1, Category: "drive", StrokesGained: -0.4}}},
			}},
		}, nil
	}
	svc := newTestService(t, repo, nil)

	got, err := svc.ListRounds(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Augusta", got[0].CourseName)
	assert.True(t, got[0].Complete)
	assert.Equal(t, 5, got[0].Score)
	assert.Equal(t, 4, got[0].Par)
	assert.InDelta(t, -0.4, got[0].StrokesGained.Driving, 1e-9)

	repo.ListRoundsFunc = func(ctx context.Context, db bun.IDB, u uuid.UUID) ([]*rounddb.Round, error) {
		return nil, errors.New("timeout")
	}
	_, err = svc.ListRounds(context.Background(), userID)
	assert.Error(t, err)
}

func TestDeleteRound(t *testing.T) {
	userID := uuid.New()
	store := newMemoryStore()
	round := store.addRound(userID, intPtr(1))
	hole := store.addHole(round, 1, 4)

	repo := NewFakeRoundRepo()
	store.install(repo)
	svc := newTestService(t, repo, nil)

	require.NoError(t, svc.DeleteRound(context.Background(), userID, round.ID))
	assert.Empty(t, store.rounds)
	assert.NotContains(t, store.holes, hole.ID)

	err := svc.DeleteRound(context.Background(), userID, round.ID)
	assert.ErrorIs(t, err, ErrRoundNotFound)
}

func TestRecordHole(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name        string
		holesPlayed *int
		existing    bool
		req         HoleRequest
		wantErr     error
		wantTrace   []string
	}{
		{
			name:        "insert new hole",
			holesPlayed: intPtr(9),
			req:         HoleRequest{Number: 3, Par: 4, Score: intPtr(5), MentalScorecard: intPtr(4)},
			wantTrace:   []string{"GetRound", "GetHoleByNumber", "InsertHole"},
		},
		{
			name:      "update existing hole",
			existing:  true,
			req:       HoleRequest{Number: 1, Par: 5, Score: intPtr(6)},
			wantTrace: []string{"GetRound", "GetHoleByNumber", "UpdateHole"},
		},
		{
			name:        "number beyond holes played",
			holesPlayed: intPtr(9),
			req:         HoleRequest{Number: 10, Par: 4},
			wantErr:     ErrHoleOutOfRange,
			wantTrace:   []string{"GetRound"},
		},
		{name: "par too high", req: HoleRequest{Number: 1, Par: 7}, wantErr: ErrInvalidHole, wantTrace: []string{}},
		{name: "number too high", req: HoleRequest{Number: 19, Par: 4}, wantErr: ErrInvalidHole, wantTrace: []string{}},
		{name: "score too high", req: HoleRequest{Number: 1, Par: 4, Score: intPtr(21)}, wantErr: ErrInvalidHole, wantTrace: []string{}},
		{
			name:      "mental above score",
			req:       HoleRequest{Number: 1, Par: 4, Score: intPtr(4), MentalScorecard: intPtr(5)},
			wantErr:   ErrInvalidHole,
			wantTrace: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMemoryStore()
			round := store.addRound(userID, tt.holesPlayed)
			if tt.existing {
				store.addHole(round, 1, 4)
			}
			repo := NewFakeRoundRepo()
			store.install(repo)
			svc := newTestService(t, repo, nil)

			got, err := svc.RecordHole(context.Background(), userID, round.ID, tt.req)
			assert.Equal(t, tt.wantTrace, repo.Trace())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.req.Number, got.Number)
			assert.Equal(t, tt.req.Par, got.Par)
			assert.Equal(t, tt.req.Score, got.Score)
			assert.Len(t, store.holesOf(round.ID), 1)
		})
	}
}

func TestRecordShots(t *testing.T) {
	userID := uuid.New()

	t.Run("scores shots against their successors", func(t *testing.T) {
		store := newMemoryStore()
		round := store.addRound(userID, intPtr(1))
		hole := store.addHole(round, 1, 4)
		repo := NewFakeRoundRepo()
		store.install(repo)
		svc := newTestService(t, repo, nil)

		got, err := svc.RecordShots(context.Background(), userID, hole.ID, []ShotInput{
			{StartDistance: 400, Lie: roundtypes.LieTee},
			{StartDistance: 130, Lie: roundtypes.LieFairway},
			{StartDistance: 15, Lie: roundtypes.LieGreen},
			{StartDistance: 1, Lie: roundtypes.LieGreen},
		})
		require.NoError(t, err)
		require.Len(t, got.Shots, 4)

		wantCategories := []roundtypes.Category{
			roundtypes.CategoryDrive, roundtypes.CategoryApproach, roundtypes.CategoryPutt, roundtypes.CategoryPutt,
		}
		for i, s := range got.Shots {
			assert.Equal(t, i+1, s.Number)
			assert.Equal(t, wantCategories[i], s.Category)
		}
		assert.InDelta(t, 0.11, got.Shots[0].StrokesGained, 1e-9)
		assert.InDelta(t, 0.10, got.Shots[1].StrokesGained, 1e-9)
		assert.InDelta(t, 0.04, got.Shots[3].StrokesGained, 1e-9)

		stored := store.shots[hole.ID]
		require.Len(t, stored, 4)
		assert.Equal(t, "drive", stored[0].Category)
		assert.Equal(t, userID, stored[0].UserID)
	})

	t.Run("replaces earlier shots", func(t *testing.T) {
		store := newMemoryStore()
		round := store.addRound(userID, intPtr(1))
		hole := store.addHole(round, 1, 4)
		repo := NewFakeRoundRepo()
		store.install(repo)
		svc := newTestService(t, repo, nil)

		_, err := svc.RecordShots(context.Background(), userID, hole.ID, []ShotInput{
			{StartDistance: 400, Lie: roundtypes.LieTee},
			{StartDistance: 2, Lie: roundtypes.LieGreen},
		})
		require.NoError(t, err)
		got, err := svc.RecordShots(context.Background(), userID, hole.ID, []ShotInput{{StartDistance: 300, Lie: roundtypes.LieTee}})
		require.NoError(t, err)

		require.Len(t, store.shots[hole.ID], 1)
		assert.InDelta(t, 2.714, got.StrokesGained(), 1e-9)
	})

	t.Run("invalid lie", func(t *testing.T) {
		repo := NewFakeRoundRepo()
		svc := newTestService(t, repo, nil)
		_, err := svc.RecordShots(context.Background(), userID, uuid.New(), []ShotInput{{StartDistance: 10, Lie: "cart path"}})
		assert.ErrorIs(t, err, ErrInvalidShot)
		assert.Empty(t, repo.Trace())
	})

	t.Run("zero distance", func(t *testing.T) {
		repo := NewFakeRoundRepo()
		svc := newTestService(t, repo, nil)
		_, err := svc.RecordShots(context.Background(), userID, uuid.New(), []ShotInput{{StartDistance: 0, Lie: roundtypes.LieGreen}})
		assert.ErrorIs(t, err, ErrInvalidShot)
	})

	t.Run("hole not found", func(t *testing.T) {
		repo := NewFakeRoundRepo()
		svc := newTestService(t, repo, nil)
		_, err := svc.RecordShots(context.Background(), userID, uuid.New(), []ShotInput{{StartDistance: 10, Lie: roundtypes.LieGreen}})
		assert.ErrorIs(t, err, ErrHoleNotFound)
	})

	t.Run("distance outside benchmark is invalid", func(t *testing.T) {
		tests := []struct {
			name string
			shot ShotInput
		}{
			{name: "long tee shot", shot: ShotInput{StartDistance: 4000, Lie: roundtypes.LieTee}},
			{name: "long bunker shot", shot: ShotInput{StartDistance: 250, Lie: roundtypes.LieSand}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				repo := NewFakeRoundRepo()
				svc := newTestService(t, repo, nil)

				_, err := svc.RecordShots(context.Background(), userID, uuid.New(), []ShotInput{tt.shot})
				assert.ErrorIs(t, err, ErrInvalidShot)
				assert.Contains(t, err.Error(), "outside benchmark range")
				assert.Empty(t, repo.Trace())
			})
		}
	})
}

func TestDeleteHole(t *testing.T) {
	userID := uuid.New()

	t.Run("middle hole renumbers successors", func(t *testing.T) {
		store := newMemoryStore()
		round := store.addRound(userID, intPtr(3))
		first := store.addHole(round, 1, 4)
		middle := store.addHole(round, 2, 3)
		last := store.addHole(round, 3, 5)
		store.shots[middle.ID] = []*rounddb.Shot{{ID: uuid.New(), HoleID: middle.ID, Number: 1}}

		repo := NewFakeRoundRepo()
		store.install(repo)
		svc := newTestService(t, repo, nil)

		got, err := svc.DeleteHole(context.Background(), userID, middle.ID)
		require.NoError(t, err)

		assert.Equal(t, []string{"GetHole", "DeleteHole", "ShiftHoleNumbersDown", "DecrementHolesPlayed"}, repo.Trace())
		assert.Equal(t, &HoleDeletion{RoundID: round.ID, Number: 2, Renumbered: 1}, got)
		assert.Equal(t, 1, store.holes[first.ID].Number)
		assert.Equal(t, 2, store.holes[last.ID].Number)
		assert.NotContains(t, store.holes, middle.ID)
		assert.NotContains(t, store.shots, middle.ID)
		assert.Equal(t, 2, *store.rounds[round.ID].HolesPlayed)
	})

	t.Run("last hole renumbers nothing", func(t *testing.T) {
		store := newMemoryStore()
		round := store.addRound(userID, intPtr(2))
		store.addHole(round, 1, 4)
		last := store.addHole(round, 2, 4)
		repo := NewFakeRoundRepo()
		store.install(repo)
		svc := newTestService(t, repo, nil)

		got, err := svc.DeleteHole(context.Background(), userID, last.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, got.Renumbered)
		assert.Equal(t, 1, *store.rounds[round.ID].HolesPlayed)
	})

	t.Run("other user's hole", func(t *testing.T) {
		store := newMemoryStore()
		round := store.addRound(userID, intPtr(1))
		hole := store.addHole(round, 1, 4)
		repo := NewFakeRoundRepo()
		store.install(repo)
		svc := newTestService(t, repo, nil)

		_, err := svc.DeleteHole(context.Background(), uuid.New(), hole.ID)
		assert.ErrorIs(t, err, ErrHoleNotFound)
		assert.Equal(t, []string{"GetHole"}, repo.Trace())
	})

	t.Run("renumber failure surfaces", func(t *testing.T) {
		repo := NewFakeRoundRepo()
		repo.GetHoleFunc = func(ctx context.Context, db bun.IDB, u, h uuid.UUID) (*rounddb.Hole, error) {
			return &rounddb.Hole{ID: h, RoundID: uuid.New(), Number: 4}, nil
		}
		repo.ShiftHoleNumbersDownFunc = func(ctx context.Context, db bun.IDB, roundID uuid.UUID, after int) (int, error) {
			return 0, errors.New("deadlock detected")
		}
		svc := newTestService(t, repo, nil)

		_, err := svc.DeleteHole(context.Background(), userID, uuid.New())
		require.Error(t, err)
		assert.Equal(t, []string{"GetHole", "DeleteHole", "ShiftHoleNumbersDown"}, repo.Trace())
	})
}
