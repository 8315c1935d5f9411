package practiceintegrationtests

import (
	"testing"
	"time"

	practicedb "github.com/Black-And-White-Club/birdie-buddy/app/modules/practice/infrastructure/repositories"
	"github.com/Black-And-White-Club/birdie-buddy/integration_tests/testutils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPracticeRepository_ListNewestFirst(t *testing.T) {
	env := testutils.GetOrCreateTestEnv(t)
	repo := practicedb.NewRepository(env.DB)
	gen := testutils.NewTestDataGenerator(5)

	userID := uuid.New()
	base := time.Now().Add(-24 * time.Hour).UTC().Truncate(time.Second)
	var ids []uuid.UUID
	for i := 0; i < 5; i++ {
		s := gen.GenerateSession(userID, base.Add(time.Duration(i)*time.Hour))
		require.NoError(t, repo.CreateSession(env.Ctx, nil, s))
		ids = append(ids, s.ID)
	}
	require.NoError(t, repo.CreateSession(env.Ctx, nil, gen.GenerateSession(uuid.New(), base)))

	all, err := repo.ListSessions(env.Ctx, nil, userID, 0, 0)
	require.NoError(t, err)
	require.Len(t, all, 5)
	for i, s := range all {
		assert.Equal(t, ids[4-i], s.ID)
	}

	page, err := repo.ListSessions(env.Ctx, nil, userID, 2, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, ids[2], page[0].ID)
	assert.Equal(t, ids[1], page[1].ID)

	past, err := repo.ListSessions(env.Ctx, nil, userID, 10, 10)
	require.NoError(t, err)
	assert.Empty(t, past)
}

func TestPracticeRepository_UpdateAndDeleteScopedToOwner(t *testing.T) {
	env := testutils.GetOrCreateTestEnv(t)
	repo := practicedb.NewRepository(env.DB)
	gen := testutils.NewTestDataGenerator(9)

	userID := uuid.New()
	session := gen.GenerateSession(userID, time.Now().UTC())
	require.NoError(t, repo.CreateSession(env.Ctx, nil, session))

	session.PracticeType = "PT"
	session.Outcome = 4
	session.Notes = "lag putting ladder"
	require.NoError(t, repo.UpdateSession(env.Ctx, nil, session))

	got, err := repo.GetSession(env.Ctx, nil, userID, session.ID)
	require.NoError(t, err)
	assert.Equal(t, "PT", got.PracticeType)
	assert.Equal(t, 4, got.Outcome)
	assert.Equal(t, "lag putting ladder", got.Notes)

	stranger := *session
	stranger.UserID = uuid.New()
	assert.ErrorIs(t, repo.UpdateSession(env.Ctx, nil, &stranger), practicedb.ErrNotFound)
	_, err = repo.GetSession(env.Ctx, nil, stranger.UserID, session.ID)
	assert.ErrorIs(t, err, practicedb.ErrNotFound)
	assert.ErrorIs(t, repo.DeleteSession(env.Ctx, nil, stranger.UserID, session.ID), practicedb.ErrNotFound)

	require.NoError(t, repo.DeleteSession(env.Ctx, nil, userID, session.ID))
	_, err = repo.GetSession(env.Ctx, nil, userID, session.ID)
	assert.ErrorIs(t, err, practicedb.ErrNotFound)
}

func TestPracticeRepository_RejectsInvalidOutcome(t *testing.T) {
	env := testutils.GetOrCreateTestEnv(t)
	repo := practicedb.NewRepository(env.DB)
	gen := testutils.NewTestDataGenerator(13)

	session := gen.GenerateSession(uuid.New(), time.Now().UTC())
	session.Outcome = 9
	assert.Error(t, repo.CreateSession(env.Ctx, nil, session))
}
