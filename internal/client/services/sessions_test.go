package services

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/authmaster/internal/client/auth"
	"github.com/dmitrijs2005/authmaster/internal/client/models"
	"github.com/dmitrijs2005/authmaster/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAccount() models.Account {
	return models.Account{
		ID:        "8c1c7d1a-0000-4000-8000-000000000001",
		Name:      "Alice",
		Email:     "alice@x.com",
		Role:      models.RoleUser,
		CreatedAt: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestSessionManager_IssueThenRestore(t *testing.T) {
	ctx := context.Background()
	repo := newFaultyRepo()
	m := newTestSessions(repo)

	issued, err := m.Issue(ctx, testAccount())
	require.NoError(t, err)
	require.NotEmpty(t, issued.Token)
	assert.Equal(t, 1, repo.Sets)

	restored, err := m.Restore(ctx)
	require.NoError(t, err)
	require.NotNil(t, restored)
	assert.Equal(t, 1, repo.Gets)

	assert.Equal(t, issued.Token, restored.Token)
	assert.Equal(t, "Alice", restored.Account.Name)
	assert.True(t, restored.Account.CreatedAt.Equal(testAccount().CreatedAt))

	raw, err := repo.MemoryRepository.Get(ctx, common.SessionRecordKey)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "credentialDigest")
	assert.Contains(t, string(raw), `"token"`)
	assert.Contains(t, string(raw), `"account"`)
}

func TestSessionManager_TokenCarriesAccount(t *testing.T) {
	issuer := auth.NewJWTIssuer([]byte("test-secret"))
	m := NewSessionManager(newFaultyRepo(), issuer)

	s, err := m.Issue(context.Background(), testAccount())
	require.NoError(t, err)

	claims, err := auth.Inspect(s.Token)
	require.NoError(t, err)
	assert.Equal(t, testAccount().ID, claims.Subject)
	assert.Equal(t, models.RoleUser, claims.Role)
	assert.NotEmpty(t, claims.ID)
}

func TestSessionManager_IssueOverwrites(t *testing.T) {
	ctx := context.Background()
	m := newTestSessions(newFaultyRepo())

	first, err := m.Issue(ctx, testAccount())
	require.NoError(t, err)

	other := testAccount()
	other.Name = "Bob"
	second, err := m.Issue(ctx, other)
	require.NoError(t, err)
	assert.NotEqual(t, first.Token, second.Token)

	restored, err := m.Restore(ctx)
	require.NoError(t, err)
	assert.Equal(t, second.Token, restored.Token)
	assert.Equal(t, "Bob", restored.Account.Name)
}

func TestSessionManager_RestoreAbsent(t *testing.T) {
	s, err := newTestSessions(newFaultyRepo()).Restore(context.Background())
	require.NoError(t, err)
	assert.Nil(t, s)
}

func TestSessionManager_RevokeIsIdempotent(t *testing.T) {
	ctx := context.Background()

	t.Run("with session", func(t *testing.T) {
		repo := newFaultyRepo()
		m := newTestSessions(repo)
		_, err := m.Issue(ctx, testAccount())
		require.NoError(t, err)

		require.NoError(t, m.Revoke(ctx))
		assert.Equal(t, 1, repo.Deletes)

		s, err := m.Restore(ctx)
		require.NoError(t, err)
		assert.Nil(t, s)
	})

	t.Run("without session", func(t *testing.T) {
		m := newTestSessions(newFaultyRepo())

		require.NoError(t, m.Revoke(ctx))
		require.NoError(t, m.Revoke(ctx))

		s, err := m.Restore(ctx)
		require.NoError(t, err)
		assert.Nil(t, s)
	})
}

func TestSessionManager_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("issuer", func(t *testing.T) {
		repo := newFaultyRepo()
		m := NewSessionManager(repo, fakeTokens{Err: errStorage})
		s, err := m.Issue(ctx, testAccount())
		require.ErrorIs(t, err, errStorage)
		assert.Nil(t, s)
		assert.Equal(t, 0, repo.Sets)
	})

	t.Run("save", func(t *testing.T) {
		repo := newFaultyRepo()
		repo.SetErr = errStorage
		s, err := newTestSessions(repo).Issue(ctx, testAccount())
		require.ErrorIs(t, err, errStorage)
		assert.Nil(t, s)
	})

	t.Run("load", func(t *testing.T) {
		repo := newFaultyRepo()
		repo.GetErr = errStorage
		s, err := newTestSessions(repo).Restore(ctx)
		require.ErrorIs(t, err, errStorage)
		assert.Nil(t, s)
	})

	t.Run("corrupt record", func(t *testing.T) {
		repo := newFaultyRepo()
		require.NoError(t, repo.Set(ctx, common.SessionRecordKey, []byte("[]x")))
		s, err := newTestSessions(repo).Restore(ctx)
		require.Error(t, err)
		assert.Nil(t, s)
	})

	t.Run("delete", func(t *testing.T) {
		repo := newFaultyRepo()
		repo.DeleteErr = errStorage
		require.ErrorIs(t, newTestSessions(repo).Revoke(ctx), errStorage)
	})
}

func TestSessionManager_FixedToken(t *testing.T) {
	m := NewSessionManager(newFaultyRepo(), fakeTokens{Token: "tok-1"})
	s, err := m.Issue(context.Background(), testAccount())
	require.NoError(t, err)
	assert.Equal(t, "tok-1", s.Token)
}
