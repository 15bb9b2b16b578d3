package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/authmaster/internal/client/auth"
	"github.com/dmitrijs2005/authmaster/internal/client/models"
	"github.com/dmitrijs2005/authmaster/internal/client/repositories/records"
	"github.com/dmitrijs2005/authmaster/internal/cryptox"
	"github.com/stretchr/testify/require"
)

// ---- helpers ----

var errStorage = errors.New("storage unavailable")

func cheapHasher() cryptox.Hasher {
	return cryptox.NewArgon2idHasher(cryptox.Argon2Params{
		Time:    1,
		Memory:  1024,
		Threads: 1,
		SaltLen: 16,
		KeyLen:  32,
	})
}

// noSleep disables simulated latency for the duration of the test and
// records every requested wait.
func noSleep(t *testing.T) *[]time.Duration {
	t.Helper()
	var waits []time.Duration
	orig := sleep
	sleep = func(d time.Duration) { waits = append(waits, d) }
	t.Cleanup(func() { sleep = orig })
	return &waits
}

func newTestStore(t *testing.T, repo records.Repository) *accountStore {
	t.Helper()
	s, err := NewAccountStore(repo, cheapHasher(), AccountStoreOptions{})
	require.NoError(t, err)
	return s.(*accountStore)
}

func newTestSessions(repo records.Repository) SessionManager {
	return NewSessionManager(repo, auth.NewJWTIssuer([]byte("test-secret")))
}

// ---- fake repository ----

// faultyRepo wraps a MemoryRepository and fails selected operations.
type faultyRepo struct {
	*records.MemoryRepository

	GetErr    error
	SetErr    error
	DeleteErr error

	Gets, Sets, Deletes int
}

func newFaultyRepo() *faultyRepo {
	return &faultyRepo{MemoryRepository: records.NewMemoryRepository()}
}

func (r *faultyRepo) Get(ctx context.Context, key string) ([]byte, error) {
	r.Gets++
	if r.GetErr != nil {
		return nil, r.GetErr
	}
	return r.MemoryRepository.Get(ctx, key)
}

func (r *faultyRepo) Set(ctx context.Context, key string, value []byte) error {
	r.Sets++
	if r.SetErr != nil {
		return r.SetErr
	}
	return r.MemoryRepository.Set(ctx, key, value)
}

func (r *faultyRepo) Delete(ctx context.Context, key string) error {
	r.Deletes++
	if r.DeleteErr != nil {
		return r.DeleteErr
	}
	return r.MemoryRepository.Delete(ctx, key)
}

func (r *faultyRepo) Update(ctx context.Context, key string, fn records.UpdateFunc) error {
	current, err := r.Get(ctx, key)
	if err != nil {
		return err
	}
	next, err := fn(current)
	if err != nil {
		return err
	}
	return r.Set(ctx, key, next)
}

// ---- fake token issuer ----

type fakeTokens struct {
	Token string
	Err   error
}

func (f fakeTokens) Issue(models.Account) (string, error) { return f.Token, f.Err }
