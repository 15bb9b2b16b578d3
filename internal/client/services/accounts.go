// Package services contains the client's application services: the account
// store, the session manager and the explanation service.
package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/authmaster/internal/client/models"
	"github.com/dmitrijs2005/authmaster/internal/client/repositories/records"
	"github.com/dmitrijs2005/authmaster/internal/common"
	"github.com/dmitrijs2005/authmaster/internal/cryptox"
	"github.com/google/uuid"
)

// sleep simulates the latency of a remote auth backend.
// Tests replace it to avoid real waits.
var sleep = time.Sleep

// AccountStore owns the account registry and is the sole arbiter of
// credential validity.
//
// Contract:
//   - Register: create an account; common.ErrDuplicateEmail if the email is taken.
//   - Verify: return the public account iff email and password match, (nil, nil) otherwise.
//
// Empty fields are expected to be rejected by the caller.
type AccountStore interface {
	Register(ctx context.Context, name, email string, password []byte) error
	Verify(ctx context.Context, email string, password []byte) (*models.Account, error)
}

// AccountStoreOptions tunes the simulated latency of the store.
type AccountStoreOptions struct {
	RegisterDelay time.Duration
	LoginDelay    time.Duration
}

// accountRecord is the persisted form of an account. It is the only type
// carrying the credential digest and never leaves this package.
type accountRecord struct {
	ID               string      `json:"id"`
	Name             string      `json:"name"`
	Email            string      `json:"email"`
	CredentialDigest string      `json:"credentialDigest"`
	Role             models.Role `json:"role"`
	CreatedAt        time.Time   `json:"createdAt"`
}

func (r accountRecord) public() models.Account {
	return models.Account{
		ID:        r.ID,
		Name:      r.Name,
		Email:     r.Email,
		Role:      r.Role,
		CreatedAt: r.CreatedAt,
	}
}

type accountStore struct {
	records     records.Repository
	hasher      cryptox.Hasher
	opts        AccountStoreOptions
	now         func() time.Time
	newID       func() string
	dummyDigest string
}

// NewAccountStore builds an AccountStore persisting the registry in repo.
func NewAccountStore(repo records.Repository, hasher cryptox.Hasher, opts AccountStoreOptions) (AccountStore, error) {
	// Unknown emails are checked against this digest so that a miss costs as
	// much as a wrong password.
	random, err := common.GenerateRandByteArray(16)
	if err != nil {
		return nil, err
	}
	dummy, err := hasher.Hash(random)
	if err != nil {
		return nil, fmt.Errorf("prepare dummy digest: %w", err)
	}

	return &accountStore{
		records:     repo,
		hasher:      hasher,
		opts:        opts,
		now:         func() time.Time { return time.Now().UTC() },
		newID:       func() string { return uuid.NewString() },
		dummyDigest: dummy,
	}, nil
}

// Register appends a new account to the registry and persists the whole
// registry in one atomic update. The registry is left untouched when the
// email is already taken.
func (s *accountStore) Register(ctx context.Context, name, email string, password []byte) error {
	sleep(s.opts.RegisterDelay)

	err := s.records.Update(ctx, common.UsersRecordKey, func(current []byte) ([]byte, error) {
		registry, err := decodeRegistry(current)
		if err != nil {
			return nil, err
		}
		if _, ok := findByEmail(registry, email); ok {
			return nil, common.ErrDuplicateEmail
		}

		digest, err := s.hasher.Hash(password)
		if err != nil {
			return nil, fmt.Errorf("digest password: %w", err)
		}

		registry = append(registry, accountRecord{
			ID:               s.newID(),
			Name:             name,
			Email:            email,
			CredentialDigest: digest,
			Role:             models.RoleUser,
			CreatedAt:        s.now(),
		})

		data, err := json.Marshal(registry)
		if err != nil {
			return nil, fmt.Errorf("encode account registry: %w", err)
		}
		return data, nil
	})
	if err != nil && !errors.Is(err, common.ErrDuplicateEmail) {
		return fmt.Errorf("save account registry: %w", err)
	}
	return err
}

// Verify returns the public account matching email and password. A missing
// email and a wrong password are indistinguishable: both yield (nil, nil).
func (s *accountStore) Verify(ctx context.Context, email string, password []byte) (*models.Account, error) {
	sleep(s.opts.LoginDelay)

	registry, err := s.loadRegistry(ctx)
	if err != nil {
		return nil, err
	}

	rec, found := findByEmail(registry, email)
	if !found {
		_, _ = s.hasher.Verify(password, s.dummyDigest)
		return nil, nil
	}

	ok, err := s.hasher.Verify(password, rec.CredentialDigest)
	if err != nil {
		return nil, fmt.Errorf("verify credentials of account %s: %w", rec.ID, err)
	}
	if !ok {
		return nil, nil
	}

	account := rec.public()
	return &account, nil
}

func (s *accountStore) loadRegistry(ctx context.Context) ([]accountRecord, error) {
	data, err := s.records.Get(ctx, common.UsersRecordKey)
	if err != nil {
		return nil, fmt.Errorf("load account registry: %w", err)
	}
	return decodeRegistry(data)
}

func decodeRegistry(data []byte) ([]accountRecord, error) {
	if data == nil {
		return nil, nil
	}
	var registry []accountRecord
	if err := json.Unmarshal(data, &registry); err != nil {
		return nil, fmt.Errorf("decode account registry: %w", err)
	}
	return registry, nil
}

// findByEmail matches emails exactly, case included.
func findByEmail(registry []accountRecord, email string) (accountRecord, bool) {
	for _, rec := range registry {
		if rec.Email == email {
			return rec, true
		}
	}
	return accountRecord{}, false
}
