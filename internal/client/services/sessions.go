package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/authmaster/internal/client/auth"
	"github.com/dmitrijs2005/authmaster/internal/client/models"
	"github.com/dmitrijs2005/authmaster/internal/client/repositories/records"
	"github.com/dmitrijs2005/authmaster/internal/common"
)

// SessionManager issues, persists, restores and revokes the single session
// of this device. Each call touches storage exactly once.
type SessionManager interface {
	// Issue mints a token for account and stores {token, account} as the
	// only session record, replacing any previous one.
	Issue(ctx context.Context, account models.Account) (*models.Session, error)

	// Restore returns the stored session verbatim, or (nil, nil) if there is
	// none. The account is not re-checked against the account store.
	Restore(ctx context.Context) (*models.Session, error)

	// Revoke deletes the session record. Revoking without a session is a no-op.
	Revoke(ctx context.Context) error
}

type sessionManager struct {
	records records.Repository
	tokens  auth.TokenIssuer
}

func NewSessionManager(repo records.Repository, tokens auth.TokenIssuer) SessionManager {
	return &sessionManager{records: repo, tokens: tokens}
}

func (m *sessionManager) Issue(ctx context.Context, account models.Account) (*models.Session, error) {
	token, err := m.tokens.Issue(account)
	if err != nil {
		return nil, fmt.Errorf("issue session token: %w", err)
	}

	session := &models.Session{Token: token, Account: account}
	data, err := json.Marshal(session)
	if err != nil {
		return nil, fmt.Errorf("encode session: %w", err)
	}
	if err := m.records.Set(ctx, common.SessionRecordKey, data); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return session, nil
}

func (m *sessionManager) Restore(ctx context.Context) (*models.Session, error) {
	data, err := m.records.Get(ctx, common.SessionRecordKey)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if data == nil {
		return nil, nil
	}

	session := &models.Session{}
	if err := json.Unmarshal(data, session); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return session, nil
}

func (m *sessionManager) Revoke(ctx context.Context) error {
	if err := m.records.Delete(ctx, common.SessionRecordKey); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
