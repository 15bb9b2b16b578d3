package controller

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/authmaster/internal/client/models"
)

var errBoom = errors.New("boom")

// ---- fake account store ----

type fakeAccounts struct {
	VerifyRet   *models.Account
	VerifyErr   error
	RegisterErr error

	// OnVerify and OnRegister run inside the call, before it returns.
	OnVerify   func()
	OnRegister func()

	VerifyCalls   int
	RegisterCalls int

	LastEmail    string
	LastName     string
	LastPassword string
}

func (f *fakeAccounts) Register(_ context.Context, name, email string, password []byte) error {
	f.RegisterCalls++
	f.LastName, f.LastEmail, f.LastPassword = name, email, string(password)
	if f.OnRegister != nil {
		f.OnRegister()
	}
	return f.RegisterErr
}

func (f *fakeAccounts) Verify(_ context.Context, email string, password []byte) (*models.Account, error) {
	f.VerifyCalls++
	f.LastEmail, f.LastPassword = email, string(password)
	if f.OnVerify != nil {
		f.OnVerify()
	}
	return f.VerifyRet, f.VerifyErr
}

// ---- fake session manager ----

type fakeSessions struct {
	Stored *models.Session

	RestoreErr error
	IssueErr   error
	RevokeErr  error

	IssueCalls, RestoreCalls, RevokeCalls int
}

func (f *fakeSessions) Issue(_ context.Context, account models.Account) (*models.Session, error) {
	f.IssueCalls++
	if f.IssueErr != nil {
		return nil, f.IssueErr
	}
	f.Stored = &models.Session{Token: "tok-" + account.ID, Account: account}
	return f.Stored, nil
}

func (f *fakeSessions) Restore(context.Context) (*models.Session, error) {
	f.RestoreCalls++
	return f.Stored, f.RestoreErr
}

func (f *fakeSessions) Revoke(context.Context) error {
	f.RevokeCalls++
	if f.RevokeErr != nil {
		return f.RevokeErr
	}
	f.Stored = nil
	return nil
}

// ---- fake explainer ----

type fakeExplainer struct {
	Text   string
	Topics []string
}

func (f *fakeExplainer) Explain(_ context.Context, topic string) string {
	f.Topics = append(f.Topics, topic)
	return f.Text
}

func alice() models.Account {
	return models.Account{
		ID:        "a-1",
		Name:      "Alice",
		Email:     "alice@x.com",
		Role:      models.RoleUser,
		CreatedAt: time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
	}
}
