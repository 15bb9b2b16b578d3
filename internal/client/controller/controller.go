// Package controller holds the client's authentication state machine.
//
// A Controller owns the AuthState, the requested view, the form values and the
// explanation panel. It is created once at startup, initialised with Init
// (which restores a saved session) and driven sequentially by the REPL. The
// presentation layer asks Screen what it may render; access rules live here
// and nowhere else.
package controller

import (
	"bytes"
	"context"
	"errors"
	"slices"

	"github.com/dmitrijs2005/authmaster/internal/client/services"
	"github.com/dmitrijs2005/authmaster/internal/common"
	"github.com/dmitrijs2005/authmaster/internal/logging"
)

type Controller struct {
	accounts  services.AccountStore
	sessions  services.SessionManager
	explainer services.Explainer
	logger    logging.Logger

	auth        AuthState
	view        View
	form        Form
	formError   string
	notice      string
	submitting  bool
	explanation *Explanation
}

func New(accounts services.AccountStore, sessions services.SessionManager,
	explainer services.Explainer, logger logging.Logger) *Controller {
	return &Controller{
		accounts:  accounts,
		sessions:  sessions,
		explainer: explainer,
		logger:    logger.With("component", "controller"),
		view:      ViewGuide,
	}
}

// Init restores a saved session, if any. With a session the user lands on
// the dashboard; otherwise the current view is kept. A failed restore counts
// as "no session".
func (c *Controller) Init(ctx context.Context) {
	c.auth = AuthState{IsLoading: true}
	c.auth = c.restore(ctx)
}

func (c *Controller) restore(ctx context.Context) AuthState {
	s, err := c.sessions.Restore(ctx)
	if err != nil {
		c.logger.Warn(ctx, "session restore failed", "error", err)
		return AuthState{}
	}
	if s == nil {
		return AuthState{}
	}

	state := authenticated(s)
	if !state.IsAuthenticated {
		c.logger.Warn(ctx, "saved session has no token, ignoring it")
		return AuthState{}
	}

	c.view = ViewDashboard
	c.logger.Info(ctx, "session restored", "account_id", s.Account.ID)
	return state
}

// Teardown releases what the controller holds. Only the form needs wiping.
func (c *Controller) Teardown() {
	c.form.wipe()
}

func (c *Controller) State() AuthState { return c.auth.clone() }

func (c *Controller) View() View { return c.view }

// UpdateForm replaces the form values. The controller takes ownership of the
// password slices and wipes them once they are no longer needed.
func (c *Controller) UpdateForm(f Form) {
	c.form.wipe()
	c.form = f
}

// Navigate sets the requested view. It never redirects: Screen decides what
// is shown for it.
func (c *Controller) Navigate(v View) {
	c.view = v
	c.notice = ""
}

// ToggleAuthForm switches between the login and signup forms, clearing the
// form and its error.
func (c *Controller) ToggleAuthForm() {
	if c.view == ViewSignup {
		c.view = ViewLogin
	} else {
		c.view = ViewSignup
	}
	c.form.reset(false)
	c.formError = ""
	c.notice = ""
}

// SubmitLogin verifies the login form and, on success, issues a session and
// moves to the dashboard. Calls made while a submission is running are ignored.
func (c *Controller) SubmitLogin(ctx context.Context) {
	if c.submitting {
		return
	}
	c.formError = ""
	c.notice = ""

	if c.form.Email == "" || len(c.form.Password) == 0 {
		c.formError = formMessage(common.ErrRequiredFields)
		return
	}

	c.submitting = true
	defer func() { c.submitting = false }()

	account, err := c.accounts.Verify(ctx, c.form.Email, c.form.Password)
	if err != nil {
		c.logger.Error(ctx, "credential check failed", "error", err)
		c.formError = formMessage(err)
		return
	}
	if account == nil {
		c.logger.Info(ctx, "login rejected")
		c.formError = formMessage(common.ErrInvalidCredentials)
		return
	}

	s, err := c.sessions.Issue(ctx, *account)
	if err != nil {
		c.logger.Error(ctx, "session issue failed", "account_id", account.ID, "error", err)
		c.formError = formMessage(err)
		return
	}

	c.auth = authenticated(s)
	c.view = ViewDashboard
	c.form.reset(true)
	c.logger.Info(ctx, "logged in", "account_id", account.ID)
}

// SubmitSignup validates the signup form and registers the account. On
// success the user is sent to the login form with a notice.
func (c *Controller) SubmitSignup(ctx context.Context) {
	if c.submitting {
		return
	}
	c.formError = ""
	c.notice = ""

	if err := validateSignup(&c.form); err != nil {
		c.formError = formMessage(err)
		return
	}

	c.submitting = true
	defer func() { c.submitting = false }()

	err := c.accounts.Register(ctx, c.form.Name, c.form.Email, c.form.Password)
	if err != nil {
		if errors.Is(err, common.ErrDuplicateEmail) {
			c.logger.Info(ctx, "registration rejected", "error", err)
		} else {
			c.logger.Error(ctx, "registration failed", "error", err)
		}
		c.formError = formMessage(err)
		return
	}

	c.logger.Info(ctx, "account registered")
	c.form.wipe()
	c.view = ViewLogin
	c.notice = MsgRegistered
}

func validateSignup(f *Form) error {
	if f.Name == "" || f.Email == "" || len(f.Password) == 0 || len(f.ConfirmPassword) == 0 {
		return common.ErrRequiredFields
	}
	if !bytes.Equal(f.Password, f.ConfirmPassword) {
		return common.ErrPasswordMismatch
	}
	return nil
}

// Logout revokes the saved session and returns to the guide. The in-memory
// state is cleared even if the session record cannot be removed.
func (c *Controller) Logout(ctx context.Context) {
	if !c.auth.IsAuthenticated {
		return
	}

	c.notice = ""
	if err := c.sessions.Revoke(ctx); err != nil {
		c.logger.Error(ctx, "session revoke failed", "error", err)
		c.notice = MsgLogoutIncomplete
	}

	accountID := c.auth.Account.ID
	c.auth = AuthState{}
	c.view = ViewGuide
	c.form.reset(true)
	c.formError = ""
	c.logger.Info(ctx, "logged out", "account_id", accountID)
}

// Explain fills the explanation panel with text about topic.
func (c *Controller) Explain(ctx context.Context, topic string) {
	c.explanation = &Explanation{Topic: topic, Loading: true}
	text := c.explainer.Explain(ctx, topic)
	c.explanation = &Explanation{Topic: topic, Text: text}
}

func (c *Controller) CloseExplanation() {
	c.explanation = nil
}

// Screen reports what may be rendered for the current state.
func (c *Controller) Screen() Screen {
	s := Screen{
		Kind:       c.screenKind(),
		View:       c.view,
		Auth:       c.auth.clone(),
		FormError:  c.formError,
		Notice:     c.notice,
		Submitting: c.submitting,
		Topics:     slices.Clone(Topics),
		Form: Form{
			Name:       c.form.Name,
			Email:      c.form.Email,
			RememberMe: c.form.RememberMe,
		},
	}
	if c.explanation != nil {
		e := *c.explanation
		s.Explanation = &e
	}
	return s
}

func (c *Controller) screenKind() ScreenKind {
	if c.auth.IsLoading {
		return ScreenLoading
	}

	switch c.view {
	case ViewGuide:
		return ScreenGuide
	case ViewDashboard:
		if c.auth.IsAuthenticated {
			return ScreenDashboard
		}
		return ScreenProtected
	case ViewLogin:
		if c.auth.IsAuthenticated {
			return ScreenNone
		}
		return ScreenLoginForm
	case ViewSignup:
		if c.auth.IsAuthenticated {
			return ScreenNone
		}
		return ScreenSignupForm
	default:
		return ScreenNone
	}
}
