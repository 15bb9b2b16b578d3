package controller

import (
	"github.com/dmitrijs2005/authmaster/internal/client/models"
	"github.com/dmitrijs2005/authmaster/internal/common"
)

// View is the screen the user asked for. What is actually shown also depends
// on the authentication state, see Controller.Screen.
type View int

const (
	ViewGuide View = iota
	ViewLogin
	ViewSignup
	ViewDashboard
)

func (v View) String() string {
	switch v {
	case ViewGuide:
		return "guide"
	case ViewLogin:
		return "login"
	case ViewSignup:
		return "signup"
	case ViewDashboard:
		return "dashboard"
	default:
		return "unknown"
	}
}

// AuthState is the in-memory authentication state of the client.
// IsAuthenticated holds iff both Account and Token are set.
type AuthState struct {
	Account         *models.Account
	Token           string
	IsAuthenticated bool
	IsLoading       bool
}

func authenticated(s *models.Session) AuthState {
	account := s.Account
	return AuthState{
		Account:         &account,
		Token:           s.Token,
		IsAuthenticated: s.Token != "",
	}
}

// clone returns a with its own Account, so callers cannot reach controller state.
func (a AuthState) clone() AuthState {
	if a.Account != nil {
		account := *a.Account
		a.Account = &account
	}
	return a
}

// Form holds the values of the login and signup forms. Passwords are kept as
// byte slices so they can be wiped once submitted.
type Form struct {
	Name            string
	Email           string
	Password        []byte
	ConfirmPassword []byte
	RememberMe      bool
}

func (f *Form) wipe() {
	common.WipeByteArray(f.Password)
	common.WipeByteArray(f.ConfirmPassword)
	f.Password = nil
	f.ConfirmPassword = nil
}

// reset clears every field. RememberMe survives when keepRemember is set.
func (f *Form) reset(keepRemember bool) {
	remember := f.RememberMe && keepRemember
	f.wipe()
	*f = Form{RememberMe: remember}
}

// Explanation is the state of the topic explanation panel on the guide.
type Explanation struct {
	Topic   string
	Text    string
	Loading bool
}

// ScreenKind is what the presentation layer may render right now.
type ScreenKind int

const (
	ScreenNone ScreenKind = iota
	ScreenLoading
	ScreenGuide
	ScreenDashboard
	ScreenProtected
	ScreenLoginForm
	ScreenSignupForm
)

func (k ScreenKind) String() string {
	switch k {
	case ScreenLoading:
		return "loading"
	case ScreenGuide:
		return "guide"
	case ScreenDashboard:
		return "dashboard"
	case ScreenProtected:
		return "protected"
	case ScreenLoginForm:
		return "login-form"
	case ScreenSignupForm:
		return "signup-form"
	default:
		return "none"
	}
}

// Screen is a snapshot of everything needed to render the current screen.
type Screen struct {
	Kind        ScreenKind
	View        View
	Auth        AuthState
	Form        Form
	FormError   string
	Notice      string
	Submitting  bool
	Explanation *Explanation
	Topics      []string
}
