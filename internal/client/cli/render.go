package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dmitrijs2005/authmaster/internal/client/auth"
	"github.com/dmitrijs2005/authmaster/internal/client/controller"
)

var guideSteps = []struct{ title, text string }{
	{"Secure registration", "Passwords are never stored in plain text: they are salted and hashed (argon2id or bcrypt) before the account is saved."},
	{"Login & token issuance", "After the credentials check out, a signed JWT carrying the account id and role is issued and stored as the session."},
	{"Protected routes", "Protected screens are only rendered for an authenticated session; everyone else is sent to the sign in form."},
}

// renderScreen prints s to w.
func renderScreen(w io.Writer, s controller.Screen) {
	switch s.Kind {
	case controller.ScreenLoading:
		fmt.Fprintln(w, "Checking saved session...")
	case controller.ScreenGuide:
		renderGuide(w, s)
	case controller.ScreenDashboard:
		renderDashboard(w, s)
	case controller.ScreenProtected:
		fmt.Fprintln(w, "== Protected route ==")
		fmt.Fprintln(w, "Please sign in to view the dashboard. Type 'login' to continue.")
	case controller.ScreenLoginForm:
		fmt.Fprintln(w, "== Sign in ==")
		renderMessages(w, s)
		fmt.Fprintln(w, "Don't have an account? Type 'switch' to Register Now.")
	case controller.ScreenSignupForm:
		fmt.Fprintln(w, "== Create account ==")
		renderMessages(w, s)
		fmt.Fprintln(w, "Already registered? Type 'switch' to Sign In.")
	default:
		fmt.Fprintln(w, "You are already signed in. Type 'dashboard' to continue.")
	}
}

func renderMessages(w io.Writer, s controller.Screen) {
	if s.Notice != "" {
		fmt.Fprintln(w, s.Notice)
	}
	if s.FormError != "" {
		fmt.Fprintln(w, "! "+s.FormError)
	}
}

func renderGuide(w io.Writer, s controller.Screen) {
	fmt.Fprintln(w, "== Mastering authentication ==")
	if s.Notice != "" {
		fmt.Fprintln(w, s.Notice)
	}
	for i, step := range guideSteps {
		fmt.Fprintf(w, "%d. %s\n   %s\n", i+1, step.title, step.text)
	}

	fmt.Fprintln(w, "\nKnowledge hub: type 'explain <n>' for one of")
	for i, topic := range s.Topics {
		fmt.Fprintf(w, "  [%d] %s\n", i+1, topic)
	}

	ex := s.Explanation
	if ex == nil {
		return
	}
	if ex.Loading {
		fmt.Fprintln(w, "Thinking...")
		return
	}
	fmt.Fprintf(w, "\n-- %s -- (type 'close' to dismiss)\n%s\n", ex.Topic, strings.TrimSpace(ex.Text))
}

func renderDashboard(w io.Writer, s controller.Screen) {
	acc := s.Auth.Account
	if acc == nil {
		return
	}
	fmt.Fprintf(w, "== Welcome back, %s! ==\n", acc.Name)
	fmt.Fprintln(w, "Account status: Active & Verified")
	fmt.Fprintf(w, "Email:          %s\n", acc.Email)
	fmt.Fprintf(w, "Role:           %s\n", acc.Role)
	fmt.Fprintf(w, "Member since:   %s\n", acc.MemberSince())
	fmt.Fprintln(w, "Auth type:      JWT (stateless)")

	fmt.Fprintf(w, "Token:          %s\n", abbreviate(s.Auth.Token))
	claims, err := auth.Inspect(s.Auth.Token)
	if err != nil {
		return
	}
	fmt.Fprintf(w, "  id:           %s\n", claims.ID)
	fmt.Fprintf(w, "  subject:      %s\n", claims.Subject)
	if claims.IssuedAt != nil {
		fmt.Fprintf(w, "  issued at:    %s\n", claims.IssuedAt.Time.Format(time.RFC3339))
	}
	fmt.Fprintln(w, "The session never expires on its own; type 'logout' to end it.")
}

func abbreviate(token string) string {
	if len(token) <= 24 {
		return token
	}
	return token[:12] + "..." + token[len(token)-8:]
}
