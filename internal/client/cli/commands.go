package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/authmaster/internal/client/controller"
	"github.com/dmitrijs2005/authmaster/internal/common"
)

func (a *App) Guide(ctx context.Context) error {
	a.ctrl.Navigate(controller.ViewGuide)
	a.render()
	return nil
}

func (a *App) Dashboard(ctx context.Context) error {
	a.ctrl.Navigate(controller.ViewDashboard)
	a.render()
	return nil
}

func (a *App) Switch(ctx context.Context) error {
	a.ctrl.ToggleAuthForm()
	a.render()
	return nil
}

// Login opens the sign in form and, if it may be shown, asks for the
// credentials and submits them.
func (a *App) Login(ctx context.Context) error {
	a.ctrl.Navigate(controller.ViewLogin)
	a.render()
	if a.ctrl.Screen().Kind != controller.ScreenLoginForm {
		return nil
	}

	email, err := GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.reader, "Password", a.out)
	if err != nil {
		return err
	}
	remember, err := GetYesNo(a.reader, "Remember me?", a.out)
	if err != nil {
		common.WipeByteArray(password)
		return err
	}

	a.ctrl.UpdateForm(controller.Form{Email: email, Password: password, RememberMe: remember})
	fmt.Fprintln(a.out, "Signing in...")
	a.ctrl.SubmitLogin(ctx)
	a.render()
	return nil
}

// Signup opens the registration form and, if it may be shown, asks for the
// account details and submits them.
func (a *App) Signup(ctx context.Context) error {
	a.ctrl.Navigate(controller.ViewSignup)
	a.render()
	if a.ctrl.Screen().Kind != controller.ScreenSignupForm {
		return nil
	}

	name, err := GetSimpleText(a.reader, "Full name", a.out)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.reader, "Password", a.out)
	if err != nil {
		return err
	}
	confirm, err := GetPassword(a.reader, "Confirm password", a.out)
	if err != nil {
		common.WipeByteArray(password)
		return err
	}

	a.ctrl.UpdateForm(controller.Form{Name: name, Email: email, Password: password, ConfirmPassword: confirm})
	fmt.Fprintln(a.out, "Creating account...")
	a.ctrl.SubmitSignup(ctx)
	a.render()
	return nil
}

// Explain asks for an explanation of the guide topic numbered arg.
func (a *App) Explain(ctx context.Context, arg string) error {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(controller.Topics) {
		return fmt.Errorf("usage: explain <1-%d>", len(controller.Topics))
	}

	a.ctrl.Navigate(controller.ViewGuide)
	fmt.Fprintln(a.out, "Thinking...")
	a.ctrl.Explain(ctx, controller.Topics[n-1])
	a.render()
	return nil
}

func (a *App) CloseExplanation(ctx context.Context) error {
	a.ctrl.CloseExplanation()
	a.render()
	return nil
}

func (a *App) Status(ctx context.Context) error {
	st := a.ctrl.State()
	if !st.IsAuthenticated || st.Account == nil {
		fmt.Fprintf(a.out, "Not signed in (view: %s)\n", a.ctrl.View())
		return nil
	}
	fmt.Fprintf(a.out, "Signed in as %s <%s> (role: %s, view: %s)\n",
		st.Account.Name, st.Account.Email, st.Account.Role, a.ctrl.View())
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "You are not signed in.")
		return nil
	}
	a.ctrl.Logout(ctx)
	fmt.Fprintln(a.out, "Signed out.")
	a.render()
	return nil
}
