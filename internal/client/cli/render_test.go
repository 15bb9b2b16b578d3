package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/dmitrijs2005/authmaster/internal/client/auth"
	"github.com/dmitrijs2005/authmaster/internal/client/controller"
	"github.com/dmitrijs2005/authmaster/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(s controller.Screen) string {
	var b bytes.Buffer
	renderScreen(&b, s)
	return b.String()
}

func TestRenderScreen_Kinds(t *testing.T) {
	tests := []struct {
		name   string
		screen controller.Screen
		want   []string
	}{
		{"loading", controller.Screen{Kind: controller.ScreenLoading}, []string{"Checking saved session"}},
		{"protected", controller.Screen{Kind: controller.ScreenProtected}, []string{"Protected route", "'login'"}},
		{"none", controller.Screen{Kind: controller.ScreenNone}, []string{"already signed in"}},
		{
			"login form",
			controller.Screen{Kind: controller.ScreenLoginForm, FormError: controller.MsgInvalidCredentials},
			[]string{"Sign in", "! Invalid email or password.", "Register Now"},
		},
		{
			"signup form",
			controller.Screen{Kind: controller.ScreenSignupForm, FormError: controller.MsgPasswordMismatch},
			[]string{"Create account", "! Passwords do not match.", "Sign In"},
		},
		{
			"login notice",
			controller.Screen{Kind: controller.ScreenLoginForm, Notice: controller.MsgRegistered},
			[]string{"Registration successful! You can now log in."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := render(tt.screen)
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
		})
	}
}

func TestRenderScreen_Guide(t *testing.T) {
	s := controller.Screen{Kind: controller.ScreenGuide, Topics: controller.Topics}
	out := render(s)
	assert.Contains(t, out, "[1] JWT (JSON Web Tokens)")
	assert.Contains(t, out, "[5] CORS & Auth")
	assert.NotContains(t, out, "type 'close'")

	s.Explanation = &controller.Explanation{Topic: "Password Hashing", Text: "Salt, then hash.\n"}
	out = render(s)
	assert.Contains(t, out, "-- Password Hashing --")
	assert.Contains(t, out, "Salt, then hash.")
}

func TestRenderScreen_Dashboard(t *testing.T) {
	acc := models.Account{
		ID:        "a-1",
		Name:      "Alice",
		Email:     "alice@x.com",
		Role:      models.RoleUser,
		CreatedAt: time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC),
	}
	token, err := auth.NewJWTIssuer([]byte("k")).Issue(acc)
	require.NoError(t, err)

	out := render(controller.Screen{
		Kind: controller.ScreenDashboard,
		Auth: controller.AuthState{Account: &acc, Token: token, IsAuthenticated: true},
	})

	assert.Contains(t, out, "Welcome back, Alice!")
	assert.Contains(t, out, "March 2026")
	assert.Contains(t, out, "subject:      a-1")
	assert.NotContains(t, out, token)
}

func TestAbbreviate(t *testing.T) {
	assert.Equal(t, "short", abbreviate("short"))
	assert.Equal(t, "abcdefghijkl...stuvwxyz", abbreviate("abcdefghijklmnopqrstuvwxyz"))
}
