package controller

import (
	"errors"

	"github.com/dmitrijs2005/authmaster/internal/common"
)

// User facing texts.
const (
	MsgRequiredFields     = "Please fill in all fields."
	MsgPasswordMismatch   = "Passwords do not match."
	MsgDuplicateEmail     = "Email already registered."
	MsgInvalidCredentials = "Invalid email or password."
	MsgRegistered         = "Registration successful! You can now log in."
	MsgUnexpected         = "Something went wrong. Please try again."
	MsgLogoutIncomplete   = "Signed out, but the saved session could not be removed."
)

// Topics are the built-in subjects of the explanation panel.
var Topics = []string{
	"JWT (JSON Web Tokens)",
	"Password Hashing",
	"Middleware Protection",
	"Stateless Sessions",
	"CORS & Auth",
}

func formMessage(err error) string {
	switch {
	case errors.Is(err, common.ErrRequiredFields):
		return MsgRequiredFields
	case errors.Is(err, common.ErrPasswordMismatch):
		return MsgPasswordMismatch
	case errors.Is(err, common.ErrDuplicateEmail):
		return MsgDuplicateEmail
	case errors.Is(err, common.ErrInvalidCredentials):
		return MsgInvalidCredentials
	default:
		return MsgUnexpected
	}
}
