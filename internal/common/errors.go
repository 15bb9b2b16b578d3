// Package common defines shared constants, sentinel errors and small helpers
// used across AuthMaster components. Callers should use errors.Is to match
// the error values.
package common

import "errors"

var (
	// Account store errors.
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")

	// Form validation errors, raised before the account store is reached.
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrRequiredFields   = errors.New("required field is empty")
)
