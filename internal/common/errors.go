// Package common defines shared constants and sentinel errors used across
// client and server layers of AuthGate. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal           = errors.New("internal error")
	ErrorInvalidCredentials = errors.New("incorrect email or password")

	// Validation errors (malformed email, weak password, missing fields).
	ErrorValidation = errors.New("validation error")

	// Auth errors (invalid, malformed, or expired token).
	ErrInvalidToken = errors.New("invalid token")
)
