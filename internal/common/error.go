// Package common defines shared constants and sentinel errors used across
// the Finanzas client. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Login errors.
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrEndpointUnavailable = errors.New("endpoint unavailable")

	// Bootstrap errors (stored token rejected or unverifiable).
	ErrSessionInvalid = errors.New("session invalid")

	// Client-side form validation errors.
	ErrValidation = errors.New("validation error")
)
