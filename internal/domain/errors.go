package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain-level error discrimination.
// Services wrap these so handlers can map to HTTP status codes without leaking infrastructure details.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrBadRequest   = errors.New("bad request")

	// ErrAccountCreation is the only provisioning failure the client ever sees.
	ErrAccountCreation = errors.New("failed to create account")
)

// LookupError means the document store could not answer whether a user exists.
type LookupError struct {
	Email string
	Err   error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("lookup user %q: %v", e.Email, e.Err)
}

func (e *LookupError) Unwrap() error { return e.Err }

// OtpIssuanceError means no verification code was issued. No record is written after it.
type OtpIssuanceError struct {
	Email string
	Err   error
}

func (e *OtpIssuanceError) Error() string {
	return fmt.Sprintf("issue email otp for %q: %v", e.Email, e.Err)
}

func (e *OtpIssuanceError) Unwrap() error { return e.Err }

// RecordCreationError means the code was sent but the user document was not written.
type RecordCreationError struct {
	Email     string
	AccountID string
	Err       error
}

func (e *RecordCreationError) Error() string {
	return fmt.Sprintf("create user record for %q (account %s): %v", e.Email, e.AccountID, e.Err)
}

func (e *RecordCreationError) Unwrap() error { return e.Err }

// NoSessionError is returned when a session-scoped handle is requested without a usable token.
type NoSessionError struct {
	Reason string
}

func (e *NoSessionError) Error() string {
	if e.Reason == "" {
		return "no session found"
	}
	return "no session found: " + e.Reason
}

// Is lets callers match NoSessionError against ErrUnauthorized.
func (e *NoSessionError) Is(target error) bool { return target == ErrUnauthorized }
