package recruitment

import (
	"errors"
	"fmt"
)

// ErrProfileNotFound signals that the authenticated candidate has no stored
// profile yet. Callers treat it as "start with an empty draft", not a failure.
var ErrProfileNotFound = errors.New("profile not found")

// AuthError covers rejected credentials and expired/invalid tokens.
type AuthError struct {
	Detail string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("authentication failed: %s", e.Detail)
}

// ValidationError is raised before any request is dispatched when required
// input is missing or malformed. No network call is made.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ParseError means the backend could not parse an uploaded resume document.
type ParseError struct {
	Detail string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("resume parsing failed: %s", e.Detail)
}

// PersistError means a profile create or update was rejected by the backend.
// The in-memory profile is left untouched so the user can correct and retry.
type PersistError struct {
	Detail string
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("saving profile failed: %s", e.Detail)
}

// TransportError wraps network-level failures (connection refused, timeout).
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: request failed: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
