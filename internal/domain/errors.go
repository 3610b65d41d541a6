package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrTokenNotFound is returned when a token is not found
	ErrTokenNotFound = errors.New("token not found")

	// ErrIntentNotFound is returned when a transfer intent is not found
	ErrIntentNotFound = errors.New("transfer intent not found")

	// ErrProofNotFound is returned when a receipt proof is not found
	ErrProofNotFound = errors.New("receipt proof not found")

	// ErrUserNotFound is returned when a user is not found
	ErrUserNotFound = errors.New("user not found")

	// ErrRegistrationNotFound is returned when a registration request is not found
	ErrRegistrationNotFound = errors.New("registration request not found")
)

// ValidationError reports missing or malformed input. Always user-visible,
// never retried automatically.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", e.Reason)
}

// NewValidationError creates a validation error
func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// AuthorizationError reports that the acting user is not the operation's
// counterparty. User-visible, not retried.
type AuthorizationError struct {
	Reason string
}

func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("not authorized: %s", e.Reason)
}

// NewAuthorizationError creates an authorization error
func NewAuthorizationError(format string, args ...any) *AuthorizationError {
	return &AuthorizationError{Reason: fmt.Sprintf(format, args...)}
}

// ResolutionError reports that no token-resolution strategy matched. It
// lists the strategies attempted so the actor can investigate and resubmit
// with better hints.
type ResolutionError struct {
	Attempted []string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("no matching tokens; strategies attempted: %s", strings.Join(e.Attempted, ", "))
}

// LedgerCallError reports a failed on-chain call. The owning entity absorbs
// the failure into its status plus a retry counter; retries happen only via
// explicit operator action.
type LedgerCallError struct {
	Op  string
	Err error
}

func (e *LedgerCallError) Error() string {
	return fmt.Sprintf("ledger call %s failed: %v", e.Op, e.Err)
}

func (e *LedgerCallError) Unwrap() error {
	return e.Err
}

// ReconciliationError reports a per-event processing failure in the
// listener. Logged and isolated; never halts the stream.
type ReconciliationError struct {
	TxHash string
	Err    error
}

func (e *ReconciliationError) Error() string {
	return fmt.Sprintf("reconciliation of tx %s failed: %v", e.TxHash, e.Err)
}

func (e *ReconciliationError) Unwrap() error {
	return e.Err
}
