// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// API errors.
	ErrSessionExpired = errors.New("session expired")
	ErrNoResponse     = errors.New("no response from server")

	// Configuration errors.
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// ValidationError is a local, pre-request failure. It is always shown to
// the user, never sent to the network, and never fatal.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// NewValidationError creates a validation failure for the given field.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsValidation reports whether err is a local validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// RemoteError is a non-2xx response from the API. Message carries the
// server-provided text when the body had one.
type RemoteError struct {
	Status  int
	Message string
}

func (e *RemoteError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server error (%d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("server error (%d)", e.Status)
}

// UserMessage returns the text to surface for a remote failure: the
// server message verbatim when present, otherwise the given fallback.
func (e *RemoteError) UserMessage(fallback string) string {
	if e.Message != "" {
		return e.Message
	}
	return fallback
}

// TransportError means no usable response was received at all.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ExternalAppError is a deep-link or app-launch failure. It triggers the
// caller-supplied fallback path rather than aborting the flow.
type ExternalAppError struct {
	App string
	Err error
}

func (e *ExternalAppError) Error() string {
	return fmt.Sprintf("failed to launch %s: %v", e.App, e.Err)
}

func (e *ExternalAppError) Unwrap() error {
	return e.Err
}

// SurfaceMessage maps any flow error to the notification text the UI
// should show, falling back to a generic string for unclassified errors.
func SurfaceMessage(err error, fallback string) string {
	if err == nil {
		return ""
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Message
	}
	var re *RemoteError
	if errors.As(err, &re) {
		return re.UserMessage(fallback)
	}
	if errors.Is(err, ErrSessionExpired) {
		return "Session expired. Please log in again."
	}
	var te *TransportError
	if errors.As(err, &te) {
		return "Network error. Please check your connection."
	}
	return fallback
}
