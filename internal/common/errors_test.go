package common

import (
	"errors"
	"fmt"
	"testing"
)

func TestSurfaceMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		fallback string
		want     string
	}{
		{
			name:     "validation message shown directly",
			err:      NewValidationError("amount", "Please enter valid category and amount"),
			fallback: "Something went wrong!",
			want:     "Please enter valid category and amount",
		},
		{
			name:     "server message surfaced verbatim",
			err:      &RemoteError{Status: 400, Message: "category already exists"},
			fallback: "Something went wrong!",
			want:     "category already exists",
		},
		{
			name:     "remote without message falls back",
			err:      &RemoteError{Status: 500},
			fallback: "Payment failed",
			want:     "Payment failed",
		},
		{
			name:     "session expiry gets its own message",
			err:      fmt.Errorf("request failed: %w", ErrSessionExpired),
			fallback: "Something went wrong!",
			want:     "Session expired. Please log in again.",
		},
		{
			name:     "transport error gets a network message",
			err:      &TransportError{Err: errors.New("dial tcp: timeout")},
			fallback: "Something went wrong!",
			want:     "Network error. Please check your connection.",
		},
		{
			name:     "unclassified error falls back",
			err:      errors.New("boom"),
			fallback: "Something went wrong!",
			want:     "Something went wrong!",
		},
		{
			name:     "nil error yields empty",
			err:      nil,
			fallback: "x",
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SurfaceMessage(tt.err, tt.fallback); got != tt.want {
				t.Errorf("SurfaceMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsValidation(t *testing.T) {
	if !IsValidation(NewValidationError("", "bad")) {
		t.Error("expected validation error to be detected")
	}
	if IsValidation(errors.New("bad")) {
		t.Error("plain error must not count as validation")
	}
	wrapped := fmt.Errorf("submit: %w", NewValidationError("name", "required"))
	if !IsValidation(wrapped) {
		t.Error("wrapped validation error must be detected")
	}
}
