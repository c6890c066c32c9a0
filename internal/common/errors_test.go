package common

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypedErrors_UnwrapAndMatch(t *testing.T) {
	cause := errors.New("disk full")
	err := fmt.Errorf("login: %w", &StorageError{Op: "set", Key: "token", Err: cause})

	var se *StorageError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "token", se.Key)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "storage error: set token: disk full")

	te := &TransportError{Err: context.DeadlineExceeded}
	assert.ErrorIs(t, te, context.DeadlineExceeded)
}

func TestNotice(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"validation", &ValidationError{Field: "email"}, "Please fill all fields"},
		{"server message", &ServerError{Status: 400, Message: "Invalid credentials"}, "Invalid credentials"},
		{"wrapped server", fmt.Errorf("login: %w", &ServerError{Status: 500, Message: "Login failed"}), "Login failed"},
		{"transport", &TransportError{Err: errors.New("dial tcp: refused")}, "Server unavailable, check your connection"},
		{"malformed", fmt.Errorf("signup: %w", ErrMalformedResponse), "Unexpected response from server"},
		{"unauthorized", ErrUnauthorized, "Session expired, please log in again"},
		{"busy", ErrBusy, "Please wait, the previous request is still running"},
		{"logout storage", &StorageError{Op: "remove", Key: "token", Err: errors.New("x")}, "Logout failed"},
		{"login storage", &StorageError{Op: "set", Key: "user", Err: errors.New("x")}, "Could not save session on this device"},
		{"register storage", &StorageError{Op: "reset", Key: "user", Err: errors.New("x")}, "Could not save session on this device"},
		{"unknown", errors.New("boom"), "Something went wrong"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Notice(tt.err))
		})
	}
}
