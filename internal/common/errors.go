// Package common defines the error taxonomy and shared constants used across
// the gophfeed client and its development backend. Callers should match
// sentinel values with errors.Is and typed errors with errors.As.
package common

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized is returned when the API rejects the bearer token
	// (401/403) or when a gated call is made without a session.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrMalformedResponse marks a 2xx response that lacks a required field.
	ErrMalformedResponse = errors.New("malformed response")

	// ErrBusy is returned when the same auth action is already in flight.
	ErrBusy = errors.New("action already in progress")

	// ErrLogoutFinished is returned when a logout request is confirmed or
	// cancelled a second time.
	ErrLogoutFinished = errors.New("logout request already finished")
)

// ValidationError reports a required local field that was left empty.
// It never reaches the network.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s is required", e.Field)
}

// TransportError wraps failures to reach the API (dial, timeout, broken body).
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ServerError is a non-2xx answer. Message is the server supplied text or a
// per-action fallback.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server error %d: %s", e.Status, e.Message)
}

// StorageError wraps a credential store failure.
type StorageError struct {
	Op  string
	Key string
	Err error
}

func (e *StorageError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("storage error: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("storage error: %s %s: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
