package services

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/gophfeed/internal/common"
)

// LogoutState tracks the confirm/cancel interaction of a logout.
//
//	requested -> confirmed -> executed
//	requested -> cancelled
type LogoutState int

const (
	LogoutRequested LogoutState = iota
	LogoutConfirmed
	LogoutExecuted
	LogoutCancelled
)

func (s LogoutState) String() string {
	switch s {
	case LogoutRequested:
		return "requested"
	case LogoutConfirmed:
		return "confirmed"
	case LogoutExecuted:
		return "executed"
	case LogoutCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// LogoutRequest is a pending logout waiting for the user's answer.
// It is settled by exactly one Confirm or Cancel.
type LogoutRequest struct {
	mu    sync.Mutex
	state LogoutState
	exec  func(ctx context.Context) error
}

func newLogoutRequest(exec func(ctx context.Context) error) *LogoutRequest {
	return &LogoutRequest{state: LogoutRequested, exec: exec}
}

func (r *LogoutRequest) State() LogoutState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Confirm runs the logout. A storage failure is returned after the session
// was re-checked against the store; the request is executed either way.
// If another logout is in flight the request stays requested and
// common.ErrBusy is returned.
func (r *LogoutRequest) Confirm(ctx context.Context) error {
	r.mu.Lock()
	if r.state != LogoutRequested {
		r.mu.Unlock()
		return common.ErrLogoutFinished
	}
	r.state = LogoutConfirmed
	r.mu.Unlock()

	err := r.exec(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()
	if errors.Is(err, common.ErrBusy) {
		r.state = LogoutRequested
		return err
	}
	r.state = LogoutExecuted
	return err
}

// Cancel abandons the request. Nothing is touched.
func (r *LogoutRequest) Cancel() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != LogoutRequested {
		return common.ErrLogoutFinished
	}
	r.state = LogoutCancelled
	return nil
}
