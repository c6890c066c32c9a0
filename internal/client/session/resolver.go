package session

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/gophfeed/internal/client/repositories/credentials"
	"github.com/dmitrijs2005/gophfeed/internal/logging"
)

// Resolver decides the session status from the credential store.
type Resolver struct {
	store   credentials.Repository
	manager *Manager
	logger  logging.Logger

	once   sync.Once
	status Status
}

// NewResolver constructs a Resolver reading store and updating manager.
func NewResolver(store credentials.Repository, manager *Manager, logger logging.Logger) *Resolver {
	return &Resolver{store: store, manager: manager, logger: logger.With("module", "session_resolver")}
}

// Resolve reads the token once per Resolver and publishes the result to the
// Manager. Later calls return the first answer without touching the store.
func (r *Resolver) Resolve(ctx context.Context) Status {
	r.once.Do(func() {
		r.status = r.load(ctx, "resolve")
	})
	return r.status
}

// Reconcile re-reads the store and publishes what it proves. Used after a
// write whose outcome is unknown.
func (r *Resolver) Reconcile(ctx context.Context) Status {
	return r.load(ctx, "reconcile")
}

func (r *Resolver) load(ctx context.Context, op string) Status {
	token, err := r.store.Get(ctx, credentials.KeyToken)
	if err != nil {
		r.logger.Warn(ctx, "credential store unreadable, treating session as unauthenticated", "op", op, "error", err)
		r.manager.Clear()
		return StatusUnauthenticated
	}

	if len(token) == 0 {
		r.manager.Clear()
		r.logger.Debug(ctx, "no stored token", "op", op)
		return StatusUnauthenticated
	}

	// the user record is not read here: profile screens load it on demand
	r.manager.Authenticate(string(token), nil)
	r.logger.Debug(ctx, "stored token found", "op", op)
	return StatusAuthenticated
}
