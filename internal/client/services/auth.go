// Package services contains the application services of the gophfeed client.
// This file defines the auth actions: login, register, logout and session
// invalidation. They are the only code allowed to change the session.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gophfeed/internal/client/client"
	"github.com/dmitrijs2005/gophfeed/internal/client/models"
	"github.com/dmitrijs2005/gophfeed/internal/client/repositories/credentials"
	"github.com/dmitrijs2005/gophfeed/internal/client/session"
	"github.com/dmitrijs2005/gophfeed/internal/common"
	"github.com/dmitrijs2005/gophfeed/internal/logging"
	"golang.org/x/sync/semaphore"
)

// AuthService defines the auth actions.
//
// Contract:
//   - Login: validate, call the API, store token then user, authenticate.
//   - Register: validate, call the API, store the token, authenticate.
//   - RequestLogout: start the confirm/cancel logout interaction.
//   - InvalidateSession: drop the credentials without confirmation (the API
//     rejected the token).
//   - Close: release the API client.
//
// Each of Login, Register and logout runs at most once at a time; a
// concurrent duplicate fails with common.ErrBusy before any network call.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*models.AuthResult, error)
	Register(ctx context.Context, form models.SignupForm) (*models.AuthResult, error)
	RequestLogout() *LogoutRequest
	InvalidateSession(ctx context.Context) error
	Close(ctx context.Context) error
}

// authService is the concrete AuthService. Each action holds a one-slot
// semaphore so a second submit while one is in flight fails with ErrBusy.
type authService struct {
	client   client.Client
	store    credentials.Repository
	manager  *session.Manager
	resolver *session.Resolver
	logger   logging.Logger

	requireBirthDate bool

	loginBusy    *semaphore.Weighted
	registerBusy *semaphore.Weighted
	logoutBusy   *semaphore.Weighted
}

// AuthOption tunes an authService at construction.
type AuthOption func(*authService)

// WithRequireBirthDate controls whether Register rejects an empty birth date.
// It is required by default.
func WithRequireBirthDate(required bool) AuthOption {
	return func(a *authService) { a.requireBirthDate = required }
}

// NewAuthService constructs an AuthService writing credentials to store and
// publishing session transitions through m.
func NewAuthService(c client.Client, store credentials.Repository, m *session.Manager,
	r *session.Resolver, l logging.Logger, opts ...AuthOption) AuthService {

	a := &authService{
		client:           c,
		store:            store,
		manager:          m,
		resolver:         r,
		logger:           l.With("module", "auth_service"),
		requireBirthDate: true,
		loginBusy:        semaphore.NewWeighted(1),
		registerBusy:     semaphore.NewWeighted(1),
		logoutBusy:       semaphore.NewWeighted(1),
	}
	for _, o := range opts {
		o(a)
	}
	return a
}

// acquire takes a busy guard without waiting. The returned func must be
// deferred; it releases the guard on every exit path.
func acquire(sem *semaphore.Weighted) (func(), error) {
	if !sem.TryAcquire(1) {
		return nil, common.ErrBusy
	}
	return func() { sem.Release(1) }, nil
}

func required(fields ...[2]string) error {
	for _, f := range fields {
		if strings.TrimSpace(f[1]) == "" {
			return &common.ValidationError{Field: f[0]}
		}
	}
	return nil
}

func (a *authService) Login(ctx context.Context, email, password string) (*models.AuthResult, error) {
	if err := required([2]string{"email", email}, [2]string{"password", password}); err != nil {
		return nil, err
	}

	release, err := acquire(a.loginBusy)
	if err != nil {
		return nil, err
	}
	defer release()

	res, err := a.client.Login(ctx, models.Credentials{Email: email, Password: password})
	if err != nil {
		a.logger.Warn(ctx, "login failed", "error", err)
		return nil, fmt.Errorf("login: %w", err)
	}
	if res == nil || res.Token == "" || len(res.User) == 0 {
		return nil, fmt.Errorf("login: %w", common.ErrMalformedResponse)
	}

	// token first: an interrupted sequence may leave a token without a
	// user, never a user without a token
	if err := a.store.Set(ctx, credentials.KeyToken, []byte(res.Token)); err != nil {
		return nil, a.rollback(ctx, &common.StorageError{Op: "set", Key: credentials.KeyToken, Err: err})
	}
	if err := a.store.Set(ctx, credentials.KeyUser, res.User); err != nil {
		return nil, a.rollback(ctx, &common.StorageError{Op: "set", Key: credentials.KeyUser, Err: err})
	}

	a.manager.Authenticate(res.Token, res.User)
	a.logger.Info(ctx, "logged in")
	return res, nil
}

func (a *authService) Register(ctx context.Context, form models.SignupForm) (*models.AuthResult, error) {
	fields := [][2]string{
		{"name", form.Name},
		{"lastname", form.Lastname},
		{"username", form.Username},
		{"email", form.Email},
	}
	if a.requireBirthDate {
		fields = append(fields, [2]string{"birthDate", form.BirthDate})
	}
	fields = append(fields, [2]string{"password", form.Password})
	if err := required(fields...); err != nil {
		return nil, err
	}

	release, err := acquire(a.registerBusy)
	if err != nil {
		return nil, err
	}
	defer release()

	res, err := a.client.Signup(ctx, form)
	if err != nil {
		a.logger.Warn(ctx, "registration failed", "error", err)
		return nil, fmt.Errorf("register: %w", err)
	}
	if res == nil || res.Token == "" {
		return nil, fmt.Errorf("register: %w", common.ErrMalformedResponse)
	}

	// signup returns no user object; a record left by an earlier session
	// must not be shown as this account's profile
	if err := a.store.Delete(ctx, credentials.KeyUser); err != nil {
		a.resolver.Reconcile(ctx)
		return nil, &common.StorageError{Op: "reset", Key: credentials.KeyUser, Err: err}
	}
	if err := a.store.Set(ctx, credentials.KeyToken, []byte(res.Token)); err != nil {
		return nil, a.rollback(ctx, &common.StorageError{Op: "set", Key: credentials.KeyToken, Err: err})
	}

	a.manager.Authenticate(res.Token, nil)
	a.logger.Info(ctx, "registered")
	return res, nil
}

// rollback undoes a partial login/register commit and re-reads the store,
// since the cached session can no longer be trusted.
func (a *authService) rollback(ctx context.Context, cause *common.StorageError) error {
	if err := a.store.Delete(ctx, credentials.KeyToken); err != nil {
		a.logger.Error(ctx, "token rollback failed", "error", err)
	}
	status := a.resolver.Reconcile(ctx)
	a.logger.Error(ctx, "could not persist session", "key", cause.Key, "error", cause.Err, "status", status)
	return cause
}

func (a *authService) RequestLogout() *LogoutRequest {
	return newLogoutRequest(a.logout)
}

func (a *authService) logout(ctx context.Context) error {
	release, err := acquire(a.logoutBusy)
	if err != nil {
		return err
	}
	defer release()

	return a.clearCredentials(ctx, "logout")
}

func (a *authService) InvalidateSession(ctx context.Context) error {
	return a.clearCredentials(ctx, "invalidated")
}

// clearCredentials removes user then token, both attempted even if the first
// fails. On any failure the session is re-read from the store instead of
// being assumed logged out or still logged in.
func (a *authService) clearCredentials(ctx context.Context, reason string) error {
	var errs []error
	for _, key := range []string{credentials.KeyUser, credentials.KeyToken} {
		if err := a.store.Delete(ctx, key); err != nil {
			errs = append(errs, &common.StorageError{Op: "remove", Key: key, Err: err})
		}
	}

	if len(errs) == 0 {
		a.manager.Clear()
		a.logger.Info(ctx, "session cleared", "reason", reason)
		return nil
	}

	status := a.resolver.Reconcile(ctx)
	err := errors.Join(errs...)
	a.logger.Error(ctx, "could not clear session", "reason", reason, "error", err, "status", status)
	return err
}

func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}
