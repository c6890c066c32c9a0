package services

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophfeed/internal/client/models"
	"github.com/dmitrijs2005/gophfeed/internal/client/navigator"
	"github.com/dmitrijs2005/gophfeed/internal/client/repositories/credentials"
	"github.com/dmitrijs2005/gophfeed/internal/client/session"
	"github.com/dmitrijs2005/gophfeed/internal/logging"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

// ---- helpers ----

func setupStore(t *testing.T) *credentials.SQLiteRepository {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE credentials (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
`)
	require.NoError(t, err)
	return credentials.NewSQLiteRepository(db)
}

func getCred(t *testing.T, store credentials.Repository, key string) []byte {
	t.Helper()
	v, err := store.Get(context.Background(), key)
	require.NoError(t, err)
	return v
}

// ---- fake client ----

// fakeClient implements client.Client and records what the services send.
type fakeClient struct {
	mu sync.Mutex

	LoginRet  *models.AuthResult
	LoginErr  error
	SignupRet *models.AuthResult
	SignupErr error
	PostsRet  []models.Post
	PostsErr  error

	// when set, Login signals Started and then waits for Release
	Started chan struct{}
	Release chan struct{}

	LoginCalls  int
	SignupCalls int
	PostsCalls  int

	LastCreds models.Credentials
	LastForm  models.SignupForm
	LastToken string
}

func (f *fakeClient) Login(ctx context.Context, creds models.Credentials) (*models.AuthResult, error) {
	f.mu.Lock()
	f.LoginCalls++
	f.LastCreds = creds
	started, release := f.Started, f.Release
	f.mu.Unlock()

	if started != nil {
		started <- struct{}{}
		<-release
	}
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) Signup(ctx context.Context, form models.SignupForm) (*models.AuthResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.SignupCalls++
	f.LastForm = form
	return f.SignupRet, f.SignupErr
}

func (f *fakeClient) Posts(ctx context.Context, token string) ([]models.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.PostsCalls++
	f.LastToken = token
	return f.PostsRet, f.PostsErr
}

func (f *fakeClient) Close() error { return nil }

func (f *fakeClient) loginCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.LoginCalls
}

// ---- faulty store ----

// faultyStore wraps a repository and fails selected operations.
type faultyStore struct {
	credentials.Repository
	SetErr map[string]error
	DelErr map[string]error
	GetErr error
}

func (f *faultyStore) Get(ctx context.Context, key string) ([]byte, error) {
	if f.GetErr != nil {
		return nil, f.GetErr
	}
	return f.Repository.Get(ctx, key)
}

func (f *faultyStore) Set(ctx context.Context, key string, value []byte) error {
	if err := f.SetErr[key]; err != nil {
		return err
	}
	return f.Repository.Set(ctx, key, value)
}

func (f *faultyStore) Delete(ctx context.Context, key string) error {
	if err := f.DelErr[key]; err != nil {
		return err
	}
	return f.Repository.Delete(ctx, key)
}

// ---- wiring ----

type harness struct {
	client  *fakeClient
	store   credentials.Repository
	manager *session.Manager
	nav     *navigator.Navigator
	auth    AuthService
	feed    FeedService
}

func newHarness(t *testing.T, store credentials.Repository, opts ...AuthOption) *harness {
	t.Helper()
	fc := &fakeClient{}
	m := session.NewManager()
	r := session.NewResolver(store, m, logging.Nop())
	nav := navigator.New()
	t.Cleanup(nav.Attach(m))

	auth := NewAuthService(fc, store, m, r, logging.Nop(), opts...)
	feed := NewFeedService(fc, store, m, auth, time.Minute, logging.Nop())
	t.Cleanup(feed.Close)

	r.Resolve(context.Background())

	return &harness{client: fc, store: store, manager: m, nav: nav, auth: auth, feed: feed}
}

func nopLogger() logging.Logger { return logging.Nop() }
