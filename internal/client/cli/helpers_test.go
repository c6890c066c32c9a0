package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/dmitrijs2005/gophfeed/internal/client/client"
	"github.com/dmitrijs2005/gophfeed/internal/client/config"
	"github.com/dmitrijs2005/gophfeed/internal/client/models"
	"github.com/dmitrijs2005/gophfeed/internal/client/repositories/credentials"
	"github.com/dmitrijs2005/gophfeed/internal/logging"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	mu sync.Mutex

	loginRet  *models.AuthResult
	loginErr  error
	signupRet *models.AuthResult
	signupErr error
	posts     []models.Post
	postsErr  error

	creds models.Credentials
	form  models.SignupForm
	calls []string
}

var _ client.Client = (*fakeAPI)(nil)

func (f *fakeAPI) Login(_ context.Context, c models.Credentials) (*models.AuthResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, "login")
	f.creds = c
	return f.loginRet, f.loginErr
}

func (f *fakeAPI) Signup(_ context.Context, form models.SignupForm) (*models.AuthResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, "signup")
	f.form = form
	return f.signupRet, f.signupErr
}

func (f *fakeAPI) Posts(_ context.Context, _ string) ([]models.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, "posts")
	return f.posts, f.postsErr
}

func (f *fakeAPI) Close() error { return nil }

func okLogin() *models.AuthResult {
	return &models.AuthResult{
		Token: "t1",
		User:  json.RawMessage(`{"name":"ann","lastname":"Lee","username":"ann","email":"a@x.com"}`),
	}
}

// testStore returns a migrated on-disk store.
func testStore(t *testing.T) credentials.Repository {
	t.Helper()
	db, err := client.InitDatabase(context.Background(), filepath.Join(t.TempDir(), "feed.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return credentials.NewSQLiteRepository(db)
}

// scriptedPasswords makes passwords come from the input script instead of
// the terminal.
func scriptedPasswords(t *testing.T) {
	t.Helper()
	orig := isTerminal
	isTerminal = func(int) bool { return false }
	t.Cleanup(func() { isTerminal = orig })
}

// newTestApp builds an App reading the given lines as user input.
func newTestApp(t *testing.T, api *fakeAPI, store credentials.Repository, lines ...string) (*App, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	scriptedPasswords(t)

	cfg := &config.Config{}
	cfg.LoadDefaults()

	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	return newApp(cfg, api, store, logging.Nop(), in, &out), &out
}
