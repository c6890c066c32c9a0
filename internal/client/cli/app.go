package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/gophfeed/internal/client/client"
	"github.com/dmitrijs2005/gophfeed/internal/client/config"
	"github.com/dmitrijs2005/gophfeed/internal/client/navigator"
	"github.com/dmitrijs2005/gophfeed/internal/client/repositories/credentials"
	"github.com/dmitrijs2005/gophfeed/internal/client/services"
	"github.com/dmitrijs2005/gophfeed/internal/client/session"
	"github.com/dmitrijs2005/gophfeed/internal/common"
	"github.com/dmitrijs2005/gophfeed/internal/filex"
	"github.com/dmitrijs2005/gophfeed/internal/logging"
)

type App struct {
	config      *config.Config
	db          *sql.DB
	authService services.AuthService
	feedService services.FeedService
	manager     *session.Manager
	resolver    *session.Resolver
	nav         *navigator.Navigator
	detach      func()
	logger      logging.Logger
	reader      *bufio.Reader
	out         io.Writer
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.New(c.Env, os.Stderr)

	dbPath, err := filex.EnsureParentDir(c.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("database directory: %w", err)
	}

	db, err := client.InitDatabase(ctx, dbPath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "path", c.DatabasePath, "error", err)
		return nil, fmt.Errorf("init database: %w", err)
	}

	store := credentials.NewSQLiteRepository(db)
	apiClient := client.NewHTTPClient(c.ServerBaseURL, c.RequestTimeout)

	app := newApp(c, apiClient, store, logger, os.Stdin, os.Stdout)
	app.db = db
	return app, nil
}

// newApp wires the session core around an API client and a store.
func newApp(c *config.Config, apiClient client.Client, store credentials.Repository,
	logger logging.Logger, in io.Reader, out io.Writer) *App {

	m := session.NewManager()
	r := session.NewResolver(store, m, logger)
	nav := navigator.New()
	detach := nav.Attach(m)

	as := services.NewAuthService(apiClient, store, m, r, logger,
		services.WithRequireBirthDate(c.RequireBirthDate))
	fs := services.NewFeedService(apiClient, store, m, as, c.FeedCacheTTL, logger)

	return &App{
		config:      c,
		authService: as,
		feedService: fs,
		manager:     m,
		resolver:    r,
		nav:         nav,
		detach:      detach,
		logger:      logger.With("module", "cli"),
		reader:      bufio.NewReader(in),
		out:         out,
	}
}

// Run resolves the stored session and then serves the REPL until the user
// exits or input ends. Nothing is shown before resolution completes.
func (a *App) Run(ctx context.Context) error {
	defer a.Close(ctx)

	status := a.resolver.Resolve(ctx)
	a.logger.Info(ctx, "session resolved", "status", status)

	fmt.Fprintln(a.out, "Welcome to gophfeed (type 'help' for commands)")
	if status == session.StatusAuthenticated {
		if err := a.Home(ctx, false); err != nil {
			fmt.Fprintln(a.out, common.Notice(err))
		}
	}

	runREPL(ctx, a, a.reader, a.out)
	return nil
}

func (a *App) Close(ctx context.Context) {
	a.detach()
	a.feedService.Close()
	if err := a.authService.Close(ctx); err != nil {
		a.logger.Warn(ctx, "closing API client", "error", err)
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Warn(ctx, "closing database", "error", err)
		}
	}
}

func (a *App) group() navigator.Group   { return a.nav.Group() }
func (a *App) screen() navigator.Screen { return a.nav.Current() }

// toRoot pops back to the group root.
func (a *App) toRoot() {
	for a.nav.Back() {
	}
}
