package devapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmitrijs2005/gophfeed/internal/devapi/config"
	"github.com/dmitrijs2005/gophfeed/internal/logging"
)

const shutdownTimeout = 5 * time.Second

// App runs the development API server until its context is cancelled.
type App struct {
	config *config.Config
	logger logging.Logger
	server *Server
}

// NewApp constructs an App logging to logOut.
func NewApp(c *config.Config, logOut io.Writer) *App {
	logger := logging.New(c.Env, logOut)
	srv := NewServer(NewUserStore(), SeedPosts(), c.SecretKey, c.TokenLifetime, logger)
	return &App{config: c, logger: logger, server: srv}
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves HTTP until ctx is cancelled or a termination signal arrives,
// then shuts down gracefully.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.initSignalHandler(cancelFunc)

	hs := &http.Server{
		Addr:              app.config.ListenAddr,
		Handler:           app.server.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		app.logger.Info(ctx, "Starting dev API...", "addr", app.config.ListenAddr)
		if err := hs.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	app.logger.Info(shutdownCtx, "shutting down dev API")
	if err := hs.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
