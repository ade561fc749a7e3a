// Package server wires the application together: it builds the logger,
// opens the user store, runs migrations, and starts the HTTP API with
// graceful shutdown on OS signals.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/authgate/authgate/internal/logging"
	"github.com/authgate/authgate/internal/server/config"
	"github.com/authgate/authgate/internal/server/httpapi"
	"github.com/authgate/authgate/internal/server/shared/db"
	"github.com/authgate/authgate/internal/server/users"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	repoManager db.RepositoryManager
	httpServer  *httpapi.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	var manager db.RepositoryManager
	if cfg.DatabaseDSN != "" {
		m, err := db.NewPostgresRepositoryManager(cfg.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("db init error: %w", err)
		}
		manager = m
	} else {
		// no DSN configured, fall back to the in-memory store
		manager = db.NewInMemoryRepositoryManager()
	}

	us := users.NewService(manager.Users(), logger, cfg)
	hs := httpapi.NewServer(cfg, logger, us)

	return &App{config: cfg, logger: logger, repoManager: manager, httpServer: hs}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if err := app.httpServer.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.repoManager.Close(); err != nil {
		app.logger.Error(ctx, fmt.Sprintf("db close error: %v", err))
	}
}
