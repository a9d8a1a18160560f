// Package server initializes and runs the backend: it selects the storage
// backend from configuration, applies migrations, mounts the REST API, and
// handles graceful shutdown on OS signals.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/udesk/userdesk/internal/logging"
	"github.com/udesk/userdesk/internal/server/config"
	"github.com/udesk/userdesk/internal/server/httpapi"
	"github.com/udesk/userdesk/internal/server/migrations"
	"github.com/udesk/userdesk/internal/server/users"
)

type App struct {
	config *config.Config
	logger logging.Logger
	server *http.Server
	db     *sql.DB // nil when running on the in-memory store
}

func NewApp(c *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	repo, db, err := openRepository(c, logger)
	if err != nil {
		return nil, fmt.Errorf("storage init error: %w", err)
	}

	service := users.NewService(repo)
	srv := &http.Server{
		Addr:    c.EndpointAddr,
		Handler: httpapi.NewRouter(service, logger),
	}

	return &App{config: c, logger: logger, server: srv, db: db}, nil
}

func openRepository(c *config.Config, logger logging.Logger) (users.Repository, *sql.DB, error) {
	if c.DatabaseDSN == "" {
		logger.Info(context.Background(), "no database DSN configured, using in-memory store")
		return users.NewMemoryRepository(), nil, nil
	}

	db, err := sql.Open("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, nil, err
	}

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return nil, nil, err
	}
	if err := goose.UpContext(context.Background(), db, "."); err != nil {
		return nil, nil, err
	}

	return users.NewPostgresRepository(db), db, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.initSignalHandler(cancelFunc)

	errCh := make(chan error, 1)
	go func() {
		app.logger.Info(ctx, "starting server", "addr", app.config.EndpointAddr)
		if err := app.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	app.logger.Info(ctx, "shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), app.config.ShutdownTimeout)
	defer cancel()

	if err := app.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown error: %w", err)
	}
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			return fmt.Errorf("db close error: %w", err)
		}
	}

	return nil
}
