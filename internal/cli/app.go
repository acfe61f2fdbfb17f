// Package cli implements the interactive admin console for the user
// directory: registration, login checks, password maintenance, and bulk
// import.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/dmitrijs2005/userdir/internal/config"
	"github.com/dmitrijs2005/userdir/internal/logging"
	"github.com/dmitrijs2005/userdir/internal/notify"
	"github.com/dmitrijs2005/userdir/internal/users"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	registry *users.Registry
	reader   *bufio.Reader
	out      io.Writer

	db       *sql.DB
	notifier notify.Notifier
}

// NewApp wires the directory from config: Postgres or in-memory backend,
// AMQP or log-only notifier.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger := logging.NewJSONLogger(os.Stderr)

	app := &App{
		config: c,
		logger: logger,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}

	var repo users.Repository
	if c.DatabaseDSN != "" {
		db, err := sql.Open("pgx", c.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("db init error: %w", err)
		}
		if err := users.RunMigrations(ctx, db); err != nil {
			db.Close()
			return nil, fmt.Errorf("migration error: %w", err)
		}
		app.db = db
		repo = users.NewPostgresRepository(db)
	} else {
		repo = users.NewInMemoryRepository()
	}

	if c.AMQPURL != "" {
		n, err := notify.NewAMQPNotifier(c.AMQPURL, c.SMSQueue)
		if err != nil {
			app.Close()
			return nil, fmt.Errorf("notifier init error: %w", err)
		}
		app.notifier = n
	} else {
		app.notifier = notify.NewLogNotifier(logger)
	}

	app.registry = users.NewRegistry(repo, app.notifier, logger)
	return app, nil
}

func (a *App) Run(ctx context.Context) {
	runREPL(ctx, a, a.reader, a.out)
}

// Close releases the database and broker connections, if any.
func (a *App) Close() {
	if c, ok := a.notifier.(io.Closer); ok {
		if err := c.Close(); err != nil {
			a.logger.Warn(context.Background(), "error closing notifier", "error", err.Error())
		}
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Warn(context.Background(), "error closing database", "error", err.Error())
		}
	}
}
