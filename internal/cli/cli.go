package cli

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/kamholtz/trak/internal/app"
	"github.com/kamholtz/trak/internal/database"
)

// CLI represents the CLI application context
type CLI struct {
	App *app.App // Application container with services
	db  *sql.DB
	ctx context.Context
}

// NewCLI initializes the CLI with a database connection and the service
// container. Every command goes through here so that flags, the TUI and
// scripts all see the same data.
func NewCLI(ctx context.Context) (*CLI, error) {
	db, err := database.InitDB(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	repo := database.NewRepository(db)

	return &CLI{
		App: app.New(repo),
		db:  db,
		ctx: ctx,
	}, nil
}

// DB exposes the raw connection for commands that bypass the service
// layer, such as seeding.
func (c *CLI) DB() *sql.DB {
	return c.db
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if err := c.App.Close(); err != nil {
		return err
	}
	return c.db.Close()
}
