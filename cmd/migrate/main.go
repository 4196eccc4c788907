// Package main applies the embedded SQL migrations for the configured store
// driver.
//
// Usage:
//
//	APP_PROFILE=local migrate up|down|status
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/jsamuelsen11/agency-site-api/internal/platform/config"
	"github.com/jsamuelsen11/agency-site-api/internal/platform/database"
	"github.com/jsamuelsen11/agency-site-api/internal/platform/logging"
)

const migrateTimeout = 2 * time.Minute

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: migrate up|down|status")
	}
	command := args[0]

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}

	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr,
		slog.String("service", cfg.Telemetry.ServiceName),
		slog.String("profile", profile),
	)

	ctx, cancel := context.WithTimeout(context.Background(), migrateTimeout)
	defer cancel()

	db, err := openDB(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("closing database", slog.Any("error", err))
		}
	}()

	migrator, err := database.NewMigrator(db, cfg.Store.Driver)
	if err != nil {
		return err
	}

	switch command {
	case "up":
		results, err := migrator.Up(ctx)
		for _, r := range results {
			logger.Info("applied migration",
				slog.Int64("version", r.Source.Version),
				slog.Duration("duration", r.Duration),
			)
		}
		if err != nil {
			return err
		}
		if len(results) == 0 {
			logger.Info("no pending migrations")
		}
	case "down":
		result, err := migrator.Down(ctx)
		if err != nil {
			return err
		}
		logger.Info("rolled back migration", slog.Int64("version", result.Source.Version))
	case "status":
		statuses, err := migrator.Status(ctx)
		if err != nil {
			return err
		}
		for _, st := range statuses {
			logger.Info("migration",
				slog.Int64("version", st.Source.Version),
				slog.String("state", string(st.State)),
			)
		}
	default:
		return fmt.Errorf("unknown command %q: want up, down or status", command)
	}
	return nil
}

// openDB opens a database/sql handle for the configured SQL driver.
func openDB(ctx context.Context, cfg *config.Config) (*sql.DB, error) {
	switch cfg.Store.Driver {
	case config.DriverPostgres:
		return database.OpenPostgresSQL(ctx, cfg.Store.Postgres.DSN)
	case config.DriverSQLite:
		db, err := database.OpenSQLite(ctx, cfg.Store.SQLite.Path)
		if err != nil {
			return nil, err
		}
		return db.DB, nil
	default:
		return nil, fmt.Errorf("store driver %q has no SQL migrations", cfg.Store.Driver)
	}
}
