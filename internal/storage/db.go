// Package storage bootstraps the local SQLite database used as the durable
// key-value store: it opens the file through the pure-Go modernc.org/sqlite
// driver and applies the embedded goose migrations.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/travelbook/internal/filex"
	"github.com/dmitrijs2005/travelbook/internal/migrations"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

const driverName = "sqlite"

// RunMigrations applies all pending embedded migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

// DSN turns a plain file path into a modernc.org/sqlite DSN with a busy
// timeout and foreign keys enabled. Values that already look like DSNs
// (":memory:" or "file:" URIs) are returned unchanged.
func DSN(path string) string {
	if isDSN(path) {
		return path
	}
	return "file:" + path + "?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"
}

// InitDatabase opens the database at dsn and migrates it to the latest schema.
// The caller owns the returned handle.
func InitDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// One connection keeps ":memory:" databases alive and serialises writers.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// Open prepares the directory for a file-backed database at path and then
// initialises it like InitDatabase.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	if !isDSN(path) {
		if _, err := filex.EnsureParentDir(path); err != nil {
			return nil, fmt.Errorf("failed to prepare database directory: %w", err)
		}
	}
	return InitDatabase(ctx, DSN(path))
}

func isDSN(path string) bool {
	return path == ":memory:" || strings.HasPrefix(path, "file:")
}
