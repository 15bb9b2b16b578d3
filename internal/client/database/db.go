// Package database opens the device-local SQLite database and keeps its
// schema up to date.
package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/authmaster/internal/client/migrations"
	"github.com/dmitrijs2005/authmaster/internal/filex"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// DriverName is the database/sql driver registered by modernc.org/sqlite.
const DriverName = "sqlite"

// RunMigrations applies every pending embedded migration.
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

// InitDatabase opens the SQLite database at dsn and migrates it. The parent
// directory of a file database is created if needed.
//
// The pool is limited to a single connection: the records store has one
// writer, and ":memory:" databases exist per connection.
func InitDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	if path := filex.SQLiteFilePath(dsn); path != "" {
		if err := filex.EnsureParentDir(path); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open(DriverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
