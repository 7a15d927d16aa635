// Package store bootstraps the local SQLite database: it opens the file,
// applies the embedded goose migrations, and wires the repositories.
package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/pixelstudio/asia/internal/migrations"
	"github.com/pixelstudio/asia/internal/repositories/session"
	"github.com/pixelstudio/asia/internal/repositories/users"

	_ "modernc.org/sqlite"
)

// Repositories bundles the persistence surfaces of the local database.
type Repositories struct {
	Users   users.Repository
	Session session.Repository
}

// RunMigrations brings the schema up to date.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens (creating if needed) the database at dsn, migrates it,
// and returns the handle together with the wired repositories.
func InitDatabase(ctx context.Context, dsn string) (*sql.DB, *Repositories, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	repos := &Repositories{
		Users:   users.NewSQLiteRepository(db),
		Session: session.NewSQLiteRepository(db),
	}
	return db, repos, nil
}
