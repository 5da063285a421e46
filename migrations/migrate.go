// Package migrations embeds the SQL schema migrations and applies them
// with goose at startup.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

// dialects maps the configured database engine to the goose dialect name.
var dialects = map[string]string{
	"postgres": "pgx",
	"sqlite":   "sqlite3",
}

// Migrate applies all pending migrations to db using the dialect matching
// the given engine ("postgres" or "sqlite").
func Migrate(db *sql.DB, engine string) error {
	dialect, ok := dialects[engine]
	if !ok {
		return fmt.Errorf("migration error: no goose dialect for engine %q", engine)
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
