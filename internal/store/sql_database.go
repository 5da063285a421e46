package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fundvista/fund-api/internal/config"
	"github.com/fundvista/fund-api/internal/logger"
	"github.com/fundvista/fund-api/migrations"
)

// DB wraps the shared *sql.DB handle together with the engine label and the
// engine-specific error classifier used by the repositories.
type DB struct {
	*sql.DB
	engine             string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens a database handle for the configured engine, verifies
// connectivity with a ping, and returns the wrapped [DB].
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Engine {
	case config.EnginePostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case config.EngineSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("unsupported database engine: %q", cfg.Engine)
	}
}

// Migrate applies all pending schema migrations for the DB's engine.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.engine)
}

// classify wraps a driver-level error with the sentinel that matches its
// classification: connectivity loss becomes [ErrDatabaseUnavailable] so the
// HTTP layer can answer with a service-unavailable status, everything else
// becomes the given fallback sentinel.
func (db *DB) classify(err error, fallback error) error {
	if db.errorClassificator != nil && db.errorClassificator.Classify(err) == Unavailable {
		return fmt.Errorf("%w: %w", ErrDatabaseUnavailable, err)
	}

	return fmt.Errorf("%w: %w", fallback, err)
}
