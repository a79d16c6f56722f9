package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-weather-dashboard/internal/config"
	"github.com/MKhiriev/go-weather-dashboard/internal/logger"
	"github.com/MKhiriev/go-weather-dashboard/migrations"
)

// Dialect names the SQL backend behind a [DB].
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite3"
)

const sqliteScheme = "sqlite://"

// DB wraps a *sql.DB together with the dialect-specific pieces the
// repositories need: a squirrel builder with the right placeholder format and
// a classifier for driver errors.
type DB struct {
	*sql.DB
	dialect         Dialect
	builder         sq.StatementBuilderType
	errorClassifier ErrorClassifier
	logger          *logger.Logger
}

func newDB(conn *sql.DB, dialect Dialect, log *logger.Logger) *DB {
	db := &DB{
		DB:      conn,
		dialect: dialect,
		logger:  log,
	}

	switch dialect {
	case DialectPostgres:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
		db.errorClassifier = NewPostgresErrorClassifier()
	default:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
		db.errorClassifier = NewSQLiteErrorClassifier()
	}

	return db
}

// Connect opens the database selected by cfg.DSN:
//   - "postgres://" or "postgresql://" → PostgreSQL via pgx;
//   - "sqlite://<path>" or "file:<path>" → SQLite.
func Connect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	dsn := strings.TrimSpace(cfg.DSN)

	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return NewConnectPostgres(ctx, dsn, log)
	case strings.HasPrefix(dsn, sqliteScheme):
		return NewConnectSQLite(ctx, strings.TrimPrefix(dsn, sqliteScheme), log)
	case strings.HasPrefix(dsn, "file:"):
		return NewConnectSQLite(ctx, dsn, log)
	default:
		return nil, fmt.Errorf("%w: expected postgres:// or sqlite:// prefix", ErrUnsupportedDSN)
	}
}

// Dialect returns the SQL backend of db.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Migrate applies all pending schema migrations for the dialect of db.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, string(db.dialect))
}

// Ping implements [Pinger].
func (db *DB) Ping(ctx context.Context) error {
	return db.PingContext(ctx)
}
