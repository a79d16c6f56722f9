// Package migrations embeds the goose schema migrations for every supported
// SQL dialect and applies them on startup.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// Supported dialect names.
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite3"
)

// goose keeps its base FS and dialect in package globals.
var gooseMu sync.Mutex

// Migrate applies all pending migrations of dialect to db.
func Migrate(db *sql.DB, dialect string) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	dir, gooseDialect, err := resolveDialect(dialect)
	if err != nil {
		return err
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(embedMigrations)

	if err = goose.SetDialect(gooseDialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err = goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

func resolveDialect(dialect string) (dir, gooseDialect string, err error) {
	switch dialect {
	case DialectPostgres:
		return "postgres", "pgx", nil
	case DialectSQLite:
		return "sqlite", "sqlite3", nil
	default:
		return "", "", fmt.Errorf("migration error: unsupported dialect %q", dialect)
	}
}
