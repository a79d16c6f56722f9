package store

import (
	"github.com/jackc/pgerrcode"
	"github.com/mattn/go-sqlite3"
)

// ErrorClassifier maps driver-specific errors onto the constraint violations
// the repositories translate into sentinel errors.
type ErrorClassifier interface {
	// IsUniqueViolation reports whether err was caused by a UNIQUE or
	// PRIMARY KEY constraint.
	IsUniqueViolation(err error) bool

	// IsForeignKeyViolation reports whether err was caused by a FOREIGN KEY
	// constraint.
	IsForeignKeyViolation(err error) bool
}

// PostgresErrorClassifier implements [ErrorClassifier] for PostgreSQL.
// It inspects the SQLSTATE code returned by the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// IsUniqueViolation implements [ErrorClassifier] (SQLSTATE 23505).
func (c *PostgresErrorClassifier) IsUniqueViolation(err error) bool {
	return err != nil && postgresError(err) == pgerrcode.UniqueViolation
}

// IsForeignKeyViolation implements [ErrorClassifier] (SQLSTATE 23503).
func (c *PostgresErrorClassifier) IsForeignKeyViolation(err error) bool {
	return err != nil && postgresError(err) == pgerrcode.ForeignKeyViolation
}

// SQLiteErrorClassifier implements [ErrorClassifier] for SQLite.
// It inspects the extended result code returned by mattn/go-sqlite3.
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier] ready for use.
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// IsUniqueViolation implements [ErrorClassifier].
func (c *SQLiteErrorClassifier) IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}

	code := sqliteError(err)
	return code == sqlite3.ErrConstraintUnique || code == sqlite3.ErrConstraintPrimaryKey
}

// IsForeignKeyViolation implements [ErrorClassifier].
func (c *SQLiteErrorClassifier) IsForeignKeyViolation(err error) bool {
	return err != nil && sqliteError(err) == sqlite3.ErrConstraintForeignKey
}
