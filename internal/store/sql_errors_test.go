package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassifier(t *testing.T) {
	c := NewPostgresErrorClassifier()

	assert.True(t, c.IsUniqueViolation(pgError(pgerrcode.UniqueViolation)))
	assert.True(t, c.IsUniqueViolation(fmt.Errorf("wrapped: %w", pgError(pgerrcode.UniqueViolation))))
	assert.False(t, c.IsUniqueViolation(pgError(pgerrcode.ForeignKeyViolation)))
	assert.True(t, c.IsForeignKeyViolation(pgError(pgerrcode.ForeignKeyViolation)))
	assert.False(t, c.IsForeignKeyViolation(errors.New("plain")))
	assert.False(t, c.IsUniqueViolation(nil))
}

func TestSQLiteErrorClassifier(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	unique := sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}
	primaryKey := sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintPrimaryKey}
	foreignKey := sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey}

	assert.True(t, c.IsUniqueViolation(unique))
	assert.True(t, c.IsUniqueViolation(primaryKey))
	assert.False(t, c.IsUniqueViolation(foreignKey))
	assert.True(t, c.IsForeignKeyViolation(fmt.Errorf("wrapped: %w", foreignKey)))
	assert.False(t, c.IsForeignKeyViolation(pgError(pgerrcode.ForeignKeyViolation)))
	assert.False(t, c.IsForeignKeyViolation(nil))
}
