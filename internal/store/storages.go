package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-weather-dashboard/internal/config"
	"github.com/MKhiriev/go-weather-dashboard/internal/logger"
)

// Storages groups all repositories into a single value that can be passed to
// the service layer.
type Storages struct {
	UserRepository         UserRepository
	LoginHistoryRepository LoginHistoryRepository
	WeatherQueryRepository WeatherQueryRepository

	db *DB
}

// NewStorages initialises the storage layer:
//  1. Opens the database selected by cfg.DB.DSN.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs the repositories on top of the connection.
//
// Returns an error if the connection cannot be established or if migration
// fails.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := Connect(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return NewStoragesFromDB(db, logger), nil
}

// NewStoragesFromDB builds the repositories on an already migrated database.
func NewStoragesFromDB(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:         NewUserRepository(db, logger),
		LoginHistoryRepository: NewLoginHistoryRepository(db, logger),
		WeatherQueryRepository: NewWeatherQueryRepository(db, logger),
		db:                     db,
	}
}

// Ping implements [Pinger].
func (s *Storages) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

// Close releases the database connection pool.
func (s *Storages) Close() error {
	return s.db.Close()
}
