package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-weather-dashboard/internal/logger"
	"github.com/MKhiriev/go-weather-dashboard/models"
)

type loginHistoryRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewLoginHistoryRepository constructs a [LoginHistoryRepository] backed by
// the "login_history" table.
func NewLoginHistoryRepository(db *DB, logger *logger.Logger) LoginHistoryRepository {
	logger.Debug().Msg("creating login history repository")
	return &loginHistoryRepository{
		db:     db,
		logger: logger,
	}
}

// SaveLoginEvent appends event. A zero LoginTime is replaced with the current
// time. An unknown UserID yields [ErrNoUserWasFound].
func (r *loginHistoryRepository) SaveLoginEvent(ctx context.Context, event models.LoginEvent) (models.LoginEvent, error) {
	log := logger.FromContext(ctx)

	if event.LoginTime.IsZero() {
		event.LoginTime = time.Now().UTC()
	}

	query, args, err := buildInsertLoginEventQuery(r.db.builder, event)
	if err != nil {
		log.Err(err).Str("func", "*loginHistoryRepository.SaveLoginEvent").Msg("error building query")
		return models.LoginEvent{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&event.ID); err != nil {
		if r.db.errorClassifier.IsForeignKeyViolation(err) {
			return models.LoginEvent{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*loginHistoryRepository.SaveLoginEvent").Msg("error inserting login event")
		return models.LoginEvent{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return event, nil
}
