package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/go-weather-dashboard/internal/logger"
	"github.com/MKhiriev/go-weather-dashboard/models"
)

type weatherQueryRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewWeatherQueryRepository constructs a [WeatherQueryRepository] backed by
// the "weather_queries" table. The snapshot and the forecast are stored as
// JSON documents (JSONB on PostgreSQL, TEXT on SQLite).
func NewWeatherQueryRepository(db *DB, logger *logger.Logger) WeatherQueryRepository {
	logger.Debug().Msg("creating weather query repository")
	return &weatherQueryRepository{
		db:     db,
		logger: logger,
	}
}

// SaveQuery implements [WeatherQueryRepository].
func (r *weatherQueryRepository) SaveQuery(ctx context.Context, query models.WeatherQuery) (models.WeatherQuery, error) {
	log := logger.FromContext(ctx)

	if query.QueryTime.IsZero() {
		query.QueryTime = time.Now().UTC()
	}
	if query.Forecast == nil {
		query.Forecast = []models.DailyForecast{}
	}

	weather, err := json.Marshal(query.Weather)
	if err != nil {
		return models.WeatherQuery{}, fmt.Errorf("%w: %w", ErrEncodingPayload, err)
	}
	forecast, err := json.Marshal(query.Forecast)
	if err != nil {
		return models.WeatherQuery{}, fmt.Errorf("%w: %w", ErrEncodingPayload, err)
	}

	sqlQuery, args, err := buildInsertWeatherQueryQuery(r.db.builder, query, string(weather), string(forecast))
	if err != nil {
		log.Err(err).Str("func", "*weatherQueryRepository.SaveQuery").Msg("error building query")
		return models.WeatherQuery{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, sqlQuery, args...).Scan(&query.ID); err != nil {
		if r.db.errorClassifier.IsForeignKeyViolation(err) {
			return models.WeatherQuery{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*weatherQueryRepository.SaveQuery").Msg("error inserting weather query")
		return models.WeatherQuery{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return query, nil
}

// ListRecentQueries implements [WeatherQueryRepository].
// A non-positive limit yields an empty result.
func (r *weatherQueryRepository) ListRecentQueries(ctx context.Context, userID int64, limit int) ([]models.WeatherQuery, error) {
	log := logger.FromContext(ctx)

	queries := make([]models.WeatherQuery, 0, max(limit, 0))
	if limit <= 0 {
		return queries, nil
	}

	sqlQuery, args, err := buildSelectRecentQueriesQuery(r.db.builder, userID, limit)
	if err != nil {
		log.Err(err).Str("func", "*weatherQueryRepository.ListRecentQueries").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		log.Err(err).Str("func", "*weatherQueryRepository.ListRecentQueries").Msg("error selecting weather queries")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			q        models.WeatherQuery
			weather  []byte
			forecast []byte
		)
		if err = rows.Scan(&q.ID, &q.UserID, &q.City, &q.QueryTime, &weather, &forecast); err != nil {
			log.Err(err).Str("func", "*weatherQueryRepository.ListRecentQueries").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		if err = json.Unmarshal(weather, &q.Weather); err != nil {
			return nil, fmt.Errorf("%w: weather of query %d: %w", ErrEncodingPayload, q.ID, err)
		}
		if err = json.Unmarshal(forecast, &q.Forecast); err != nil {
			return nil, fmt.Errorf("%w: forecast of query %d: %w", ErrEncodingPayload, q.ID, err)
		}

		queries = append(queries, q)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*weatherQueryRepository.ListRecentQueries").Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return queries, nil
}

// CountQueries implements [WeatherQueryRepository].
func (r *weatherQueryRepository) CountQueries(ctx context.Context, userID int64) (int64, error) {
	log := logger.FromContext(ctx)

	sqlQuery, args, err := buildCountQueriesQuery(r.db.builder, userID)
	if err != nil {
		log.Err(err).Str("func", "*weatherQueryRepository.CountQueries").Msg("error building query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int64
	if err = r.db.QueryRowContext(ctx, sqlQuery, args...).Scan(&count); err != nil {
		log.Err(err).Str("func", "*weatherQueryRepository.CountQueries").Msg("error counting weather queries")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}
