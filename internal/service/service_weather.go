package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-weather-dashboard/internal/adapter"
	"github.com/MKhiriev/go-weather-dashboard/internal/forecast"
	"github.com/MKhiriev/go-weather-dashboard/internal/logger"
	"github.com/MKhiriev/go-weather-dashboard/internal/store"
	"github.com/MKhiriev/go-weather-dashboard/internal/validators"
	"github.com/MKhiriev/go-weather-dashboard/models"
)

// HistoryLimit is the number of lookups shown on the history page.
const HistoryLimit = 20

// weatherService combines the weather provider, the forecast aggregator and
// the query log.
type weatherService struct {
	userRepository         store.UserRepository
	weatherQueryRepository store.WeatherQueryRepository
	provider               adapter.WeatherProvider

	logger *logger.Logger
}

func NewWeatherService(
	userRepository store.UserRepository,
	weatherQueryRepository store.WeatherQueryRepository,
	provider adapter.WeatherProvider,
	logger *logger.Logger,
) WeatherService {
	return &weatherService{
		userRepository:         userRepository,
		weatherQueryRepository: weatherQueryRepository,
		provider:               provider,
		logger:                 logger,
	}
}

func (s *weatherService) Dashboard(ctx context.Context, identity models.Identity) (models.User, models.WeatherReport, error) {
	user, err := s.findUser(ctx, identity)
	if err != nil {
		return models.User{}, models.WeatherReport{}, err
	}

	report := s.fetchAndRecord(ctx, user, user.DisplayCity())
	return user, report, nil
}

func (s *weatherService) Lookup(ctx context.Context, identity models.Identity, city string) (models.WeatherReport, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return models.WeatherReport{}, fmt.Errorf("%w: empty city", ErrInvalidDataProvided)
	}
	if err := validateUser(ctx, models.User{City: city}, validators.FieldCity); err != nil {
		return models.WeatherReport{}, err
	}

	user, err := s.findUser(ctx, identity)
	if err != nil {
		return models.WeatherReport{}, err
	}

	return s.fetchAndRecord(ctx, user, city), nil
}

func (s *weatherService) History(ctx context.Context, identity models.Identity) ([]models.WeatherQuery, error) {
	queries, err := s.weatherQueryRepository.ListRecentQueries(ctx, identity.UserID, HistoryLimit)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", identity.UserID).Msg("listing weather queries failed")
		return nil, fmt.Errorf("listing weather queries failed: %w", err)
	}

	return queries, nil
}

func (s *weatherService) findUser(ctx context.Context, identity models.Identity) (models.User, error) {
	user, err := s.userRepository.FindUserByID(ctx, identity.UserID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", identity.UserID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}

// fetchAndRecord fetches current conditions and the forecast for city in the
// user's unit system. The lookup is recorded only when current conditions
// were obtained; a failed write is logged and otherwise ignored.
func (s *weatherService) fetchAndRecord(ctx context.Context, user models.User, city string) models.WeatherReport {
	log := logger.FromContext(ctx)
	units := user.Preferences.Units

	current := s.provider.FetchCurrent(ctx, city, units)
	samples := s.provider.FetchForecastSamples(ctx, city, units)

	report := models.WeatherReport{
		Current:  current.Snapshot(),
		Forecast: forecast.Aggregate(samples.Samples()),
	}

	if report.Current == nil {
		log.Info().Str("city", city).Str("outcome", string(current.Outcome)).Msg("no current weather, lookup not recorded")
		return report
	}

	_, err := s.weatherQueryRepository.SaveQuery(ctx, models.WeatherQuery{
		UserID:   user.UserID,
		City:     city,
		Weather:  *report.Current,
		Forecast: report.Forecast,
	})
	if err != nil {
		log.Err(err).Int64("id", user.UserID).Str("city", city).Msg("recording weather query failed")
	}

	return report
}
