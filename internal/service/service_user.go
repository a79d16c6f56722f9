package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-weather-dashboard/internal/logger"
	"github.com/MKhiriev/go-weather-dashboard/internal/store"
	"github.com/MKhiriev/go-weather-dashboard/internal/validators"
	"github.com/MKhiriev/go-weather-dashboard/models"
)

type userService struct {
	userRepository         store.UserRepository
	weatherQueryRepository store.WeatherQueryRepository

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, weatherQueryRepository store.WeatherQueryRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository:         userRepository,
		weatherQueryRepository: weatherQueryRepository,
		logger:                 logger,
	}
}

func (s *userService) GetUser(ctx context.Context, identity models.Identity) (models.User, error) {
	user, err := s.userRepository.FindUserByID(ctx, identity.UserID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", identity.UserID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}

func (s *userService) UpdateCity(ctx context.Context, identity models.Identity, city string) (bool, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return false, nil
	}
	if err := validateUser(ctx, models.User{City: city}, validators.FieldCity); err != nil {
		return false, err
	}

	if err := s.userRepository.UpdateCity(ctx, identity.UserID, city); err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", identity.UserID).Msg("city update failed")
		return false, fmt.Errorf("city update failed: %w", err)
	}

	return true, nil
}

// Profile returns the stored user together with the number of recorded
// weather lookups.
func (s *userService) Profile(ctx context.Context, identity models.Identity) (models.Profile, error) {
	user, err := s.GetUser(ctx, identity)
	if err != nil {
		return models.Profile{}, err
	}

	count, err := s.weatherQueryRepository.CountQueries(ctx, identity.UserID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", identity.UserID).Msg("counting weather queries failed")
		return models.Profile{}, fmt.Errorf("counting weather queries failed: %w", err)
	}

	return models.Profile{User: user, QueryCount: count}, nil
}

// UpdatePreferences stores prefs. Unknown unit systems fall back to metric.
func (s *userService) UpdatePreferences(ctx context.Context, identity models.Identity, prefs models.Preferences) error {
	prefs.Units = models.ParseUnits(string(prefs.Units))

	if err := s.userRepository.UpdatePreferences(ctx, identity.UserID, prefs); err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", identity.UserID).Msg("preferences update failed")
		return fmt.Errorf("preferences update failed: %w", err)
	}

	return nil
}
