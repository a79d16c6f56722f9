package service

import (
	"fmt"

	"github.com/MKhiriev/go-weather-dashboard/internal/adapter"
	"github.com/MKhiriev/go-weather-dashboard/internal/config"
	"github.com/MKhiriev/go-weather-dashboard/internal/logger"
	"github.com/MKhiriev/go-weather-dashboard/internal/store"
	"github.com/MKhiriev/go-weather-dashboard/models"
)

type Services struct {
	AuthService    AuthService
	UserService    UserService
	WeatherService WeatherService
	AppInfoService AppInfoService
	HealthService  HealthService
}

func NewServices(
	storages *store.Storages,
	provider adapter.WeatherProvider,
	cfg config.StructuredConfig,
	buildInfo models.AppBuildInfo,
	logger *logger.Logger,
) (*Services, error) {
	appInfoService, err := NewAppInfoService(buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, storages.LoginHistoryRepository, cfg.App, logger),
		UserService:    NewUserService(storages.UserRepository, storages.WeatherQueryRepository, logger),
		WeatherService: NewWeatherService(storages.UserRepository, storages.WeatherQueryRepository, provider, logger),
		AppInfoService: appInfoService,
		HealthService:  NewHealthService(storages, logger),
	}, nil
}
