package main

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/go-weather-dashboard/internal/adapter"
	"github.com/MKhiriev/go-weather-dashboard/internal/config"
	"github.com/MKhiriev/go-weather-dashboard/internal/handler"
	"github.com/MKhiriev/go-weather-dashboard/internal/logger"
	"github.com/MKhiriev/go-weather-dashboard/internal/metrics"
	"github.com/MKhiriev/go-weather-dashboard/internal/server"
	"github.com/MKhiriev/go-weather-dashboard/internal/service"
	"github.com/MKhiriev/go-weather-dashboard/internal/store"
	"github.com/MKhiriev/go-weather-dashboard/internal/views"
	"github.com/MKhiriev/go-weather-dashboard/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const startupTimeout = 30 * time.Second

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("weather-dashboard", "info").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("weather-dashboard", cfg.App.LogLevel)
	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("weather_base_url", cfg.Weather.BaseURL).
		Dur("session_duration", cfg.App.SessionDuration).
		Msg("received configs")

	appMetrics, err := metrics.New(prometheus.NewRegistry())
	if err != nil {
		log.Fatal().Err(err).Msg("error registering metrics")
	}

	provider, err := adapter.NewOpenWeatherClient(cfg.Weather, appMetrics, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating weather provider")
	}

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, provider, *cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	renderer, err := views.New()
	if err != nil {
		log.Fatal().Err(err).Msg("error parsing templates")
	}

	handlers, err := handler.NewHandlers(services, renderer, appMetrics, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
