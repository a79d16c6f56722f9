package handler

import (
	"github.com/MKhiriev/go-weather-dashboard/internal/config"
	"github.com/MKhiriev/go-weather-dashboard/internal/handler/http"
	"github.com/MKhiriev/go-weather-dashboard/internal/logger"
	"github.com/MKhiriev/go-weather-dashboard/internal/service"
	"github.com/MKhiriev/go-weather-dashboard/internal/views"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, renderer *views.Renderer, metrics http.MetricsRecorder, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}
	if renderer == nil {
		return nil, errNoRenderer
	}

	return &Handlers{
		HTTP: http.NewHandler(services, renderer, metrics, cfg, logger),
	}, nil
}
