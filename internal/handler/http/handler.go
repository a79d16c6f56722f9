package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-weather-dashboard/internal/config"
	"github.com/MKhiriev/go-weather-dashboard/internal/logger"
	"github.com/MKhiriev/go-weather-dashboard/internal/service"
	"github.com/MKhiriev/go-weather-dashboard/internal/views"
)

// MetricsRecorder collects per-request metrics and exposes them for scraping.
type MetricsRecorder interface {
	RecordHTTPRequest(method, route string, statusCode int, duration time.Duration)
	Handler() http.Handler
}

type Handler struct {
	services *service.Services
	renderer *views.Renderer
	metrics  MetricsRecorder

	sessionSignKey  string
	sessionDuration time.Duration
	secureCookies   bool
	requestTimeout  time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, renderer *views.Renderer, metrics MetricsRecorder, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:        services,
		renderer:        renderer,
		metrics:         metrics,
		sessionSignKey:  cfg.App.SessionSignKey,
		sessionDuration: cfg.App.SessionDuration,
		secureCookies:   cfg.App.SecureCookies,
		requestTimeout:  cfg.Server.RequestTimeout,
		logger:          logger,
	}
}
