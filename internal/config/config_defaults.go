package config

import "time"

// Values used for settings that no source provided.
const (
	DefaultHTTPAddress     = "127.0.0.1:5000"
	DefaultLogLevel        = "info"
	DefaultSessionIssuer   = "go-weather-dashboard"
	DefaultSessionDuration = 24 * time.Hour
	DefaultWeatherBaseURL  = "https://api.openweathermap.org/data/2.5"
	DefaultForecastSamples = 56
	DefaultWeatherTimeout  = 10 * time.Second
)

// setDefaults fills every optional field that is still zero after merging.
// Required secrets are left untouched so that validate can reject them.
func (cfg *StructuredConfig) setDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = DefaultLogLevel
	}
	if cfg.App.SessionIssuer == "" {
		cfg.App.SessionIssuer = DefaultSessionIssuer
	}
	if cfg.App.SessionDuration == 0 {
		cfg.App.SessionDuration = DefaultSessionDuration
	}
	if cfg.Weather.BaseURL == "" {
		cfg.Weather.BaseURL = DefaultWeatherBaseURL
	}
	if cfg.Weather.ForecastSamples == 0 {
		cfg.Weather.ForecastSamples = DefaultForecastSamples
	}
	if cfg.Weather.RequestTimeout == 0 {
		cfg.Weather.RequestTimeout = DefaultWeatherTimeout
	}
}
