// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// weather dashboard. It aggregates all sub-configurations and is populated
// by merging values from command-line flags, environment variables (including
// an optional .env file), and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds session settings: the signing key, issuer and lifetime of
	// session tokens.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the persistence backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Weather holds the weather provider credentials and request settings.
	Weather Weather `envPrefix:"WEATHER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values: sessions and logging.
type App struct {
	// SessionSignKey is the secret key used to sign and verify session
	// tokens. Must be kept confidential. Required.
	// Env: APP_SESSION_SIGN_KEY
	SessionSignKey string `env:"SESSION_SIGN_KEY"`

	// SessionIssuer is the "iss" claim embedded in every session token.
	// Env: APP_SESSION_ISSUER
	SessionIssuer string `env:"SESSION_ISSUER"`

	// SessionDuration specifies how long a session stays valid after login
	// (e.g. "24h", "30m").
	// Env: APP_SESSION_DURATION
	SessionDuration time.Duration `env:"SESSION_DURATION"`

	// SecureCookies marks the session cookie as Secure (HTTPS only).
	// Env: APP_SECURE_COOKIES
	SecureCookies bool `env:"SECURE_COOKIES"`

	// LogLevel is the minimum zerolog level written to the log
	// ("debug", "info", "warn", "error").
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage groups the configuration for the storage backend.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the connection string. A "postgres://" or "postgresql://" DSN
	// selects PostgreSQL, a "sqlite://" or "file:" DSN selects SQLite.
	// Required.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "127.0.0.1:5000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request. Zero disables the limit.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Weather holds settings of the OpenWeatherMap integration.
type Weather struct {
	// APIKey is the provider API key. Required.
	// Env: WEATHER_API_KEY
	APIKey string `env:"API_KEY"`

	// BaseURL is the provider API root, e.g.
	// "https://api.openweathermap.org/data/2.5".
	// Env: WEATHER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// ForecastSamples is the number of 3-hour samples requested from the
	// forecast endpoint.
	// Env: WEATHER_FORECAST_SAMPLES
	ForecastSamples int `env:"FORECAST_SAMPLES"`

	// RequestTimeout bounds a single call to the provider.
	// Env: WEATHER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (earlier sources win for non-zero fields):
//  1. Command-line flags
//  2. Environment variables (a .env file in the working directory is loaded
//     first and never overrides variables that are already set)
//  3. JSON file (path resolved from sources 1 and 2)
//
// Defaults are applied to fields that are still empty after merging.
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags().
		withEnv().
		withJSON().
		build()
}
