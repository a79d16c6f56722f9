// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound integration with the weather
// provider (OpenWeatherMap).
//
// The primary abstraction is [WeatherProvider], which decouples the service
// layer from the provider's HTTP API. Every call returns a result value that
// carries an [Outcome]; provider failures never surface as Go errors to the
// caller; instead the result holds no data and the cause is kept in its Err
// field for logging and metrics.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that the outcome can be derived with [errors.Is].
package adapter

import (
	"context"
	"time"

	"github.com/MKhiriev/go-weather-dashboard/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/weather_provider_mock.go -package=mock

// WeatherProvider fetches weather data for a city by name.
// Implementations must be safe for concurrent use.
type WeatherProvider interface {
	// FetchCurrent retrieves the current conditions for city in the given
	// unit system. On any failure the result carries no snapshot.
	FetchCurrent(ctx context.Context, city string, units models.Units) CurrentResult

	// FetchForecastSamples retrieves the fixed-interval forecast samples for
	// city in the given unit system. On any failure the result carries no
	// samples.
	FetchForecastSamples(ctx context.Context, city string, units models.Units) ForecastResult
}

// MetricsRecorder receives one observation per provider call.
type MetricsRecorder interface {
	RecordProviderRequest(endpoint, outcome string, duration time.Duration)
}
