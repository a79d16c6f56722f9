// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-weather-dashboard/internal/config"
	"github.com/MKhiriev/go-weather-dashboard/internal/logger"
	"github.com/MKhiriev/go-weather-dashboard/models"
	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBaseURL = "http://owm.test/data/2.5"

type recordedCall struct {
	endpoint string
	outcome  string
}

type fakeRecorder struct {
	mu    sync.Mutex
	calls []recordedCall
}

func (f *fakeRecorder) RecordProviderRequest(endpoint, outcome string, _ time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, recordedCall{endpoint: endpoint, outcome: outcome})
}

// newTestClient builds a client whose transport is intercepted by httpmock.
func newTestClient(t *testing.T, samples int) (*OpenWeatherClient, *fakeRecorder) {
	t.Helper()

	recorder := &fakeRecorder{}
	c, err := NewOpenWeatherClient(config.Weather{
		APIKey:          "test-key",
		BaseURL:         testBaseURL + "/",
		ForecastSamples: samples,
		RequestTimeout:  time.Second,
	}, recorder, logger.Nop())
	require.NoError(t, err)

	c.now = func() time.Time { return time.Date(2026, 3, 9, 12, 0, 0, 0, time.Local) }

	httpmock.ActivateNonDefault(c.client.GetClient())
	t.Cleanup(httpmock.DeactivateAndReset)

	return c, recorder
}

func currentSuccessBody() string {
	return `{
  "weather": [{ "id": 803, "main": "Clouds", "description": "broken CLOUDS", "icon": "04d" }],
  "main": { "temp": 14.5, "feels_like": 13.49, "pressure": 1014, "humidity": 72 },
  "wind": { "speed": 4.12 },
  "sys": { "country": "FI" },
  "timezone": 7200,
  "name": "Helsinki",
  "cod": 200
}`
}

func forecastSuccessBody() string {
	return `{
  "cod": "200",
  "cnt": 3,
  "list": [
    { "dt": 1700000000, "main": { "temp": 10.2, "humidity": 80 }, "weather": [{ "description": "light rain", "icon": "10n" }], "wind": { "speed": 3.5 } },
    { "dt": 1700003600, "main": { "temp": 9.8, "humidity": 82 }, "weather": [{ "description": "light rain", "icon": "10n" }], "wind": { "speed": 3.1 } },
    { "dt": 1700014400, "main": { "temp": 8.9, "humidity": 85 }, "weather": [{ "description": "overcast clouds", "icon": "04n" }], "wind": { "speed": 2.2 } }
  ],
  "city": { "name": "Paris", "country": "FR", "timezone": 3600 }
}`
}

// ── FetchCurrent ─────────────────────────────────────────────────────────────

func TestFetchCurrent_Success(t *testing.T) {
	c, recorder := newTestClient(t, 56)

	httpmock.RegisterResponder(http.MethodGet, testBaseURL+"/weather",
		func(req *http.Request) (*http.Response, error) {
			q := req.URL.Query()
			assert.Equal(t, "Helsinki", q.Get("q"))
			assert.Equal(t, "test-key", q.Get("appid"))
			assert.Equal(t, "metric", q.Get("units"))
			return httpmock.NewStringResponse(http.StatusOK, currentSuccessBody()), nil
		})

	result := c.FetchCurrent(context.Background(), "Helsinki", models.UnitsMetric)

	require.Equal(t, OutcomeOK, result.Outcome)
	require.NoError(t, result.Err)
	snapshot := result.Snapshot()
	require.NotNil(t, snapshot)

	assert.Equal(t, "Helsinki", snapshot.City)
	assert.Equal(t, "FI", snapshot.Country)
	assert.Equal(t, 15, snapshot.Temperature) // 14.5 rounds half away from zero
	assert.Equal(t, 13, snapshot.FeelsLike)
	assert.Equal(t, "Broken clouds", snapshot.Description)
	assert.Equal(t, "04d", snapshot.Icon)
	assert.Equal(t, 72, snapshot.Humidity)
	assert.Equal(t, 1014, snapshot.Pressure)
	assert.InDelta(t, 4.12, snapshot.WindSpeed, 0.001)
	assert.Equal(t, c.now(), snapshot.Timestamp)

	assert.Equal(t, []recordedCall{{endpoint: "weather", outcome: "ok"}}, recorder.calls)
	assert.Equal(t, 1, httpmock.GetTotalCallCount())
}

func TestFetchCurrent_ImperialUnits(t *testing.T) {
	c, _ := newTestClient(t, 56)

	httpmock.RegisterResponder(http.MethodGet, testBaseURL+"/weather",
		func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, "imperial", req.URL.Query().Get("units"))
			return httpmock.NewStringResponse(http.StatusOK, currentSuccessBody()), nil
		})

	result := c.FetchCurrent(context.Background(), "Helsinki", models.UnitsImperial)
	assert.Equal(t, OutcomeOK, result.Outcome)
}

func TestFetchCurrent_Failures(t *testing.T) {
	tests := []struct {
		name      string
		responder httpmock.Responder
		outcome   Outcome
		sentinel  error
	}{
		{
			name:      "unknown city",
			responder: httpmock.NewStringResponder(http.StatusNotFound, `{"cod":"404","message":"city not found"}`),
			outcome:   OutcomeNotFound,
			sentinel:  ErrCityNotFound,
		},
		{
			name:      "invalid api key",
			responder: httpmock.NewStringResponder(http.StatusUnauthorized, `{"cod":401}`),
			outcome:   OutcomeProviderError,
			sentinel:  ErrUnauthorized,
		},
		{
			name:      "server error",
			responder: httpmock.NewStringResponder(http.StatusServiceUnavailable, ``),
			outcome:   OutcomeProviderError,
			sentinel:  ErrProviderUnavailable,
		},
		{
			name:      "network failure",
			responder: httpmock.NewErrorResponder(errors.New("connection refused")),
			outcome:   OutcomeProviderError,
			sentinel:  ErrProviderUnavailable,
		},
		{
			name:      "invalid json",
			responder: httpmock.NewStringResponder(http.StatusOK, `{invalid json`),
			outcome:   OutcomeParseError,
			sentinel:  ErrMalformedResponse,
		},
		{
			name:      "empty weather list",
			responder: httpmock.NewStringResponder(http.StatusOK, `{"name":"X","weather":[],"main":{"temp":1}}`),
			outcome:   OutcomeParseError,
			sentinel:  ErrMalformedResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, recorder := newTestClient(t, 56)
			httpmock.RegisterResponder(http.MethodGet, testBaseURL+"/weather", tt.responder)

			result := c.FetchCurrent(context.Background(), "Atlantis", models.UnitsMetric)

			assert.Equal(t, tt.outcome, result.Outcome)
			assert.ErrorIs(t, result.Err, tt.sentinel)
			assert.Nil(t, result.Snapshot())
			assert.Equal(t, []recordedCall{{endpoint: "weather", outcome: string(tt.outcome)}}, recorder.calls)
		})
	}
}

// ── FetchForecastSamples ─────────────────────────────────────────────────────

func TestFetchForecastSamples_Success(t *testing.T) {
	c, recorder := newTestClient(t, 24)

	httpmock.RegisterResponder(http.MethodGet, testBaseURL+"/forecast",
		func(req *http.Request) (*http.Response, error) {
			q := req.URL.Query()
			assert.Equal(t, "Paris", q.Get("q"))
			assert.Equal(t, "24", q.Get("cnt"))
			assert.Equal(t, "test-key", q.Get("appid"))
			return httpmock.NewStringResponse(http.StatusOK, forecastSuccessBody()), nil
		})

	result := c.FetchForecastSamples(context.Background(), "Paris", models.UnitsMetric)

	require.Equal(t, OutcomeOK, result.Outcome)
	samples := result.Samples()
	require.Len(t, samples, 3)

	// 1700000000 is 2023-11-14 22:13:20 UTC, i.e. 23:13:20 at UTC+1.
	assert.Equal(t, 2023, samples[0].Time.Year())
	assert.Equal(t, 14, samples[0].Time.Day())
	assert.Equal(t, 23, samples[0].Time.Hour())
	_, offset := samples[0].Time.Zone()
	assert.Equal(t, 3600, offset)

	// One hour later the city is already on the 15th.
	assert.Equal(t, 15, samples[1].Time.Day())

	assert.InDelta(t, 10.2, samples[0].Temperature, 0.001)
	assert.Equal(t, "light rain", samples[0].Description)
	assert.Equal(t, "10n", samples[0].Icon)
	assert.InDelta(t, 80, samples[0].Humidity, 0.001)
	assert.InDelta(t, 3.5, samples[0].WindSpeed, 0.001)
	assert.Equal(t, "overcast clouds", samples[2].Description)

	assert.Equal(t, []recordedCall{{endpoint: "forecast", outcome: "ok"}}, recorder.calls)
}

func TestFetchForecastSamples_DefaultSampleCount(t *testing.T) {
	c, _ := newTestClient(t, 0)

	httpmock.RegisterResponder(http.MethodGet, testBaseURL+"/forecast",
		func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, "56", req.URL.Query().Get("cnt"))
			return httpmock.NewStringResponse(http.StatusOK, `{"list":[],"city":{"timezone":0}}`), nil
		})

	result := c.FetchForecastSamples(context.Background(), "Nowhere", models.UnitsMetric)

	assert.Equal(t, OutcomeOK, result.Outcome)
	assert.NotNil(t, result.Samples())
	assert.Empty(t, result.Samples())
}

func TestFetchForecastSamples_Failures(t *testing.T) {
	tests := []struct {
		name      string
		responder httpmock.Responder
		outcome   Outcome
	}{
		{"unknown city", httpmock.NewStringResponder(http.StatusNotFound, `{"cod":"404"}`), OutcomeNotFound},
		{"server error", httpmock.NewStringResponder(http.StatusInternalServerError, `oops`), OutcomeProviderError},
		{"network failure", httpmock.NewErrorResponder(errors.New("timeout")), OutcomeProviderError},
		{"invalid json", httpmock.NewStringResponder(http.StatusOK, `[`), OutcomeParseError},
		{
			"sample without weather",
			httpmock.NewStringResponder(http.StatusOK, `{"list":[{"dt":1,"main":{"temp":1},"weather":[]}],"city":{"timezone":0}}`),
			OutcomeParseError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, recorder := newTestClient(t, 56)
			httpmock.RegisterResponder(http.MethodGet, testBaseURL+"/forecast", tt.responder)

			result := c.FetchForecastSamples(context.Background(), "Atlantis", models.UnitsMetric)

			assert.Equal(t, tt.outcome, result.Outcome)
			assert.Error(t, result.Err)
			assert.NotNil(t, result.Samples())
			assert.Empty(t, result.Samples())
			require.Len(t, recorder.calls, 1)
			assert.Equal(t, string(tt.outcome), recorder.calls[0].outcome)
		})
	}
}

// ── construction and helpers ─────────────────────────────────────────────────

func TestNewOpenWeatherClient_Validation(t *testing.T) {
	_, err := NewOpenWeatherClient(config.Weather{BaseURL: testBaseURL}, nil, logger.Nop())
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = NewOpenWeatherClient(config.Weather{APIKey: "k", BaseURL: "  "}, nil, logger.Nop())
	assert.Error(t, err)

	c, err := NewOpenWeatherClient(config.Weather{APIKey: "k", BaseURL: testBaseURL}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultForecastSamples, c.forecastSamples)
}

func TestFetch_WithoutRecorder(t *testing.T) {
	c, err := NewOpenWeatherClient(config.Weather{APIKey: "k", BaseURL: testBaseURL}, nil, nil)
	require.NoError(t, err)

	httpmock.ActivateNonDefault(c.client.GetClient())
	t.Cleanup(httpmock.DeactivateAndReset)
	httpmock.RegisterResponder(http.MethodGet, testBaseURL+"/weather", httpmock.NewStringResponder(http.StatusNotFound, ``))

	result := c.FetchCurrent(context.Background(), "Atlantis", models.UnitsMetric)
	assert.Equal(t, OutcomeNotFound, result.Outcome)
}

func TestCapitalize(t *testing.T) {
	tests := map[string]string{
		"":                 "",
		"clear sky":        "Clear sky",
		"HEAVY RAIN":       "Heavy rain",
		"ébène nuageux":    "Ébène nuageux",
		"x":                "X",
		"scattered Clouds": "Scattered clouds",
	}

	for in, want := range tests {
		assert.Equal(t, want, capitalize(in), in)
	}
}

func TestRoundToInt(t *testing.T) {
	assert.Equal(t, 3, roundToInt(2.5))
	assert.Equal(t, -3, roundToInt(-2.5))
	assert.Equal(t, 2, roundToInt(2.49))
	assert.Equal(t, 0, roundToInt(-0.4))
}

func TestResultAccessors(t *testing.T) {
	snapshot := &models.CurrentWeather{City: "Oslo"}
	assert.Same(t, snapshot, NewCurrentResult(snapshot).Snapshot())

	failed := FailedCurrentResult(nil)
	assert.Equal(t, OutcomeProviderError, failed.Outcome)
	assert.ErrorIs(t, failed.Err, ErrProviderUnavailable)

	assert.Empty(t, NewForecastResult(nil).Samples())
	assert.NotNil(t, NewForecastResult(nil).Samples())
	assert.Equal(t, OutcomeNotFound, FailedForecastResult(ErrCityNotFound).Outcome)
}
