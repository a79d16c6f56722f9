package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func requiredConfig() *StructuredConfig {
	return &StructuredConfig{
		App:     App{SessionSignKey: "sign"},
		Storage: Storage{DB: DB{DSN: "sqlite://weather.db"}},
		Weather: Weather{APIKey: "owm"},
	}
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs fails
// validation for every required group.
func TestBuild_EmptyBuilder(t *testing.T) {
	_, err := newConfigBuilder().build()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
	assert.ErrorIs(t, err, ErrInvalidWeatherConfigs)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_AppliesDefaults verifies that optional settings fall back to
// their defaults once the required ones are present.
func TestBuild_AppliesDefaults(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, requiredConfig())

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultLogLevel, cfg.App.LogLevel)
	assert.Equal(t, DefaultSessionIssuer, cfg.App.SessionIssuer)
	assert.Equal(t, DefaultSessionDuration, cfg.App.SessionDuration)
	assert.Equal(t, DefaultWeatherBaseURL, cfg.Weather.BaseURL)
	assert.Equal(t, DefaultForecastSamples, cfg.Weather.ForecastSamples)
	assert.Equal(t, DefaultWeatherTimeout, cfg.Weather.RequestTimeout)
	assert.False(t, cfg.App.SecureCookies)
}

// TestBuild_EarlierSourceWins verifies that the first non-zero value of a
// field is kept and later sources only fill gaps.
func TestBuild_EarlierSourceWins(t *testing.T) {
	first := requiredConfig()
	first.Server.HTTPAddress = "127.0.0.1:8000"

	second := &StructuredConfig{
		Server:  Server{HTTPAddress: "0.0.0.0:9000", RequestTimeout: 7 * time.Second},
		Weather: Weather{APIKey: "other", ForecastSamples: 8},
	}

	b := newConfigBuilder()
	b.configs = append(b.configs, first, second)

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8000", cfg.Server.HTTPAddress)
	assert.Equal(t, 7*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "owm", cfg.Weather.APIKey)
	assert.Equal(t, 8, cfg.Weather.ForecastSamples)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_NoPath verifies that withJSON is a no-op without a path.
func TestWithJSON_NoPath(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()

	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

// TestWithJSON_LoadsFileFromEarlierSource verifies that the JSON path is
// picked up from an earlier source and the file is appended last.
func TestWithJSON_LoadsFileFromEarlierSource(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"weather": map[string]any{"api_key": "json-key"},
		"storage": map[string]any{"db": map[string]any{"dsn": "sqlite://json.db"}},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		App:          App{SessionSignKey: "sign"},
		JSONFilePath: path,
	})

	cfg, err := b.withJSON().build()
	require.NoError(t, err)

	assert.Len(t, b.configs, 2)
	assert.Equal(t, "json-key", cfg.Weather.APIKey)
	assert.Equal(t, "sqlite://json.db", cfg.Storage.DB.DSN)
	assert.Equal(t, path, cfg.JSONFilePath)
}

// TestWithJSON_BadFile verifies that a missing JSON file is reported.
func TestWithJSON_BadFile(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/config.json"})

	_, err := b.withJSON().build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

// TestGetStructuredConfig_Priority verifies that environment values beat the JSON
// file and that flags beat both.
func TestGetStructuredConfig_Priority(t *testing.T) {
	clearEnvVars(t)
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	path := writeTempJSONConfig(t, map[string]any{
		"app":     map[string]any{"session_sign_key": "json-sign", "session_issuer": "json-issuer"},
		"storage": map[string]any{"db": map[string]any{"dsn": "sqlite://json.db"}},
		"weather": map[string]any{"api_key": "json-key", "forecast_samples": 24},
	})
	setEnvVars(t, map[string]string{
		"CONFIG":               path,
		"APP_SESSION_SIGN_KEY": "env-sign",
		"WEATHER_API_KEY":      "env-key",
	})
	resetFlags(t, "-weather-api-key", "flag-key")

	cfg, err := GetStructuredConfig()
	require.NoError(t, err)

	assert.Equal(t, "flag-key", cfg.Weather.APIKey)
	assert.Equal(t, "env-sign", cfg.App.SessionSignKey)
	assert.Equal(t, "json-issuer", cfg.App.SessionIssuer)
	assert.Equal(t, "sqlite://json.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 24, cfg.Weather.ForecastSamples)
}
