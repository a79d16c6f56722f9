package config

import (
	"flag"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags gives every test a fresh flag.CommandLine and the given
// arguments, restoring os.Args afterwards.
func resetFlags(t *testing.T, args ...string) {
	t.Helper()
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })

	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	os.Args = append([]string{"weather-dashboard"}, args...)
}

// TestNetAddress_String tests the String method of NetAddress
func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{
			name:     "empty address",
			addr:     NetAddress{},
			expected: "",
		},
		{
			name:     "localhost with port",
			addr:     NetAddress{Host: "localhost", Port: 5000},
			expected: "localhost:5000",
		},
		{
			name:     "IP address with port",
			addr:     NetAddress{Host: "127.0.0.1", Port: 9090},
			expected: "127.0.0.1:9090",
		},
		{
			name:     "only port no host",
			addr:     NetAddress{Port: 8080},
			expected: ":8080",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

// TestNetAddress_Set tests the Set method of NetAddress
func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectError  bool
		errorMsg     string
		expectedAddr NetAddress
	}{
		{
			name:         "valid localhost",
			input:        "localhost:5000",
			expectedAddr: NetAddress{Host: "localhost", Port: 5000},
		},
		{
			name:         "valid IPv4",
			input:        "0.0.0.0:8080",
			expectedAddr: NetAddress{Host: "0.0.0.0", Port: 8080},
		},
		{
			name:        "missing colon",
			input:       "localhost5000",
			expectError: true,
			errorMsg:    "need address in a form `host:port`",
		},
		{
			name:        "non numeric port",
			input:       "localhost:http",
			expectError: true,
		},
		{
			name:        "port zero",
			input:       "localhost:0",
			expectError: true,
			errorMsg:    "port number must be in range 1-65535",
		},
		{
			name:        "port too large",
			input:       "localhost:70000",
			expectError: true,
			errorMsg:    "port number must be in range 1-65535",
		},
		{
			name:        "hostname instead of IP",
			input:       "example.com:80",
			expectError: true,
			errorMsg:    "incorrect IP-address provided",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)

			if tt.expectError {
				require.Error(t, err)
				if tt.errorMsg != "" {
					assert.EqualError(t, err, tt.errorMsg)
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedAddr, addr)
		})
	}
}

func TestParseFlags(t *testing.T) {
	t.Run("all flags", func(t *testing.T) {
		// Arrange
		resetFlags(t,
			"-a", "127.0.0.1:8000",
			"-d", "sqlite://weather.db",
			"-config", "/etc/weather.json",
			"-session-sign-key", "sign",
			"-session-issuer", "issuer",
			"-session-duration", "2h",
			"-secure-cookies",
			"-log-level", "warn",
			"-request-timeout", "15s",
			"-weather-api-key", "key",
			"-weather-url", "http://owm.local",
			"-forecast-samples", "40",
			"-weather-timeout", "3s",
		)

		// Act
		cfg := ParseFlags()

		// Assert
		require.NotNil(t, cfg)
		assert.Equal(t, "127.0.0.1:8000", cfg.Server.HTTPAddress)
		assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
		assert.Equal(t, "sqlite://weather.db", cfg.Storage.DB.DSN)
		assert.Equal(t, "/etc/weather.json", cfg.JSONFilePath)
		assert.Equal(t, "sign", cfg.App.SessionSignKey)
		assert.Equal(t, "issuer", cfg.App.SessionIssuer)
		assert.Equal(t, 2*time.Hour, cfg.App.SessionDuration)
		assert.True(t, cfg.App.SecureCookies)
		assert.Equal(t, "warn", cfg.App.LogLevel)
		assert.Equal(t, "key", cfg.Weather.APIKey)
		assert.Equal(t, "http://owm.local", cfg.Weather.BaseURL)
		assert.Equal(t, 40, cfg.Weather.ForecastSamples)
		assert.Equal(t, 3*time.Second, cfg.Weather.RequestTimeout)
	})

	t.Run("no flags", func(t *testing.T) {
		// Arrange
		resetFlags(t)

		// Act
		cfg := ParseFlags()

		// Assert
		require.NotNil(t, cfg)
		assert.Equal(t, &StructuredConfig{}, cfg)
	})

	t.Run("short config alias", func(t *testing.T) {
		// Arrange
		resetFlags(t, "-c", "cfg.json")

		// Act
		cfg := ParseFlags()

		// Assert
		assert.Equal(t, "cfg.json", cfg.JSONFilePath)
	})
}
