package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN (postgres://... or sqlite://...)
//	-c/-config json file path with configs
//	-session-sign-key session token signing key
//	-session-issuer session token issuer name
//	-session-duration session lifetime (e.g., "24h", "30m")
//	-secure-cookies mark the session cookie as Secure
//	-log-level minimum log level (debug, info, warn, error)
//	-request-timeout inbound request timeout (e.g., "30s", "1m")
//	-weather-api-key OpenWeatherMap API key
//	-weather-url OpenWeatherMap API base URL
//	-forecast-samples number of 3-hour forecast samples to request
//	-weather-timeout weather provider request timeout
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var sessionSignKey string
	var sessionIssuer string
	var sessionDuration time.Duration
	var secureCookies bool
	var logLevel string
	var requestTimeout time.Duration
	var weatherAPIKey string
	var weatherBaseURL string
	var forecastSamples int
	var weatherTimeout time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&sessionSignKey, "session-sign-key", "", "Session token signing key")
	flag.StringVar(&sessionIssuer, "session-issuer", "", "Session token issuer")
	flag.DurationVar(&sessionDuration, "session-duration", 0, "Session duration (e.g., 24h, 30m)")
	flag.BoolVar(&secureCookies, "secure-cookies", false, "Send the session cookie over HTTPS only")
	flag.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&weatherAPIKey, "weather-api-key", "", "OpenWeatherMap API key")
	flag.StringVar(&weatherBaseURL, "weather-url", "", "OpenWeatherMap API base URL")
	flag.IntVar(&forecastSamples, "forecast-samples", 0, "Number of 3-hour forecast samples")
	flag.DurationVar(&weatherTimeout, "weather-timeout", 0, "Weather provider request timeout")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			SessionSignKey:  sessionSignKey,
			SessionIssuer:   sessionIssuer,
			SessionDuration: sessionDuration,
			SecureCookies:   secureCookies,
			LogLevel:        logLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Weather: Weather{
			APIKey:          weatherAPIKey,
			BaseURL:         weatherBaseURL,
			ForecastSamples: forecastSamples,
			RequestTimeout:  weatherTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
