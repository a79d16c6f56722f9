package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/MKhiriev/go-weather-dashboard/internal/config"
	"github.com/MKhiriev/go-weather-dashboard/internal/logger"
	"github.com/MKhiriev/go-weather-dashboard/internal/utils"
	"github.com/MKhiriev/go-weather-dashboard/models"
	"github.com/rs/zerolog"
)

const (
	endpointCurrent  = "weather"
	endpointForecast = "forecast"
)

type currentResponse struct {
	Name    string           `json:"name"`
	Weather []weatherSummary `json:"weather"`
	Main    struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Pressure  float64 `json:"pressure"`
		Humidity  float64 `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Sys struct {
		Country string `json:"country"`
	} `json:"sys"`
}

type forecastResponse struct {
	List []struct {
		Dt      int64            `json:"dt"`
		Weather []weatherSummary `json:"weather"`
		Main    struct {
			Temp     float64 `json:"temp"`
			Humidity float64 `json:"humidity"`
		} `json:"main"`
		Wind struct {
			Speed float64 `json:"speed"`
		} `json:"wind"`
	} `json:"list"`
	City struct {
		Name     string `json:"name"`
		Timezone int    `json:"timezone"`
	} `json:"city"`
}

type weatherSummary struct {
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// OpenWeatherClient is the OpenWeatherMap implementation of [WeatherProvider].
type OpenWeatherClient struct {
	client *utils.HTTPClient

	apiKey          string
	forecastSamples int

	metrics MetricsRecorder
	logger  *logger.Logger
	now     func() time.Time
}

// NewOpenWeatherClient constructs an OpenWeatherMap client from cfg.
// recorder may be nil, in which case no metrics are recorded.
//
// Returns an error if the API key or base URL is missing.
func NewOpenWeatherClient(cfg config.Weather, recorder MetricsRecorder, logger *logger.Logger) (*OpenWeatherClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: empty api key", ErrUnauthorized)
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("empty weather provider base url")
	}

	samples := cfg.ForecastSamples
	if samples < 1 {
		samples = config.DefaultForecastSamples
	}

	return &OpenWeatherClient{
		client:          utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		apiKey:          cfg.APIKey,
		forecastSamples: samples,
		metrics:         recorder,
		logger:          logger,
		now:             time.Now,
	}, nil
}

// FetchCurrent implements [WeatherProvider]. It GETs /weather?q=city and
// converts the payload into a [models.CurrentWeather] stamped with the
// current local time.
func (c *OpenWeatherClient) FetchCurrent(ctx context.Context, city string, units models.Units) CurrentResult {
	start := time.Now()

	var payload currentResponse
	err := c.get(ctx, endpointCurrent, c.queryParams(city, units), &payload)
	if err == nil && len(payload.Weather) == 0 {
		err = fmt.Errorf("%w: empty weather list", ErrMalformedResponse)
	}

	if err != nil {
		result := FailedCurrentResult(err)
		c.observe(ctx, endpointCurrent, city, result.Outcome, err, start)
		return result
	}

	snapshot := &models.CurrentWeather{
		City:        payload.Name,
		Country:     payload.Sys.Country,
		Temperature: roundToInt(payload.Main.Temp),
		FeelsLike:   roundToInt(payload.Main.FeelsLike),
		Description: capitalize(payload.Weather[0].Description),
		Icon:        payload.Weather[0].Icon,
		Humidity:    roundToInt(payload.Main.Humidity),
		Pressure:    roundToInt(payload.Main.Pressure),
		WindSpeed:   payload.Wind.Speed,
		Timestamp:   c.now(),
	}

	c.observe(ctx, endpointCurrent, city, OutcomeOK, nil, start)
	return NewCurrentResult(snapshot)
}

// FetchForecastSamples implements [WeatherProvider]. It GETs
// /forecast?q=city&cnt=N and returns the samples in the order received, with
// timestamps converted into the city's time zone.
func (c *OpenWeatherClient) FetchForecastSamples(ctx context.Context, city string, units models.Units) ForecastResult {
	start := time.Now()

	params := c.queryParams(city, units)
	params["cnt"] = strconv.Itoa(c.forecastSamples)

	var payload forecastResponse
	err := c.get(ctx, endpointForecast, params, &payload)
	if err != nil {
		result := FailedForecastResult(err)
		c.observe(ctx, endpointForecast, city, result.Outcome, err, start)
		return result
	}

	zone := time.FixedZone(payload.City.Name, payload.City.Timezone)
	samples := make([]models.ForecastSample, 0, len(payload.List))
	for i, item := range payload.List {
		if len(item.Weather) == 0 {
			err = fmt.Errorf("%w: empty weather list in sample %d", ErrMalformedResponse, i)
			c.observe(ctx, endpointForecast, city, OutcomeParseError, err, start)
			return FailedForecastResult(err)
		}

		samples = append(samples, models.ForecastSample{
			Time:        time.Unix(item.Dt, 0).In(zone),
			Temperature: item.Main.Temp,
			Description: item.Weather[0].Description,
			Icon:        item.Weather[0].Icon,
			Humidity:    item.Main.Humidity,
			WindSpeed:   item.Wind.Speed,
		})
	}

	c.observe(ctx, endpointForecast, city, OutcomeOK, nil, start)
	return NewForecastResult(samples)
}

func (c *OpenWeatherClient) queryParams(city string, units models.Units) map[string]string {
	return map[string]string{
		"q":     city,
		"appid": c.apiKey,
		"units": string(models.ParseUnits(string(units))),
	}
}

func (c *OpenWeatherClient) get(ctx context.Context, endpoint string, params map[string]string, out any) error {
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get("/" + endpoint)
	if err != nil {
		return fmt.Errorf("%w: %s request: %v", ErrProviderUnavailable, endpoint, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMalformedResponse, endpoint, err)
	}

	return nil
}

func (c *OpenWeatherClient) observe(ctx context.Context, endpoint, city string, outcome Outcome, err error, start time.Time) {
	elapsed := time.Since(start)
	if c.metrics != nil {
		c.metrics.RecordProviderRequest(endpoint, string(outcome), elapsed)
	}

	log := logger.FromContext(ctx)
	if log.GetLevel() == zerolog.Disabled && c.logger != nil {
		log = c.logger
	}

	if err != nil {
		log.Warn().
			Err(err).
			Str("func", "OpenWeatherClient.observe").
			Str("endpoint", endpoint).
			Str("city", city).
			Str("outcome", string(outcome)).
			Dur("elapsed", elapsed).
			Msg("weather provider call failed")
		return
	}

	log.Debug().
		Str("endpoint", endpoint).
		Str("city", city).
		Dur("elapsed", elapsed).
		Msg("weather provider call succeeded")
}

// roundToInt rounds half away from zero.
func roundToInt(v float64) int {
	return int(math.Round(v))
}

// capitalize upper-cases the first letter and lower-cases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}

	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
