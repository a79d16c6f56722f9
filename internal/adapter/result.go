package adapter

import "github.com/MKhiriev/go-weather-dashboard/models"

// Outcome classifies a provider call.
type Outcome string

const (
	OutcomeOK            Outcome = "ok"
	OutcomeNotFound      Outcome = "not_found"
	OutcomeProviderError Outcome = "provider_error"
	OutcomeParseError    Outcome = "parse_error"
)

// CurrentResult is the result of [WeatherProvider.FetchCurrent].
type CurrentResult struct {
	Outcome Outcome
	Err     error

	snapshot *models.CurrentWeather
}

// Snapshot returns the current conditions, or nil unless the call succeeded.
func (r CurrentResult) Snapshot() *models.CurrentWeather {
	if r.Outcome != OutcomeOK {
		return nil
	}
	return r.snapshot
}

// ForecastResult is the result of [WeatherProvider.FetchForecastSamples].
type ForecastResult struct {
	Outcome Outcome
	Err     error

	samples []models.ForecastSample
}

// Samples returns the forecast samples, or an empty slice unless the call
// succeeded.
func (r ForecastResult) Samples() []models.ForecastSample {
	if r.Outcome != OutcomeOK || r.samples == nil {
		return []models.ForecastSample{}
	}
	return r.samples
}

// NewCurrentResult builds a successful [CurrentResult] around snapshot.
// It is meant for tests and alternative providers.
func NewCurrentResult(snapshot *models.CurrentWeather) CurrentResult {
	return CurrentResult{Outcome: OutcomeOK, snapshot: snapshot}
}

// NewForecastResult builds a successful [ForecastResult] around samples.
func NewForecastResult(samples []models.ForecastSample) ForecastResult {
	return ForecastResult{Outcome: OutcomeOK, samples: samples}
}

// FailedCurrentResult builds a [CurrentResult] for a failed call.
// A nil err is treated as [ErrProviderUnavailable].
func FailedCurrentResult(err error) CurrentResult {
	if err == nil {
		err = ErrProviderUnavailable
	}
	return CurrentResult{Outcome: outcomeFromError(err), Err: err}
}

// FailedForecastResult builds a [ForecastResult] for a failed call.
// A nil err is treated as [ErrProviderUnavailable].
func FailedForecastResult(err error) ForecastResult {
	if err == nil {
		err = ErrProviderUnavailable
	}
	return ForecastResult{Outcome: outcomeFromError(err), Err: err}
}
