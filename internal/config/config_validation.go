// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// validate checks that the final merged [StructuredConfig] carries every
// value the server cannot start without: the session signing key, the
// database DSN and the weather provider API key.
//
// All violations are reported at once, joined with [errors.Join].
func (cfg *StructuredConfig) validate() error {
	var err error

	if cfg.App.SessionSignKey == "" || cfg.App.SessionDuration <= 0 {
		err = errors.Join(err, ErrInvalidAppConfigs)
	}

	if cfg.Storage.DB.DSN == "" {
		err = errors.Join(err, ErrInvalidStorageConfigs)
	}

	if cfg.Weather.APIKey == "" || cfg.Weather.BaseURL == "" || cfg.Weather.ForecastSamples < 1 {
		err = errors.Join(err, ErrInvalidWeatherConfigs)
	}

	return err
}
