package adapter

import "errors"

var (
	ErrCityNotFound        = errors.New("city not found")
	ErrProviderUnavailable = errors.New("weather provider unavailable")
	ErrUnauthorized        = errors.New("weather provider rejected the api key")
	ErrMalformedResponse   = errors.New("malformed weather provider response")
)
