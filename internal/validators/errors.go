package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUsername = errors.New("username must be 3 to 64 characters")
	ErrInvalidEmail    = errors.New("email address is invalid")
	ErrInvalidPassword = errors.New("password must be 6 to 72 characters and fit in 72 bytes")
	ErrInvalidCity     = errors.New("city name must be at most 100 characters")
	ErrInvalidUnits    = errors.New("units must be metric or imperial")
)
