package validators

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/go-weather-dashboard/models"
)

const (
	FieldUsername = "username"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldCity     = "city"
	FieldUnits    = "units"
)

type fieldRule struct {
	tag   string
	err   error
	value func(models.User) any
}

// bcrypt rejects passwords longer than 72 bytes, and max counts runes, so
// the password rule also caps the encoded length.
var userRules = map[string]fieldRule{
	FieldUsername: {tag: "required,min=3,max=64", err: ErrInvalidUsername, value: func(u models.User) any { return u.Username }},
	FieldEmail:    {tag: "required,email,max=255", err: ErrInvalidEmail, value: func(u models.User) any { return u.Email }},
	FieldPassword: {tag: "required,min=6,max=72,bcryptlen", err: ErrInvalidPassword, value: func(u models.User) any { return u.Password }},
	FieldCity:     {tag: "max=100", err: ErrInvalidCity, value: func(u models.User) any { return u.City }},
	FieldUnits:    {tag: "omitempty,oneof=metric imperial", err: ErrInvalidUnits, value: func(u models.User) any { return string(u.Preferences.Units) }},
}

// registrationFields are checked when Validate receives no field names.
var registrationFields = []string{FieldUsername, FieldEmail, FieldPassword, FieldCity}

type UserValidator struct {
	validate *validator.Validate
}

const bcryptMaxBytes = 72

func NewUserValidator() Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	// registering a static tag name with a non-nil func never fails
	_ = validate.RegisterValidation("bcryptlen", func(fl validator.FieldLevel) bool {
		return len(fl.Field().String()) <= bcryptMaxBytes
	})
	return &UserValidator{validate: validate}
}

func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(ctx, value, fields...)
	case *models.User:
		return v.validateUser(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateUser(ctx context.Context, user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = registrationFields
	}

	for _, field := range fields {
		rule, ok := userRules[field]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}

		if err := v.validate.VarCtx(ctx, rule.value(user), rule.tag); err != nil {
			return fmt.Errorf("%w: %w", rule.err, err)
		}
	}

	return nil
}
