package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-weather-dashboard/internal/validators"
	"github.com/MKhiriev/go-weather-dashboard/models"
)

var userValidator = validators.NewUserValidator()

// validateUser checks the named fields of user (all registration fields when
// none are named) and reports failures as ErrInvalidDataProvided.
func validateUser(ctx context.Context, user models.User, fields ...string) error {
	if err := userValidator.Validate(ctx, user, fields...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return nil
}
