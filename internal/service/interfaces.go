// Package service contains the business logic of the weather dashboard:
// registration and login, session tokens, user settings, weather lookups
// and the query log.
//
// Services depend on the repositories of package store and on the
// [adapter.WeatherProvider]; they never touch HTTP types. Every protected
// operation takes the caller's [models.Identity] as an explicit parameter.
package service

import (
	"context"

	"github.com/MKhiriev/go-weather-dashboard/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, username, password, ipAddress string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type UserService interface {
	GetUser(ctx context.Context, identity models.Identity) (models.User, error)

	// UpdateCity stores city as the user's dashboard city. A blank city is
	// ignored and reported as not updated.
	UpdateCity(ctx context.Context, identity models.Identity, city string) (bool, error)

	Profile(ctx context.Context, identity models.Identity) (models.Profile, error)
	UpdatePreferences(ctx context.Context, identity models.Identity, prefs models.Preferences) error
}

type WeatherService interface {
	// Dashboard fetches the weather for the user's stored city and records
	// the lookup when current conditions were obtained.
	Dashboard(ctx context.Context, identity models.Identity) (models.User, models.WeatherReport, error)

	// Lookup fetches the weather for an arbitrary city and records the
	// lookup when current conditions were obtained.
	Lookup(ctx context.Context, identity models.Identity, city string) (models.WeatherReport, error)

	// History returns the most recent recorded lookups, newest first.
	History(ctx context.Context, identity models.Identity) ([]models.WeatherQuery, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

type HealthService interface {
	Check(ctx context.Context) error
}
