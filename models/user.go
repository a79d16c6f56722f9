package models

import "time"

// Units is the measurement system a user wants weather values in.
type Units string

const (
	UnitsMetric   Units = "metric"
	UnitsImperial Units = "imperial"
)

// ParseUnits maps a raw form value onto a known unit system.
// Anything other than "imperial" falls back to metric.
func ParseUnits(raw string) Units {
	if Units(raw) == UnitsImperial {
		return UnitsImperial
	}
	return UnitsMetric
}

// DefaultCity is shown when a stored user has no city set.
const DefaultCity = "London"

// RegistrationCity is stored when the registration form leaves the city blank.
const RegistrationCity = "Your city"

// Preferences holds the per-user display settings.
type Preferences struct {
	// Units selects the unit system passed to the weather provider.
	Units Units `json:"units"`

	// Notifications reports whether the user opted into notifications.
	Notifications bool `json:"notifications"`
}

// DefaultPreferences returns the preferences every new account starts with.
func DefaultPreferences() Preferences {
	return Preferences{
		Units:         UnitsMetric,
		Notifications: true,
	}
}

// User represents a registered account.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"-"`

	// Username is the unique login name.
	Username string `json:"username"`

	// Email is the unique contact address.
	Email string `json:"email"`

	// Password carries the plain-text password on its way in from a form.
	// It is cleared before the user is persisted.
	Password string `json:"-"`

	// PasswordHash is the bcrypt hash of the password.
	PasswordHash string `json:"-"`

	// City is the city shown on the dashboard.
	City string `json:"city"`

	// CreatedAt is the timestamp when the account was registered.
	CreatedAt time.Time `json:"created_at"`

	// Preferences holds the display settings.
	Preferences Preferences `json:"preferences"`
}

// DisplayCity returns the user's city or [DefaultCity] when none is stored.
func (u User) DisplayCity() string {
	if u.City == "" {
		return DefaultCity
	}
	return u.City
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Identity is the authenticated caller of a protected operation.
// It is resolved once per request from a validated session token.
type Identity struct {
	UserID   int64
	Username string
}

// Profile is the account overview rendered on the profile page.
type Profile struct {
	User       User
	QueryCount int64
}
