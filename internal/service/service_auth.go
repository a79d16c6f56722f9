package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-weather-dashboard/internal/config"
	"github.com/MKhiriev/go-weather-dashboard/internal/logger"
	"github.com/MKhiriev/go-weather-dashboard/internal/store"
	"github.com/MKhiriev/go-weather-dashboard/internal/utils"
	"github.com/MKhiriev/go-weather-dashboard/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and session token
// lifecycle using the user and login history repositories for persistence
// and bcrypt for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// loginHistoryRepository receives one event per successful login.
	loginHistoryRepository store.LoginHistoryRepository

	// sessionSignKey is the HMAC secret used to sign and verify session tokens.
	sessionSignKey string

	// sessionIssuer is the "iss" claim embedded in every issued token.
	// Tokens whose issuer does not match this value are rejected during parsing.
	sessionIssuer string

	// sessionDuration controls how long a newly issued token remains valid.
	sessionDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given repositories
// and populated with session parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, loginHistoryRepository store.LoginHistoryRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:         userRepository,
		loginHistoryRepository: loginHistoryRepository,
		sessionSignKey:         cfg.SessionSignKey,
		sessionIssuer:          cfg.SessionIssuer,
		sessionDuration:        cfg.SessionDuration,
		logger:                 logger,
	}
}

// RegisterUser creates a new user account.
//
// It validates the form fields, hashes the password with bcrypt, fills in
// the registration defaults (city placeholder, metric units, notifications
// on) and delegates persistence to the UserRepository. The caller is not
// logged in.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidDataProvided if a field fails validation.
//   - store.ErrUserAlreadyExists if the username or email is taken.
//   - A wrapped storage error for any other repository failure.
func (a *authService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	user.Username = strings.TrimSpace(user.Username)
	user.Email = strings.TrimSpace(user.Email)
	user.City = strings.TrimSpace(user.City)

	if err := validateUser(ctx, user); err != nil {
		log.Err(err).Str("username", user.Username).Msg("invalid user data provided")
		return models.User{}, err
	}

	passwordHash, err := utils.HashPassword(user.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}
	user.PasswordHash = passwordHash
	user.Password = ""

	if user.City == "" {
		user.City = models.RegistrationCity
	}
	user.Preferences = models.DefaultPreferences()

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user and appends a login event carrying
// ipAddress.
//
// Every failure that depends on the credentials (empty fields, unknown user,
// wrong password) is reported as ErrInvalidCredentials, wrapping the
// underlying cause for logs. A failure to store the login event fails the
// login.
func (a *authService) Login(ctx context.Context, username, password, ipAddress string) (models.User, error) {
	log := logger.FromContext(ctx)

	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		log.Info().Msg("empty username or password provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidCredentials, ErrInvalidDataProvided)
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, username)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Info().Str("username", username).Msg("login attempt for unknown user")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
	}
	if err != nil {
		log.Err(err).Str("username", username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if err = utils.ComparePassword(foundUser.PasswordHash, password); err != nil {
		log.Info().
			Int64("id", foundUser.UserID).
			Str("username", foundUser.Username).
			Msg("wrong password")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidCredentials, ErrWrongPassword)
	}

	_, err = a.loginHistoryRepository.SaveLoginEvent(ctx, models.LoginEvent{
		UserID:    foundUser.UserID,
		IPAddress: ipAddress,
	})
	if err != nil {
		log.Err(err).Int64("id", foundUser.UserID).Msg("saving login event failed")
		return models.User{}, fmt.Errorf("saving login event failed: %w", err)
	}

	return foundUser, nil
}

// CreateToken issues a signed session token for the given user.
//
// The token is signed with the configured sessionSignKey, carries the
// configured sessionIssuer as the "iss" claim, and expires after
// sessionDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	identity := models.Identity{UserID: user.UserID, Username: user.Username}

	token, err := utils.GenerateSessionToken(a.sessionIssuer, identity, a.sessionDuration, a.sessionSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw session token.
//
// Any validation failure (expired, wrong issuer, bad signature, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateSessionToken(tokenString, a.sessionSignKey, a.sessionIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("session token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
