package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-weather-dashboard/internal/logger"
	"github.com/MKhiriev/go-weather-dashboard/models"
)

// userRepository is the SQL implementation of [UserRepository].
// It handles account creation, lookup and settings updates against the
// "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (UserID, CreatedAt).
//
// Error handling:
//   - unique violation on username or email → [ErrUserAlreadyExists].
//   - Any other driver-level error → wrapped [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	user.Username = strings.TrimSpace(user.Username)
	user.Email = strings.TrimSpace(user.Email)
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	query, args, err := buildInsertUserQuery(r.db.builder, user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	// create user in db
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&user.UserID)
	if err != nil {
		if r.db.errorClassifier.IsUniqueViolation(err) {
			log.Info().Str("func", "*userRepository.CreateUser").Str("username", user.Username).Msg("username or email already taken")
			return models.User{}, ErrUserAlreadyExists
		}

		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	user.Password = ""
	return user, nil
}

// FindUserByUsername implements [UserRepository].
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByUsername", sq.Eq{"username": strings.TrimSpace(username)})
}

// FindUserByID implements [UserRepository].
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByID", sq.Eq{"user_id": userID})
}

func (r *userRepository) findUser(ctx context.Context, funcName string, where sq.Eq) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserQuery(r.db.builder, where)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		foundUser models.User
		units     string
	)
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&foundUser.UserID,
		&foundUser.Username,
		&foundUser.Email,
		&foundUser.PasswordHash,
		&foundUser.City,
		&units,
		&foundUser.Preferences.Notifications,
		&foundUser.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	foundUser.Preferences.Units = models.ParseUnits(units)
	return foundUser, nil
}

// UpdateCity implements [UserRepository].
func (r *userRepository) UpdateCity(ctx context.Context, userID int64, city string) error {
	return r.updateUser(ctx, "*userRepository.UpdateCity", userID, map[string]any{
		"city": city,
	})
}

// UpdatePreferences implements [UserRepository].
func (r *userRepository) UpdatePreferences(ctx context.Context, userID int64, prefs models.Preferences) error {
	return r.updateUser(ctx, "*userRepository.UpdatePreferences", userID, map[string]any{
		"units":         string(models.ParseUnits(string(prefs.Units))),
		"notifications": prefs.Notifications,
	})
}

func (r *userRepository) updateUser(ctx context.Context, funcName string, userID int64, set map[string]any) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateUserQuery(r.db.builder, userID, set)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error updating user")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error reading affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}
