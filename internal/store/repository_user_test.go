// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/MKhiriev/go-weather-dashboard/internal/logger"
	"github.com/MKhiriev/go-weather-dashboard/models"
)

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	return newDB(conn, DialectPostgres, logger.Nop()), mock
}

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &userRepository{db: db, logger: logger.Nop()}, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

var selectUserColumns = []string{"user_id", "username", "email", "password_hash", "city", "units", "notifications", "created_at"}

func TestCreateUser_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	user := models.User{
		Username:     "  john ",
		Email:        "john@example.com",
		Password:     "secret",
		PasswordHash: "hash",
		City:         "Paris",
		Preferences:  models.DefaultPreferences(),
	}

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("john", "john@example.com", "hash", "Paris", "metric", true, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(1))

	created, err := repo.CreateUser(context.Background(), user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.UserID != 1 {
		t.Errorf("expected UserID=1, got %d", created.UserID)
	}
	if created.Username != "john" {
		t.Errorf("expected trimmed username, got %q", created.Username)
	}
	if created.Password != "" {
		t.Error("expected plain password to be cleared")
	}
	if created.CreatedAt.IsZero() || created.CreatedAt.Location() != time.UTC {
		t.Errorf("expected CreatedAt set in UTC, got %v", created.CreatedAt)
	}
	if err = mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(context.Background(), models.User{Username: "john"})
	if !errors.Is(err, ErrUserAlreadyExists) {
		t.Fatalf("expected ErrUserAlreadyExists, got %v", err)
	}
}

func TestCreateUser_OtherError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(errors.New("connection reset"))

	_, err := repo.CreateUser(context.Background(), models.User{Username: "john"})
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestFindUserByUsername_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	now := time.Now().UTC()

	mock.ExpectQuery("SELECT (.+) FROM users WHERE username = \\$1").
		WithArgs("john").
		WillReturnRows(sqlmock.NewRows(selectUserColumns).
			AddRow(5, "john", "john@example.com", "hash", "Rome", "imperial", false, now))

	user, err := repo.FindUserByUsername(context.Background(), " john ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.UserID != 5 || user.City != "Rome" {
		t.Errorf("unexpected user: %+v", user)
	}
	if user.Preferences.Units != models.UnitsImperial || user.Preferences.Notifications {
		t.Errorf("unexpected preferences: %+v", user.Preferences)
	}
}

func TestFindUserByUsername_UnknownUnitsFallBackToMetric(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM users").
		WillReturnRows(sqlmock.NewRows(selectUserColumns).
			AddRow(5, "john", "john@example.com", "hash", "", "kelvin", true, time.Now()))

	user, err := repo.FindUserByUsername(context.Background(), "john")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Preferences.Units != models.UnitsMetric {
		t.Errorf("expected metric units, got %q", user.Preferences.Units)
	}
}

func TestFindUserByID_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM users WHERE user_id = \\$1").
		WithArgs(int64(42)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByID(context.Background(), 42)
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}

func TestFindUserByID_ScanError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM users").
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(1))

	_, err := repo.FindUserByID(context.Background(), 1)
	if !errors.Is(err, ErrScanningRow) {
		t.Fatalf("expected ErrScanningRow, got %v", err)
	}
}

func TestUpdateCity(t *testing.T) {
	tests := []struct {
		name    string
		result  sql.Result
		execErr error
		wantErr error
	}{
		{name: "updated", result: sqlmock.NewResult(0, 1)},
		{name: "no such user", result: sqlmock.NewResult(0, 0), wantErr: ErrNoUserWasFound},
		{name: "driver error", execErr: errors.New("boom"), wantErr: ErrExecutingQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestUserRepo(t)

			exp := mock.ExpectExec("UPDATE users SET city = \\$1 WHERE user_id = \\$2").
				WithArgs("Berlin", int64(3))
			if tt.execErr != nil {
				exp.WillReturnError(tt.execErr)
			} else {
				exp.WillReturnResult(tt.result)
			}

			err := repo.UpdateCity(context.Background(), 3, "Berlin")
			if tt.wantErr == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestUpdatePreferences_NormalisesUnits(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	// squirrel sorts SetMap keys
	mock.ExpectExec("UPDATE users SET notifications = \\$1, units = \\$2 WHERE user_id = \\$3").
		WithArgs(false, "metric", int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdatePreferences(context.Background(), 3, models.Preferences{Units: "kelvin", Notifications: false})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err = mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
