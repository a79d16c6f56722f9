// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements persistence for accounts, login events and weather
// queries on top of database/sql. PostgreSQL (pgx) is the production backend
// and SQLite (mattn/go-sqlite3) is available for local runs; the DSN prefix
// selects one of them.
package store

import (
	"context"

	"github.com/MKhiriev/go-weather-dashboard/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository manages registered accounts.
type UserRepository interface {
	// CreateUser inserts user and returns it with UserID and CreatedAt set.
	// A taken username or email yields [ErrUserAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername returns the account with the given username or
	// [ErrNoUserWasFound].
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// FindUserByID returns the account with the given id or
	// [ErrNoUserWasFound].
	FindUserByID(ctx context.Context, userID int64) (models.User, error)

	// UpdateCity replaces the stored city of the account.
	UpdateCity(ctx context.Context, userID int64, city string) error

	// UpdatePreferences replaces the stored display preferences of the account.
	UpdatePreferences(ctx context.Context, userID int64, prefs models.Preferences) error
}

// LoginHistoryRepository appends login events. Events are never updated.
type LoginHistoryRepository interface {
	SaveLoginEvent(ctx context.Context, event models.LoginEvent) (models.LoginEvent, error)
}

// WeatherQueryRepository appends and lists weather lookups.
type WeatherQueryRepository interface {
	// SaveQuery appends query and returns it with ID set.
	SaveQuery(ctx context.Context, query models.WeatherQuery) (models.WeatherQuery, error)

	// ListRecentQueries returns at most limit queries of the user, newest
	// first.
	ListRecentQueries(ctx context.Context, userID int64, limit int) ([]models.WeatherQuery, error)

	// CountQueries returns the number of stored queries of the user.
	CountQueries(ctx context.Context, userID int64) (int64, error)
}

// Pinger reports whether the backing database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}
