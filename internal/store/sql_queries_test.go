// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-weather-dashboard/models"
)

var (
	dollarBuilder   = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	questionBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
)

func Test_buildInsertUserQuery(t *testing.T) {
	createdAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	user := models.User{
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "hash",
		City:         "Paris",
		CreatedAt:    createdAt,
		Preferences:  models.Preferences{Units: models.UnitsImperial, Notifications: false},
	}

	query, args, err := buildInsertUserQuery(dollarBuilder, user)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "insert into users")
	require.Contains(t, q, "returning user_id")
	require.Contains(t, query, "$7")

	require.Equal(t, []any{"alice", "alice@example.com", "hash", "Paris", "imperial", false, createdAt}, args)
}

func Test_buildSelectUserQuery_PlaceholderPerDialect(t *testing.T) {
	tests := []struct {
		name        string
		builder     sq.StatementBuilderType
		placeholder string
	}{
		{name: "postgres", builder: dollarBuilder, placeholder: "$1"},
		{name: "sqlite", builder: questionBuilder, placeholder: "?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildSelectUserQuery(tt.builder, sq.Eq{"username": "alice"})
			require.NoError(t, err)

			assert.Contains(t, query, tt.placeholder)
			assert.Equal(t, []any{"alice"}, args)

			q := strings.ToLower(query)
			assert.Contains(t, q, "from users")
			assert.Contains(t, q, "limit 1")
			for _, col := range userColumns {
				assert.Contains(t, q, col)
			}
		})
	}
}

func Test_buildUpdateUserQuery(t *testing.T) {
	query, args, err := buildUpdateUserQuery(dollarBuilder, 7, map[string]any{"city": "Berlin"})
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "update users set city = $1")
	require.Contains(t, q, "where user_id = $2")
	require.Equal(t, []any{"Berlin", int64(7)}, args)
}

func Test_buildInsertLoginEventQuery(t *testing.T) {
	loginTime := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

	query, args, err := buildInsertLoginEventQuery(questionBuilder, models.LoginEvent{
		UserID:    3,
		LoginTime: loginTime,
		IPAddress: "10.0.0.1",
	})
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "insert into login_history")
	require.Contains(t, q, "returning id")
	require.NotContains(t, query, "$1")
	require.Equal(t, []any{int64(3), loginTime, "10.0.0.1"}, args)
}

func Test_buildInsertWeatherQueryQuery(t *testing.T) {
	queryTime := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

	query, args, err := buildInsertWeatherQueryQuery(dollarBuilder, models.WeatherQuery{
		UserID:    3,
		City:      "Oslo",
		QueryTime: queryTime,
	}, `{"city":"Oslo"}`, `[]`)
	require.NoError(t, err)

	require.Contains(t, strings.ToLower(query), "insert into weather_queries")
	require.Equal(t, []any{int64(3), "Oslo", queryTime, `{"city":"Oslo"}`, `[]`}, args)
}

func Test_buildSelectRecentQueriesQuery(t *testing.T) {
	query, args, err := buildSelectRecentQueriesQuery(dollarBuilder, 9, 20)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "from weather_queries")
	require.Contains(t, q, "order by query_time desc, id desc")
	require.Contains(t, q, "limit 20")
	require.Equal(t, []any{int64(9)}, args)
}

func Test_buildCountQueriesQuery(t *testing.T) {
	query, args, err := buildCountQueriesQuery(questionBuilder, 9)
	require.NoError(t, err)

	require.Equal(t, "SELECT COUNT(*) FROM weather_queries WHERE user_id = ?", query)
	require.Equal(t, []any{int64(9)}, args)
}
