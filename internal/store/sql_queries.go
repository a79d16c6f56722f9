package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-weather-dashboard/models"
)

const (
	usersTable          = "users"
	loginHistoryTable   = "login_history"
	weatherQueriesTable = "weather_queries"
)

var userColumns = []string{
	"user_id",
	"username",
	"email",
	"password_hash",
	"city",
	"units",
	"notifications",
	"created_at",
}

var weatherQueryColumns = []string{
	"id",
	"user_id",
	"city",
	"query_time",
	"weather_data",
	"forecast",
}

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(usersTable).
		Columns("username", "email", "password_hash", "city", "units", "notifications", "created_at").
		Values(
			user.Username,
			user.Email,
			user.PasswordHash,
			user.City,
			string(user.Preferences.Units),
			user.Preferences.Notifications,
			user.CreatedAt,
		).
		Suffix("RETURNING user_id").
		ToSql()
}

func buildSelectUserQuery(b sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(where).
		Limit(1).
		ToSql()
}

func buildUpdateUserQuery(b sq.StatementBuilderType, userID int64, set map[string]any) (string, []any, error) {
	return b.Update(usersTable).
		SetMap(set).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildInsertLoginEventQuery(b sq.StatementBuilderType, event models.LoginEvent) (string, []any, error) {
	return b.Insert(loginHistoryTable).
		Columns("user_id", "login_time", "ip_address").
		Values(event.UserID, event.LoginTime, event.IPAddress).
		Suffix("RETURNING id").
		ToSql()
}

func buildInsertWeatherQueryQuery(b sq.StatementBuilderType, query models.WeatherQuery, weather, forecast string) (string, []any, error) {
	return b.Insert(weatherQueriesTable).
		Columns("user_id", "city", "query_time", "weather_data", "forecast").
		Values(query.UserID, query.City, query.QueryTime, weather, forecast).
		Suffix("RETURNING id").
		ToSql()
}

func buildSelectRecentQueriesQuery(b sq.StatementBuilderType, userID int64, limit int) (string, []any, error) {
	return b.Select(weatherQueryColumns...).
		From(weatherQueriesTable).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("query_time DESC", "id DESC").
		Limit(uint64(limit)).
		ToSql()
}

func buildCountQueriesQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Select("COUNT(*)").
		From(weatherQueriesTable).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}
