package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-weather-dashboard/internal/logger"
	"github.com/MKhiriev/go-weather-dashboard/models"
)

func TestSaveLoginEvent(t *testing.T) {
	loginTime := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)

	tests := []struct {
		name      string
		event     models.LoginEvent
		setupMock func(mock sqlmock.Sqlmock)
		wantErr   error
		wantID    int64
	}{
		{
			name:  "saved",
			event: models.LoginEvent{UserID: 1, LoginTime: loginTime, IPAddress: "127.0.0.1"},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("INSERT INTO login_history").
					WithArgs(int64(1), loginTime, "127.0.0.1").
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10))
			},
			wantID: 10,
		},
		{
			name:  "zero time is filled in",
			event: models.LoginEvent{UserID: 1},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("INSERT INTO login_history").
					WithArgs(int64(1), sqlmock.AnyArg(), "").
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
			},
			wantID: 11,
		},
		{
			name:  "unknown user",
			event: models.LoginEvent{UserID: 99},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("INSERT INTO login_history").
					WillReturnError(pgError(pgerrcode.ForeignKeyViolation))
			},
			wantErr: ErrNoUserWasFound,
		},
		{
			name:  "driver error",
			event: models.LoginEvent{UserID: 1},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("INSERT INTO login_history").
					WillReturnError(errors.New("broken pipe"))
			},
			wantErr: ErrExecutingQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			repo := NewLoginHistoryRepository(db, logger.Nop())
			tt.setupMock(mock)

			saved, err := repo.SaveLoginEvent(context.Background(), tt.event)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantID, saved.ID)
			assert.False(t, saved.LoginTime.IsZero())
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
