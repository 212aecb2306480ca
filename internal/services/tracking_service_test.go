package services

import (
	"database/sql"
	"math"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/smartbus/booking-backend/internal/database"
	"github.com/smartbus/booking-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTrackingService(t *testing.T, jitterDegrees float64) (*TrackingService, sqlmock.Sqlmock, *sqlx.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	db := sqlx.NewDb(mockDB, "sqlmock")
	buses := database.NewBusRepository(db)

	return NewTrackingService(buses, jitterDegrees), mock, db
}

func TestCurrentPosition(t *testing.T) {
	const jitter = 0.005

	t.Run("Position Stays Within Jitter Radius", func(t *testing.T) {
		svc, mock, db := setupTrackingService(t, jitter)
		defer db.Close()

		baseLat, baseLng := 40.7128, -74.0060

		for i := 0; i < 25; i++ {
			expectBusFetch(mock, 1, 45.0, 40)

			position, err := svc.CurrentPosition(1)
			require.NoError(t, err)
			assert.Equal(t, "City Express", position.Name)
			assert.LessOrEqual(t, math.Abs(position.Lat-baseLat), jitter)
			assert.LessOrEqual(t, math.Abs(position.Lng-baseLng), jitter)
		}

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Successive Positions Differ", func(t *testing.T) {
		svc, mock, db := setupTrackingService(t, jitter)
		defer db.Close()

		expectBusFetch(mock, 1, 45.0, 40)
		expectBusFetch(mock, 1, 45.0, 40)

		first, err := svc.CurrentPosition(1)
		require.NoError(t, err)
		second, err := svc.CurrentPosition(1)
		require.NoError(t, err)

		// Two independent draws over a continuous range colliding on both
		// axes would mean the jitter is not being applied.
		assert.False(t, first.Lat == second.Lat && first.Lng == second.Lng)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Unknown Bus", func(t *testing.T) {
		svc, mock, db := setupTrackingService(t, jitter)
		defer db.Close()

		mock.ExpectQuery(`SELECT (.+) FROM buses WHERE id`).
			WithArgs(int64(99)).
			WillReturnError(sql.ErrNoRows)

		position, err := svc.CurrentPosition(99)
		assert.Nil(t, position)
		assert.ErrorIs(t, err, models.ErrBusNotFound)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
