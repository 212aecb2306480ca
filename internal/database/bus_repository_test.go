package database

import (
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/smartbus/booking-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupBusRepo(t *testing.T) (*BusRepository, sqlmock.Sqlmock, *sqlx.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	db := sqlx.NewDb(mockDB, "sqlmock")
	return NewBusRepository(db), mock, db
}

func busColumns() []string {
	return []string{
		"id", "name", "type", "departure_city", "arrival_city",
		"departure_time", "arrival_time", "price", "total_seats",
		"current_lat", "current_lng", "created_at", "updated_at",
	}
}

func TestListBuses(t *testing.T) {
	repo, mock, db := setupBusRepo(t)
	defer db.Close()

	now := time.Now()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM buses ORDER BY id`).
			WillReturnRows(sqlmock.NewRows(busColumns()).
				AddRow(int64(1), "City Express", "Standard", "Springfield", "Shelbyville",
					"08:00", "10:30", 45.0, 40, 40.7128, -74.0060, now, now).
				AddRow(int64(2), "Night Rider", "Luxury", "Shelbyville", "Capital City",
					"22:00", "04:00", 80.0, 32, 39.7817, -89.6501, now, now))

		buses, err := repo.List()
		require.NoError(t, err)
		require.Len(t, buses, 2)
		assert.Equal(t, "City Express", buses[0].Name)
		assert.Equal(t, 40, buses[0].TotalSeats)
		assert.Equal(t, "Night Rider", buses[1].Name)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Empty Catalog", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM buses ORDER BY id`).
			WillReturnRows(sqlmock.NewRows(busColumns()))

		buses, err := repo.List()
		require.NoError(t, err)
		assert.Len(t, buses, 0)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database Error", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM buses ORDER BY id`).
			WillReturnError(fmt.Errorf("database error"))

		buses, err := repo.List()
		assert.Nil(t, buses)
		assert.Contains(t, err.Error(), "failed to list buses")

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetBusByID(t *testing.T) {
	repo, mock, db := setupBusRepo(t)
	defer db.Close()

	now := time.Now()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM buses WHERE id`).
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows(busColumns()).
				AddRow(int64(1), "City Express", "Standard", "Springfield", "Shelbyville",
					"08:00", "10:30", 45.0, 40, 40.7128, -74.0060, now, now))

		bus, err := repo.GetByID(1)
		require.NoError(t, err)
		assert.Equal(t, int64(1), bus.ID)
		assert.Equal(t, "City Express", bus.Name)
		assert.Equal(t, 45.0, bus.Price)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not Found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM buses WHERE id`).
			WithArgs(int64(99)).
			WillReturnError(sql.ErrNoRows)

		bus, err := repo.GetByID(99)
		assert.Nil(t, bus)
		assert.ErrorIs(t, err, models.ErrBusNotFound)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
