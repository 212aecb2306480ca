package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/smartbus/booking-backend/internal/database"
	"github.com/smartbus/booking-backend/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSeatHandler(db *sqlx.DB) *SeatHandler {
	buses := database.NewBusRepository(db)
	passengers := database.NewPassengerRepository(db)
	occupancy := services.NewOccupancyService(buses, passengers, services.NewSeatLocks(), discardLogger())
	return NewSeatHandler(occupancy, discardLogger())
}

func TestOccupiedSeatsHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		db, mock := setupTestDB(t)
		defer db.Close()
		handler := setupSeatHandler(db)

		mock.ExpectQuery(`SELECT seat_number, destination, name FROM passengers`).
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows([]string{"seat_number", "destination", "name"}).
				AddRow(3, nil, "Alice").
				AddRow(7, "Central Station", "Walk-on Passenger"))

		c, w := jsonRequest(t, http.MethodGet, "/api/v1/buses/1/occupied-seats", nil)
		c.Params = gin.Params{{Key: "id", Value: "1"}}
		handler.OccupiedSeats(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response []map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.Len(t, response, 2)
		assert.Equal(t, 3.0, response[0]["seatNumber"])
		assert.Nil(t, response[0]["destination"])
		assert.Equal(t, "Central Station", response[1]["destination"])

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Non-Numeric Bus ID", func(t *testing.T) {
		db, _ := setupTestDB(t)
		defer db.Close()
		handler := setupSeatHandler(db)

		c, w := jsonRequest(t, http.MethodGet, "/api/v1/buses/abc/occupied-seats", nil)
		c.Params = gin.Params{{Key: "id", Value: "abc"}}
		handler.OccupiedSeats(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestDropHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		db, mock := setupTestDB(t)
		defer db.Close()
		handler := setupSeatHandler(db)

		expectBusRow(mock, 1, 45.0, 40)
		mock.ExpectExec(`UPDATE passengers`).
			WithArgs(int64(1), 5).
			WillReturnResult(sqlmock.NewResult(0, 1))

		c, w := jsonRequest(t, http.MethodPost, "/api/v1/passengers/drop", gin.H{
			"busId":      1,
			"seatNumber": 5,
		})
		handler.Drop(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "Seat 5 is now vacant.", response["message"])

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Already Vacant Seat Still Succeeds", func(t *testing.T) {
		db, mock := setupTestDB(t)
		defer db.Close()
		handler := setupSeatHandler(db)

		expectBusRow(mock, 1, 45.0, 40)
		mock.ExpectExec(`UPDATE passengers`).
			WithArgs(int64(1), 5).
			WillReturnResult(sqlmock.NewResult(0, 0))

		c, w := jsonRequest(t, http.MethodPost, "/api/v1/passengers/drop", gin.H{
			"busId":      1,
			"seatNumber": 5,
		})
		handler.Drop(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "Seat 5 is now vacant.", response["message"])

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Missing Fields", func(t *testing.T) {
		db, _ := setupTestDB(t)
		defer db.Close()
		handler := setupSeatHandler(db)

		c, w := jsonRequest(t, http.MethodPost, "/api/v1/passengers/drop", gin.H{"busId": 1})
		handler.Drop(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
