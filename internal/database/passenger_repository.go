package database

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/smartbus/booking-backend/internal/models"
)

// PassengerRepository handles database operations for the passengers table.
// Active rows form the seat ledger: the ledger has no storage of its own,
// it is this table filtered by bus and activity flag.
type PassengerRepository struct {
	db *sqlx.DB
}

// NewPassengerRepository creates a new PassengerRepository
func NewPassengerRepository(db *sqlx.DB) *PassengerRepository {
	return &PassengerRepository{db: db}
}

// OccupiedSeats returns every actively held seat on a bus. A single query
// keeps the result a consistent snapshot for the seat-map and driver views.
func (r *PassengerRepository) OccupiedSeats(busID int64) ([]models.OccupiedSeat, error) {
	query := `
		SELECT seat_number, destination, name
		FROM passengers
		WHERE bus_id = $1 AND is_active = TRUE
		ORDER BY seat_number
	`

	seats := []models.OccupiedSeat{}
	if err := r.db.Select(&seats, query, busID); err != nil {
		return nil, fmt.Errorf("failed to fetch occupied seats for bus %d: %w", busID, err)
	}

	return seats, nil
}

// Drop deactivates the active passenger row for a bus seat and records the
// vacate timestamp. Returns false when no active occupant existed; dropping
// an already-vacant seat is a harmless no-op.
func (r *PassengerRepository) Drop(busID int64, seatNumber int) (bool, error) {
	query := `
		UPDATE passengers
		SET is_active = FALSE, dropped_at = NOW()
		WHERE bus_id = $1 AND seat_number = $2 AND is_active = TRUE
	`

	result, err := r.db.Exec(query, busID, seatNumber)
	if err != nil {
		return false, fmt.Errorf("failed to drop seat %d on bus %d: %w", seatNumber, busID, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return rows > 0, nil
}

// ByBookingCode returns all passenger rows of a booking, active or not.
func (r *PassengerRepository) ByBookingCode(bookingCode string) ([]models.Passenger, error) {
	query := `
		SELECT id, booking_code, bus_id, seat_number, name, age, gender,
		       destination, is_active, boarded_at, dropped_at
		FROM passengers
		WHERE booking_code = $1
		ORDER BY seat_number
	`

	passengers := []models.Passenger{}
	if err := r.db.Select(&passengers, query, bookingCode); err != nil {
		return nil, fmt.Errorf("failed to fetch passengers for booking %s: %w", bookingCode, err)
	}

	return passengers, nil
}
