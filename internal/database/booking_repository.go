package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/smartbus/booking-backend/internal/models"
)

// BookingRepository handles database operations for the bookings table and
// owns the transactional seat admission: a booking and its passenger rows
// are written all-or-nothing inside one transaction.
type BookingRepository struct {
	db *sqlx.DB
}

// NewBookingRepository creates a new BookingRepository
func NewBookingRepository(db *sqlx.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// CreateWithPassengers persists a booking together with one passenger row
// per requested seat. The active-seat check runs inside the transaction;
// if any requested seat is already actively held the whole admission fails
// with a SeatConflictError and nothing is written.
//
// Callers must hold the per-bus admission lock. The partial unique index on
// (bus_id, seat_number) WHERE is_active backstops the check at the storage
// layer; a constraint violation surfaces as the same SeatConflictError.
func (r *BookingRepository) CreateWithPassengers(booking *models.Booking, passengers []models.Passenger) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	seatNumbers := make([]int64, len(passengers))
	for i, p := range passengers {
		seatNumbers[i] = int64(p.SeatNumber)
	}

	conflictQuery := `
		SELECT seat_number
		FROM passengers
		WHERE bus_id = $1 AND is_active = TRUE AND seat_number = ANY($2)
	`

	taken := []int{}
	if err := tx.Select(&taken, conflictQuery, booking.BusID, pq.Array(seatNumbers)); err != nil {
		return fmt.Errorf("failed to check seat availability: %w", err)
	}
	if len(taken) > 0 {
		return &models.SeatConflictError{BusID: booking.BusID, Seats: taken}
	}

	if booking.ID == "" {
		booking.ID = uuid.New().String()
	}

	insertBooking := `
		INSERT INTO bookings (
			id, booking_code, bus_id, user_id, travel_date, total_amount,
			contact_email, contact_phone, payment_method,
			payment_status, status, paid_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
		)
		RETURNING created_at, updated_at
	`

	err = tx.QueryRow(
		insertBooking,
		booking.ID, booking.BookingCode, booking.BusID, booking.UserID,
		booking.TravelDate, booking.TotalAmount,
		booking.ContactEmail, booking.ContactPhone, booking.PaymentMethod,
		booking.PaymentStatus, booking.Status, booking.PaidAt,
	).Scan(&booking.CreatedAt, &booking.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert booking: %w", err)
	}

	insertPassenger := `
		INSERT INTO passengers (
			booking_code, bus_id, seat_number, name, age, gender,
			destination, is_active, boarded_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	for i := range passengers {
		p := &passengers[i]
		err = tx.QueryRow(
			insertPassenger,
			booking.BookingCode, p.BusID, p.SeatNumber, p.Name, p.Age,
			p.Gender, p.Destination, p.IsActive, p.BoardedAt,
		).Scan(&p.ID)
		if err != nil {
			if isActiveSeatViolation(err) {
				return &models.SeatConflictError{BusID: booking.BusID, Seats: []int{p.SeatNumber}}
			}
			return fmt.Errorf("failed to insert passenger for seat %d: %w", p.SeatNumber, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit booking: %w", err)
	}

	return nil
}

// GetByCode retrieves a booking by its human-facing code.
func (r *BookingRepository) GetByCode(code string) (*models.Booking, error) {
	query := `
		SELECT id, booking_code, bus_id, user_id, travel_date, total_amount,
		       contact_email, contact_phone, payment_method,
		       payment_status, status, paid_at, cancelled_at,
		       created_at, updated_at
		FROM bookings
		WHERE booking_code = $1
	`

	var booking models.Booking
	if err := r.db.Get(&booking, query, code); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to fetch booking %s: %w", code, err)
	}

	return &booking, nil
}

// GetWithBus retrieves a booking joined with the schedule fields of its bus.
// Passenger rows are attached by the caller.
func (r *BookingRepository) GetWithBus(code string) (*models.BookingDetails, error) {
	query := `
		SELECT b.id, b.booking_code, b.bus_id, b.user_id, b.travel_date,
		       b.total_amount, b.contact_email, b.contact_phone,
		       b.payment_method, b.payment_status, b.status,
		       b.paid_at, b.cancelled_at, b.created_at, b.updated_at,
		       bus.name AS bus_name, bus.departure_city, bus.arrival_city,
		       bus.departure_time, bus.arrival_time
		FROM bookings b
		JOIN buses bus ON b.bus_id = bus.id
		WHERE b.booking_code = $1
	`

	var details models.BookingDetails
	if err := r.db.Get(&details, query, code); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to fetch booking %s: %w", code, err)
	}

	return &details, nil
}

// MarkPaid records a successful settlement: payment status Paid, lifecycle
// status Confirmed. Repeating the update is harmless; paid_at keeps its
// first value.
func (r *BookingRepository) MarkPaid(code, method string) error {
	query := `
		UPDATE bookings
		SET payment_status = $2, status = $3, payment_method = $4,
		    paid_at = COALESCE(paid_at, NOW()), updated_at = NOW()
		WHERE booking_code = $1
	`

	result, err := r.db.Exec(query, code, models.PaymentStatusPaid, models.BookingStatusConfirmed, method)
	if err != nil {
		return fmt.Errorf("failed to settle booking %s: %w", code, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return models.ErrBookingNotFound
	}

	return nil
}

// Cancel marks a booking cancelled. Idempotent: a second cancel matches the
// already-cancelled row and leaves cancelled_at untouched. Passenger
// activity flags are deliberately not modified here; seats stay held until
// an explicit drop.
func (r *BookingRepository) Cancel(code string) error {
	query := `
		UPDATE bookings
		SET status = $2, cancelled_at = COALESCE(cancelled_at, NOW()), updated_at = NOW()
		WHERE booking_code = $1
	`

	result, err := r.db.Exec(query, code, models.BookingStatusCancelled)
	if err != nil {
		return fmt.Errorf("failed to cancel booking %s: %w", code, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return models.ErrBookingNotFound
	}

	return nil
}

// isActiveSeatViolation reports whether an insert hit the partial unique
// index guarding one-active-occupant-per-seat.
func isActiveSeatViolation(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code == "23505" && pqErr.Constraint == "uq_passengers_active_seat"
}
