package models

import "time"

// Passenger is a seat assignment belonging to exactly one booking. While
// IsActive is true the row occupies its seat number on the bus; drop events
// flip the flag and record DroppedAt. At most one active row may exist per
// (bus, seat) at any time.
type Passenger struct {
	ID          int64      `json:"id" db:"id"`
	BookingCode string     `json:"bookingId" db:"booking_code"`
	BusID       int64      `json:"busId" db:"bus_id"`
	SeatNumber  int        `json:"seatNumber" db:"seat_number"`
	Name        string     `json:"name" db:"name"`
	Age         *int       `json:"age,omitempty" db:"age"`
	Gender      *string    `json:"gender,omitempty" db:"gender"`
	Destination *string    `json:"destination,omitempty" db:"destination"`
	IsActive    bool       `json:"isActive" db:"is_active"`
	BoardedAt   *time.Time `json:"boardedAt,omitempty" db:"boarded_at"`
	DroppedAt   *time.Time `json:"droppedAt,omitempty" db:"dropped_at"`
}

// OccupiedSeat is one row of the seat ledger view: an actively held seat
// with its occupant and drop point.
type OccupiedSeat struct {
	SeatNumber  int     `json:"seatNumber" db:"seat_number"`
	Destination *string `json:"destination" db:"destination"`
	Name        string  `json:"name" db:"name"`
}

// DropPassengerRequest marks a seat vacant after its occupant disembarks.
type DropPassengerRequest struct {
	BusID      int64 `json:"busId" binding:"required"`
	SeatNumber int   `json:"seatNumber" binding:"required"`
}
