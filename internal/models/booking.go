package models

import (
	"math/rand"
	"strings"
	"time"
)

// PaymentStatus represents the payment status of a booking
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "Pending"
	PaymentStatusPaid    PaymentStatus = "Paid"
)

// BookingStatus represents the lifecycle status of a booking
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "Pending"
	BookingStatusConfirmed BookingStatus = "Confirmed"
	BookingStatusCancelled BookingStatus = "Cancelled"
)

// PaymentOutcome is the result reported by the external payment collaborator
type PaymentOutcome string

const (
	PaymentOutcomePaid   PaymentOutcome = "Paid"
	PaymentOutcomeFailed PaymentOutcome = "Failed"
)

// Booking code namespaces. Pre-booked and walk-on bookings carry distinct
// prefixes so they stay distinguishable in audit queries.
const (
	bookingCodePrefix = "SB-"
	walkOnCodePrefix  = "WALK-"

	codeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// Booking represents a seat reservation on a bus. The internal ID is a UUID;
// BookingCode is the human-facing identifier used on every endpoint.
type Booking struct {
	ID            string        `json:"id" db:"id"`
	BookingCode   string        `json:"bookingId" db:"booking_code"`
	BusID         int64         `json:"busId" db:"bus_id"`
	UserID        *int64        `json:"userId,omitempty" db:"user_id"`
	TravelDate    time.Time     `json:"travelDate" db:"travel_date"`
	TotalAmount   float64       `json:"totalAmount" db:"total_amount"`
	ContactEmail  *string       `json:"contactEmail,omitempty" db:"contact_email"`
	ContactPhone  *string       `json:"contactPhone,omitempty" db:"contact_phone"`
	PaymentMethod *string       `json:"paymentMethod,omitempty" db:"payment_method"`
	PaymentStatus PaymentStatus `json:"paymentStatus" db:"payment_status"`
	Status        BookingStatus `json:"status" db:"status"`
	PaidAt        *time.Time    `json:"paidAt,omitempty" db:"paid_at"`
	CancelledAt   *time.Time    `json:"cancelledAt,omitempty" db:"cancelled_at"`
	CreatedAt     time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time     `json:"updatedAt" db:"updated_at"`
}

// BookingDetails is a booking joined with bus schedule fields and all of its
// passenger rows, as returned by the status endpoint.
type BookingDetails struct {
	Booking
	BusName       string      `json:"busName" db:"bus_name"`
	DepartureCity string      `json:"departureCity" db:"departure_city"`
	ArrivalCity   string      `json:"arrivalCity" db:"arrival_city"`
	DepartureTime string      `json:"departureTime" db:"departure_time"`
	ArrivalTime   string      `json:"arrivalTime" db:"arrival_time"`
	Passengers    []Passenger `json:"passengers"`
}

// BookingResult is returned on successful admission.
type BookingResult struct {
	BookingCode string        `json:"bookingId"`
	Status      BookingStatus `json:"status"`
	TotalAmount float64       `json:"totalAmount"`
}

// PassengerInput is one requested seat in a pre-booked booking.
type PassengerInput struct {
	SeatNumber int    `json:"seatNumber" binding:"required"`
	Name       string `json:"name" binding:"required"`
	Age        int    `json:"age"`
	Gender     string `json:"gender"`
}

// CreateBookingRequest represents the request to create a pre-booked booking
type CreateBookingRequest struct {
	BusID         int64            `json:"busId" binding:"required"`
	UserID        *int64           `json:"userId,omitempty"`
	TravelDate    string           `json:"travelDate" binding:"required"` // YYYY-MM-DD
	Passengers    []PassengerInput `json:"passengers" binding:"required"`
	ContactEmail  string           `json:"email"`
	ContactPhone  string           `json:"phone"`
	PaymentMethod string           `json:"paymentMethod"`
}

// Validate checks the structural preconditions of the request: a non-empty
// passenger list with no seat repeated. Capacity bounds need the bus row and
// are checked by the booking service.
func (r *CreateBookingRequest) Validate() error {
	if len(r.Passengers) == 0 {
		return NewValidationError("passenger list cannot be empty")
	}

	if _, err := time.Parse("2006-01-02", r.TravelDate); err != nil {
		return NewValidationError("travelDate must be in YYYY-MM-DD format")
	}

	seen := make(map[int]bool, len(r.Passengers))
	for _, p := range r.Passengers {
		if p.SeatNumber < 1 {
			return NewValidationError("seat number %d is invalid", p.SeatNumber)
		}
		if seen[p.SeatNumber] {
			return NewValidationError("seat %d requested more than once", p.SeatNumber)
		}
		seen[p.SeatNumber] = true
	}

	return nil
}

// WalkOnBookingRequest represents an on-board operator booking for a
// cash/ad-hoc rider. Payment is collected in person, so the booking is
// created already confirmed and paid.
type WalkOnBookingRequest struct {
	BusID       int64   `json:"busId" binding:"required"`
	SeatNumber  int     `json:"seatNumber" binding:"required"`
	Destination string  `json:"destination" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
}

// SettlePaymentRequest carries the external payment outcome for a booking.
type SettlePaymentRequest struct {
	BookingCode string         `json:"bookingId" binding:"required"`
	Outcome     PaymentOutcome `json:"paymentStatus" binding:"required"`
	Method      string         `json:"paymentMethod"`
}

// Validate checks that the reported outcome is one the settlement handler
// understands.
func (r *SettlePaymentRequest) Validate() error {
	if r.Outcome != PaymentOutcomePaid && r.Outcome != PaymentOutcomeFailed {
		return NewValidationError("paymentStatus must be Paid or Failed")
	}
	return nil
}

// NewBookingCode generates a pre-booked booking code (SB- plus nine
// base36 characters).
func NewBookingCode() string {
	return bookingCodePrefix + randomCode(9)
}

// NewWalkOnCode generates a walk-on booking code (WALK- plus six base36
// characters).
func NewWalkOnCode() string {
	return walkOnCodePrefix + randomCode(6)
}

// IsWalkOnCode reports whether a booking code belongs to the walk-on
// namespace.
func IsWalkOnCode(code string) bool {
	return strings.HasPrefix(code, walkOnCodePrefix)
}

func randomCode(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = codeCharset[rand.Intn(len(codeCharset))]
	}
	return string(b)
}
