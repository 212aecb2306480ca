package models

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrBookingNotFound indicates an unknown booking code
	ErrBookingNotFound = errors.New("booking not found")

	// ErrBusNotFound indicates an unknown bus id
	ErrBusNotFound = errors.New("bus not found")
)

// ValidationError reports malformed or missing input. It is always detected
// before any write, so the caller can correct and resubmit.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// NewValidationError creates a ValidationError with a formatted reason.
func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// SeatConflictError reports seats that were already actively occupied at
// admission time. The whole request is rejected; no partial seat grant.
type SeatConflictError struct {
	BusID int64
	Seats []int
}

func (e *SeatConflictError) Error() string {
	sorted := make([]int, len(e.Seats))
	copy(sorted, e.Seats)
	sort.Ints(sorted)

	parts := make([]string, len(sorted))
	for i, s := range sorted {
		parts[i] = fmt.Sprintf("%d", s)
	}
	return fmt.Sprintf("seat(s) %s already occupied on bus %d", strings.Join(parts, ", "), e.BusID)
}

// SettlementError reports a payment settlement attempted against a booking
// that can no longer accept one (already cancelled).
type SettlementError struct {
	BookingCode string
	Reason      string
}

func (e *SettlementError) Error() string {
	return fmt.Sprintf("cannot settle booking %s: %s", e.BookingCode, e.Reason)
}
