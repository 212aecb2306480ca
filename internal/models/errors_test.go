package models

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeatConflictError(t *testing.T) {
	t.Run("Seats Sorted In Message", func(t *testing.T) {
		err := &SeatConflictError{BusID: 3, Seats: []int{9, 2, 5}}
		assert.Equal(t, "seat(s) 2, 5, 9 already occupied on bus 3", err.Error())
		// The original slice is left untouched.
		assert.Equal(t, []int{9, 2, 5}, err.Seats)
	})

	t.Run("Unwraps Through Wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("admission failed: %w", &SeatConflictError{BusID: 1, Seats: []int{4}})

		var conflictErr *SeatConflictError
		assert.True(t, errors.As(wrapped, &conflictErr))
		assert.Equal(t, []int{4}, conflictErr.Seats)
	})
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("seat %d exceeds bus capacity of %d", 41, 40)
	assert.Equal(t, "seat 41 exceeds bus capacity of 40", err.Error())
}

func TestSettlementError(t *testing.T) {
	err := &SettlementError{BookingCode: "SB-ABC123XYZ", Reason: "booking is cancelled"}
	assert.Equal(t, "cannot settle booking SB-ABC123XYZ: booking is cancelled", err.Error())
}
