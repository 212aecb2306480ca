package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/smartbus/booking-backend/internal/models"
)

// ErrorResponse is the structured error body returned on every failure.
// Error carries a machine-readable reason the client switches on; Message
// is human-readable; Seats is set only on seat conflicts so the UI can
// re-offer seat selection.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Seats   []int  `json:"seats,omitempty"`
}

// respondError maps a service error to an HTTP status and reason string.
func respondError(c *gin.Context, err error) {
	var validationErr *models.ValidationError
	var conflictErr *models.SeatConflictError
	var settlementErr *models.SettlementError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_failed",
			Message: validationErr.Error(),
		})
	case errors.As(err, &conflictErr):
		c.JSON(http.StatusConflict, ErrorResponse{
			Error:   "seat_taken",
			Message: conflictErr.Error(),
			Seats:   conflictErr.Seats,
		})
	case errors.Is(err, models.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "booking_not_found",
			Message: "Booking not found",
		})
	case errors.Is(err, models.ErrBusNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "bus_not_found",
			Message: "Bus not found",
		})
	case errors.As(err, &settlementErr):
		c.JSON(http.StatusConflict, ErrorResponse{
			Error:   "settlement_rejected",
			Message: settlementErr.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "server_error",
			Message: "Something went wrong, please try again",
		})
	}
}
