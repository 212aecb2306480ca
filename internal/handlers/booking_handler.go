package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/smartbus/booking-backend/internal/models"
	"github.com/smartbus/booking-backend/internal/services"
)

// BookingHandler handles the booking lifecycle endpoints
type BookingHandler struct {
	bookings *services.BookingService
	log      *logrus.Logger
}

// NewBookingHandler creates a new BookingHandler
func NewBookingHandler(bookings *services.BookingService, log *logrus.Logger) *BookingHandler {
	return &BookingHandler{bookings: bookings, log: log}
}

// Create admits a pre-booked multi-passenger booking
// POST /api/v1/bookings
func (h *BookingHandler) Create(c *gin.Context) {
	var req models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation_failed", Message: err.Error()})
		return
	}

	result, err := h.bookings.CreatePrebooked(&req)
	if err != nil {
		h.logFailure(c, "create booking", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Booking created, pending payment",
		"bookingId":   result.BookingCode,
		"status":      result.Status,
		"totalAmount": result.TotalAmount,
	})
}

// Pay settles a booking with the outcome reported by the payment
// collaborator
// POST /api/v1/bookings/pay
func (h *BookingHandler) Pay(c *gin.Context) {
	var req models.SettlePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation_failed", Message: err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		respondError(c, err)
		return
	}

	if err := h.bookings.Settle(req.BookingCode, req.Outcome, req.Method); err != nil {
		h.logFailure(c, "settle payment", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Payment processed successfully"})
}

// Status returns a booking with its bus schedule and passengers
// GET /api/v1/bookings/status/:code
func (h *BookingHandler) Status(c *gin.Context) {
	details, err := h.bookings.GetStatus(c.Param("code"))
	if err != nil {
		h.logFailure(c, "get booking status", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, details)
}

// Cancel cancels a booking. Repeating the call is a no-op success.
// POST /api/v1/bookings/cancel/:code
func (h *BookingHandler) Cancel(c *gin.Context) {
	if err := h.bookings.Cancel(c.Param("code")); err != nil {
		h.logFailure(c, "cancel booking", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Ticket cancelled successfully"})
}

// WalkOn admits an on-board single-seat booking from the operator console
// POST /api/v1/bookings/walk-on
func (h *BookingHandler) WalkOn(c *gin.Context) {
	var req models.WalkOnBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation_failed", Message: err.Error()})
		return
	}

	result, err := h.bookings.CreateWalkOn(&req)
	if err != nil {
		h.logFailure(c, "walk-on booking", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Walk-on booking successful",
		"bookingId":  result.BookingCode,
		"seatNumber": req.SeatNumber,
	})
}

func (h *BookingHandler) logFailure(c *gin.Context, op string, err error) {
	h.log.WithFields(logrus.Fields{
		"path":  c.Request.URL.Path,
		"error": err.Error(),
	}).Warnf("Failed to %s", op)
}
