package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/smartbus/booking-backend/internal/models"
	"github.com/smartbus/booking-backend/internal/services"
)

// SeatHandler handles the seat ledger endpoints: occupancy queries for the
// rider seat map and driver console, and drop events that vacate seats.
type SeatHandler struct {
	occupancy *services.OccupancyService
	log       *logrus.Logger
}

// NewSeatHandler creates a new SeatHandler
func NewSeatHandler(occupancy *services.OccupancyService, log *logrus.Logger) *SeatHandler {
	return &SeatHandler{occupancy: occupancy, log: log}
}

// OccupiedSeats returns all actively held seats on a bus
// GET /api/v1/buses/:id/occupied-seats
func (h *SeatHandler) OccupiedSeats(c *gin.Context) {
	busID, err := parseBusID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation_failed", Message: "Bus ID must be a number"})
		return
	}

	seats, err := h.occupancy.OccupiedSeats(busID)
	if err != nil {
		h.log.WithField("error", err.Error()).Error("Failed to fetch occupied seats")
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, seats)
}

// Drop marks a seat vacant after its occupant disembarks
// POST /api/v1/passengers/drop
func (h *SeatHandler) Drop(c *gin.Context) {
	var req models.DropPassengerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation_failed", Message: err.Error()})
		return
	}

	if _, err := h.occupancy.Drop(req.BusID, req.SeatNumber); err != nil {
		h.log.WithFields(logrus.Fields{
			"bus_id":      req.BusID,
			"seat_number": req.SeatNumber,
			"error":       err.Error(),
		}).Warn("Failed to drop passenger")
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Seat %d is now vacant.", req.SeatNumber)})
}
