package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/smartbus/booking-backend/internal/database"
	"github.com/smartbus/booking-backend/internal/services"
)

// BusHandler handles the bus catalog and tracking endpoints
type BusHandler struct {
	buses    *database.BusRepository
	tracking *services.TrackingService
	log      *logrus.Logger
}

// NewBusHandler creates a new BusHandler
func NewBusHandler(buses *database.BusRepository, tracking *services.TrackingService, log *logrus.Logger) *BusHandler {
	return &BusHandler{buses: buses, tracking: tracking, log: log}
}

// List returns all buses
// GET /api/v1/buses
func (h *BusHandler) List(c *gin.Context) {
	buses, err := h.buses.List()
	if err != nil {
		h.log.WithField("error", err.Error()).Error("Failed to list buses")
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, buses)
}

// Track returns the simulated live position of a bus
// GET /api/v1/buses/:id/track
func (h *BusHandler) Track(c *gin.Context) {
	busID, err := parseBusID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation_failed", Message: "Bus ID must be a number"})
		return
	}

	position, err := h.tracking.CurrentPosition(busID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, position)
}

func parseBusID(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
