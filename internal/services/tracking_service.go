package services

import (
	"math/rand"

	"github.com/smartbus/booking-backend/internal/database"
	"github.com/smartbus/booking-backend/internal/models"
)

// TrackingService simulates live bus positions. Each query returns the
// stored coordinate perturbed by an independent uniform offset, so rapid
// successive calls yield different but nearby points. Nothing is persisted
// between calls.
type TrackingService struct {
	buses         *database.BusRepository
	jitterDegrees float64
}

// NewTrackingService creates a new TrackingService. jitterDegrees is the
// half-width of the uniform perturbation per coordinate axis.
func NewTrackingService(buses *database.BusRepository, jitterDegrees float64) *TrackingService {
	return &TrackingService{buses: buses, jitterDegrees: jitterDegrees}
}

// CurrentPosition returns the simulated position of a bus.
func (s *TrackingService) CurrentPosition(busID int64) (*models.BusPosition, error) {
	bus, err := s.buses.GetByID(busID)
	if err != nil {
		return nil, err
	}

	return &models.BusPosition{
		Lat:  bus.CurrentLat + s.jitter(),
		Lng:  bus.CurrentLng + s.jitter(),
		Name: bus.Name,
	}, nil
}

func (s *TrackingService) jitter() float64 {
	return (rand.Float64() - 0.5) * 2 * s.jitterDegrees
}
