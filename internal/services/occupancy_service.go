package services

import (
	"github.com/sirupsen/logrus"
	"github.com/smartbus/booking-backend/internal/database"
	"github.com/smartbus/booking-backend/internal/models"
)

// OccupancyService answers which seats on a bus are occupied and processes
// drop events that vacate them. Drops run under the same per-bus lock as
// booking admission.
type OccupancyService struct {
	buses      *database.BusRepository
	passengers *database.PassengerRepository
	locks      *SeatLocks
	log        *logrus.Logger
}

// NewOccupancyService creates a new OccupancyService.
func NewOccupancyService(
	buses *database.BusRepository,
	passengers *database.PassengerRepository,
	locks *SeatLocks,
	log *logrus.Logger,
) *OccupancyService {
	return &OccupancyService{
		buses:      buses,
		passengers: passengers,
		locks:      locks,
		log:        log,
	}
}

// OccupiedSeats returns the current seat ledger for a bus.
func (s *OccupancyService) OccupiedSeats(busID int64) ([]models.OccupiedSeat, error) {
	return s.passengers.OccupiedSeats(busID)
}

// Drop vacates a seat after its occupant disembarks. Returns whether a seat
// was actually vacated; dropping an already-vacant seat succeeds with no
// state change. This is the only operation that frees a seat for reuse.
func (s *OccupancyService) Drop(busID int64, seatNumber int) (bool, error) {
	if _, err := s.buses.GetByID(busID); err != nil {
		return false, err
	}

	s.locks.Lock(busID)
	defer s.locks.Unlock(busID)

	vacated, err := s.passengers.Drop(busID, seatNumber)
	if err != nil {
		return false, err
	}

	if vacated {
		s.log.WithFields(logrus.Fields{
			"bus_id":      busID,
			"seat_number": seatNumber,
		}).Info("Seat vacated")
	}

	return vacated, nil
}
