package services

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/smartbus/booking-backend/internal/database"
	"github.com/smartbus/booking-backend/internal/models"
	"github.com/smartbus/booking-backend/pkg/validator"
)

// Walk-on riders pay in person at the door; the console records the method
// as a UPI QR scan.
const walkOnPaymentMethod = "UPI-QR"

const walkOnPassengerName = "Walk-on Passenger"

// BookingService is the booking lifecycle manager: it admits new bookings
// (pre-booked and walk-on) without double-allocating seats, and drives
// payment settlement and cancellation.
type BookingService struct {
	buses      *database.BusRepository
	bookings   *database.BookingRepository
	passengers *database.PassengerRepository
	locks      *SeatLocks
	contact    *validator.ContactValidator
	log        *logrus.Logger
}

// NewBookingService creates a new BookingService. The SeatLocks instance
// must be shared with the OccupancyService so every ledger mutation runs
// under the same per-bus discipline.
func NewBookingService(
	buses *database.BusRepository,
	bookings *database.BookingRepository,
	passengers *database.PassengerRepository,
	locks *SeatLocks,
	log *logrus.Logger,
) *BookingService {
	return &BookingService{
		buses:      buses,
		bookings:   bookings,
		passengers: passengers,
		locks:      locks,
		contact:    validator.NewContactValidator(),
		log:        log,
	}
}

// CreatePrebooked admits a multi-passenger booking. Seats are provisionally
// held from creation (reserve on booking, not on payment); the booking
// itself starts pending and unpaid until settlement.
func (s *BookingService) CreatePrebooked(req *models.CreateBookingRequest) (*models.BookingResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := s.validateContact(req.ContactEmail, req.ContactPhone); err != nil {
		return nil, err
	}

	bus, err := s.buses.GetByID(req.BusID)
	if err != nil {
		return nil, err
	}

	for _, p := range req.Passengers {
		if p.SeatNumber > bus.TotalSeats {
			return nil, models.NewValidationError(
				"seat %d exceeds bus capacity of %d", p.SeatNumber, bus.TotalSeats)
		}
	}

	travelDate, _ := time.Parse("2006-01-02", req.TravelDate)

	booking := &models.Booking{
		BookingCode:   models.NewBookingCode(),
		BusID:         req.BusID,
		UserID:        req.UserID,
		TravelDate:    travelDate,
		TotalAmount:   float64(len(req.Passengers)) * bus.Price,
		PaymentStatus: models.PaymentStatusPending,
		Status:        models.BookingStatusPending,
	}
	if req.ContactEmail != "" {
		booking.ContactEmail = &req.ContactEmail
	}
	if req.ContactPhone != "" {
		booking.ContactPhone = &req.ContactPhone
	}
	if req.PaymentMethod != "" {
		booking.PaymentMethod = &req.PaymentMethod
	}

	rows := make([]models.Passenger, len(req.Passengers))
	for i, p := range req.Passengers {
		rows[i] = models.Passenger{
			BusID:      req.BusID,
			SeatNumber: p.SeatNumber,
			Name:       p.Name,
			IsActive:   true,
		}
		if p.Age > 0 {
			age := p.Age
			rows[i].Age = &age
		}
		if p.Gender != "" {
			gender := p.Gender
			rows[i].Gender = &gender
		}
	}

	s.locks.Lock(req.BusID)
	defer s.locks.Unlock(req.BusID)

	if err := s.bookings.CreateWithPassengers(booking, rows); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"booking_code": booking.BookingCode,
		"bus_id":       booking.BusID,
		"seats":        len(rows),
		"total_amount": booking.TotalAmount,
	}).Info("Booking admitted")

	return &models.BookingResult{
		BookingCode: booking.BookingCode,
		Status:      booking.Status,
		TotalAmount: booking.TotalAmount,
	}, nil
}

// CreateWalkOn admits a single-seat booking from the on-board operator
// console. Payment is collected in person, so the booking is created
// already confirmed and paid and the seat is occupied immediately.
func (s *BookingService) CreateWalkOn(req *models.WalkOnBookingRequest) (*models.BookingResult, error) {
	if req.SeatNumber < 1 {
		return nil, models.NewValidationError("seat number %d is invalid", req.SeatNumber)
	}
	if req.Amount <= 0 {
		return nil, models.NewValidationError("amount must be positive")
	}

	bus, err := s.buses.GetByID(req.BusID)
	if err != nil {
		return nil, err
	}
	if req.SeatNumber > bus.TotalSeats {
		return nil, models.NewValidationError(
			"seat %d exceeds bus capacity of %d", req.SeatNumber, bus.TotalSeats)
	}

	now := time.Now()
	method := walkOnPaymentMethod
	booking := &models.Booking{
		BookingCode:   models.NewWalkOnCode(),
		BusID:         req.BusID,
		TravelDate:    now,
		TotalAmount:   req.Amount,
		PaymentMethod: &method,
		PaymentStatus: models.PaymentStatusPaid,
		Status:        models.BookingStatusConfirmed,
		PaidAt:        &now,
	}

	destination := req.Destination
	rows := []models.Passenger{{
		BusID:       req.BusID,
		SeatNumber:  req.SeatNumber,
		Name:        walkOnPassengerName,
		Destination: &destination,
		IsActive:    true,
		BoardedAt:   &now,
	}}

	s.locks.Lock(req.BusID)
	defer s.locks.Unlock(req.BusID)

	if err := s.bookings.CreateWithPassengers(booking, rows); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"booking_code": booking.BookingCode,
		"bus_id":       booking.BusID,
		"seat_number":  req.SeatNumber,
		"destination":  req.Destination,
	}).Info("Walk-on booking admitted")

	return &models.BookingResult{
		BookingCode: booking.BookingCode,
		Status:      booking.Status,
		TotalAmount: booking.TotalAmount,
	}, nil
}

// Settle applies an external payment outcome to a booking. A Paid outcome
// confirms the booking; repeating it is harmless. A Failed outcome leaves
// the booking pending for the caller to retry. Settlement never touches the
// seat ledger: occupancy was granted at admission.
func (s *BookingService) Settle(code string, outcome models.PaymentOutcome, method string) error {
	booking, err := s.bookings.GetByCode(code)
	if err != nil {
		return err
	}

	if booking.Status == models.BookingStatusCancelled {
		return &models.SettlementError{BookingCode: code, Reason: "booking is cancelled"}
	}

	if outcome == models.PaymentOutcomeFailed {
		s.log.WithField("booking_code", code).Warn("Payment settlement failed, booking remains pending")
		return nil
	}

	if err := s.bookings.MarkPaid(code, method); err != nil {
		return err
	}

	s.log.WithFields(logrus.Fields{
		"booking_code":   code,
		"payment_method": method,
	}).Info("Booking settled")

	return nil
}

// Cancel marks a booking cancelled. Idempotent: cancelling twice succeeds
// with the same final state. Seats held by the booking are not vacated;
// release happens only through an explicit drop.
func (s *BookingService) Cancel(code string) error {
	if err := s.bookings.Cancel(code); err != nil {
		return err
	}

	s.log.WithField("booking_code", code).Info("Booking cancelled")
	return nil
}

// GetStatus returns a booking joined with its bus schedule fields and all
// passenger rows.
func (s *BookingService) GetStatus(code string) (*models.BookingDetails, error) {
	details, err := s.bookings.GetWithBus(code)
	if err != nil {
		return nil, err
	}

	passengers, err := s.passengers.ByBookingCode(code)
	if err != nil {
		return nil, err
	}
	details.Passengers = passengers

	return details, nil
}

func (s *BookingService) validateContact(email, phone string) error {
	if email != "" {
		if err := s.contact.ValidateEmail(email); err != nil {
			return models.NewValidationError("invalid contact email: %v", err)
		}
	}
	if phone != "" {
		if err := s.contact.ValidatePhone(phone); err != nil {
			return models.NewValidationError("invalid contact phone: %v", err)
		}
	}
	return nil
}
