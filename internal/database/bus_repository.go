package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/smartbus/booking-backend/internal/models"
)

// BusRepository handles database operations for the buses table. The booking
// engine only reads from it; fleet administration writes elsewhere.
type BusRepository struct {
	db *sqlx.DB
}

// NewBusRepository creates a new BusRepository
func NewBusRepository(db *sqlx.DB) *BusRepository {
	return &BusRepository{db: db}
}

// List returns all buses in the catalog.
func (r *BusRepository) List() ([]models.Bus, error) {
	query := `
		SELECT id, name, type, departure_city, arrival_city,
		       departure_time, arrival_time, price, total_seats,
		       current_lat, current_lng, created_at, updated_at
		FROM buses
		ORDER BY id
	`

	buses := []models.Bus{}
	if err := r.db.Select(&buses, query); err != nil {
		return nil, fmt.Errorf("failed to list buses: %w", err)
	}

	return buses, nil
}

// GetByID retrieves a single bus.
func (r *BusRepository) GetByID(busID int64) (*models.Bus, error) {
	query := `
		SELECT id, name, type, departure_city, arrival_city,
		       departure_time, arrival_time, price, total_seats,
		       current_lat, current_lng, created_at, updated_at
		FROM buses
		WHERE id = $1
	`

	var bus models.Bus
	if err := r.db.Get(&bus, query, busID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrBusNotFound
		}
		return nil, fmt.Errorf("failed to fetch bus %d: %w", busID, err)
	}

	return &bus, nil
}
