package models

import "time"

// BusType represents the type/category of bus
type BusType string

const (
	BusTypeStandard BusType = "Standard"
	BusTypeAC       BusType = "AC"
	BusTypeSleeper  BusType = "Sleeper"
	BusTypeVolvo    BusType = "Volvo AC"
)

// Bus represents a bus in the fleet catalog. The booking engine only reads
// capacity, price and the stored coordinate; fleet edits happen elsewhere.
type Bus struct {
	ID            int64     `json:"id" db:"id"`
	Name          string    `json:"name" db:"name"`
	Type          BusType   `json:"type" db:"type"`
	DepartureCity string    `json:"departureCity" db:"departure_city"`
	ArrivalCity   string    `json:"arrivalCity" db:"arrival_city"`
	DepartureTime string    `json:"departureTime" db:"departure_time"`
	ArrivalTime   string    `json:"arrivalTime" db:"arrival_time"`
	Price         float64   `json:"price" db:"price"`
	TotalSeats    int       `json:"totalSeats" db:"total_seats"`
	CurrentLat    float64   `json:"currentLat" db:"current_lat"`
	CurrentLng    float64   `json:"currentLng" db:"current_lng"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at"`
}

// BusPosition is the simulated live location returned by the tracking endpoint.
type BusPosition struct {
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
	Name string  `json:"name"`
}
