package models

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus represents the lifecycle status of a booking
type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "PENDING"
	BookingStatusInProgress BookingStatus = "IN_PROGRESS"
	BookingStatusCompleted  BookingStatus = "COMPLETED"
	BookingStatusCancelled  BookingStatus = "CANCELLED"
)

// Location represents a geographic coordinate pair
type Location struct {
	Latitude  float64 `json:"latitude" db:"latitude"`
	Longitude float64 `json:"longitude" db:"longitude"`
}

// Booking represents a booking record owned by the booking subsystem.
// The fare service only reads bookings; it never writes them.
type Booking struct {
	ID            uuid.UUID     `json:"id" db:"id"`
	DriverID      uuid.UUID     `json:"driver_id" db:"driver_id"`
	PassengerID   uuid.UUID     `json:"passenger_id" db:"passenger_id"`
	CarType       string        `json:"car_type" db:"car_type"`
	StartLocation *Location     `json:"start_location,omitempty"`
	EndLocation   *Location     `json:"end_location,omitempty"`
	Status        BookingStatus `json:"status" db:"status"`
	CreatedAt     time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at" db:"updated_at"`
}

// BookingCompletedEvent is the payload published by the booking service
// when a trip finishes. The fare service consumes it to calculate the fare.
type BookingCompletedEvent struct {
	BookingID   string    `json:"booking_id"`
	DriverID    string    `json:"driver_id"`
	CompletedAt time.Time `json:"completed_at"`
}
