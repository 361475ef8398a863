package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/mrstm/fare-service/internal/pkg/models"
)

// BookingRepo provides read access to the bookings table. Bookings are
// written by the booking service; this repository only reads them.
type BookingRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewBookingRepository creates a new booking repository
func NewBookingRepository(cfg *models.Config, db *sqlx.DB) *BookingRepo {
	return &BookingRepo{
		cfg: cfg,
		db:  db,
	}
}

// GetByID retrieves a booking by ID. Returns (nil, nil) when the booking
// does not exist.
func (r *BookingRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	query := `
		SELECT id, driver_id, passenger_id, car_type,
			start_latitude, start_longitude, end_latitude, end_longitude,
			status, created_at, updated_at
		FROM bookings
		WHERE id = $1
	`

	row := r.db.QueryRowContext(ctx, query, id)

	booking := &models.Booking{}
	var startLat, startLng, endLat, endLng sql.NullFloat64

	err := row.Scan(
		&booking.ID,
		&booking.DriverID,
		&booking.PassengerID,
		&booking.CarType,
		&startLat,
		&startLng,
		&endLat,
		&endLng,
		&booking.Status,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	if startLat.Valid && startLng.Valid {
		booking.StartLocation = &models.Location{
			Latitude:  startLat.Float64,
			Longitude: startLng.Float64,
		}
	}
	if endLat.Valid && endLng.Valid {
		booking.EndLocation = &models.Location{
			Latitude:  endLat.Float64,
			Longitude: endLng.Float64,
		}
	}

	return booking, nil
}
