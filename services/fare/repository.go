package fare

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mrstm/fare-service/internal/pkg/models"
)

// BookingRepo defines read access to bookings. Bookings are owned by the
// booking subsystem; this service never writes them.
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/mrstm/fare-service/services/fare BookingRepo,FareRateRepo,FareRepo
type BookingRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Booking, error)
}

// FareRateRepo defines access to fare rates.
// GetActiveByCarType returns (nil, nil) when no active rate exists.
type FareRateRepo interface {
	GetActiveByCarType(ctx context.Context, carType string) (*models.FareRate, error)
	Create(ctx context.Context, rate *models.FareRate) error
}

// FareRepo defines access to persisted fares and earnings aggregates.
// GetByBookingID returns (nil, nil) when no fare exists for the booking.
type FareRepo interface {
	Create(ctx context.Context, fare *models.Fare) error
	GetByBookingID(ctx context.Context, bookingID uuid.UUID) (*models.Fare, error)
	ExistsByBookingID(ctx context.Context, bookingID uuid.UUID) (bool, error)
	GetTotalEarnings(ctx context.Context, driverID uuid.UUID, fromDate, toDate time.Time) (float64, error)
	GetThisMonthEarnings(ctx context.Context, driverID uuid.UUID) (float64, error)
	GetDailyEarnings(ctx context.Context, driverID uuid.UUID, fromDate, toDate time.Time) ([]models.DailyEarnings, error)
}
