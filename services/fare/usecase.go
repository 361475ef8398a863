package fare

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mrstm/fare-service/internal/pkg/models"
)

// FareUC defines the interface for fare business logic
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/mrstm/fare-service/services/fare FareUC
type FareUC interface {
	EstimateFare(ctx context.Context, req models.EstimateFareRequest, discountPercent float64) (*models.FareQuote, error)
	CalculateAndSaveFare(ctx context.Context, bookingID uuid.UUID) (*models.CalculatedFare, error)
	AddFareRate(ctx context.Context, req models.AddFareRateRequest) (*models.FareRate, error)
	GetDriverEarnings(ctx context.Context, driverID uuid.UUID, fromDate, toDate time.Time) (*models.EarningsSummary, error)
	GetDailyEarnings(ctx context.Context, driverID uuid.UUID, fromDate, toDate time.Time) ([]models.DailyEarnings, error)
}
