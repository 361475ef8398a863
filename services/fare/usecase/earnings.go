package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mrstm/fare-service/internal/pkg/apperrors"
	"github.com/mrstm/fare-service/internal/pkg/models"
)

// GetDriverEarnings aggregates a driver's earnings over the given range.
// Pending earnings are not tracked yet, so everything earned counts as
// withdrawn.
func (uc *fareUC) GetDriverEarnings(ctx context.Context, driverID uuid.UUID, fromDate, toDate time.Time) (*models.EarningsSummary, error) {
	if toDate.Before(fromDate) {
		return nil, apperrors.InvalidInput("toDate must not be before fromDate")
	}

	total, err := uc.fareRepo.GetTotalEarnings(ctx, driverID, fromDate, toDate)
	if err != nil {
		return nil, err
	}

	thisMonth, err := uc.fareRepo.GetThisMonthEarnings(ctx, driverID)
	if err != nil {
		return nil, err
	}

	return &models.EarningsSummary{
		TotalEarnings:     total,
		ThisMonthEarnings: thisMonth,
		PendingEarnings:   0,
		WithdrawnEarnings: total,
	}, nil
}

// GetDailyEarnings returns per-date earnings totals in ascending date
// order. Dates without fares are omitted.
func (uc *fareUC) GetDailyEarnings(ctx context.Context, driverID uuid.UUID, fromDate, toDate time.Time) ([]models.DailyEarnings, error) {
	if toDate.Before(fromDate) {
		return nil, apperrors.InvalidInput("toDate must not be before fromDate")
	}

	return uc.fareRepo.GetDailyEarnings(ctx, driverID, fromDate, toDate)
}
