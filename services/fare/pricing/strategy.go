package pricing

import (
	"math"

	"github.com/mrstm/fare-service/internal/pkg/models"
)

// FareStrategy computes the final fare for a trip given the active rate
type FareStrategy interface {
	Calculate(rate *models.FareRate, distanceKm, durationMin, surge, discountPercent float64) float64
}

// FlatRateStrategy sums the rate components, applies surge, clamps to the
// minimum fare and then applies the discount. The rate components are flat
// additions: distance and duration are accepted for reporting but do not
// scale the formula. This is the pricing contract billing reconciles
// against, so it must not be changed without a rate-table migration.
type FlatRateStrategy struct{}

// NewFlatRateStrategy creates the default fare strategy
func NewFlatRateStrategy() *FlatRateStrategy {
	return &FlatRateStrategy{}
}

// Calculate returns the final fare rounded to the nearest currency unit.
// The minimum-fare clamp happens before the discount, so a discount can
// push the final fare below the minimum.
func (s *FlatRateStrategy) Calculate(rate *models.FareRate, distanceKm, durationMin, surge, discountPercent float64) float64 {
	finalFare := (rate.BaseFare + rate.PerKmRate + rate.PerMinRate) * surge
	finalFare = math.Max(finalFare, rate.MinFare)

	if discountPercent > 0 {
		finalFare -= finalFare * (discountPercent / 100)
	}

	return math.Round(finalFare)
}
