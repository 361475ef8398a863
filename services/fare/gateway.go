package fare

import (
	"context"

	"github.com/mrstm/fare-service/internal/pkg/models"
)

// MapsGW defines the mapping provider used for distance and duration
// lookups. Any provider implementing this contract is substitutable.
// go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/mrstm/fare-service/services/fare MapsGW,FareGW
type MapsGW interface {
	GetDistanceAndDuration(ctx context.Context, start, end models.Location) (*models.DistanceDuration, error)
}

// FareGW defines the event publishing operations of the fare service
type FareGW interface {
	PublishFareCalculated(ctx context.Context, fare *models.Fare) error
}
