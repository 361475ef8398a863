package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mrstm/fare-service/internal/pkg/constants"
	"github.com/mrstm/fare-service/internal/pkg/models"
	natsclient "github.com/mrstm/fare-service/internal/pkg/nats"
	"github.com/mrstm/fare-service/services/fare"
)

type fareGW struct {
	natsClient *natsclient.Client
}

// NewFareGW creates a new fare gateway
func NewFareGW(natsClient *natsclient.Client) fare.FareGW {
	return &fareGW{
		natsClient: natsClient,
	}
}

// PublishFareCalculated publishes a fare calculated event to NATS
func (g *fareGW) PublishFareCalculated(ctx context.Context, f *models.Fare) error {
	event := models.FareCalculatedEvent{
		BookingID: f.BookingID.String(),
		CarType:   f.CarType,
		Distance:  f.Distance,
		Duration:  f.Duration,
		Fare:      f.FinalFare,
		Timestamp: time.Now().UTC(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal fare calculated event: %w", err)
	}

	return g.natsClient.Publish(constants.SubjectFareCalculated, data)
}
