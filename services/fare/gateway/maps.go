package gateway

import (
	"context"
	"fmt"
	"time"

	"googlemaps.github.io/maps"

	"github.com/mrstm/fare-service/internal/pkg/apperrors"
	"github.com/mrstm/fare-service/internal/pkg/models"
	"github.com/mrstm/fare-service/services/fare"
)

// MapsGW resolves distance and duration between two coordinates through
// the Google Maps Distance Matrix API.
type MapsGW struct {
	cfg    *models.Config
	client *maps.Client
}

// NewMapsGW creates a new maps gateway with the configured API key
func NewMapsGW(cfg *models.Config) (fare.MapsGW, error) {
	client, err := maps.NewClient(maps.WithAPIKey(cfg.Maps.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &MapsGW{
		cfg:    cfg,
		client: client,
	}, nil
}

// GetDistanceAndDuration queries the Distance Matrix API for driving
// distance and duration, requesting departure time "now" so the response
// includes a traffic-adjusted duration.
func (g *MapsGW) GetDistanceAndDuration(ctx context.Context, start, end models.Location) (*models.DistanceDuration, error) {
	timeout := time.Duration(g.cfg.Maps.TimeoutSeconds) * time.Second
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req := &maps.DistanceMatrixRequest{
		Origins:       []string{formatLocation(start)},
		Destinations:  []string{formatLocation(end)},
		Mode:          maps.TravelModeDriving,
		DepartureTime: "now",
	}

	resp, err := g.client.DistanceMatrix(ctx, req)
	if err != nil {
		return nil, apperrors.Provider("distance matrix request failed", err)
	}

	if len(resp.Rows) == 0 || len(resp.Rows[0].Elements) == 0 {
		return nil, apperrors.Provider("distance matrix response contained no elements", nil)
	}

	element := resp.Rows[0].Elements[0]
	if element.Status != "OK" {
		return nil, apperrors.Provider("no route found between the given locations", nil)
	}

	dd := &models.DistanceDuration{
		DistanceKm:           float64(element.Distance.Meters) / 1000.0,
		DurationMin:          element.Duration.Minutes(),
		DurationInTrafficMin: element.DurationInTraffic.Minutes(),
	}

	// Traffic duration is only present when the API has traffic data;
	// fall back to the free-flow duration so surge degrades to 1.0.
	if element.DurationInTraffic <= 0 {
		dd.DurationInTrafficMin = dd.DurationMin
	}

	if len(resp.OriginAddresses) > 0 {
		dd.StartAddress = resp.OriginAddresses[0]
	}
	if len(resp.DestinationAddresses) > 0 {
		dd.EndAddress = resp.DestinationAddresses[0]
	}

	return dd, nil
}

func formatLocation(loc models.Location) string {
	return fmt.Sprintf("%f,%f", loc.Latitude, loc.Longitude)
}
