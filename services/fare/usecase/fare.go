package usecase

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mrstm/fare-service/internal/pkg/apperrors"
	"github.com/mrstm/fare-service/internal/pkg/logger"
	"github.com/mrstm/fare-service/internal/pkg/models"
	nrpkg "github.com/mrstm/fare-service/internal/pkg/newrelic"
	"github.com/mrstm/fare-service/services/fare"
	"github.com/mrstm/fare-service/services/fare/pricing"
)

// fareUC implements the fare.FareUC interface
type fareUC struct {
	cfg         *models.Config
	bookingRepo fare.BookingRepo
	fareRepo    fare.FareRepo
	rateRepo    fare.FareRateRepo
	mapsGW      fare.MapsGW
	fareGW      fare.FareGW
	surge       pricing.SurgeEstimator
	strategy    pricing.FareStrategy
}

// NewFareUC creates a new fare use case
func NewFareUC(
	cfg *models.Config,
	bookingRepo fare.BookingRepo,
	fareRepo fare.FareRepo,
	rateRepo fare.FareRateRepo,
	mapsGW fare.MapsGW,
	fareGW fare.FareGW,
	surge pricing.SurgeEstimator,
	strategy pricing.FareStrategy,
) fare.FareUC {
	return &fareUC{
		cfg:         cfg,
		bookingRepo: bookingRepo,
		fareRepo:    fareRepo,
		rateRepo:    rateRepo,
		mapsGW:      mapsGW,
		fareGW:      fareGW,
		surge:       surge,
		strategy:    strategy,
	}
}

// EstimateFare computes a fare quote without persisting anything
func (uc *fareUC) EstimateFare(ctx context.Context, req models.EstimateFareRequest, discountPercent float64) (*models.FareQuote, error) {
	carType := strings.ToUpper(strings.TrimSpace(req.CarType))
	if carType == "" {
		return nil, apperrors.InvalidInput("invalid car type provided")
	}
	if req.StartLocation == nil || req.EndLocation == nil {
		return nil, apperrors.InvalidInput("start and end locations are required")
	}

	dd, err := uc.mapsGW.GetDistanceAndDuration(ctx, *req.StartLocation, *req.EndLocation)
	if err != nil {
		return nil, err
	}

	surge := uc.surge.Estimate(dd.DurationMin, dd.DurationInTrafficMin)

	rate, err := uc.rateRepo.GetActiveByCarType(ctx, carType)
	if err != nil {
		return nil, err
	}
	if rate == nil {
		return nil, apperrors.NotFound("fare rate not found for this car type")
	}

	durationMin := math.Round(dd.DurationInTrafficMin)
	finalFare := uc.strategy.Calculate(rate, dd.DistanceKm, durationMin, surge, discountPercent)

	return &models.FareQuote{
		Distance:     dd.DistanceKm,
		Duration:     durationMin,
		Fare:         finalFare,
		Surge:        surge,
		StartAddress: dd.StartAddress,
		EndAddress:   dd.EndAddress,
	}, nil
}

// CalculateAndSaveFare computes and persists the fare for a completed
// booking. The operation is idempotent: a repeated call for a booking
// that already has a fare returns the originally persisted values.
func (uc *fareUC) CalculateAndSaveFare(ctx context.Context, bookingID uuid.UUID) (*models.CalculatedFare, error) {
	txn := nrpkg.FromContext(ctx)

	booking, err := uc.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, apperrors.NotFound("booking not found")
	}

	existing, err := uc.fareRepo.GetByBookingID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		logger.InfoCtx(ctx, "Fare already calculated for booking, returning persisted fare",
			logger.String("booking_id", bookingID.String()))
		return calculatedFareFrom(existing), nil
	}

	if booking.Status != models.BookingStatusCompleted {
		return nil, apperrors.InvalidState("cannot calculate fare until trip is completed")
	}
	if booking.StartLocation == nil || booking.EndLocation == nil {
		return nil, apperrors.InvalidInput("missing start or end location for booking")
	}

	segment := nrpkg.StartSegment(txn, "Maps.GetDistanceAndDuration")
	dd, err := uc.mapsGW.GetDistanceAndDuration(ctx, *booking.StartLocation, *booking.EndLocation)
	nrpkg.EndSegment(segment)
	if err != nil {
		return nil, err
	}

	surge := uc.surge.Estimate(dd.DurationMin, dd.DurationInTrafficMin)

	rate, err := uc.rateRepo.GetActiveByCarType(ctx, booking.CarType)
	if err != nil {
		return nil, err
	}
	if rate == nil {
		return nil, apperrors.NotFound("fare rate not found for car type: " + booking.CarType)
	}

	discount := uc.cfg.Pricing.SaveDiscountPercent
	durationMin := math.Round(dd.DurationInTrafficMin)
	finalFare := uc.strategy.Calculate(rate, dd.DistanceKm, durationMin, surge, discount)

	newFare := &models.Fare{
		ID:        uuid.New(),
		BookingID: bookingID,
		CarType:   booking.CarType,
		Distance:  dd.DistanceKm,
		Duration:  durationMin,
		Surge:     surge,
		Discount:  discount,
		FinalFare: finalFare,
		CreatedAt: time.Now().UTC(),
	}

	if err := uc.fareRepo.Create(ctx, newFare); err != nil {
		if apperrors.Is(err, apperrors.KindAlreadyExists) {
			// A concurrent request won the insert; fall back to its row
			winner, gerr := uc.fareRepo.GetByBookingID(ctx, bookingID)
			if gerr == nil && winner != nil {
				return calculatedFareFrom(winner), nil
			}
		}
		return nil, err
	}

	logger.InfoCtx(ctx, "Fare calculated and saved",
		logger.String("booking_id", bookingID.String()),
		logger.Float64("fare", finalFare),
		logger.Float64("surge", surge))

	if err := uc.fareGW.PublishFareCalculated(ctx, newFare); err != nil {
		// The fare row is the source of truth; a failed publish is not fatal
		logger.WarnCtx(ctx, "Failed to publish fare calculated event",
			logger.String("booking_id", bookingID.String()),
			logger.Err(err))
	}

	return calculatedFareFrom(newFare), nil
}

// AddFareRate registers a new active rate for a car type, replacing any
// previously active rate.
func (uc *fareUC) AddFareRate(ctx context.Context, req models.AddFareRateRequest) (*models.FareRate, error) {
	carType := strings.ToUpper(strings.TrimSpace(req.CarType))
	if carType == "" {
		return nil, apperrors.InvalidInput("invalid car type provided")
	}
	if req.BaseFare < 0 || req.PerKmRate < 0 || req.PerMinRate < 0 || req.MinFare < 0 {
		return nil, apperrors.InvalidInput("rate components must be non-negative")
	}

	rate := &models.FareRate{
		ID:         uuid.New(),
		CarType:    carType,
		BaseFare:   req.BaseFare,
		PerKmRate:  req.PerKmRate,
		PerMinRate: req.PerMinRate,
		MinFare:    req.MinFare,
		Active:     true,
		CreatedAt:  time.Now().UTC(),
	}

	if err := uc.rateRepo.Create(ctx, rate); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Fare rate added",
		logger.String("car_type", carType),
		logger.Float64("base_fare", rate.BaseFare),
		logger.Float64("min_fare", rate.MinFare))

	return rate, nil
}

func calculatedFareFrom(f *models.Fare) *models.CalculatedFare {
	return &models.CalculatedFare{
		BookingID: f.BookingID,
		Distance:  f.Distance,
		Duration:  f.Duration,
		Surge:     f.Surge,
		Discount:  f.Discount,
		Fare:      f.FinalFare,
	}
}
