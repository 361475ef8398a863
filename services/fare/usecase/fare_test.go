package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrstm/fare-service/internal/pkg/apperrors"
	"github.com/mrstm/fare-service/internal/pkg/models"
	"github.com/mrstm/fare-service/services/fare"
	"github.com/mrstm/fare-service/services/fare/mocks"
	"github.com/mrstm/fare-service/services/fare/pricing"
)

type ucMocks struct {
	bookingRepo *mocks.MockBookingRepo
	fareRepo    *mocks.MockFareRepo
	rateRepo    *mocks.MockFareRateRepo
	mapsGW      *mocks.MockMapsGW
	fareGW      *mocks.MockFareGW
}

func newTestUC(t *testing.T, cfg *models.Config) (fare.FareUC, ucMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := ucMocks{
		bookingRepo: mocks.NewMockBookingRepo(ctrl),
		fareRepo:    mocks.NewMockFareRepo(ctrl),
		rateRepo:    mocks.NewMockFareRateRepo(ctrl),
		mapsGW:      mocks.NewMockMapsGW(ctrl),
		fareGW:      mocks.NewMockFareGW(ctrl),
	}

	if cfg == nil {
		cfg = &models.Config{}
		cfg.Pricing.SaveDiscountPercent = 10
	}

	uc := NewFareUC(cfg, m.bookingRepo, m.fareRepo, m.rateRepo, m.mapsGW, m.fareGW,
		pricing.NewTrafficSurge(), pricing.NewFlatRateStrategy())

	return uc, m
}

func standardRate() *models.FareRate {
	return &models.FareRate{
		ID:         uuid.New(),
		CarType:    "SEDAN",
		BaseFare:   50,
		PerKmRate:  10,
		PerMinRate: 5,
		MinFare:    60,
		Active:     true,
		CreatedAt:  time.Now(),
	}
}

func completedBooking(bookingID uuid.UUID) *models.Booking {
	return &models.Booking{
		ID:          bookingID,
		DriverID:    uuid.New(),
		PassengerID: uuid.New(),
		CarType:     "SEDAN",
		StartLocation: &models.Location{
			Latitude:  -6.175392,
			Longitude: 106.827153,
		},
		EndLocation: &models.Location{
			Latitude:  -6.185392,
			Longitude: 106.837153,
		},
		Status: models.BookingStatusCompleted,
	}
}

func TestEstimateFare_Success(t *testing.T) {
	uc, m := newTestUC(t, nil)

	req := models.EstimateFareRequest{
		StartLocation: &models.Location{Latitude: -6.175392, Longitude: 106.827153},
		EndLocation:   &models.Location{Latitude: -6.185392, Longitude: 106.837153},
		CarType:       "sedan",
	}

	m.mapsGW.EXPECT().
		GetDistanceAndDuration(gomock.Any(), *req.StartLocation, *req.EndLocation).
		Return(&models.DistanceDuration{
			DistanceKm:           5,
			DurationMin:          10,
			DurationInTrafficMin: 10,
			StartAddress:         "Jalan Thamrin 1",
			EndAddress:           "Jalan Sudirman 2",
		}, nil)

	// Car type is normalized before the rate lookup
	m.rateRepo.EXPECT().
		GetActiveByCarType(gomock.Any(), "SEDAN").
		Return(standardRate(), nil)

	quote, err := uc.EstimateFare(context.Background(), req, 0)
	require.NoError(t, err)

	// (50 + 10 + 5) * 1.0 = 65, no congestion so surge stays 1.0
	assert.Equal(t, 65.0, quote.Fare)
	assert.Equal(t, 1.0, quote.Surge)
	assert.Equal(t, 5.0, quote.Distance)
	assert.Equal(t, 10.0, quote.Duration)
	assert.Equal(t, "Jalan Thamrin 1", quote.StartAddress)
	assert.Equal(t, "Jalan Sudirman 2", quote.EndAddress)
}

func TestEstimateFare_AppliesDiscount(t *testing.T) {
	uc, m := newTestUC(t, nil)

	req := models.EstimateFareRequest{
		StartLocation: &models.Location{Latitude: 1, Longitude: 1},
		EndLocation:   &models.Location{Latitude: 2, Longitude: 2},
		CarType:       "SEDAN",
	}

	m.mapsGW.EXPECT().
		GetDistanceAndDuration(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&models.DistanceDuration{DistanceKm: 5, DurationMin: 10, DurationInTrafficMin: 10}, nil)
	m.rateRepo.EXPECT().
		GetActiveByCarType(gomock.Any(), "SEDAN").
		Return(standardRate(), nil)

	quote, err := uc.EstimateFare(context.Background(), req, 10)
	require.NoError(t, err)

	// 65 - 10% = 58.5, rounds to 59
	assert.Equal(t, 59.0, quote.Fare)
}

func TestEstimateFare_MissingCarType(t *testing.T) {
	uc, _ := newTestUC(t, nil)

	req := models.EstimateFareRequest{
		StartLocation: &models.Location{Latitude: 1, Longitude: 1},
		EndLocation:   &models.Location{Latitude: 2, Longitude: 2},
		CarType:       "   ",
	}

	_, err := uc.EstimateFare(context.Background(), req, 0)
	assert.True(t, apperrors.Is(err, apperrors.KindInvalidInput))
}

func TestEstimateFare_MissingLocations(t *testing.T) {
	uc, _ := newTestUC(t, nil)

	req := models.EstimateFareRequest{CarType: "SEDAN"}

	_, err := uc.EstimateFare(context.Background(), req, 0)
	assert.True(t, apperrors.Is(err, apperrors.KindInvalidInput))
}

func TestEstimateFare_NoActiveRate(t *testing.T) {
	uc, m := newTestUC(t, nil)

	req := models.EstimateFareRequest{
		StartLocation: &models.Location{Latitude: 1, Longitude: 1},
		EndLocation:   &models.Location{Latitude: 2, Longitude: 2},
		CarType:       "LUXURY",
	}

	m.mapsGW.EXPECT().
		GetDistanceAndDuration(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&models.DistanceDuration{DistanceKm: 5, DurationMin: 10, DurationInTrafficMin: 10}, nil)
	m.rateRepo.EXPECT().
		GetActiveByCarType(gomock.Any(), "LUXURY").
		Return(nil, nil)

	_, err := uc.EstimateFare(context.Background(), req, 0)
	assert.True(t, apperrors.Is(err, apperrors.KindNotFound))
}

func TestEstimateFare_ProviderError(t *testing.T) {
	uc, m := newTestUC(t, nil)

	req := models.EstimateFareRequest{
		StartLocation: &models.Location{Latitude: 1, Longitude: 1},
		EndLocation:   &models.Location{Latitude: 2, Longitude: 2},
		CarType:       "SEDAN",
	}

	m.mapsGW.EXPECT().
		GetDistanceAndDuration(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, apperrors.Provider("distance matrix request failed", errors.New("timeout")))

	_, err := uc.EstimateFare(context.Background(), req, 0)
	assert.True(t, apperrors.Is(err, apperrors.KindProvider))
}

func TestCalculateAndSaveFare_Success(t *testing.T) {
	uc, m := newTestUC(t, nil)

	bookingID := uuid.New()
	booking := completedBooking(bookingID)

	m.bookingRepo.EXPECT().GetByID(gomock.Any(), bookingID).Return(booking, nil)
	m.fareRepo.EXPECT().GetByBookingID(gomock.Any(), bookingID).Return(nil, nil)
	m.mapsGW.EXPECT().
		GetDistanceAndDuration(gomock.Any(), *booking.StartLocation, *booking.EndLocation).
		Return(&models.DistanceDuration{DistanceKm: 5, DurationMin: 10, DurationInTrafficMin: 10}, nil)
	m.rateRepo.EXPECT().GetActiveByCarType(gomock.Any(), "SEDAN").Return(standardRate(), nil)

	m.fareRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, f *models.Fare) error {
			assert.Equal(t, bookingID, f.BookingID)
			assert.Equal(t, "SEDAN", f.CarType)
			assert.Equal(t, 10.0, f.Discount)
			// 65 - 10% configured discount = 58.5, rounds to 59
			assert.Equal(t, 59.0, f.FinalFare)
			return nil
		})
	m.fareGW.EXPECT().PublishFareCalculated(gomock.Any(), gomock.Any()).Return(nil)

	calculated, err := uc.CalculateAndSaveFare(context.Background(), bookingID)
	require.NoError(t, err)
	assert.Equal(t, bookingID, calculated.BookingID)
	assert.Equal(t, 59.0, calculated.Fare)
	assert.Equal(t, 1.0, calculated.Surge)
}

func TestCalculateAndSaveFare_BookingNotFound(t *testing.T) {
	uc, m := newTestUC(t, nil)

	bookingID := uuid.New()
	m.bookingRepo.EXPECT().GetByID(gomock.Any(), bookingID).Return(nil, nil)

	_, err := uc.CalculateAndSaveFare(context.Background(), bookingID)
	assert.True(t, apperrors.Is(err, apperrors.KindNotFound))
}

func TestCalculateAndSaveFare_IdempotentReturn(t *testing.T) {
	uc, m := newTestUC(t, nil)

	bookingID := uuid.New()
	existing := &models.Fare{
		ID:        uuid.New(),
		BookingID: bookingID,
		CarType:   "SEDAN",
		Distance:  5,
		Duration:  10,
		Surge:     1.2,
		Discount:  10,
		FinalFare: 129.6,
	}

	m.bookingRepo.EXPECT().GetByID(gomock.Any(), bookingID).Return(completedBooking(bookingID), nil)
	m.fareRepo.EXPECT().GetByBookingID(gomock.Any(), bookingID).Return(existing, nil)

	// No maps call, no rate lookup, no insert and no publish on the repeat
	calculated, err := uc.CalculateAndSaveFare(context.Background(), bookingID)
	require.NoError(t, err)
	assert.Equal(t, 129.6, calculated.Fare)
	assert.Equal(t, 1.2, calculated.Surge)
}

func TestCalculateAndSaveFare_TripNotCompleted(t *testing.T) {
	uc, m := newTestUC(t, nil)

	bookingID := uuid.New()
	booking := completedBooking(bookingID)
	booking.Status = models.BookingStatusInProgress

	m.bookingRepo.EXPECT().GetByID(gomock.Any(), bookingID).Return(booking, nil)
	m.fareRepo.EXPECT().GetByBookingID(gomock.Any(), bookingID).Return(nil, nil)

	_, err := uc.CalculateAndSaveFare(context.Background(), bookingID)
	assert.True(t, apperrors.Is(err, apperrors.KindInvalidState))
}

func TestCalculateAndSaveFare_MissingLocations(t *testing.T) {
	uc, m := newTestUC(t, nil)

	bookingID := uuid.New()
	booking := completedBooking(bookingID)
	booking.EndLocation = nil

	m.bookingRepo.EXPECT().GetByID(gomock.Any(), bookingID).Return(booking, nil)
	m.fareRepo.EXPECT().GetByBookingID(gomock.Any(), bookingID).Return(nil, nil)

	_, err := uc.CalculateAndSaveFare(context.Background(), bookingID)
	assert.True(t, apperrors.Is(err, apperrors.KindInvalidInput))
}

func TestCalculateAndSaveFare_ConcurrentInsertFallsBackToWinner(t *testing.T) {
	uc, m := newTestUC(t, nil)

	bookingID := uuid.New()
	booking := completedBooking(bookingID)
	winner := &models.Fare{
		ID:        uuid.New(),
		BookingID: bookingID,
		CarType:   "SEDAN",
		FinalFare: 108,
		Surge:     1,
		Discount:  10,
	}

	m.bookingRepo.EXPECT().GetByID(gomock.Any(), bookingID).Return(booking, nil)
	m.fareRepo.EXPECT().GetByBookingID(gomock.Any(), bookingID).Return(nil, nil)
	m.mapsGW.EXPECT().
		GetDistanceAndDuration(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&models.DistanceDuration{DistanceKm: 5, DurationMin: 10, DurationInTrafficMin: 10}, nil)
	m.rateRepo.EXPECT().GetActiveByCarType(gomock.Any(), "SEDAN").Return(standardRate(), nil)
	m.fareRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(apperrors.AlreadyExists("fare already calculated for this booking"))
	m.fareRepo.EXPECT().GetByBookingID(gomock.Any(), bookingID).Return(winner, nil)

	calculated, err := uc.CalculateAndSaveFare(context.Background(), bookingID)
	require.NoError(t, err)
	assert.Equal(t, 108.0, calculated.Fare)
}

func TestCalculateAndSaveFare_PublishFailureIsNotFatal(t *testing.T) {
	uc, m := newTestUC(t, nil)

	bookingID := uuid.New()
	booking := completedBooking(bookingID)

	m.bookingRepo.EXPECT().GetByID(gomock.Any(), bookingID).Return(booking, nil)
	m.fareRepo.EXPECT().GetByBookingID(gomock.Any(), bookingID).Return(nil, nil)
	m.mapsGW.EXPECT().
		GetDistanceAndDuration(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&models.DistanceDuration{DistanceKm: 5, DurationMin: 10, DurationInTrafficMin: 10}, nil)
	m.rateRepo.EXPECT().GetActiveByCarType(gomock.Any(), "SEDAN").Return(standardRate(), nil)
	m.fareRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	m.fareGW.EXPECT().
		PublishFareCalculated(gomock.Any(), gomock.Any()).
		Return(errors.New("nats unavailable"))

	calculated, err := uc.CalculateAndSaveFare(context.Background(), bookingID)
	require.NoError(t, err)
	assert.Equal(t, 108.0, calculated.Fare)
}

func TestCalculateAndSaveFare_SurgeAppliedFromTraffic(t *testing.T) {
	uc, m := newTestUC(t, nil)

	bookingID := uuid.New()
	booking := completedBooking(bookingID)

	m.bookingRepo.EXPECT().GetByID(gomock.Any(), bookingID).Return(booking, nil)
	m.fareRepo.EXPECT().GetByBookingID(gomock.Any(), bookingID).Return(nil, nil)
	// 15 min in traffic vs 10 free flow, ratio 1.5 maps to surge 1.5
	m.mapsGW.EXPECT().
		GetDistanceAndDuration(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&models.DistanceDuration{DistanceKm: 5, DurationMin: 10, DurationInTrafficMin: 15}, nil)
	m.rateRepo.EXPECT().GetActiveByCarType(gomock.Any(), "SEDAN").Return(standardRate(), nil)
	m.fareRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	m.fareGW.EXPECT().PublishFareCalculated(gomock.Any(), gomock.Any()).Return(nil)

	calculated, err := uc.CalculateAndSaveFare(context.Background(), bookingID)
	require.NoError(t, err)
	assert.Equal(t, 1.5, calculated.Surge)
	// (50 + 10 + 5) * 1.5 = 97.5, minus 10% = 87.75, rounds to 88
	assert.Equal(t, 88.0, calculated.Fare)
	assert.Equal(t, 15.0, calculated.Duration)
}

func TestAddFareRate_Success(t *testing.T) {
	uc, m := newTestUC(t, nil)

	req := models.AddFareRateRequest{
		CarType:    " suv ",
		BaseFare:   80,
		PerKmRate:  12,
		PerMinRate: 3,
		MinFare:    90,
	}

	m.rateRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rate *models.FareRate) error {
			assert.Equal(t, "SUV", rate.CarType)
			assert.True(t, rate.Active)
			assert.NotEqual(t, uuid.Nil, rate.ID)
			return nil
		})

	rate, err := uc.AddFareRate(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "SUV", rate.CarType)
	assert.Equal(t, 80.0, rate.BaseFare)
}

func TestAddFareRate_NegativeComponent(t *testing.T) {
	uc, _ := newTestUC(t, nil)

	req := models.AddFareRateRequest{
		CarType:   "SUV",
		BaseFare:  -1,
		PerKmRate: 12,
	}

	_, err := uc.AddFareRate(context.Background(), req)
	assert.True(t, apperrors.Is(err, apperrors.KindInvalidInput))
}

func TestAddFareRate_RepositoryError(t *testing.T) {
	uc, m := newTestUC(t, nil)

	expectedErr := errors.New("database error")
	m.rateRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(expectedErr)

	_, err := uc.AddFareRate(context.Background(), models.AddFareRateRequest{CarType: "SUV"})
	assert.Equal(t, expectedErr, err)
}
