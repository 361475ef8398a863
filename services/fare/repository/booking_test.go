package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrstm/fare-service/internal/pkg/models"
)

func setupBookingRepoTest(t *testing.T) (*BookingRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")

	repo := &BookingRepo{
		cfg: &models.Config{},
		db:  sqlxDB,
	}

	cleanup := func() {
		sqlxDB.Close()
	}

	return repo, mock, cleanup
}

func bookingColumns() []string {
	return []string{
		"id", "driver_id", "passenger_id", "car_type",
		"start_latitude", "start_longitude", "end_latitude", "end_longitude",
		"status", "created_at", "updated_at",
	}
}

func TestBookingGetByID(t *testing.T) {
	bookingID := uuid.MustParse("550e8400-e29b-41d4-a716-446655440001")
	driverID := uuid.New()
	passengerID := uuid.New()

	testCases := []struct {
		name       string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, booking *models.Booking, err error)
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(bookingColumns()).
					AddRow(bookingID, driverID, passengerID, "SEDAN",
						-6.175392, 106.827153, -6.185392, 106.837153,
						"COMPLETED", time.Now(), time.Now())
				mock.ExpectQuery("SELECT (.+) FROM bookings").
					WithArgs(bookingID).
					WillReturnRows(rows)
			},
			assertFunc: func(t *testing.T, booking *models.Booking, err error) {
				assert.NoError(t, err)
				require.NotNil(t, booking)
				assert.Equal(t, models.BookingStatusCompleted, booking.Status)
				require.NotNil(t, booking.StartLocation)
				require.NotNil(t, booking.EndLocation)
				assert.Equal(t, -6.175392, booking.StartLocation.Latitude)
				assert.Equal(t, 106.837153, booking.EndLocation.Longitude)
			},
		},
		{
			name: "Missing Coordinates",
			mockSetup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(bookingColumns()).
					AddRow(bookingID, driverID, passengerID, "SEDAN",
						nil, nil, -6.185392, 106.837153,
						"PENDING", time.Now(), time.Now())
				mock.ExpectQuery("SELECT (.+) FROM bookings").
					WithArgs(bookingID).
					WillReturnRows(rows)
			},
			assertFunc: func(t *testing.T, booking *models.Booking, err error) {
				assert.NoError(t, err)
				require.NotNil(t, booking)
				assert.Nil(t, booking.StartLocation)
				assert.NotNil(t, booking.EndLocation)
			},
		},
		{
			name: "Not Found",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT (.+) FROM bookings").
					WithArgs(bookingID).
					WillReturnError(sql.ErrNoRows)
			},
			assertFunc: func(t *testing.T, booking *models.Booking, err error) {
				assert.NoError(t, err)
				assert.Nil(t, booking)
			},
		},
		{
			name: "Database Error",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT (.+) FROM bookings").
					WithArgs(bookingID).
					WillReturnError(errors.New("database error"))
			},
			assertFunc: func(t *testing.T, booking *models.Booking, err error) {
				assert.Error(t, err)
				assert.Nil(t, booking)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupBookingRepoTest(t)
			defer cleanup()

			tc.mockSetup(mock)

			booking, err := repo.GetByID(context.Background(), bookingID)

			tc.assertFunc(t, booking, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
