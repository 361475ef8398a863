package nats

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrstm/fare-service/internal/pkg/apperrors"
	"github.com/mrstm/fare-service/internal/pkg/models"
	"github.com/mrstm/fare-service/services/fare/mocks"
)

func newTestHandler(t *testing.T) (*FareHandler, *mocks.MockFareUC) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockFareUC := mocks.NewMockFareUC(ctrl)
	handler := NewFareHandler(mockFareUC, nil, &models.Config{}, nil)

	return handler, mockFareUC
}

func TestHandleBookingCompleted_Success(t *testing.T) {
	handler, mockFareUC := newTestHandler(t)

	bookingID := uuid.New()
	event := models.BookingCompletedEvent{
		BookingID:   bookingID.String(),
		DriverID:    uuid.New().String(),
		CompletedAt: time.Now().UTC(),
	}
	msg := marshalEvent(t, event)

	mockFareUC.EXPECT().
		CalculateAndSaveFare(gomock.Any(), bookingID).
		Return(&models.CalculatedFare{BookingID: bookingID, Fare: 65}, nil)

	err := handler.handleBookingCompleted(context.Background(), msg)
	assert.NoError(t, err)
}

func TestHandleBookingCompleted_InvalidJSON(t *testing.T) {
	handler, _ := newTestHandler(t)

	err := handler.handleBookingCompleted(context.Background(), []byte("{not json"))
	assert.Error(t, err)
}

func TestHandleBookingCompleted_InvalidBookingID(t *testing.T) {
	handler, _ := newTestHandler(t)

	event := models.BookingCompletedEvent{
		BookingID: "not-a-uuid",
		DriverID:  uuid.New().String(),
	}
	msg := marshalEvent(t, event)

	err := handler.handleBookingCompleted(context.Background(), msg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid booking ID")
}

func TestHandleBookingCompleted_CalculationError(t *testing.T) {
	handler, mockFareUC := newTestHandler(t)

	bookingID := uuid.New()
	event := models.BookingCompletedEvent{
		BookingID: bookingID.String(),
		DriverID:  uuid.New().String(),
	}
	msg := marshalEvent(t, event)

	mockFareUC.EXPECT().
		CalculateAndSaveFare(gomock.Any(), bookingID).
		Return(nil, apperrors.NotFound("booking not found"))

	err := handler.handleBookingCompleted(context.Background(), msg)
	assert.Error(t, err)
}

func marshalEvent(t *testing.T, event models.BookingCompletedEvent) []byte {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)
	return data
}
