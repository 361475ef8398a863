package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/mrstm/fare-service/internal/pkg/constants"
	"github.com/mrstm/fare-service/internal/pkg/logger"
	"github.com/mrstm/fare-service/internal/pkg/models"
	natspkg "github.com/mrstm/fare-service/internal/pkg/nats"
	nrpkg "github.com/mrstm/fare-service/internal/pkg/newrelic"
	"github.com/mrstm/fare-service/services/fare"
)

// FareHandler consumes booking events and triggers fare calculation
type FareHandler struct {
	fareUC     fare.FareUC
	natsClient *natspkg.Client
	subs       []*nats.Subscription
	cfg        *models.Config
	nrApp      *newrelic.Application
}

// NewFareHandler creates a new fare NATS handler
func NewFareHandler(
	fareUC fare.FareUC,
	client *natspkg.Client,
	cfg *models.Config,
	nrApp *newrelic.Application,
) *FareHandler {
	return &FareHandler{
		fareUC:     fareUC,
		natsClient: client,
		subs:       make([]*nats.Subscription, 0),
		cfg:        cfg,
		nrApp:      nrApp,
	}
}

// InitNATSConsumers subscribes to booking completion events. The queue
// group ensures one instance handles each event.
func (h *FareHandler) InitNATSConsumers() error {
	sub, err := h.natsClient.QueueSubscribe(
		constants.SubjectBookingCompleted,
		constants.QueueFareService,
		h.handleBookingCompletedMsg,
	)
	if err != nil {
		return fmt.Errorf("failed to subscribe to booking completed events: %w", err)
	}
	h.subs = append(h.subs, sub)

	logger.Info("Subscribed to booking completed events",
		logger.String("subject", constants.SubjectBookingCompleted),
		logger.String("queue", constants.QueueFareService))

	return nil
}

func (h *FareHandler) handleBookingCompletedMsg(msg *nats.Msg) {
	ctx := context.Background()

	var txn *newrelic.Transaction
	if h.nrApp != nil {
		txn = h.nrApp.StartTransaction("NATS.Fare.HandleBookingCompleted")
		defer txn.End()

		nrpkg.AddTransactionAttribute(txn, "message.subject", msg.Subject)
		nrpkg.AddTransactionAttribute(txn, "message.size", len(msg.Data))
		ctx = newrelic.NewContext(ctx, txn)
	}

	if err := h.handleBookingCompleted(ctx, msg.Data); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		logger.ErrorCtx(ctx, "Error handling booking completed event", logger.Err(err))
	}
}

// handleBookingCompleted calculates and persists the fare for a completed
// booking. Calculation is idempotent, so redelivered events are harmless.
func (h *FareHandler) handleBookingCompleted(ctx context.Context, msg []byte) error {
	var event models.BookingCompletedEvent
	if err := json.Unmarshal(msg, &event); err != nil {
		logger.ErrorCtx(ctx, "Failed to unmarshal booking completed event",
			logger.String("raw_message", string(msg)),
			logger.ErrorField(err))
		return err
	}

	bookingID, err := uuid.Parse(event.BookingID)
	if err != nil {
		return fmt.Errorf("invalid booking ID in event: %w", err)
	}

	if txn := nrpkg.FromContext(ctx); txn != nil {
		nrpkg.AddTransactionAttribute(txn, "booking.id", event.BookingID)
		nrpkg.AddTransactionAttribute(txn, "driver.id", event.DriverID)
	}

	logger.InfoCtx(ctx, "Received booking completed event",
		logger.String("booking_id", event.BookingID),
		logger.String("driver_id", event.DriverID))

	calculated, err := h.fareUC.CalculateAndSaveFare(ctx, bookingID)
	if err != nil {
		logger.ErrorCtx(ctx, "Failed to calculate fare for completed booking",
			logger.String("booking_id", event.BookingID),
			logger.ErrorField(err))
		return err
	}

	logger.InfoCtx(ctx, "Fare calculated for completed booking",
		logger.String("booking_id", event.BookingID),
		logger.Float64("fare", calculated.Fare))

	return nil
}
