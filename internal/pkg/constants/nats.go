package constants

// NATS subjects
const (
	// Published by the booking service when a trip finishes
	SubjectBookingCompleted = "booking.completed"

	// Published by this service after a fare row is persisted
	SubjectFareCalculated = "fare.calculated"
)

// Queue group for fare-service consumers
const QueueFareService = "fare-service"
