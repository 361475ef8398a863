package models

import (
	"time"

	"github.com/google/uuid"
)

// FareRate holds the active pricing parameters for a car type.
// At most one rate per car type is active at any time.
type FareRate struct {
	ID         uuid.UUID `json:"id" db:"id"`
	CarType    string    `json:"car_type" db:"car_type"`
	BaseFare   float64   `json:"base_fare" db:"base_fare"`
	PerKmRate  float64   `json:"per_km_rate" db:"per_km_rate"`
	PerMinRate float64   `json:"per_min_rate" db:"per_min_rate"`
	MinFare    float64   `json:"min_fare" db:"min_fare"`
	Active     bool      `json:"active" db:"active"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// Fare is the persisted, final computed charge for one completed booking.
// Rows are immutable; existence of a row marks the booking as calculated.
type Fare struct {
	ID        uuid.UUID `json:"id" db:"id"`
	BookingID uuid.UUID `json:"booking_id" db:"booking_id"`
	CarType   string    `json:"car_type" db:"car_type"`
	Distance  float64   `json:"distance" db:"distance"`
	Duration  float64   `json:"duration" db:"duration"`
	Surge     float64   `json:"surge" db:"surge"`
	Discount  float64   `json:"discount" db:"discount"`
	FinalFare float64   `json:"final_fare" db:"final_fare"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// DistanceDuration is the ephemeral result of a mapping provider query.
// It is produced fresh per request and never persisted.
type DistanceDuration struct {
	DistanceKm           float64 `json:"distance_km"`
	DurationMin          float64 `json:"duration_min"`
	DurationInTrafficMin float64 `json:"duration_in_traffic_min"`
	StartAddress         string  `json:"start_address"`
	EndAddress           string  `json:"end_address"`
}

// EstimateFareRequest is the request body for a fare estimate
type EstimateFareRequest struct {
	StartLocation *Location `json:"start_location"`
	EndLocation   *Location `json:"end_location"`
	CarType       string    `json:"car_type"`
	// Discount is the percentage discount to apply. When omitted the
	// configured default is used.
	Discount *float64 `json:"discount,omitempty"`
}

// FareQuote is the response for a fare estimate. Nothing is persisted.
type FareQuote struct {
	Distance     float64 `json:"distance"`
	Duration     float64 `json:"duration"`
	Fare         float64 `json:"fare"`
	Surge        float64 `json:"surge"`
	StartAddress string  `json:"start_address"`
	EndAddress   string  `json:"end_address"`
}

// CalculatedFare is the response for calculate-and-save. A repeated call
// for the same booking returns the originally persisted values.
type CalculatedFare struct {
	BookingID uuid.UUID `json:"booking_id"`
	Distance  float64   `json:"distance"`
	Duration  float64   `json:"duration"`
	Surge     float64   `json:"surge"`
	Discount  float64   `json:"discount"`
	Fare      float64   `json:"fare"`
}

// AddFareRateRequest is the admin request to register a new rate for a car type
type AddFareRateRequest struct {
	CarType    string  `json:"car_type"`
	BaseFare   float64 `json:"base_fare"`
	PerKmRate  float64 `json:"per_km_rate"`
	PerMinRate float64 `json:"per_min_rate"`
	MinFare    float64 `json:"min_fare"`
}

// EarningsSummary aggregates a driver's earnings over a date range
type EarningsSummary struct {
	TotalEarnings     float64 `json:"total_earnings"`
	ThisMonthEarnings float64 `json:"this_month_earnings"`
	PendingEarnings   float64 `json:"pending_earnings"`
	WithdrawnEarnings float64 `json:"withdrawn_earnings"`
}

// DailyEarnings is one (date, total) pair in a driver's daily breakdown
type DailyEarnings struct {
	Date  string  `json:"date" db:"date"`
	Total float64 `json:"total" db:"total"`
}

// FareCalculatedEvent is published after a fare row has been persisted
type FareCalculatedEvent struct {
	BookingID string    `json:"booking_id"`
	CarType   string    `json:"car_type"`
	Distance  float64   `json:"distance"`
	Duration  float64   `json:"duration"`
	Fare      float64   `json:"fare"`
	Timestamp time.Time `json:"timestamp"`
}
