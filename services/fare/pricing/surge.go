package pricing

import "math"

// SurgeEstimator converts trip durations into a surge multiplier
type SurgeEstimator interface {
	Estimate(freeFlowMin, trafficMin float64) float64
}

// TrafficSurge derives a surge multiplier from the ratio of the
// traffic-adjusted duration to the free-flow duration. The multiplier
// follows a piecewise-linear curve capped at 2.5 and is rounded to two
// decimal places.
type TrafficSurge struct{}

// NewTrafficSurge creates the default surge estimator
func NewTrafficSurge() *TrafficSurge {
	return &TrafficSurge{}
}

// Estimate returns the surge multiplier for the given durations.
// A non-positive free-flow duration yields 1.0.
func (s *TrafficSurge) Estimate(freeFlowMin, trafficMin float64) float64 {
	if freeFlowMin <= 0 {
		return 1.0
	}

	ratio := trafficMin / freeFlowMin

	var surge float64
	switch {
	case ratio <= 1.0:
		surge = 1.0
	case ratio <= 1.2:
		surge = 1.0 + (ratio - 1.0)
	case ratio <= 1.5:
		surge = 1.2 + (ratio - 1.2)
	case ratio <= 2.0:
		surge = 1.5 + (ratio - 1.5)
	default:
		surge = 2.5
	}

	return math.Round(surge*100) / 100
}
