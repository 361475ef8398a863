package constants

// Redis key formats
const (
	// KeyFareRate caches the active fare rate per car type.
	// Format: fare:rate:{car_type}
	KeyFareRate = "fare:rate:%s"
)
