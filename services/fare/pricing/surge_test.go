package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimate_DegenerateFreeFlow(t *testing.T) {
	s := NewTrafficSurge()

	assert.Equal(t, 1.0, s.Estimate(0, 30))
	assert.Equal(t, 1.0, s.Estimate(-5, 30))
}

func TestEstimate_NoCongestion(t *testing.T) {
	s := NewTrafficSurge()

	// ratio <= 1.0 always yields 1.0, even when traffic is faster
	assert.Equal(t, 1.0, s.Estimate(20, 10))
	assert.Equal(t, 1.0, s.Estimate(20, 20))
}

func TestEstimate_Breakpoints(t *testing.T) {
	s := NewTrafficSurge()

	tests := []struct {
		name     string
		freeFlow float64
		traffic  float64
		want     float64
	}{
		{"ratio exactly 1.0", 20, 20, 1.0},
		{"just above 1.0", 100, 101, 1.01},
		{"ratio 1.1 mid first segment", 20, 22, 1.1},
		{"ratio exactly 1.2 boundary inclusive", 20, 24, 1.2},
		{"just above 1.2", 100, 121, 1.21},
		{"ratio 1.35 mid second segment", 20, 27, 1.35},
		{"ratio exactly 1.5 boundary inclusive", 20, 30, 1.5},
		{"just above 1.5", 100, 151, 1.51},
		{"ratio 1.75 mid third segment", 20, 35, 1.75},
		{"ratio exactly 2.0 boundary inclusive", 20, 40, 2.0},
		{"just above 2.0 hits cap", 100, 201, 2.5},
		{"far above 2.0 capped", 10, 100, 2.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, s.Estimate(tt.freeFlow, tt.traffic), 1e-9)
		})
	}
}

func TestEstimate_RoundsToTwoDecimals(t *testing.T) {
	s := NewTrafficSurge()

	// ratio = 1.0/3.0 above 1.0 → 1.333... rounds to 1.33
	got := s.Estimate(30, 40)
	assert.InDelta(t, 1.33, got, 1e-9)

	// ratio = 1.115 → surge 1.115 rounds half away from zero to 1.12
	got = s.Estimate(1000, 1115)
	assert.InDelta(t, 1.12, got, 1e-9)
}

func TestEstimate_Bounds(t *testing.T) {
	s := NewTrafficSurge()

	for traffic := 0.0; traffic <= 100.0; traffic += 2.5 {
		surge := s.Estimate(20, traffic)
		assert.GreaterOrEqual(t, surge, 1.0)
		assert.LessOrEqual(t, surge, 2.5)
	}
}
