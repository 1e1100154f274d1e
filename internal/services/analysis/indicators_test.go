package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rampSeries returns n prices starting at base with a constant step.
func rampSeries(base, step float64, n int) []float64 {
	prices := make([]float64, n)
	for i := range prices {
		prices[i] = base + step*float64(i)
	}
	return prices
}

func TestRSIBounds(t *testing.T) {
	tests := []struct {
		name    string
		history []float64
		min     float64
		max     float64
	}{
		{name: "strong uptrend", history: rampSeries(50, 1, 30), min: 60, max: 100},
		{name: "strong downtrend", history: rampSeries(80, -1, 30), min: 0, max: 40},
		{name: "flat series", history: rampSeries(50, 0, 30), min: 0, max: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, ok := RSI(tt.history, DefaultRSIWindow)
			require.True(t, ok)
			assert.GreaterOrEqual(t, value, tt.min)
			assert.LessOrEqual(t, value, tt.max)
			assert.GreaterOrEqual(t, value, 0.0)
			assert.LessOrEqual(t, value, 100.0)
		})
	}
}

func TestRSIAllGainsSaturates(t *testing.T) {
	value, ok := RSI(rampSeries(100, 2, 20), DefaultRSIWindow)
	require.True(t, ok)
	assert.Equal(t, 100.0, value)
}

func TestRSIKnownValue(t *testing.T) {
	// Window 2 over the last two diffs: +10 gain, -5 loss.
	// avg gain 5, avg loss 2.5, rs 2, rsi = 100 - 100/3 = 66.67
	value, ok := RSI([]float64{100, 110, 105}, 2)
	require.True(t, ok)
	assert.InDelta(t, 66.67, value, 0.01)
}

func TestRSIInsufficientHistory(t *testing.T) {
	tests := []struct {
		name    string
		history []float64
		window  int
	}{
		{name: "empty", history: nil, window: 14},
		{name: "equal to window", history: rampSeries(50, 1, 14), window: 14},
		{name: "one short", history: rampSeries(50, 1, 14), window: 14},
		{name: "zero window", history: rampSeries(50, 1, 30), window: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := RSI(tt.history, tt.window)
			assert.False(t, ok)
		})
	}
}
