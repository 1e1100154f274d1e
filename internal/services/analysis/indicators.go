// Package analysis provides the technical indicator and advisory
// classification used by the report pipeline.
package analysis

// DefaultRSIWindow is the standard 14-period lookback.
const DefaultRSIWindow = 14

// RSI computes the relative-strength index over the trailing window of a
// chronological close-price series (oldest first). It returns (value, true)
// in [0,100], or (0, false) when the history is too short — callers treat
// absence, not zero, as "no signal".
//
// When the window contains no losses the average loss is zero and the ratio
// is unbounded; the result saturates at 100 rather than propagating a NaN.
func RSI(history []float64, window int) (float64, bool) {
	if window <= 0 || len(history) <= window {
		return 0, false
	}

	var gains, losses float64
	// Trailing window of consecutive differences, most recent `window` steps.
	for i := len(history) - window; i < len(history); i++ {
		change := history[i] - history[i-1]
		if change > 0 {
			gains += change
		} else {
			losses -= change
		}
	}

	avgGain := gains / float64(window)
	avgLoss := losses / float64(window)

	if avgLoss == 0 {
		return 100, true
	}

	rs := avgGain / avgLoss
	return 100 - (100 / (1 + rs)), true
}
