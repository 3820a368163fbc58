// Package indicator computes the per-bar signal primitives over the price
// ratio: rolling z-score and RSI.
//
// Every function is a pure recomputation over an explicitly passed series —
// no state is carried between calls. Positions whose rolling window is
// unfilled or degenerate hold the Missing sentinel, which downstream
// threshold checks must treat as "condition not met", never as zero.
package indicator

import "math"

// Missing marks an undefined indicator value. It is NaN, so any numeric
// comparison against it is false, which is exactly the "condition not met"
// behavior thresholds need. Use IsMissing to test for it explicitly.
var Missing = math.NaN()

// IsMissing reports whether v is the Missing sentinel.
func IsMissing(v float64) bool {
	return math.IsNaN(v)
}

// rollingMean fills out[i] with the mean of series[i-window+1..i], Missing
// while the window is unfilled. out must have len(series).
func rollingMean(series, out []float64, window int) {
	var sum float64
	for i, v := range series {
		sum += v
		if i >= window {
			sum -= series[i-window]
		}
		if i >= window-1 {
			out[i] = sum / float64(window)
		} else {
			out[i] = Missing
		}
	}
}

// windowStd returns the sample standard deviation of series[end-window+1..end].
// Two-pass so a constant window yields an exact zero, not rounding noise.
func windowStd(series []float64, end, window int) float64 {
	start := end - window + 1
	var sum float64
	for i := start; i <= end; i++ {
		sum += series[i]
	}
	mean := sum / float64(window)

	var ss float64
	for i := start; i <= end; i++ {
		d := series[i] - mean
		ss += d * d
	}
	return math.Sqrt(ss / float64(window-1))
}
