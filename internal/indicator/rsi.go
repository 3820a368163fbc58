package indicator

// DefaultRSIWindow is the rolling lookback for the ratio RSI.
const DefaultRSIWindow = 14

// RSI returns the Relative Strength Index of the ratio series, each value in
// [0,100] or Missing.
//
// Average gain and average loss are rolling means over two independently
// masked delta series: gain uses its own positive-delta mask and loss its
// own negative-delta mask. Deriving one from the complement of the other
// silently counts flat bars on the wrong side; the masks must stay separate.
//
// Edge cases: loss==0 with gain>0 saturates at 100 (loss==0 with gain==0 is
// Missing — a flat window has no momentum to measure). Positions before the
// first full window of deltas are Missing.
func RSI(ratio []float64, window int) []float64 {
	if window <= 0 {
		window = DefaultRSIWindow
	}

	out := make([]float64, len(ratio))
	for i := range out {
		out[i] = Missing
	}
	if len(ratio) < 2 {
		return out
	}

	gains := make([]float64, len(ratio))
	losses := make([]float64, len(ratio))
	for t := 1; t < len(ratio); t++ {
		d := ratio[t] - ratio[t-1]
		if d > 0 {
			gains[t] = d
		}
		if d < 0 {
			losses[t] = -d
		}
	}

	var gainSum, lossSum float64
	for t := 1; t < len(ratio); t++ {
		gainSum += gains[t]
		lossSum += losses[t]
		if t > window {
			gainSum -= gains[t-window]
			lossSum -= losses[t-window]
		}
		if t < window {
			continue // fewer than window deltas so far
		}

		gain := gainSum / float64(window)
		loss := lossSum / float64(window)
		switch {
		case loss == 0 && gain == 0:
			out[t] = Missing
		case loss == 0:
			out[t] = 100
		default:
			rs := gain / loss
			out[t] = 100 - 100/(1+rs)
		}
	}
	return out
}
