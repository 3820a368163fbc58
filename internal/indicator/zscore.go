package indicator

// DefaultZScoreWindow is the rolling lookback for the ratio z-score.
const DefaultZScoreWindow = 50

// ZScore returns the rolling z-score of the ratio series:
//
//	z[t] = (ratio[t] - mean(ratio[t-w+1..t])) / std(ratio[t-w+1..t])
//
// The first window-1 positions are Missing. A zero rolling standard
// deviation (constant window) also yields Missing — the division is never
// allowed to produce ±Inf or NaN-by-accident.
func ZScore(ratio []float64, window int) []float64 {
	if window <= 1 {
		window = DefaultZScoreWindow
	}

	out := make([]float64, len(ratio))
	means := make([]float64, len(ratio))
	rollingMean(ratio, means, window)

	for i := range ratio {
		if i < window-1 {
			out[i] = Missing
			continue
		}
		std := windowStd(ratio, i, window)
		if std == 0 || IsMissing(means[i]) {
			out[i] = Missing
			continue
		}
		out[i] = (ratio[i] - means[i]) / std
	}
	return out
}
