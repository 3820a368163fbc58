package stat

import (
	"fmt"
	"math"

	"pairs-enginev1/internal/model"
)

const (
	// hurstMinLag and hurstMaxLag bound the lag scales used in the
	// variance-scaling regression. Lag 1 carries no scaling information;
	// lags beyond 20 leave too few differences on a 50-60 bar window.
	hurstMinLag = 2
	hurstMaxLag = 20

	// hurstMinScales is the minimum number of usable lag scales (each with
	// at least two differences) required for the log-log regression.
	hurstMinScales = 4
)

// Hurst estimates the Hurst exponent of the level series by variance
// scaling: the standard deviation of lag-tau differences of a series with
// exponent H grows as tau^H, so the slope of log(std) against log(tau) over
// a range of lags is the exponent.
//
// A random walk scales with H=0.5, a trending series faster, a
// mean-reverting series slower (its differences saturate at the reversion
// range). tol is the classification tolerance around 0.5: exponent <
// 0.5-tol is mean-reverting, > 0.5+tol trending, otherwise random walk.
// tol=0 gives the pure 0.5 split.
//
// Fails with DataQualityError when fewer than hurstMinScales usable lags
// fit into the series.
func Hurst(series []float64, tol float64) (model.HurstResult, error) {
	n := len(series)

	maxLag := hurstMaxLag
	if n/2 < maxLag {
		maxLag = n / 2
	}

	var logLag, logStd []float64
	for lag := hurstMinLag; lag <= maxLag; lag++ {
		sd, ok := lagDiffStd(series, lag)
		if !ok {
			continue
		}
		logLag = append(logLag, math.Log(float64(lag)))
		logStd = append(logStd, math.Log(sd))
	}

	if len(logLag) < hurstMinScales {
		return model.HurstResult{}, &model.DataQualityError{
			Reason: model.ReasonInsufficientData,
			Detail: fmt.Sprintf("%d usable lag scales for variance-scaling regression, need %d", len(logLag), hurstMinScales),
		}
	}

	fit, err := olsResiduals(logStd, logLag)
	if err != nil {
		return model.HurstResult{}, err
	}

	h := fit.Beta
	out := model.HurstResult{Exponent: h}
	switch {
	case h < 0.5-tol:
		out.Classification = model.HurstMeanReverting
	case h > 0.5+tol:
		out.Classification = model.HurstTrending
	default:
		out.Classification = model.HurstRandomWalk
	}
	return out, nil
}

// lagDiffStd returns the standard deviation of series[t+lag]-series[t].
// ok=false when fewer than two differences fit or the differences are
// constant (zero std has no logarithm).
func lagDiffStd(series []float64, lag int) (float64, bool) {
	m := len(series) - lag
	if m < 2 {
		return 0, false
	}

	var sum float64
	for t := 0; t < m; t++ {
		sum += series[t+lag] - series[t]
	}
	mean := sum / float64(m)

	var ss float64
	for t := 0; t < m; t++ {
		d := series[t+lag] - series[t] - mean
		ss += d * d
	}
	sd := math.Sqrt(ss / float64(m))
	if sd == 0 {
		return 0, false
	}
	return sd, true
}
