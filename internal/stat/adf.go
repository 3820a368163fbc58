package stat

import (
	"pairs-enginev1/internal/model"
)

// DefaultADFLags is the fixed augmentation order for the residual unit-root
// test. Kept small and fixed: every regression stays bounded, no data-driven
// lag search.
const DefaultADFLags = 1

// adfStatistic returns the augmented Dickey-Fuller t-statistic for the
// no-constant regression
//
//	de[t] = gamma*e[t-1] + phi_1*de[t-1] + ... + phi_p*de[t-p] + u[t]
//
// on the (zero-mean) residual series e. The statistic is gamma's t-ratio;
// more negative means stronger evidence against a unit root.
func adfStatistic(e []float64, lags int) (float64, error) {
	if lags < 0 {
		lags = DefaultADFLags
	}
	n := len(e)
	rows := n - 1 - lags
	if rows < lags+10 {
		return 0, &model.StatisticalTestError{
			Method: model.MethodEngleGranger,
			Detail: "residual series too short for ADF regression",
		}
	}

	de := make([]float64, n-1) // de[i] = e[i+1] - e[i]
	for i := 0; i < n-1; i++ {
		de[i] = e[i+1] - e[i]
	}

	// Row t covers observation index lags+1+t of e.
	y := make([]float64, rows)
	level := make([]float64, rows)
	lagCols := make([][]float64, lags)
	for j := range lagCols {
		lagCols[j] = make([]float64, rows)
	}
	for t := 0; t < rows; t++ {
		obs := lags + 1 + t
		y[t] = de[obs-1]
		level[t] = e[obs-1]
		for j := 0; j < lags; j++ {
			lagCols[j][t] = de[obs-2-j]
		}
	}

	cols := append([][]float64{level}, lagCols...)
	coef, stderr, err := lstsq(y, cols...)
	if err != nil {
		return 0, err
	}
	if stderr[0] == 0 {
		return 0, &model.StatisticalTestError{
			Method: model.MethodEngleGranger,
			Detail: "degenerate ADF regression, zero standard error",
		}
	}
	return coef[0] / stderr[0], nil
}
