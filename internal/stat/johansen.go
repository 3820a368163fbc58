package stat

import (
	"math"

	"pairs-enginev1/internal/model"
)

// Johansen runs the trace test for cointegrating rank 0 on the two-series
// system, fitting a vector error-correction representation with one lagged
// difference and an unrestricted constant. The trace statistic
//
//	-T * sum(ln(1 - lambda_i))
//
// over the eigenvalues of the canonical-correlation problem is compared
// against the Osterwald-Lenum critical value for the requested confidence.
//
// Degenerate windows (constant leg, collinear system) are recovered the same
// way as in EngleGranger.
func Johansen(a, b []float64, conf model.Confidence) (model.CointegrationResult, error) {
	res := model.CointegrationResult{
		Method:        model.MethodJohansen,
		Confidence:    conf,
		CriticalValue: johansenTraceCritical[conf],
	}
	if !conf.Valid() {
		return res, &model.ConfigurationError{
			Field:  "confidence",
			Detail: "must be one of 90, 95, 99",
		}
	}
	n := len(a)
	if len(b) != n || n < 20 {
		err := &model.StatisticalTestError{
			Method: model.MethodJohansen,
			Detail: "series too short for VECM fit",
		}
		res.Degenerate = true
		res.Note = err.Detail
		return res, err
	}

	// First differences of both legs.
	da := make([]float64, n-1)
	db := make([]float64, n-1)
	for i := 0; i < n-1; i++ {
		da[i] = a[i+1] - a[i]
		db[i] = b[i+1] - b[i]
	}

	// Rows t = 2..n-1: concentrate out the lagged difference and the
	// constant from both the current differences (R0) and the lagged
	// levels (R1).
	rows := n - 2
	ones := make([]float64, rows)
	lagDA := make([]float64, rows)
	lagDB := make([]float64, rows)
	curDA := make([]float64, rows)
	curDB := make([]float64, rows)
	lagA := make([]float64, rows)
	lagB := make([]float64, rows)
	for r := 0; r < rows; r++ {
		t := r + 2
		ones[r] = 1
		lagDA[r] = da[t-2]
		lagDB[r] = db[t-2]
		curDA[r] = da[t-1]
		curDB[r] = db[t-1]
		lagA[r] = a[t-1]
		lagB[r] = b[t-1]
	}

	regressors := [][]float64{lagDA, lagDB, ones}
	r0 := make([][]float64, 2)
	r1 := make([][]float64, 2)
	var err error
	for i, dep := range [][]float64{curDA, curDB} {
		if r0[i], err = residualize(dep, regressors); err != nil {
			return degenerateJohansen(res, err)
		}
	}
	for i, dep := range [][]float64{lagA, lagB} {
		if r1[i], err = residualize(dep, regressors); err != nil {
			return degenerateJohansen(res, err)
		}
	}

	s00 := crossProduct(r0, r0, rows)
	s01 := crossProduct(r0, r1, rows)
	s10 := crossProduct(r1, r0, rows)
	s11 := crossProduct(r1, r1, rows)

	s00inv, ok := invert2(s00)
	if !ok {
		return degenerateJohansen(res, &model.StatisticalTestError{
			Method: model.MethodJohansen,
			Detail: "singular S00 moment matrix",
		})
	}
	s11inv, ok := invert2(s11)
	if !ok {
		return degenerateJohansen(res, &model.StatisticalTestError{
			Method: model.MethodJohansen,
			Detail: "singular S11 moment matrix",
		})
	}

	// M = S11^-1 S10 S00^-1 S01; its eigenvalues are the squared canonical
	// correlations between R0 and R1.
	m := mul2(mul2(s11inv, s10), mul2(s00inv, s01))
	l1, l2, ok := eigen2(m)
	if !ok {
		return degenerateJohansen(res, &model.StatisticalTestError{
			Method: model.MethodJohansen,
			Detail: "eigenvalue extraction failed",
		})
	}

	trace := 0.0
	for _, l := range []float64{l1, l2} {
		l = clamp(l, 0, 1-1e-12)
		trace += -float64(rows) * math.Log(1-l)
	}

	res.Statistic = trace
	res.IsCointegrated = trace > res.CriticalValue
	return res, nil
}

func degenerateJohansen(res model.CointegrationResult, err error) (model.CointegrationResult, error) {
	res.Degenerate = true
	res.Note = err.Error()
	return res, err
}

// residualize returns dep minus its least-squares projection onto cols.
func residualize(dep []float64, cols [][]float64) ([]float64, error) {
	coef, _, err := lstsq(dep, cols...)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(dep))
	for t := range dep {
		fit := 0.0
		for j, c := range cols {
			fit += coef[j] * c[t]
		}
		out[t] = dep[t] - fit
	}
	return out, nil
}

// crossProduct returns (1/T) * X Y' for two 2-row residual matrices.
func crossProduct(x, y [][]float64, rows int) [2][2]float64 {
	var out [2][2]float64
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			var s float64
			for t := 0; t < rows; t++ {
				s += x[i][t] * y[j][t]
			}
			out[i][j] = s / float64(rows)
		}
	}
	return out
}

func invert2(m [2][2]float64) ([2][2]float64, bool) {
	det := m[0][0]*m[1][1] - m[0][1]*m[1][0]
	if math.Abs(det) < pivotTolerance {
		return [2][2]float64{}, false
	}
	return [2][2]float64{
		{m[1][1] / det, -m[0][1] / det},
		{-m[1][0] / det, m[0][0] / det},
	}, true
}

func mul2(a, b [2][2]float64) [2][2]float64 {
	var out [2][2]float64
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			out[i][j] = a[i][0]*b[0][j] + a[i][1]*b[1][j]
		}
	}
	return out
}

// eigen2 returns the eigenvalues of a 2x2 matrix. The canonical-correlation
// matrix has real eigenvalues in theory; a slightly negative discriminant
// from rounding is clamped to zero.
func eigen2(m [2][2]float64) (float64, float64, bool) {
	tr := m[0][0] + m[1][1]
	det := m[0][0]*m[1][1] - m[0][1]*m[1][0]
	disc := tr*tr - 4*det
	if disc < 0 {
		if disc < -1e-9 {
			return 0, 0, false
		}
		disc = 0
	}
	root := math.Sqrt(disc)
	return (tr + root) / 2, (tr - root) / 2, true
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
