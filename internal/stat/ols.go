// Package stat implements the statistical tests behind pair admission:
// Engle-Granger and Johansen cointegration tests and the Hurst exponent.
//
// Everything here is a pure recomputation over an explicitly passed window.
// Regressions are small (two or three regressors), solved by normal
// equations with partial pivoting; a singular system is reported as an
// error, never a panic or a hang.
package stat

import (
	"math"

	"pairs-enginev1/internal/model"
)

// pivotTolerance guards Gaussian elimination against effectively singular
// normal matrices (zero-variance regressors).
const pivotTolerance = 1e-12

// olsFit is a bivariate regression y = alpha + beta*x.
type olsFit struct {
	Alpha     float64
	Beta      float64
	Residuals []float64
}

// olsResiduals fits y = alpha + beta*x by ordinary least squares and returns
// the fit with its residual series. Fails when x has (numerically) zero
// variance.
func olsResiduals(y, x []float64) (olsFit, error) {
	n := len(y)
	if n < 3 || len(x) != n {
		return olsFit{}, &model.StatisticalTestError{
			Method: model.MethodEngleGranger,
			Detail: "too few observations for regression",
		}
	}

	var sumX, sumY float64
	for i := 0; i < n; i++ {
		sumX += x[i]
		sumY += y[i]
	}
	meanX := sumX / float64(n)
	meanY := sumY / float64(n)

	var sxx, sxy float64
	for i := 0; i < n; i++ {
		dx := x[i] - meanX
		sxx += dx * dx
		sxy += dx * (y[i] - meanY)
	}
	if sxx < pivotTolerance {
		return olsFit{}, &model.StatisticalTestError{
			Method: model.MethodEngleGranger,
			Detail: "regressor has zero variance, OLS is singular",
		}
	}

	beta := sxy / sxx
	alpha := meanY - beta*meanX

	resid := make([]float64, n)
	for i := 0; i < n; i++ {
		resid[i] = y[i] - alpha - beta*x[i]
	}
	return olsFit{Alpha: alpha, Beta: beta, Residuals: resid}, nil
}

// lstsq solves y = X*b for the column set cols and returns the coefficients
// with their standard errors. All columns must have len(y) rows. Fails when
// the normal matrix is singular or there are not enough degrees of freedom.
func lstsq(y []float64, cols ...[]float64) (coef, stderr []float64, err error) {
	n := len(y)
	k := len(cols)
	if k == 0 || n <= k {
		return nil, nil, &model.StatisticalTestError{
			Detail: "not enough observations for least squares",
		}
	}

	// Normal equations: A = X'X, c = X'y.
	a := make([][]float64, k)
	for i := 0; i < k; i++ {
		a[i] = make([]float64, k)
	}
	c := make([]float64, k)
	for i := 0; i < k; i++ {
		for j := i; j < k; j++ {
			var s float64
			for t := 0; t < n; t++ {
				s += cols[i][t] * cols[j][t]
			}
			a[i][j] = s
			a[j][i] = s
		}
		var s float64
		for t := 0; t < n; t++ {
			s += cols[i][t] * y[t]
		}
		c[i] = s
	}

	inv, err := invert(a)
	if err != nil {
		return nil, nil, err
	}

	coef = make([]float64, k)
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			coef[i] += inv[i][j] * c[j]
		}
	}

	// Residual variance and coefficient standard errors.
	var rss float64
	for t := 0; t < n; t++ {
		fit := 0.0
		for j := 0; j < k; j++ {
			fit += coef[j] * cols[j][t]
		}
		d := y[t] - fit
		rss += d * d
	}
	s2 := rss / float64(n-k)

	stderr = make([]float64, k)
	for i := 0; i < k; i++ {
		stderr[i] = math.Sqrt(s2 * inv[i][i])
	}
	return coef, stderr, nil
}

// invert returns the inverse of a small symmetric matrix by Gauss-Jordan
// elimination with partial pivoting.
func invert(a [][]float64) ([][]float64, error) {
	k := len(a)

	// Augment with identity.
	m := make([][]float64, k)
	for i := range m {
		m[i] = make([]float64, 2*k)
		copy(m[i], a[i])
		m[i][k+i] = 1
	}

	for col := 0; col < k; col++ {
		pivot := col
		for r := col + 1; r < k; r++ {
			if math.Abs(m[r][col]) > math.Abs(m[pivot][col]) {
				pivot = r
			}
		}
		if math.Abs(m[pivot][col]) < pivotTolerance {
			return nil, &model.StatisticalTestError{
				Detail: "singular normal matrix",
			}
		}
		m[col], m[pivot] = m[pivot], m[col]

		p := m[col][col]
		for j := 0; j < 2*k; j++ {
			m[col][j] /= p
		}
		for r := 0; r < k; r++ {
			if r == col {
				continue
			}
			f := m[r][col]
			if f == 0 {
				continue
			}
			for j := 0; j < 2*k; j++ {
				m[r][j] -= f * m[col][j]
			}
		}
	}

	inv := make([][]float64, k)
	for i := range inv {
		inv[i] = m[i][k:]
	}
	return inv, nil
}
