package stat

import (
	"errors"
	"math"
	"testing"

	"pairs-enginev1/internal/model"
)

func TestOLSResiduals_ExactFit(t *testing.T) {
	// y = 3 + 2x exactly: residuals must vanish.
	x := []float64{1, 2, 3, 4, 5, 6}
	y := make([]float64, len(x))
	for i, v := range x {
		y[i] = 3 + 2*v
	}

	fit, err := olsResiduals(y, x)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertClose(t, "alpha", fit.Alpha, 3, 1e-9)
	assertClose(t, "beta", fit.Beta, 2, 1e-9)
	for i, r := range fit.Residuals {
		assertClose(t, "residual", r, 0, 1e-9)
		_ = i
	}
}

func TestOLSResiduals_KnownSlope(t *testing.T) {
	// Hand-checked: x = 0,1,2,3; y = 1,3,2,6.
	// meanX=1.5, meanY=3, sxy=7, sxx=5 -> beta=1.4, alpha=0.9.
	x := []float64{0, 1, 2, 3}
	y := []float64{1, 3, 2, 6}

	fit, err := olsResiduals(y, x)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertClose(t, "beta", fit.Beta, 1.4, 1e-9)
	assertClose(t, "alpha", fit.Alpha, 0.9, 1e-9)
}

func TestOLSResiduals_SingularRegressor(t *testing.T) {
	y := []float64{1, 2, 3, 4, 5}
	x := constantSeries(5, 7)

	_, err := olsResiduals(y, x)
	if err == nil {
		t.Fatal("expected error for zero-variance regressor")
	}
	var st *model.StatisticalTestError
	if !errors.As(err, &st) {
		t.Fatalf("expected StatisticalTestError, got %T", err)
	}
}

func TestLstsq_TwoColumns(t *testing.T) {
	// y = 2*c1 + 3*c2 exactly.
	c1 := []float64{1, 2, 3, 4, 5, 6}
	c2 := []float64{1, 0, 1, 0, 1, 0}
	y := make([]float64, len(c1))
	for i := range y {
		y[i] = 2*c1[i] + 3*c2[i]
	}

	coef, stderr, err := lstsq(y, c1, c2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertClose(t, "coef[0]", coef[0], 2, 1e-9)
	assertClose(t, "coef[1]", coef[1], 3, 1e-9)
	// Exact fit: standard errors collapse to zero.
	assertClose(t, "stderr[0]", stderr[0], 0, 1e-6)
	assertClose(t, "stderr[1]", stderr[1], 0, 1e-6)
}

func TestLstsq_CollinearColumns(t *testing.T) {
	c1 := []float64{1, 2, 3, 4, 5}
	c2 := []float64{2, 4, 6, 8, 10} // 2*c1
	y := []float64{1, 1, 2, 2, 3}

	_, _, err := lstsq(y, c1, c2)
	if err == nil {
		t.Fatal("expected error for collinear columns")
	}
}

func TestInvert_Identity(t *testing.T) {
	a := [][]float64{{4, 1, 0}, {1, 3, 1}, {0, 1, 2}}
	inv, err := invert(a)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// a * inv must be the identity.
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var s float64
			for k := 0; k < 3; k++ {
				s += a[i][k] * inv[k][j]
			}
			want := 0.0
			if i == j {
				want = 1.0
			}
			if math.Abs(s-want) > 1e-9 {
				t.Fatalf("(a*inv)[%d][%d] = %v, want %v", i, j, s, want)
			}
		}
	}
}
