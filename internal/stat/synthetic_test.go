package stat

import (
	"math"
	"math/rand"
	"testing"
)

// Synthetic series generators shared by the stat tests. Everything is
// seeded so the suite is deterministic.

// randomWalk returns start + cumsum of N(0, step) increments.
func randomWalk(r *rand.Rand, n int, start, step float64) []float64 {
	out := make([]float64, n)
	v := start
	for i := 0; i < n; i++ {
		v += r.NormFloat64() * step
		out[i] = v
	}
	return out
}

// ar1 returns a stationary AR(1) series x[t] = phi*x[t-1] + N(0, sigma).
func ar1(r *rand.Rand, n int, phi, sigma float64) []float64 {
	out := make([]float64, n)
	v := 0.0
	for i := 0; i < n; i++ {
		v = phi*v + r.NormFloat64()*sigma
		out[i] = v
	}
	return out
}

// persistentWalk integrates AR(1) increments: momentum-like levels whose
// lag differences scale faster than a random walk's.
func persistentWalk(r *rand.Rand, n int, phi, sigma float64) []float64 {
	out := make([]float64, n)
	v, u := 100.0, 0.0
	for i := 0; i < n; i++ {
		u = phi*u + r.NormFloat64()*sigma
		v += u
		out[i] = v
	}
	return out
}

// cointegratedPair returns b as a positive random walk and a = 2b + spread,
// where the spread is strongly mean-reverting AR(1) noise.
func cointegratedPair(r *rand.Rand, n int) (a, b []float64) {
	b = randomWalk(r, n, 100, 0.5)
	spread := ar1(r, n, 0.3, 0.8)
	a = make([]float64, n)
	for i := 0; i < n; i++ {
		a[i] = 2*b[i] + spread[i]
	}
	return a, b
}

func constantSeries(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func assertClose(t *testing.T, label string, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s: got %.6f, want %.6f (tol=%.6f)", label, got, want, tol)
	}
}
