package indicator

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestRSI_Range_Property(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("RSI is in [0,100] or missing", prop.ForAll(
		func(ratio []float64, window int) bool {
			rsi := RSI(ratio, window)
			if len(rsi) != len(ratio) {
				return false
			}
			for _, v := range rsi {
				if IsMissing(v) {
					continue
				}
				if v < 0 || v > 100 {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.Float64Range(0.01, 1000)),
		gen.IntRange(1, 30),
	))

	properties.TestingRun(t)
}

func TestZScore_NeverInfinite_Property(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("z-score is finite or missing, never infinite", prop.ForAll(
		func(ratio []float64, window int) bool {
			for _, v := range ZScore(ratio, window) {
				if math.IsInf(v, 0) {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.Float64Range(0.01, 1000)),
		gen.IntRange(2, 60),
	))

	properties.TestingRun(t)
}

func TestIndicators_Deterministic_Property(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	same := func(a, b []float64) bool {
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if IsMissing(a[i]) != IsMissing(b[i]) {
				return false
			}
			if !IsMissing(a[i]) && a[i] != b[i] {
				return false
			}
		}
		return true
	}

	properties.Property("repeated computation yields identical output", prop.ForAll(
		func(ratio []float64) bool {
			return same(ZScore(ratio, 10), ZScore(ratio, 10)) &&
				same(RSI(ratio, 10), RSI(ratio, 10))
		},
		gen.SliceOf(gen.Float64Range(0.01, 1000)),
	))

	properties.TestingRun(t)
}
