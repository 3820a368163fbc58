// Package series enforces the minimum-sample and data-quality invariants
// that gate every downstream statistic. No z-score, cointegration test, or
// Hurst estimate runs on a window that has not passed Clean.
package series

import (
	"fmt"
	"math"

	"pairs-enginev1/internal/model"
)

// DefaultMinSamples is the hard floor on cleaned window length.
const DefaultMinSamples = 50

// Clean returns a new window with every bar whose prices are non-finite, or
// whose ratio would be zero or non-finite, dropped. The input is never
// mutated. Returns a DataQualityError when the cleaned length is below
// minSamples (<=0 selects DefaultMinSamples).
func Clean(w model.PairWindow, minSamples int) (model.PairWindow, error) {
	if minSamples <= 0 {
		minSamples = DefaultMinSamples
	}

	out := make(model.PairWindow, 0, len(w))
	for _, b := range w {
		if !finite(b.PriceA) || !finite(b.PriceB) {
			continue
		}
		r := b.PriceA / b.PriceB
		if r == 0 || !finite(r) {
			continue
		}
		out = append(out, b)
	}

	if len(out) < minSamples {
		return nil, &model.DataQualityError{
			Reason: model.ReasonInsufficientData,
			Detail: fmt.Sprintf("%d clean bars, need %d", len(out), minSamples),
		}
	}
	return out, nil
}

// CheckAligned verifies the structural invariants the data contract promises:
// strictly increasing timestamps with no duplicates. Used by callers that
// assemble windows from external sources before handing them to the filter.
func CheckAligned(w model.PairWindow) error {
	for i := 1; i < len(w); i++ {
		if !w[i].TS.After(w[i-1].TS) {
			return &model.DataQualityError{
				Reason: model.ReasonInsufficientData,
				Detail: fmt.Sprintf("timestamps not strictly increasing at index %d", i),
			}
		}
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
