package series

import (
	"errors"
	"math"
	"testing"
	"time"

	"pairs-enginev1/internal/model"
)

func window(n int, priceA, priceB float64) model.PairWindow {
	w := make(model.PairWindow, n)
	base := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := range w {
		w[i] = model.PairBar{TS: base.AddDate(0, 0, i), PriceA: priceA, PriceB: priceB}
	}
	return w
}

func TestClean_PassesCleanWindow(t *testing.T) {
	w := window(60, 100, 50)
	out, err := Clean(w, 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Len() != 60 {
		t.Fatalf("expected 60 bars, got %d", out.Len())
	}
}

func TestClean_DropsBadRows(t *testing.T) {
	w := window(55, 100, 50)
	w[3].PriceA = math.NaN()
	w[7].PriceB = math.Inf(1)
	w[11].PriceA = 0  // ratio exactly zero
	w[19].PriceB = 0  // ratio infinite

	out, err := Clean(w, 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Len() != 51 {
		t.Fatalf("expected 51 bars after dropping 4, got %d", out.Len())
	}
	for i, b := range out {
		r := b.Ratio()
		if r == 0 || math.IsNaN(r) || math.IsInf(r, 0) {
			t.Fatalf("bar %d: bad ratio %v survived cleaning", i, r)
		}
	}
}

func TestClean_InsufficientData(t *testing.T) {
	w := window(55, 100, 50)
	// Poison 10 rows; 45 clean bars < 50.
	for i := 0; i < 10; i++ {
		w[i*5].PriceA = math.NaN()
	}

	_, err := Clean(w, 50)
	if err == nil {
		t.Fatal("expected DataQualityError")
	}
	var dq *model.DataQualityError
	if !errors.As(err, &dq) {
		t.Fatalf("expected DataQualityError, got %T", err)
	}
	if dq.Reason != model.ReasonInsufficientData {
		t.Fatalf("expected reason %q, got %q", model.ReasonInsufficientData, dq.Reason)
	}
}

func TestClean_DoesNotMutateInput(t *testing.T) {
	w := window(60, 100, 50)
	w[5].PriceA = math.NaN()
	before := w[5].PriceA

	if _, err := Clean(w, 50); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !math.IsNaN(before) || !math.IsNaN(w[5].PriceA) {
		t.Fatal("input window was mutated")
	}
}

func TestClean_DefaultMinSamples(t *testing.T) {
	if _, err := Clean(window(49, 100, 50), 0); err == nil {
		t.Fatal("expected 49 bars to fail the default 50-sample gate")
	}
	if _, err := Clean(window(50, 100, 50), 0); err != nil {
		t.Fatalf("50 bars should pass the default gate: %v", err)
	}
}

func TestCheckAligned(t *testing.T) {
	w := window(10, 100, 50)
	if err := CheckAligned(w); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	w[4].TS = w[3].TS // duplicate timestamp
	if err := CheckAligned(w); err == nil {
		t.Fatal("expected error for duplicate timestamp")
	}
}
