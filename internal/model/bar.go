package model

import (
	"encoding/json"
	"time"
)

// Pair identifies the two instruments whose ratio is being evaluated.
type Pair struct {
	A string `json:"a"`
	B string `json:"b"`
}

// Key returns a unique key for this pair: "A/B".
func (p Pair) Key() string {
	return p.A + "/" + p.B
}

// PairBar is one aligned daily observation of both legs.
// Both prices share the same timestamp by construction.
type PairBar struct {
	TS     time.Time `json:"ts"`
	PriceA float64   `json:"price_a"`
	PriceB float64   `json:"price_b"`
}

// Ratio returns PriceA / PriceB for this bar.
func (b PairBar) Ratio() float64 {
	return b.PriceA / b.PriceB
}

// JSON returns the JSON-encoded bar (ignoring errors for hot-path usage).
func (b *PairBar) JSON() []byte {
	out, _ := json.Marshal(b)
	return out
}

// PairWindow is a trailing view over aligned bars, ordered by strictly
// increasing timestamp. The engine only reads it; callers own the backing
// array and must not mutate it during an evaluation.
type PairWindow []PairBar

// Len returns the number of bars in the window.
func (w PairWindow) Len() int { return len(w) }

// Tail returns the trailing n bars (the whole window when n >= Len).
func (w PairWindow) Tail(n int) PairWindow {
	if n >= len(w) {
		return w
	}
	return w[len(w)-n:]
}

// Ratios returns the ratio series PriceA/PriceB, one entry per bar.
func (w PairWindow) Ratios() []float64 {
	out := make([]float64, len(w))
	for i, b := range w {
		out[i] = b.PriceA / b.PriceB
	}
	return out
}

// PricesA returns the A-leg price series.
func (w PairWindow) PricesA() []float64 {
	out := make([]float64, len(w))
	for i, b := range w {
		out[i] = b.PriceA
	}
	return out
}

// PricesB returns the B-leg price series.
func (w PairWindow) PricesB() []float64 {
	out := make([]float64, len(w))
	for i, b := range w {
		out[i] = b.PriceB
	}
	return out
}
