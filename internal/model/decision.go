package model

import (
	"encoding/json"
	"math"
	"time"
)

// RejectReason enumerates the precise causes a daily evaluation can report.
// A rejected decision always carries at least one reason.
type RejectReason string

const (
	ReasonInsufficientData        RejectReason = "insufficient_data"
	ReasonNotCointegratedEG       RejectReason = "not_cointegrated_eg"
	ReasonNotCointegratedJohansen RejectReason = "not_cointegrated_johansen"
	ReasonZScoreOutOfRange        RejectReason = "zscore_out_of_range"
	ReasonRSIOutOfRange           RejectReason = "rsi_out_of_range"
	ReasonHurstTrending           RejectReason = "hurst_trending"
)

// IndicatorSnapshot is the per-bar indicator state at the evaluated bar.
// ZScore and RSI are NaN ("missing") while their rolling windows are
// unfilled or degenerate; see the indicator package.
type IndicatorSnapshot struct {
	TS     time.Time `json:"ts"`
	Ratio  float64   `json:"ratio"`
	ZScore float64   `json:"zscore"`
	RSI    float64   `json:"rsi"`
}

// MarshalJSON renders missing (NaN) indicator values as null; encoding/json
// rejects NaN outright.
func (s IndicatorSnapshot) MarshalJSON() ([]byte, error) {
	out := struct {
		TS     time.Time `json:"ts"`
		Ratio  float64   `json:"ratio"`
		ZScore *float64  `json:"zscore"`
		RSI    *float64  `json:"rsi"`
	}{TS: s.TS, Ratio: s.Ratio}
	if !math.IsNaN(s.ZScore) {
		out.ZScore = &s.ZScore
	}
	if !math.IsNaN(s.RSI) {
		out.RSI = &s.RSI
	}
	return json.Marshal(out)
}

// AdmissionDecision is the outcome of one daily evaluation. It is created
// fresh per evaluation, never mutated after return, and carries the
// statistical results that produced it so callers can report diagnostics.
type AdmissionDecision struct {
	TS      time.Time      `json:"ts"`
	Admit   bool           `json:"admit"`
	Reasons []RejectReason `json:"reasons,omitempty"`

	Snapshot     IndicatorSnapshot    `json:"snapshot"`
	EngleGranger *CointegrationResult `json:"engle_granger,omitempty"`
	Johansen     *CointegrationResult `json:"johansen,omitempty"`
	Hurst        *HurstResult         `json:"hurst,omitempty"`
}

// Rejected reports whether reason is among the decision's reject reasons.
func (d *AdmissionDecision) Rejected(reason RejectReason) bool {
	for _, r := range d.Reasons {
		if r == reason {
			return true
		}
	}
	return false
}

// JSON returns the JSON-encoded decision (ignoring errors for hot-path usage).
func (d *AdmissionDecision) JSON() []byte {
	out, _ := json.Marshal(d)
	return out
}
