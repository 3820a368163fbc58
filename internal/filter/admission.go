// Package filter runs the daily admission control for a pair: it combines
// the indicator thresholds with both cointegration verdicts (and optionally
// the Hurst classification) into a single admit/reject decision per bar.
//
// One Filter serves one pair. Each Evaluate call is a full, stateless
// recomputation over the trailing window it is handed — no test result is
// cached across days, so a degenerate statistic today is simply a reject
// today and a fresh evaluation tomorrow.
package filter

import (
	"pairs-enginev1/internal/indicator"
	"pairs-enginev1/internal/model"
	"pairs-enginev1/internal/series"
	"pairs-enginev1/internal/stat"
)

// state tracks the per-day evaluation lifecycle. Evaluations are synchronous
// and self-contained; the state always returns to idle before Evaluate
// returns.
type state string

const (
	stateIdle       state = "idle"
	stateEvaluating state = "evaluating"
)

type entrySide int

const (
	sideNone entrySide = iota
	sideLong
	sideShort
)

// Filter is the daily admission controller for a single pair.
type Filter struct {
	pair  model.Pair
	cfg   Config
	state state
}

// New validates cfg and returns a Filter for the pair. A ConfigurationError
// here is fatal at setup: no evaluation runs on an invalid surface.
func New(pair model.Pair, cfg Config) (*Filter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Filter{pair: pair, cfg: cfg, state: stateIdle}, nil
}

// Pair returns the pair this filter evaluates.
func (f *Filter) Pair() model.Pair { return f.pair }

// Evaluate runs the admission state machine on the trailing window ending at
// the current bar and returns a fresh decision. Nothing escapes a single
// day's evaluation: every data-quality or statistical failure is converted
// into a reject with its precise reason.
func (f *Filter) Evaluate(w model.PairWindow) model.AdmissionDecision {
	f.state = stateEvaluating
	defer func() { f.state = stateIdle }()

	d := model.AdmissionDecision{}
	if n := w.Len(); n > 0 {
		d.TS = w[n-1].TS
	}
	d.Snapshot = model.IndicatorSnapshot{
		TS:     d.TS,
		ZScore: indicator.Missing,
		RSI:    indicator.Missing,
	}

	clean, err := series.Clean(w, f.cfg.MinSamples)
	if err != nil {
		d.Reasons = append(d.Reasons, model.ReasonInsufficientData)
		return d
	}

	ratios := clean.Ratios()
	last := len(ratios) - 1
	z := indicator.ZScore(ratios, f.cfg.ZScoreWindow)
	rsi := indicator.RSI(ratios, f.cfg.RSIWindow)
	d.Snapshot = model.IndicatorSnapshot{
		TS:     clean[last].TS,
		Ratio:  ratios[last],
		ZScore: z[last],
		RSI:    rsi[last],
	}

	d.Reasons = append(d.Reasons, f.indicatorGate(z[last], rsi[last])...)

	if len(d.Reasons) > 0 && f.cfg.ShortCircuit {
		return d
	}

	// Both tests always run here (unless short-circuited) so rejected days
	// still report the full statistical picture.
	eg, _ := stat.EngleGranger(clean.PricesA(), clean.PricesB(), f.cfg.Confidence, f.cfg.ADFLags)
	jo, _ := stat.Johansen(clean.PricesA(), clean.PricesB(), f.cfg.Confidence)
	d.EngleGranger = &eg
	d.Johansen = &jo

	if f.cfg.CointegrationFilter {
		d.Reasons = append(d.Reasons, combineCointegration(f.cfg.Combine, eg, jo)...)
	}

	if f.cfg.HurstFilter {
		reason, h := f.hurstGate(clean, ratios)
		d.Hurst = h
		if reason != "" {
			d.Reasons = append(d.Reasons, reason)
		}
	}

	d.Admit = len(d.Reasons) == 0
	return d
}

// indicatorGate applies the z-score entry threshold and the side-specific
// RSI gate. A Missing value can never satisfy a threshold; it reads as
// "condition not met", not as zero.
func (f *Filter) indicatorGate(z, rsi float64) []model.RejectReason {
	side := sideNone
	if !indicator.IsMissing(z) {
		switch {
		case z <= -f.cfg.EntryZScore:
			side = sideLong
		case z >= f.cfg.EntryZScore:
			side = sideShort
		}
	}
	if side == sideNone {
		return []model.RejectReason{model.ReasonZScoreOutOfRange}
	}

	switch side {
	case sideLong:
		// 100 is the disabled sentinel; an enabled check fails on Missing.
		if f.cfg.EntryRSILong < 100 {
			if indicator.IsMissing(rsi) || rsi >= f.cfg.EntryRSILong {
				return []model.RejectReason{model.ReasonRSIOutOfRange}
			}
		}
	case sideShort:
		if f.cfg.EntryRSIShort > 0 {
			if indicator.IsMissing(rsi) || rsi <= f.cfg.EntryRSIShort {
				return []model.RejectReason{model.ReasonRSIOutOfRange}
			}
		}
	}
	return nil
}

// combineCointegration turns the two test verdicts into reject reasons under
// the configured policy.
func combineCointegration(policy CombinePolicy, eg, jo model.CointegrationResult) []model.RejectReason {
	var reasons []model.RejectReason
	switch policy {
	case CombineAny:
		if !eg.IsCointegrated && !jo.IsCointegrated {
			reasons = append(reasons, model.ReasonNotCointegratedEG, model.ReasonNotCointegratedJohansen)
		}
	default: // CombineAll
		if !eg.IsCointegrated {
			reasons = append(reasons, model.ReasonNotCointegratedEG)
		}
		if !jo.IsCointegrated {
			reasons = append(reasons, model.ReasonNotCointegratedJohansen)
		}
	}
	return reasons
}

// hurstGate estimates the Hurst exponent of the pair's spread (OLS residual
// when the regression is usable, ratio series otherwise) and rejects
// trending spreads. A Hurst estimate that cannot be computed on an enabled
// filter rejects the day as insufficient data.
func (f *Filter) hurstGate(clean model.PairWindow, ratios []float64) (model.RejectReason, *model.HurstResult) {
	spread, err := stat.Spread(clean.PricesA(), clean.PricesB())
	if err != nil {
		spread = ratios
	}
	h, err := stat.Hurst(spread, f.cfg.HurstTolerance)
	if err != nil {
		return model.ReasonInsufficientData, nil
	}
	if h.Classification == model.HurstTrending {
		return model.ReasonHurstTrending, &h
	}
	return "", &h
}
