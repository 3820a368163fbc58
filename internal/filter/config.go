package filter

import (
	"fmt"

	"pairs-enginev1/internal/model"
)

// CombinePolicy decides how the two cointegration tests gate admission.
type CombinePolicy string

const (
	// CombineAll admits only when both tests agree the pair is cointegrated.
	// The conservative default: never trade through a breakdown one test
	// already sees.
	CombineAll CombinePolicy = "all"
	// CombineAny admits when either test reports cointegration.
	CombineAny CombinePolicy = "any"
)

// Config is the admission filter's evaluation surface. The RSI thresholds
// default to their disabled sentinels: 100 for the long check (RSI < 100 is
// the impossible-to-fail form of "must be below") and 0 for the short check.
type Config struct {
	MinSamples   int     `yaml:"min_samples"`
	ZScoreWindow int     `yaml:"zscore_window"`
	RSIWindow    int     `yaml:"rsi_window"`
	EntryZScore  float64 `yaml:"entry_zscore_threshold"`
	// EntryRSILong gates long entries: RSI must be strictly below it.
	// 100 disables the check.
	EntryRSILong float64 `yaml:"entry_rsi_long_threshold"`
	// EntryRSIShort gates short entries: RSI must be strictly above it.
	// 0 disables the check.
	EntryRSIShort float64 `yaml:"entry_rsi_short_threshold"`

	Confidence          model.Confidence `yaml:"confidence"`
	CointegrationFilter bool             `yaml:"cointegration_filter"`
	Combine             CombinePolicy    `yaml:"combine_policy"`
	ADFLags             int              `yaml:"adf_lags"`

	HurstFilter    bool    `yaml:"hurst_filter"`
	HurstTolerance float64 `yaml:"hurst_tolerance"`

	// ShortCircuit skips the cointegration and Hurst tests once the
	// indicator gate has already rejected the bar. Off by default so
	// rejected days still carry full diagnostics.
	ShortCircuit bool `yaml:"short_circuit"`
}

// DefaultConfig mirrors the original dashboard's defaults.
func DefaultConfig() Config {
	return Config{
		MinSamples:          50,
		ZScoreWindow:        50,
		RSIWindow:           14,
		EntryZScore:         2.0,
		EntryRSILong:        100,
		EntryRSIShort:       0,
		Confidence:          model.Confidence95,
		CointegrationFilter: true,
		Combine:             CombineAll,
		ADFLags:             1,
		HurstFilter:         false,
		HurstTolerance:      0,
	}
}

// Validate checks the configuration before any evaluation runs. All
// violations are ConfigurationErrors, fatal at setup.
func (c Config) Validate() error {
	if c.MinSamples < 2 {
		return confErr("min_samples", "must be >= 2, got %d", c.MinSamples)
	}
	if c.ZScoreWindow < 2 {
		return confErr("zscore_window", "must be >= 2, got %d", c.ZScoreWindow)
	}
	if c.RSIWindow < 1 {
		return confErr("rsi_window", "must be >= 1, got %d", c.RSIWindow)
	}
	if c.EntryZScore <= 0 {
		return confErr("entry_zscore_threshold", "must be > 0, got %g", c.EntryZScore)
	}
	if c.EntryRSILong < 0 || c.EntryRSILong > 100 {
		return confErr("entry_rsi_long_threshold", "must be in [0,100], got %g", c.EntryRSILong)
	}
	if c.EntryRSIShort < 0 || c.EntryRSIShort > 100 {
		return confErr("entry_rsi_short_threshold", "must be in [0,100], got %g", c.EntryRSIShort)
	}
	if !c.Confidence.Valid() {
		return confErr("confidence", "must be one of 90, 95, 99, got %d", int(c.Confidence))
	}
	if c.Combine != CombineAll && c.Combine != CombineAny {
		return confErr("combine_policy", "must be %q or %q, got %q", CombineAll, CombineAny, c.Combine)
	}
	if c.ADFLags < 0 {
		return confErr("adf_lags", "must be >= 0, got %d", c.ADFLags)
	}
	if c.HurstTolerance < 0 || c.HurstTolerance >= 0.5 {
		return confErr("hurst_tolerance", "must be in [0,0.5), got %g", c.HurstTolerance)
	}
	return nil
}

func confErr(field, format string, args ...any) error {
	return &model.ConfigurationError{Field: field, Detail: fmt.Sprintf(format, args...)}
}
