package stat

import (
	"pairs-enginev1/internal/model"
)

// EngleGranger runs the two-step residual cointegration test: regress A on B
// by OLS, then test the residual for a unit root with an ADF regression of
// order lags (<0 selects DefaultADFLags).
//
// A degenerate window (zero-variance leg, too-short residual series) is
// recovered, not fatal: the returned result reports IsCointegrated=false
// with Degenerate set, alongside the StatisticalTestError for logging.
func EngleGranger(a, b []float64, conf model.Confidence, lags int) (model.CointegrationResult, error) {
	res := model.CointegrationResult{
		Method:        model.MethodEngleGranger,
		Confidence:    conf,
		CriticalValue: egCritical[conf],
	}
	if !conf.Valid() {
		return res, &model.ConfigurationError{
			Field:  "confidence",
			Detail: "must be one of 90, 95, 99",
		}
	}

	fit, err := olsResiduals(a, b)
	if err != nil {
		res.Degenerate = true
		res.Note = err.Error()
		return res, err
	}

	tau, err := adfStatistic(fit.Residuals, lags)
	if err != nil {
		res.Degenerate = true
		res.Note = err.Error()
		return res, err
	}

	res.Statistic = tau
	res.IsCointegrated = tau < res.CriticalValue
	return res, nil
}

// Spread returns the OLS residual of a on b: the candidate mean-reverting
// spread the pair trades. Fails when b has zero variance.
func Spread(a, b []float64) ([]float64, error) {
	fit, err := olsResiduals(a, b)
	if err != nil {
		return nil, err
	}
	return fit.Residuals, nil
}
