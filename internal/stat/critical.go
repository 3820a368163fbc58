package stat

import "pairs-enginev1/internal/model"

// Engle-Granger critical values for the ADF statistic on OLS residuals of a
// two-variable cointegrating regression with constant (MacKinnon asymptotic
// values). The test passes when the statistic is below the critical value.
var egCritical = map[model.Confidence]float64{
	model.Confidence90: -3.04,
	model.Confidence95: -3.34,
	model.Confidence99: -3.90,
}

// Johansen trace-statistic critical values for rank 0 in a two-variable
// system with unrestricted constant (Osterwald-Lenum). The test passes when
// the statistic exceeds the critical value.
var johansenTraceCritical = map[model.Confidence]float64{
	model.Confidence90: 13.4294,
	model.Confidence95: 15.4943,
	model.Confidence99: 19.9349,
}
