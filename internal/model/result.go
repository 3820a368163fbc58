package model

// Confidence is the confidence level used when comparing a test statistic
// against its tabulated critical value.
type Confidence int

const (
	Confidence90 Confidence = 90
	Confidence95 Confidence = 95
	Confidence99 Confidence = 99
)

// Valid reports whether c is one of the tabulated levels.
func (c Confidence) Valid() bool {
	return c == Confidence90 || c == Confidence95 || c == Confidence99
}

// CointMethod names a cointegration test.
type CointMethod string

const (
	MethodEngleGranger CointMethod = "engle_granger"
	MethodJohansen     CointMethod = "johansen"
)

// CointegrationResult is the normalized outcome of one cointegration test.
//
// For Engle-Granger, Statistic is the ADF t-statistic on the OLS residual and
// the test passes when Statistic < CriticalValue (more negative = more
// stationary). For Johansen, Statistic is the rank-0 trace statistic and the
// test passes when Statistic > CriticalValue.
type CointegrationResult struct {
	Method         CointMethod `json:"method"`
	IsCointegrated bool        `json:"is_cointegrated"`
	Statistic      float64     `json:"statistic"`
	CriticalValue  float64     `json:"critical_value"`
	Confidence     Confidence  `json:"confidence"`

	// Degenerate is set when the test could not be run on this window
	// (singular regression, zero variance). The result then reports
	// IsCointegrated=false rather than crashing the evaluation.
	Degenerate bool   `json:"degenerate,omitempty"`
	Note       string `json:"note,omitempty"`
}

// HurstClass classifies a series by its Hurst exponent.
type HurstClass string

const (
	HurstMeanReverting HurstClass = "mean_reverting"
	HurstTrending      HurstClass = "trending"
	HurstRandomWalk    HurstClass = "random_walk"
)

// HurstResult is the outcome of a Hurst exponent estimation.
// Exponent is nominally in (0,1); estimates can fall slightly outside on
// short windows and are reported as-is.
type HurstResult struct {
	Exponent       float64    `json:"exponent"`
	Classification HurstClass `json:"classification"`
}
