package model

import "fmt"

// DataQualityError reports insufficient or malformed input. It is fatal to
// the evaluation that raised it, never to the process.
type DataQualityError struct {
	Reason RejectReason
	Detail string
}

func (e *DataQualityError) Error() string {
	return fmt.Sprintf("data quality: %s (%s)", e.Detail, e.Reason)
}

// StatisticalTestError reports a numerically degenerate regression or test.
// It is always recovered: the evaluation converts it into a reject decision
// with a diagnostic flag.
type StatisticalTestError struct {
	Method CointMethod
	Detail string
}

func (e *StatisticalTestError) Error() string {
	return fmt.Sprintf("statistical test %s: %s", e.Method, e.Detail)
}

// ConfigurationError reports an invalid threshold or window configuration.
// It is surfaced at setup, before any evaluation runs.
type ConfigurationError struct {
	Field  string
	Detail string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("config %s: %s", e.Field, e.Detail)
}
