// Package metrics exposes prometheus instrumentation for the pair scan:
// how many bars were evaluated, how decisions split between admit and
// reject, and how long the statistical tests take.
package metrics

import (
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"pairs-enginev1/internal/model"
)

// Metrics holds all prometheus metrics for the pair admission engine.
type Metrics struct {
	BarsTotal        prometheus.Counter
	EvaluationsTotal prometheus.Counter
	AdmitsTotal      prometheus.Counter
	RejectsTotal     *prometheus.CounterVec // labels: reason
	DegenerateTests  *prometheus.CounterVec // labels: method

	EvalDur      prometheus.Histogram
	CointTestDur *prometheus.HistogramVec // labels: method

	ZScore        prometheus.Gauge
	HurstExponent prometheus.Gauge
}

// New registers and returns all metrics.
func New() *Metrics {
	m := &Metrics{
		BarsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pairscan_bars_total",
			Help: "Total bars fed into the admission filter",
		}),
		EvaluationsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pairscan_evaluations_total",
			Help: "Total daily admission evaluations run",
		}),
		AdmitsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pairscan_admits_total",
			Help: "Evaluations that admitted a trade entry",
		}),
		RejectsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pairscan_rejects_total",
			Help: "Evaluations rejected, by reason",
		}, []string{"reason"}),
		DegenerateTests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pairscan_degenerate_tests_total",
			Help: "Cointegration tests recovered from degenerate input, by method",
		}, []string{"method"}),
		EvalDur: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "pairscan_evaluation_duration_seconds",
			Help:    "Full daily evaluation latency",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		}),
		CointTestDur: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "pairscan_coint_test_duration_seconds",
			Help:    "Per-method cointegration test latency",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
		}, []string{"method"}),
		ZScore: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "pairscan_zscore",
			Help: "Latest ratio z-score (NaN while the window is unfilled)",
		}),
		HurstExponent: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "pairscan_hurst_exponent",
			Help: "Latest Hurst exponent of the spread",
		}),
	}

	prometheus.MustRegister(
		m.BarsTotal,
		m.EvaluationsTotal,
		m.AdmitsTotal,
		m.RejectsTotal,
		m.DegenerateTests,
		m.EvalDur,
		m.CointTestDur,
		m.ZScore,
		m.HurstExponent,
	)

	return m
}

// ObserveDecision records a finished evaluation.
func (m *Metrics) ObserveDecision(d *model.AdmissionDecision, dur time.Duration) {
	m.EvaluationsTotal.Inc()
	m.EvalDur.Observe(dur.Seconds())

	if d.Admit {
		m.AdmitsTotal.Inc()
	}
	for _, r := range d.Reasons {
		m.RejectsTotal.WithLabelValues(string(r)).Inc()
	}
	for _, res := range []*model.CointegrationResult{d.EngleGranger, d.Johansen} {
		if res != nil && res.Degenerate {
			m.DegenerateTests.WithLabelValues(string(res.Method)).Inc()
		}
	}

	m.ZScore.Set(d.Snapshot.ZScore)
	if d.Hurst != nil {
		m.HurstExponent.Set(d.Hurst.Exponent)
	}
}

// Serve starts the /metrics endpoint on addr in a background goroutine.
func Serve(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	go func() {
		log.Printf("[metrics] serving on %s", addr)
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.Printf("[metrics] server stopped: %v", err)
		}
	}()
}
