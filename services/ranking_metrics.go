package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	MetricRankingRunsTotal         = "ranking_job_runs_total"
	MetricRankingRunDuration       = "ranking_job_duration_seconds"
	MetricRankingProfessorErrors   = "ranking_job_professor_errors_total"
	MetricRankingProfessorsUpdated = "ranking_job_professors_updated_total"

	RankingRunStatusSuccess = "success"
	RankingRunStatusFailure = "failure"
)

// RankingMetrics holds the ranking job collectors. A nil *RankingMetrics is a no-op.
type RankingMetrics struct {
	runsTotal         *prometheus.CounterVec
	runDuration       prometheus.Histogram
	professorErrors   *prometheus.CounterVec
	professorsUpdated prometheus.Counter
}

// NewRankingMetrics builds the collectors without registering them.
func NewRankingMetrics() *RankingMetrics {
	return &RankingMetrics{
		runsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricRankingRunsTotal,
				Help: "Total number of ranking recomputation runs by status",
			},
			[]string{"status"},
		),
		runDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    MetricRankingRunDuration,
				Help:    "Histogram of ranking recomputation run duration in seconds",
				Buckets: []float64{0.1, 0.25, 0.5, 1.0, 2.0, 5.0, 10.0, 30.0, 60.0, 120.0, 300.0},
			},
		),
		professorErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricRankingProfessorErrors,
				Help: "Total number of per-professor ranking failures by error kind",
			},
			[]string{"kind"},
		),
		professorsUpdated: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: MetricRankingProfessorsUpdated,
				Help: "Total number of professors whose ranking_points were written",
			},
		),
	}
}

func (m *RankingMetrics) Register(reg prometheus.Registerer) error {
	for _, c := range m.Collectors() {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

func (m *RankingMetrics) Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.runsTotal,
		m.runDuration,
		m.professorErrors,
		m.professorsUpdated,
	}
}

func (m *RankingMetrics) observeRun(status string, elapsed time.Duration, updated int) {
	if m == nil {
		return
	}
	m.runsTotal.WithLabelValues(status).Inc()
	m.runDuration.Observe(elapsed.Seconds())
	m.professorsUpdated.Add(float64(updated))
}

func (m *RankingMetrics) incProfessorError(kind RankingErrorKind) {
	if m == nil {
		return
	}
	m.professorErrors.WithLabelValues(string(kind)).Inc()
}
