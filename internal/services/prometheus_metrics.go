package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	transactionsCreated *prometheus.CounterVec
	budgetAlerts        *prometheus.CounterVec
	contributions       *prometheus.CounterVec
	achievementsEarned  prometheus.Counter
	reportsBuilt        prometheus.Counter
	reportMonths        prometheus.Histogram
	reportDuration      prometheus.Histogram
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		transactionsCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_transactions_created_total",
				Help: "Total number of ledger transactions created",
			},
			[]string{"type"},
		),
		budgetAlerts: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budget_alerts_surfaced_total",
				Help: "Total number of warning and danger budget states surfaced to callers",
			},
			[]string{"tier"},
		),
		contributions: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "goal_contributions_total",
				Help: "Total number of savings goal contributions",
			},
			[]string{"outcome"},
		),
		achievementsEarned: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "goal_achievements_earned_total",
				Help: "Total number of savings goal achievements earned",
			},
		),
		reportsBuilt: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "reports_built_total",
				Help: "Total number of income and expense reports built",
			},
		),
		reportMonths: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "report_window_months",
				Help:    "Window size of built reports in months",
				Buckets: prometheus.LinearBuckets(1, 6, 7),
			},
		),
		reportDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "report_build_duration_milliseconds",
				Help:    "Report build duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
	}
}

func (p *PrometheusMetrics) RecordTransactionCreated(isExpense bool) {
	direction := "income"
	if isExpense {
		direction = "expense"
	}
	p.transactionsCreated.WithLabelValues(direction).Inc()
}

func (p *PrometheusMetrics) RecordBudgetAlert(tier string) {
	p.budgetAlerts.WithLabelValues(tier).Inc()
}

func (p *PrometheusMetrics) RecordContribution(achievementEarned bool) {
	outcome := "progress"
	if achievementEarned {
		outcome = "achieved"
		p.achievementsEarned.Inc()
	}
	p.contributions.WithLabelValues(outcome).Inc()
}

func (p *PrometheusMetrics) RecordReportBuilt(months int, duration time.Duration) {
	p.reportsBuilt.Inc()
	p.reportMonths.Observe(float64(months))
	p.reportDuration.Observe(float64(duration.Milliseconds()))
}

// NoopMetrics discards every observation. Used where a recorder is
// required but no registry is running.
type NoopMetrics struct{}

func NewNoopMetrics() MetricsRecorderInterface { return &NoopMetrics{} }

func (NoopMetrics) RecordTransactionCreated(bool)        {}
func (NoopMetrics) RecordBudgetAlert(string)             {}
func (NoopMetrics) RecordContribution(bool)              {}
func (NoopMetrics) RecordReportBuilt(int, time.Duration) {}
