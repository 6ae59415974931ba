package metrics

import (
	"errors"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/Guyuepp/go-clean-forum/domain"
)

const namespace = "forum"

// Collector 业务指标收集器，nil 值可以安全调用
type Collector struct {
	ledgerTransitions *prometheus.CounterVec
	rejections        *prometheus.CounterVec
	counterSteps      *prometheus.CounterVec
	httpRequests      *prometheus.CounterVec
	httpDuration      *prometheus.HistogramVec
}

func NewCollector(reg prometheus.Registerer) *Collector {
	f := promauto.With(reg)
	return &Collector{
		ledgerTransitions: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "ledger_transitions_total",
				Help:      "Successful like and follow ledger transitions",
			},
			[]string{"ledger", "transition"},
		),
		rejections: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "business_rejections_total",
				Help:      "Deterministic business rejections by operation",
			},
			[]string{"operation", "reason"},
		),
		counterSteps: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "counter_steps_total",
				Help:      "Units applied to materialized counters",
			},
			[]string{"counter", "direction"},
		),
		httpRequests: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status"},
		),
		httpDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),
	}
}

func (c *Collector) RecordLedger(ledger string, tr domain.LedgerTransition) {
	if c == nil {
		return
	}
	c.ledgerTransitions.WithLabelValues(ledger, tr.String()).Inc()
}

// RecordRejection only counts business failures; infrastructure errors are ignored.
func (c *Collector) RecordRejection(operation string, err error) {
	if c == nil || err == nil {
		return
	}
	reason := rejectionReason(err)
	if reason == "" {
		return
	}
	c.rejections.WithLabelValues(operation, reason).Inc()
}

func (c *Collector) RecordCounterStep(counter string, step int64) {
	if c == nil || step == 0 {
		return
	}
	direction := "up"
	if step < 0 {
		direction = "down"
		step = -step
	}
	c.counterSteps.WithLabelValues(counter, direction).Add(float64(step))
}

func (c *Collector) ObserveHTTP(method, endpoint string, status int, d time.Duration) {
	if c == nil {
		return
	}
	c.httpRequests.WithLabelValues(method, endpoint, strconv.Itoa(status)).Inc()
	c.httpDuration.WithLabelValues(method, endpoint).Observe(d.Seconds())
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrConflict):
		return "conflict"
	case errors.Is(err, domain.ErrInvalidTransition):
		return "invalid_transition"
	case errors.Is(err, domain.ErrPreconditionFailed):
		return "precondition_failed"
	case errors.Is(err, domain.ErrBadParamInput):
		return "bad_param"
	default:
		return ""
	}
}
