// Package metrics exports decision telemetry to Prometheus.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"mesa-decision/internal/core/domain"
)

const namespace = "mesa"

// Prometheus implements port.Metrics on its own registry.
type Prometheus struct {
	registry *prometheus.Registry

	decisions      *prometheus.CounterVec
	latency        *prometheus.HistogramVec
	clearingPrice  prometheus.Histogram
	frequencyCaps  *prometheus.CounterVec
	candidateCount prometheus.Histogram
}

// NewPrometheus registers the decision metrics plus the Go and process
// collectors.
func NewPrometheus() *Prometheus {
	reg := prometheus.NewRegistry()
	p := &Prometheus{
		registry: reg,
		decisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "decision",
			Name:      "requests_total",
			Help:      "Decision requests by outcome.",
		}, []string{"outcome"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "decision",
			Name:      "duration_seconds",
			Help:      "Time to produce a decision.",
			Buckets:   []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"outcome"}),
		clearingPrice: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "auction",
			Name:      "clearing_price",
			Help:      "Clearing price of won auctions.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 12),
		}),
		frequencyCaps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "frequency",
			Name:      "capped_total",
			Help:      "Cap checks that refused another event.",
		}, []string{"event_type"}),
		candidateCount: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "decision",
			Name:      "eligible_candidates",
			Help:      "Candidates left after eligibility filtering.",
			Buckets:   []float64{0, 1, 2, 5, 10, 20, 50, 100},
		}),
	}
	reg.MustRegister(
		p.decisions,
		p.latency,
		p.clearingPrice,
		p.frequencyCaps,
		p.candidateCount,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return p
}

func (p *Prometheus) ObserveDecision(outcome string, elapsed time.Duration) {
	p.decisions.WithLabelValues(outcome).Inc()
	p.latency.WithLabelValues(outcome).Observe(elapsed.Seconds())
}

func (p *Prometheus) ObserveClearingPrice(price float64) {
	p.clearingPrice.Observe(price)
}

func (p *Prometheus) IncFrequencyCapped(eventType domain.EventType) {
	p.frequencyCaps.WithLabelValues(string(eventType)).Inc()
}

func (p *Prometheus) ObserveCandidates(n int) {
	p.candidateCount.Observe(float64(n))
}

// Handler serves the registry in the Prometheus text format.
func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{Registry: p.registry})
}

// Registry exposes the underlying registry.
func (p *Prometheus) Registry() *prometheus.Registry {
	return p.registry
}
