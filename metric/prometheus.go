package metric

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusCollector implements hashgo.MetricsCollector with Prometheus
// counters and a latency histogram.
type PrometheusCollector struct {
	hashLatency  *prometheus.HistogramVec
	hashes       *prometheus.CounterVec
	fallbacks    *prometheus.CounterVec
	hookFailures *prometheus.CounterVec
}

// NewPrometheusCollector creates the collector and registers its metrics with
// reg. If reg is nil, prometheus.DefaultRegisterer is used.
func NewPrometheusCollector(reg prometheus.Registerer) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	c := &PrometheusCollector{
		hashLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "hashgo_hash_latency_seconds",
			Help:    "Latency of hash computations",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 10),
		}, []string{"algorithm", "sync"}),
		hashes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "hashgo_hashes_total",
			Help: "Total hash computations",
		}, []string{"algorithm", "sync", "result"}),
		fallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "hashgo_fallbacks_total",
			Help: "Total substitutions of an unknown algorithm by the default",
		}, []string{"requested", "fallback"}),
		hookFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "hashgo_hook_failures_total",
			Help: "Total failing hook callbacks",
		}, []string{"event", "propagated"}),
	}

	reg.MustRegister(c.hashLatency, c.hashes, c.fallbacks, c.hookFailures)
	return c
}

// RecordHash implements hashgo.MetricsCollector.
func (c *PrometheusCollector) RecordHash(algorithm string, sync, cached bool, duration time.Duration, err error) {
	s := strconv.FormatBool(sync)

	result := "computed"
	switch {
	case err != nil:
		result = "error"
	case cached:
		result = "cached"
	}

	c.hashes.WithLabelValues(algorithm, s, result).Inc()
	c.hashLatency.WithLabelValues(algorithm, s).Observe(duration.Seconds())
}

// RecordFallback implements hashgo.MetricsCollector.
func (c *PrometheusCollector) RecordFallback(requested, fallback string) {
	c.fallbacks.WithLabelValues(requested, fallback).Inc()
}

// RecordHookFailure implements hashgo.MetricsCollector.
func (c *PrometheusCollector) RecordHookFailure(event string, propagated bool) {
	c.hookFailures.WithLabelValues(event, strconv.FormatBool(propagated)).Inc()
}
