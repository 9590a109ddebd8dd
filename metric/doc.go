// Package metric exports hashgo.MetricsCollector measurements to Prometheus.
//
//	reg := prometheus.NewRegistry()
//	h := hashgo.New(hashgo.WithMetricsCollector(metric.NewPrometheusCollector(reg)))
package metric
