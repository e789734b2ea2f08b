// Package metrics records request and validation telemetry with Prometheus
// and optionally serves it on /metrics.
package metrics
