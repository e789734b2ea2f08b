package metrics

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ytget/social-downloader/internal/download"
	"github.com/ytget/social-downloader/internal/model"
)

// Metric names
const (
	Namespace          = "sdl"
	RequestsTotal      = "requests_total"
	RequestDuration    = "request_duration_seconds"
	ValidationFailures = "validation_failures_total"

	MetricsPath       = "/metrics"
	ReadHeaderTimeout = 5 * time.Second
)

// Recorder implements download.Observer with Prometheus collectors
type Recorder struct {
	requests    *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	validations *prometheus.CounterVec
}

var _ download.Observer = (*Recorder)(nil)

// NewRecorder creates the collectors and registers them with reg.
// It panics on duplicate registration, like prometheus.MustRegister.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      RequestsTotal,
				Help:      "Backend download requests by platform and outcome",
			},
			[]string{"platform", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Name:      RequestDuration,
				Help:      "Backend round-trip time by platform",
				Buckets:   []float64{0.25, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
			},
			[]string{"platform"},
		),
		validations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      ValidationFailures,
				Help:      "Inputs rejected before any request, by reason",
			},
			[]string{"reason"},
		),
	}

	reg.MustRegister(r.requests, r.duration, r.validations)
	return r
}

// ObserveRequest counts a finished backend call and its latency
func (r *Recorder) ObserveRequest(platform model.PlatformTag, outcome download.Outcome, elapsed time.Duration) {
	r.requests.WithLabelValues(platform.String(), string(outcome)).Inc()
	r.duration.WithLabelValues(platform.String()).Observe(elapsed.Seconds())
}

// ObserveValidation counts a locally rejected input
func (r *Recorder) ObserveValidation(reason model.ValidationReason) {
	r.validations.WithLabelValues(string(reason)).Inc()
}

// NewServer returns an HTTP server exposing gatherer on /metrics
func NewServer(addr string, gatherer prometheus.Gatherer) *http.Server {
	mux := http.NewServeMux()
	mux.Handle(MetricsPath, promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	return &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: ReadHeaderTimeout,
	}
}

// Serve runs srv until ctx is cancelled
func Serve(ctx context.Context, srv *http.Server) {
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("Metrics server shutdown: %v", err)
		}
	}()

	log.Printf("Serving metrics on %s%s", srv.Addr, MetricsPath)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Printf("Metrics server stopped: %v", err)
	}
}
