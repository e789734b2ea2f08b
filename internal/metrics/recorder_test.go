package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/social-downloader/internal/download"
	"github.com/ytget/social-downloader/internal/model"
)

func TestRecorder_ObserveRequest(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec := NewRecorder(reg)

	rec.ObserveRequest(model.PlatformTikTok, download.OutcomeSuccess, 300*time.Millisecond)
	rec.ObserveRequest(model.PlatformTikTok, download.OutcomeSuccess, time.Second)
	rec.ObserveRequest(model.PlatformYouTube, download.OutcomeServerError, 2*time.Second)

	assert.Equal(t, 2.0, testutil.ToFloat64(rec.requests.WithLabelValues("tiktok", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.requests.WithLabelValues("youtube", "server_error")))
	assert.Equal(t, 0.0, testutil.ToFloat64(rec.requests.WithLabelValues("youtube", "success")))

	assert.Equal(t, 2, testutil.CollectAndCount(rec.duration))
}

func TestRecorder_ObserveValidation(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec := NewRecorder(reg)

	rec.ObserveValidation(model.ReasonEmpty)
	rec.ObserveValidation(model.ReasonUndetected)
	rec.ObserveValidation(model.ReasonUndetected)

	assert.Equal(t, 1.0, testutil.ToFloat64(rec.validations.WithLabelValues("empty")))
	assert.Equal(t, 2.0, testutil.ToFloat64(rec.validations.WithLabelValues("undetected")))
}

func TestNewRecorder_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewRecorder(reg)

	assert.Panics(t, func() { NewRecorder(reg) })
}

func TestNewServer_ExposesMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec := NewRecorder(reg)
	rec.ObserveValidation(model.ReasonMalformed)

	srv := NewServer(":0", reg)
	ts := httptest.NewServer(srv.Handler)
	defer ts.Close()

	resp, err := http.Get(ts.URL + MetricsPath)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.Contains(string(body), `sdl_validation_failures_total{reason="malformed"} 1`))
}
