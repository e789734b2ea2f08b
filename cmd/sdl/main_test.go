package main

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/social-downloader/internal/config"
)

func newBackend(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func testOptions(t *testing.T, baseURL, input string) options {
	t.Helper()
	t.Setenv(config.EnvMetricsAddr, "")
	return options{
		platform: "auto",
		envFile:  filepath.Join(t.TempDir(), "missing.env"),
		baseURL:  baseURL,
		input:    input,
	}
}

func TestParseFlags(t *testing.T) {
	opts, err := parseFlags([]string{"-platform", "TikTok", "-copy", "2", "https://vm.tiktok.com/x"}, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, "tiktok", opts.platform)
	assert.Equal(t, 2, opts.copyIdx)
	assert.Equal(t, "https://vm.tiktok.com/x", opts.input)
	assert.Equal(t, config.DefaultEnvFile, opts.envFile)
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no url", []string{}},
		{"two urls", []string{"https://a", "https://b"}},
		{"unknown platform", []string{"-platform", "vimeo", "https://vimeo.com/1"}},
		{"unknown tag", []string{"-platform", "unknown", "https://x.com/1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseFlags(tt.args, io.Discard)
			assert.Error(t, err)
		})
	}
}

func TestRun_PrintsResult(t *testing.T) {
	srv := newBackend(t, http.StatusOK, `{
		"status": "success",
		"title": "My clip",
		"platform": "youtube",
		"type": "video_audio",
		"items": [
			{"type": "video", "url": "https://cdn/v.mp4", "duration": "3:10"},
			{"type": "audio", "url": "https://cdn/a.mp3", "label": "Audio only"}
		]
	}`)

	var out bytes.Buffer
	err := run(context.Background(), testOptions(t, srv.URL, "https://youtu.be/abc"), &out)
	require.NoError(t, err)

	expected := "My clip\n" +
		"Platform: Youtube • Type: VIDEO & AUDIO\n" +
		"\n[1] My clip\n" +
		"    Duration: 3:10\n" +
		"    Download Video: https://cdn/v.mp4\n" +
		"\n[2] My clip\n" +
		"    Audio only: https://cdn/a.mp3\n"
	assert.Equal(t, expected, out.String())
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		input    string
		expected string
	}{
		{"validation", http.StatusOK, `{}`, "https://vimeo.com/1", "Could not detect platform. Please select manually."},
		{"server message", http.StatusBadRequest, `{"message":"Unsupported URL"}`, "https://x.com/a/status/1", "Unsupported URL"},
		{"server without message", http.StatusInternalServerError, `oops`, "https://x.com/a/status/1", "Failed to process request"},
		{"application error", http.StatusOK, `{"status":"error"}`, "https://x.com/a/status/1", "Failed to get download link"},
		{"undecodable", http.StatusOK, `not json`, "https://x.com/a/status/1", "An unexpected error occurred"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newBackend(t, tt.status, tt.body)

			var out bytes.Buffer
			err := run(context.Background(), testOptions(t, srv.URL, tt.input), &out)
			require.Error(t, err)
			assert.Equal(t, tt.expected, err.Error())
			assert.Empty(t, out.String())
		})
	}
}

func TestRun_CopyIndexOutOfRange(t *testing.T) {
	srv := newBackend(t, http.StatusOK, `{"status":"success","items":[{"type":"image","url":"https://cdn/1.jpg"}]}`)

	opts := testOptions(t, srv.URL, "https://pin.it/abc")
	opts.copyIdx = 3

	var out bytes.Buffer
	err := run(context.Background(), opts, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "entry 3 does not exist")
}
