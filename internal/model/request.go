package model

import (
	"time"

	"github.com/google/uuid"
)

// DownloadRequest is the body of the single outbound call to the backend
type DownloadRequest struct {
	ID       string      `json:"-"` // local correlation ID, never sent
	Platform PlatformTag `json:"platform"`
	URL      string      `json:"url"`

	CreatedAt time.Time `json:"-"`
}

// NewDownloadRequest creates a request with a fresh ID
func NewDownloadRequest(platform PlatformTag, url string) *DownloadRequest {
	return &DownloadRequest{
		ID:        uuid.NewString(),
		Platform:  platform,
		URL:       url,
		CreatedAt: time.Now(),
	}
}
