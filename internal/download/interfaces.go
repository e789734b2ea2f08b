package download

import (
	"context"
	"time"

	"github.com/ytget/social-downloader/internal/model"
)

// Requester sends one download request to the backend.
type Requester interface {
	Download(ctx context.Context, req *model.DownloadRequest) (*model.DownloadResult, error)
}

// Observer receives per-attempt telemetry. Implementations must be safe for
// concurrent use.
type Observer interface {
	// ObserveRequest is called once per completed backend call
	ObserveRequest(platform model.PlatformTag, outcome Outcome, elapsed time.Duration)

	// ObserveValidation is called when an input is rejected locally
	ObserveValidation(reason model.ValidationReason)
}

// Outcome classifies how a backend call ended
type Outcome string

const (
	OutcomeSuccess      Outcome = "success"
	OutcomeRejected     Outcome = "error"
	OutcomeServerError  Outcome = "server_error"
	OutcomeNetworkError Outcome = "network_error"
)

// Form is the controller surface a front end drives
type Form interface {
	Submit(ctx context.Context, rawInput string, selected model.PlatformTag) (*model.DownloadResult, error)
	InputChanged(rawInput string) model.ViewState
	SelectPlatform(platform model.PlatformTag) model.ViewState
	Reset() model.ViewState
	State() model.ViewState
	Busy() bool
	SetUpdateCallback(callback func(model.ViewState))
}

var _ Form = (*Controller)(nil)
