package download

import (
	"errors"

	"github.com/ytget/social-downloader/internal/model"
)

// Event is an input to the state machine
type Event interface {
	event()
}

// Submitted moves the view to Loading for a validated request
type Submitted struct {
	Input   string
	Request *model.DownloadRequest
}

// Rejected records a local validation failure
type Rejected struct {
	Input string
	Err   error
}

// Responded carries the outcome of the backend call for RequestID
type Responded struct {
	RequestID string
	Result    *model.DownloadResult
	Err       error
}

// InputChanged updates the input text; Detected is applied to the selector
// when it names a concrete platform
type InputChanged struct {
	Input    string
	Detected model.PlatformTag
}

// PlatformSelected sets the selector directly
type PlatformSelected struct {
	Platform model.PlatformTag
}

// ResetRequested clears the form and returns to Idle
type ResetRequested struct{}

func (Submitted) event()        {}
func (Rejected) event()         {}
func (Responded) event()        {}
func (InputChanged) event()     {}
func (PlatformSelected) event() {}
func (ResetRequested) event()   {}

// Next returns the state that follows s after ev. It has no side effects.
func Next(s model.ViewState, ev Event) model.ViewState {
	switch e := ev.(type) {
	case Submitted:
		s.Phase = model.PhaseLoading
		s.Input = e.Input
		s.Request = e.Request
		s.Result = nil
		s.Err = nil
		s.Message = ""

	case Rejected:
		s.Phase = model.PhaseError
		s.Input = e.Input
		s.Result = nil
		s.Err = e.Err
		s.Message = ErrorMessage(e.Err)

	case Responded:
		// Responses for anything but the visible in-flight request are stale
		if s.Phase != model.PhaseLoading || s.Request == nil || s.Request.ID != e.RequestID {
			return s
		}
		switch {
		case e.Err != nil:
			s.Phase = model.PhaseError
			s.Err = e.Err
			s.Message = ErrorMessage(e.Err)
		case !e.Result.IsSuccess():
			msg := resultMessage(e.Result)
			s.Phase = model.PhaseError
			s.Err = errors.New(msg)
			s.Message = msg
		default:
			s.Phase = model.PhaseResult
			s.Result = e.Result
		}

	case InputChanged:
		s.Input = e.Input
		if e.Detected.IsConcrete() {
			s.Selected = e.Detected
		}

	case PlatformSelected:
		s.Selected = e.Platform
		if !s.Phase.IsActive() {
			s.Phase = model.PhaseIdle
			s.Result = nil
			s.Err = nil
			s.Message = ""
		}

	case ResetRequested:
		s = model.NewViewState()
	}

	return s
}

// ErrorMessage maps an error to the text shown in the error panel
func ErrorMessage(err error) string {
	var (
		verr   *model.ValidationError
		srvErr *model.ServerError
	)

	switch {
	case err == nil:
		return ""
	case errors.As(err, &verr):
		return verr.Error()
	case errors.As(err, &srvErr):
		if srvErr.Message != "" {
			return srvErr.Message
		}
		return model.MessageRequestFailed
	default:
		return model.MessageUnexpected
	}
}

// classify maps a finished call to its telemetry outcome
func classify(result *model.DownloadResult, err error) Outcome {
	var srvErr *model.ServerError
	switch {
	case errors.As(err, &srvErr):
		return OutcomeServerError
	case err != nil:
		return OutcomeNetworkError
	case !result.IsSuccess():
		return OutcomeRejected
	default:
		return OutcomeSuccess
	}
}

// resultMessage is the error text for a response whose status is not "success"
func resultMessage(result *model.DownloadResult) string {
	if result != nil && result.Message != "" {
		return result.Message
	}
	return model.MessageNoDownloadLink
}
