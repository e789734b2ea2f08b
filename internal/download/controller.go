package download

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/ytget/social-downloader/internal/model"
)

// ErrNotSuccessful wraps backend responses whose status is not "success"
var ErrNotSuccessful = errors.New("backend did not return a download link")

// Controller owns the view state and the single outstanding request
type Controller struct {
	requester Requester
	observer  Observer

	mu       sync.Mutex
	state    model.ViewState
	inFlight bool
	onUpdate func(model.ViewState) // callback for UI updates
}

// NewController creates a controller in the idle state
func NewController(requester Requester) *Controller {
	return &Controller{
		requester: requester,
		state:     model.NewViewState(),
	}
}

// SetUpdateCallback sets the function called after every state change
func (c *Controller) SetUpdateCallback(callback func(model.ViewState)) {
	c.mu.Lock()
	c.onUpdate = callback
	c.mu.Unlock()
}

// SetObserver attaches telemetry
func (c *Controller) SetObserver(observer Observer) {
	c.mu.Lock()
	c.observer = observer
	c.mu.Unlock()
}

// State returns a snapshot of the current view state
func (c *Controller) State() model.ViewState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Busy reports whether a request is outstanding
func (c *Controller) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inFlight
}

// Submit validates the input, sends one request and blocks until it resolves.
// While another request is outstanding it returns model.ErrBusy and changes
// nothing. The returned error is nil only when the result was rendered.
func (c *Controller) Submit(ctx context.Context, rawInput string, selected model.PlatformTag) (*model.DownloadResult, error) {
	c.mu.Lock()
	if c.inFlight {
		c.mu.Unlock()
		return nil, model.ErrBusy
	}

	req, err := Prepare(rawInput, selected)
	if err != nil {
		c.state = Next(c.state, Rejected{Input: rawInput, Err: err})
		c.notifyLocked()
		c.observeValidation(err)
		return nil, err
	}

	c.inFlight = true
	c.state = Next(c.state, Submitted{Input: rawInput, Request: req})
	c.notifyLocked()

	log.Printf("Submitting request %s: platform=%s url=%s", req.ID, req.Platform, req.URL)

	start := time.Now()
	result, err := c.requester.Download(ctx, req)
	elapsed := time.Since(start)

	c.mu.Lock()
	c.inFlight = false
	c.state = Next(c.state, Responded{RequestID: req.ID, Result: result, Err: err})
	outcome := classify(result, err)
	observer := c.observer
	c.notifyLocked()

	if observer != nil {
		observer.ObserveRequest(req.Platform, outcome, elapsed)
	}

	log.Printf("Request %s finished: outcome=%s elapsed=%s", req.ID, outcome, elapsed.Round(time.Millisecond))

	switch {
	case err != nil:
		log.Printf("Request %s failed: %v", req.ID, err)
		return nil, err
	case !result.IsSuccess():
		return result, fmt.Errorf("%w: %s", ErrNotSuccessful, resultMessage(result))
	default:
		return result, nil
	}
}

// InputChanged records new input text and auto-selects the detected platform
func (c *Controller) InputChanged(rawInput string) model.ViewState {
	tag, _ := DetectFromInput(rawInput)

	c.mu.Lock()
	c.state = Next(c.state, InputChanged{Input: rawInput, Detected: tag})
	return c.notifyLocked()
}

// SelectPlatform sets the selector, as a select change or icon click does
func (c *Controller) SelectPlatform(platform model.PlatformTag) model.ViewState {
	c.mu.Lock()
	c.state = Next(c.state, PlatformSelected{Platform: platform})
	return c.notifyLocked()
}

// Reset clears input, result and error and returns to Idle. A request that is
// still outstanding keeps blocking new submissions; its response is dropped.
func (c *Controller) Reset() model.ViewState {
	c.mu.Lock()
	c.state = Next(c.state, ResetRequested{})
	return c.notifyLocked()
}

// notifyLocked releases the mutex and delivers the snapshot to the callback
func (c *Controller) notifyLocked() model.ViewState {
	snapshot := c.state
	callback := c.onUpdate
	c.mu.Unlock()

	if callback != nil {
		callback(snapshot)
	}
	return snapshot
}

func (c *Controller) observeValidation(err error) {
	c.mu.Lock()
	observer := c.observer
	c.mu.Unlock()

	var verr *model.ValidationError
	if observer != nil && errors.As(err, &verr) {
		observer.ObserveValidation(verr.Reason)
	}
}
