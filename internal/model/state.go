package model

// ViewState is everything the UI needs to draw itself. Exactly one phase is
// active; the payload fields are only meaningful for their phase.
type ViewState struct {
	Phase    Phase
	Input    string
	Selected PlatformTag

	Request *DownloadRequest // in-flight request while Loading, last sent otherwise
	Result  *DownloadResult  // set in PhaseResult
	Err     error            // set in PhaseError
	Message string           // text shown in the error panel
}

// NewViewState returns the initial idle state with auto-detection selected
func NewViewState() ViewState {
	return ViewState{
		Phase:    PhaseIdle,
		Selected: PlatformAuto,
	}
}

// TriggerEnabled reports whether the download button accepts clicks
func (s ViewState) TriggerEnabled() bool {
	return !s.Phase.IsActive()
}

// ShowsError returns true if the error panel is visible
func (s ViewState) ShowsError() bool {
	return s.Phase == PhaseError
}

// ShowsResult returns true if the result section is visible
func (s ViewState) ShowsResult() bool {
	return s.Phase == PhaseResult && s.Result != nil
}
