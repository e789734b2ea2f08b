package model

// Phase represents the current state of the submit/render cycle
type Phase string

const (
	// PhaseIdle means nothing is shown besides the form
	PhaseIdle Phase = "Idle"

	// PhaseLoading means a request is in flight and the trigger is disabled
	PhaseLoading Phase = "Loading"

	// PhaseResult means a successful response is rendered
	PhaseResult Phase = "Result"

	// PhaseError means the last attempt failed and an error is shown
	PhaseError Phase = "Error"
)

// String returns the string representation of Phase
func (p Phase) String() string {
	return string(p)
}

// IsActive returns true while a request is outstanding
func (p Phase) IsActive() bool {
	return p == PhaseLoading
}

// IsFinished returns true if the last attempt has resolved (result or error)
func (p Phase) IsFinished() bool {
	return p == PhaseResult || p == PhaseError
}
