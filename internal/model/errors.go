package model

import (
	"errors"
	"fmt"
)

// User-facing fallback texts. The two server fallbacks are kept distinct:
// one covers HTTP-level failures, the other application-level ones.
const (
	MessageUnexpected     = "An unexpected error occurred"
	MessageRequestFailed  = "Failed to process request"
	MessageNoDownloadLink = "Failed to get download link"
)

// ValidationReason tells why an input was rejected before any request
type ValidationReason string

const (
	ReasonEmpty      ValidationReason = "empty"
	ReasonMalformed  ValidationReason = "malformed"
	ReasonUndetected ValidationReason = "undetected"
)

var validationMessages = map[ValidationReason]string{
	ReasonEmpty:      "Please enter a URL",
	ReasonMalformed:  "Please enter a valid URL",
	ReasonUndetected: "Could not detect platform. Please select manually.",
}

// ValidationError is raised locally and never reaches the network
type ValidationError struct {
	Reason ValidationReason
}

func (e *ValidationError) Error() string {
	if msg, ok := validationMessages[e.Reason]; ok {
		return msg
	}
	return "invalid input: " + string(e.Reason)
}

// NetworkError means the request failed or the response could not be decoded
type NetworkError struct {
	Op  string // "request", "read" or "decode"
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ServerError is a non-2xx response; Message is the server-supplied text if any
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("server returned %d", e.StatusCode)
}

// ErrBusy is returned when a submission arrives while a request is in flight
var ErrBusy = errors.New("a request is already in progress")

// IsValidation reports whether err is a ValidationError with the given reason.
// An empty reason matches any validation error.
func IsValidation(err error, reason ValidationReason) bool {
	var verr *ValidationError
	if !errors.As(err, &verr) {
		return false
	}
	return reason == "" || verr.Reason == reason
}
