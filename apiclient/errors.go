package apiclient

import "fmt"

// SubmissionError means the server answered with a non-success status. The
// message is whatever the server put in its error body, with a generic
// fallback.
type SubmissionError struct {
	StatusCode int
	Message    string
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("submission failed (%d): %s", e.StatusCode, e.Message)
}

// NetworkError means the request never produced a server response.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return "network error: " + e.Err.Error()
}

func (e *NetworkError) Unwrap() error { return e.Err }
