package client

import (
	"errors"
	"fmt"
)

var (
	// ErrNoFileSelected is returned by Session.Start when no file was
	// provided.
	ErrNoFileSelected = errors.New("please select a video file")

	// ErrAlreadyInProgress rejects a second concurrent upload while
	// one is still in flight.
	ErrAlreadyInProgress = errors.New("an upload is already in progress")

	// ErrInvalidIdentifier is returned before any network call when
	// the video ID is empty, non-numeric, or not positive.
	ErrInvalidIdentifier = errors.New("please enter a valid numeric video ID")

	// ErrMalformedReport marks a response body that failed to parse as
	// an analytics report. The fetch is not retried.
	ErrMalformedReport = errors.New("malformed analytics report")
)

// FetchError is a non-success analytics response: the HTTP status plus
// the response body used as the error detail.
type FetchError struct {
	Status int
	Body   string
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to fetch analytics: %d %s", e.Status, e.Body)
}
