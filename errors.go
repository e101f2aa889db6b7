package deezer

import "errors"

var (
	// ErrAPIError indicates that the decoded response envelope carried an
	// error object reported by the remote API. The object's JSON rendering
	// is attached verbatim to the wrapped error.
	ErrAPIError = errors.New("deezer API error")
	// ErrInvalidJSON indicates that a response body could not be parsed as JSON.
	ErrInvalidJSON = errors.New("response is not valid JSON")
	// ErrNoTrackFound indicates that all relaxation stages of a track search
	// returned an empty result set.
	ErrNoTrackFound = errors.New("no track found")
)
