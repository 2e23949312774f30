// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"fmt"
)

// Sentinel errors, one per failure class. Stages wrap them with context;
// callers classify with errors.Is.
var (
	// ErrInvalidInput marks a malformed URL, detected before any I/O.
	ErrInvalidInput = errors.New("invalid input")

	// ErrFetch marks a failed PDF download. See FetchError.
	ErrFetch = errors.New("fetch failed")

	// ErrParse marks bytes that are not a readable PDF.
	ErrParse = errors.New("parse failed")

	// ErrRateLimitExceeded marks a model API that kept rate limiting
	// after every retry attempt was spent.
	ErrRateLimitExceeded = errors.New("rate limit exceeded")

	// ErrModelCall marks any other model API failure.
	ErrModelCall = errors.New("model call failed")
)

// FetchError reports a download that did not return a success status.
// StatusCode is 0 when the request failed before a response arrived.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetching %s: HTTP %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetching %s: %v", e.URL, e.Err)
}

// Is reports whether target is ErrFetch, so errors.Is works on the
// whole class without matching a particular status.
func (e *FetchError) Is(target error) bool {
	return target == ErrFetch
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
