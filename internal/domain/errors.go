package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the session and picker preconditions.
var (
	// ErrEmptyPrompt means neither typed text nor the clipboard produced a
	// prompt; the send is rejected and the session stays idle.
	ErrEmptyPrompt = errors.New("no prompt text or clipboard content available")

	// ErrBusy means the component already has an outstanding call.
	ErrBusy = errors.New("a request is already in flight")

	// ErrNotEnoughCandidates means auto-pick was asked to choose among
	// fewer than two non-empty candidates.
	ErrNotEnoughCandidates = errors.New("need at least 2 candidates to auto-pick")
)

// TransportError is a network or connection-level failure reaching the
// endpoint, or a non-throttling API error. Surfaced verbatim, never retried.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// RateLimitError means the endpoint signalled throttling. It is surfaced
// distinctly so callers can show a specific message; there is no automatic
// backoff.
type RateLimitError struct {
	Detail string
}

func (e *RateLimitError) Error() string {
	if e.Detail == "" {
		return "rate limit exceeded"
	}
	return "rate limit exceeded: " + e.Detail
}

// PersistenceError wraps config/history save failures. Loads never produce
// it (corrupt files fall back to defaults); saves surface it as a non-fatal
// warning.
type PersistenceError struct {
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persist %s: %v", e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// AttachmentReadError is a per-file read failure. It is logged and the file
// skipped; the send proceeds.
type AttachmentReadError struct {
	Path string
	Err  error
}

func (e *AttachmentReadError) Error() string {
	return fmt.Sprintf("read attachment %s: %v", e.Path, e.Err)
}

func (e *AttachmentReadError) Unwrap() error { return e.Err }
