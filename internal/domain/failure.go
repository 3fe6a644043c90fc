package domain

import (
	"fmt"
	"runtime/debug"
)

// Failure describes a failed completion call. Summary is the short,
// user-facing error description; Trace is the full diagnostic text for the
// log. The two are kept separate and must never be conflated.
type Failure struct {
	Err       error
	Trace     string
	RequestID string
}

// NewFailure captures err together with a diagnostic trace taken at the
// point of failure.
func NewFailure(err error, requestID string) *Failure {
	return &Failure{
		Err:       err,
		Trace:     fmt.Sprintf("request %s failed: %+v\n%s", requestID, err, debug.Stack()),
		RequestID: requestID,
	}
}

// Summary returns the short error description.
func (f Failure) Summary() string {
	if f.Err == nil {
		return "unknown failure"
	}
	return f.Err.Error()
}
