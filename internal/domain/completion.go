package domain

import "fmt"

// MaxOutputTokens caps every completion call.
const MaxOutputTokens = 1024

// CompletionRequest describes one chat-completion call. It is immutable once
// constructed; one request yields exactly one result or one failure.
type CompletionRequest struct {
	Messages       []Message
	Model          string
	Temperature    float32
	CandidateCount int
	TimeoutSeconds int
}

// Validate checks the request parameter ranges.
func (r CompletionRequest) Validate() error {
	if len(r.Messages) == 0 {
		return fmt.Errorf("completion request has no messages")
	}
	if r.Model == "" {
		return fmt.Errorf("completion request has no model")
	}
	if r.Temperature < 0 || r.Temperature > 2 {
		return fmt.Errorf("temperature %v out of range [0,2]", r.Temperature)
	}
	if r.CandidateCount < 1 {
		return fmt.Errorf("candidate count %d must be positive", r.CandidateCount)
	}
	if r.TimeoutSeconds < 1 {
		return fmt.Errorf("timeout %ds must be positive", r.TimeoutSeconds)
	}
	return nil
}

// CompletionResult holds the normalized candidate texts. Order matches the
// endpoint's returned choice order; empty strings are retained so candidate
// indices stay stable.
type CompletionResult struct {
	Candidates []string
}
