package chat

import (
	"context"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/sourcegraph/conc"

	"github.com/radik097/ClipboardGPT/internal/domain"
	"github.com/radik097/ClipboardGPT/internal/ports"
)

// Outcome is the exactly-once report for one submitted completion request:
// either the raw response body or a failure, never both.
type Outcome struct {
	Raw     []byte
	Failure *domain.Failure
}

// Requester runs completion calls off the caller's goroutine. At most one
// request is outstanding at a time; a second Submit while one is in flight
// returns ErrBusy.
type Requester struct {
	client   ports.CompletionClient
	logger   ports.Logger
	wg       *conc.WaitGroup
	inFlight atomic.Bool
}

// NewRequester builds a requester whose workers are tracked by wg.
func NewRequester(client ports.CompletionClient, logger ports.Logger, wg *conc.WaitGroup) *Requester {
	return &Requester{client: client, logger: logger, wg: wg}
}

// Submit starts the network call in the background and returns a channel
// that delivers exactly one Outcome. Cancelling ctx aborts the call.
func (r *Requester) Submit(ctx context.Context, req domain.CompletionRequest) (<-chan Outcome, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if !r.inFlight.CompareAndSwap(false, true) {
		return nil, domain.ErrBusy
	}

	requestID := uuid.NewString()
	out := make(chan Outcome, 1)

	r.logger.Debug("submitting completion request", map[string]interface{}{
		"request_id": requestID,
		"model":      req.Model,
		"candidates": req.CandidateCount,
	})

	r.wg.Go(func() {
		raw, err := r.client.Complete(ctx, req)

		var outcome Outcome
		if err != nil {
			outcome = Outcome{Failure: domain.NewFailure(err, requestID)}
			r.logger.Error("completion request failed", err, map[string]interface{}{
				"request_id": requestID,
			})
		} else {
			outcome = Outcome{Raw: raw}
		}

		// clear the flag before delivery so a caller that has seen the
		// outcome can submit again immediately
		r.inFlight.Store(false)
		out <- outcome
	})
	return out, nil
}

// Busy reports whether a request is currently in flight.
func (r *Requester) Busy() bool {
	return r.inFlight.Load()
}
