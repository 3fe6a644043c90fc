package chat

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/sourcegraph/conc"

	"github.com/radik097/ClipboardGPT/internal/domain"
	"github.com/radik097/ClipboardGPT/internal/ports"
)

const pickInstruction = "Pick the best candidate (most helpful and concise). Return only the chosen text, no commentary.\n\nCandidates:\n"

// PickOutcome reports the auto-picked candidate, or a failure.
type PickOutcome struct {
	Index   int
	Chosen  string
	Failure *domain.Failure
}

// Picker asks the model to choose the best of several already-fetched
// candidates. It runs independently of the primary requester but allows only
// a single outstanding pick at a time.
type Picker struct {
	chooser  ports.ChoiceClient
	logger   ports.Logger
	wg       *conc.WaitGroup
	inFlight atomic.Bool
}

// NewPicker builds a picker whose workers are tracked by wg.
func NewPicker(chooser ports.ChoiceClient, logger ports.Logger, wg *conc.WaitGroup) *Picker {
	return &Picker{chooser: chooser, logger: logger, wg: wg}
}

// PickBest issues one deterministic selection call and matches the reply
// back to the original candidates. It fails fast with
// ErrNotEnoughCandidates before any network call when fewer than two
// non-empty candidates are supplied.
func (p *Picker) PickBest(ctx context.Context, model string, candidates []string) (<-chan PickOutcome, error) {
	nonEmpty := 0
	for _, c := range candidates {
		if c != "" {
			nonEmpty++
		}
	}
	if nonEmpty < 2 {
		return nil, domain.ErrNotEnoughCandidates
	}
	if !p.inFlight.CompareAndSwap(false, true) {
		return nil, domain.ErrBusy
	}

	requestID := uuid.NewString()
	out := make(chan PickOutcome, 1)
	messages := pickMessages(candidates)

	p.wg.Go(func() {
		reply, err := p.chooser.Choose(ctx, model, messages)

		var outcome PickOutcome
		if err != nil {
			outcome = PickOutcome{Failure: domain.NewFailure(err, requestID)}
			p.logger.Error("auto-pick failed", err, map[string]interface{}{"request_id": requestID})
		} else {
			index, chosen := matchCandidate(candidates, reply)
			p.logger.Debug("auto-picked candidate", map[string]interface{}{
				"request_id": requestID,
				"index":      index,
			})
			outcome = PickOutcome{Index: index, Chosen: chosen}
		}

		p.inFlight.Store(false)
		out <- outcome
	})
	return out, nil
}

func pickMessages(candidates []string) []domain.Message {
	var sb strings.Builder
	sb.WriteString(pickInstruction)
	number := 0
	for _, c := range candidates {
		if c == "" {
			continue
		}
		number++
		fmt.Fprintf(&sb, "(%d) %s\n\n", number, c)
	}
	return []domain.Message{
		{Role: domain.RoleSystem, Content: domain.DefaultSystemPrompt},
		{Role: domain.RoleUser, Content: sb.String()},
	}
}

// matchCandidate finds the first candidate containing the reply text, in
// original order. When nothing matches (empty reply, paraphrase,
// truncation) it falls back to the first non-empty candidate, so a leading
// empty choice can never be picked.
func matchCandidate(candidates []string, reply string) (int, string) {
	reply = strings.TrimSpace(reply)
	if reply != "" {
		for i, c := range candidates {
			if c != "" && strings.Contains(c, reply) {
				return i, c
			}
		}
	}
	for i, c := range candidates {
		if c != "" {
			return i, c
		}
	}
	return 0, candidates[0]
}
