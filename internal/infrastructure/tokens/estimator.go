// Package tokens estimates token counts for cost display. It prefers the
// embedded tiktoken vocabularies and degrades to a word-count heuristic, so
// estimation is deterministic and never touches the network.
package tokens

import (
	"math"
	"strings"
	"sync"

	"github.com/tiktoken-go/tokenizer"

	"github.com/radik097/ClipboardGPT/internal/ports"
)

var _ ports.Estimator = (*Estimator)(nil)

// Estimator counts tokens for arbitrary text. The zero value is not usable;
// construct with New.
type Estimator struct {
	mu     sync.Mutex
	codecs map[string]tokenizer.Codec

	// disabled forces the heuristic path. Used by tests and as a guard when
	// no codec can be constructed at all.
	disabled bool
}

// New builds an estimator backed by the embedded tiktoken vocabularies.
func New() *Estimator {
	return &Estimator{codecs: map[string]tokenizer.Codec{}}
}

// NewHeuristic builds an estimator that only uses the word-count fallback.
func NewHeuristic() *Estimator {
	return &Estimator{codecs: map[string]tokenizer.Codec{}, disabled: true}
}

// Estimate returns a token count for text. An exact tokenizer for modelHint
// is used when available; unknown models fall back to the cl100k_base
// encoding, and if no codec can be built the heuristic applies:
// ceil(words/0.75), minimum 1 for non-empty text and 0 for empty text.
func (e *Estimator) Estimate(text, modelHint string) int {
	if text == "" {
		return 0
	}
	if !e.disabled {
		if codec := e.codecFor(modelHint); codec != nil {
			if ids, _, err := codec.Encode(text); err == nil {
				return len(ids)
			}
		}
	}
	return heuristic(text)
}

func (e *Estimator) codecFor(modelHint string) tokenizer.Codec {
	e.mu.Lock()
	defer e.mu.Unlock()

	if codec, ok := e.codecs[modelHint]; ok {
		return codec
	}
	codec, err := tokenizer.ForModel(tokenizer.Model(modelHint))
	if err != nil {
		codec, err = tokenizer.Get(tokenizer.Cl100kBase)
	}
	if err != nil {
		return nil
	}
	e.codecs[modelHint] = codec
	return codec
}

func heuristic(text string) int {
	words := len(strings.Fields(text))
	if words == 0 {
		// whitespace-only input still counts as something typed
		return 1
	}
	return int(math.Ceil(float64(words) / 0.75))
}
