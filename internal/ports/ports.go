// Package ports defines the interfaces between the application core and the
// infrastructure adapters (HTTP transport, on-disk stores, clipboard,
// notifications). The application layer depends only on these abstractions.
package ports

import (
	"context"

	"github.com/radik097/ClipboardGPT/internal/domain"
)

// CompletionClient performs one chat-completion call and returns the raw
// response body. Implementations classify endpoint errors into the domain
// error taxonomy but never retry beyond the single timeout-parameter
// compatibility retry.
type CompletionClient interface {
	Complete(ctx context.Context, req domain.CompletionRequest) ([]byte, error)
}

// ChoiceClient performs the short best-candidate selection call and returns
// the model's reply text.
type ChoiceClient interface {
	Choose(ctx context.Context, model string, messages []domain.Message) (string, error)
}

// ConfigStore owns the on-disk config document. Load never fails: a missing
// or corrupt file yields the default document.
type ConfigStore interface {
	Load() domain.Config
	Save(domain.Config) error
}

// HistoryStore owns the on-disk history sequence, most-recent-last.
type HistoryStore interface {
	Entries() []domain.HistoryEntry
	Append(domain.HistoryEntry) error
	Clear() error
}

// Estimator converts text to a token count. Deterministic, no network I/O.
type Estimator interface {
	Estimate(text, modelHint string) int
}

// Clipboard reads the fallback prompt source and receives chosen candidates.
type Clipboard interface {
	Read() (string, error)
	Write(text string) error
}

// Notifier posts a fire-and-forget desktop notification. Failures are
// swallowed; they must never affect session state.
type Notifier interface {
	Notify(title, message string)
}

// Logger is the structured logging abstraction shared by all components.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
