// Package chat orchestrates the send pipeline: resolve the prompt, issue the
// completion call in the background, normalize the candidates, estimate
// tokens, update the cost ledger and persist the prompt/response pair.
package chat

import (
	"context"
	"strings"
	"sync"

	"github.com/sourcegraph/conc"

	"github.com/radik097/ClipboardGPT/internal/domain"
	"github.com/radik097/ClipboardGPT/internal/normalize"
	"github.com/radik097/ClipboardGPT/internal/ports"
)

// State is the session's position in a send operation. Succeeded and Failed
// are momentary: the session returns to Idle as soon as the result has been
// delivered.
type State int

const (
	StateIdle State = iota
	StateSending
	StateSucceeded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSending:
		return "sending"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// SendRequest carries one send operation. Zero-valued fields fall back to
// the config document and settings defaults.
type SendRequest struct {
	Prompt          string
	AttachmentPaths []string
	SystemPrompt    string
	Model           string
	Temperature     float32
	CandidateCount  int
	TimeoutSeconds  int

	// Quiet suppresses the desktop notification for this send only.
	Quiet bool
}

// SendResult is delivered exactly once per accepted send.
type SendResult struct {
	Prompt       string
	Candidates   []string
	PromptTokens int
	Cost         float64
	Ledger       domain.CostLedger
	Failure      *domain.Failure
}

// Deps bundles the session's collaborators.
type Deps struct {
	Requester      *Requester
	Picker         *Picker
	Estimator      ports.Estimator
	ConfigStore    ports.ConfigStore
	HistoryStore   ports.HistoryStore
	Clipboard      ports.Clipboard
	Notifier       ports.Notifier
	Logger         ports.Logger
	ReadAttachment func(path string) (domain.Attachment, error)

	// Defaults applied when the request leaves them zero.
	DefaultTemperature float32
	DefaultTimeout     int
}

// Session owns the in-flight request, the fetched candidates and the cost
// ledger. The ledger has no other writer.
type Session struct {
	deps Deps
	wg   *conc.WaitGroup

	mu             sync.Mutex
	state          State
	ledger         domain.CostLedger
	lastCandidates []string
	cancelInflight context.CancelFunc
}

// NewSession wires a session. wg tracks all background workers so Close can
// drain them.
func NewSession(deps Deps, wg *conc.WaitGroup) *Session {
	if deps.DefaultTemperature == 0 {
		deps.DefaultTemperature = 0.2
	}
	if deps.DefaultTimeout == 0 {
		deps.DefaultTimeout = 60
	}
	return &Session{deps: deps, wg: wg, state: StateIdle}
}

// State returns the current send state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Ledger returns a copy of the process-lifetime cost accumulator.
func (s *Session) Ledger() domain.CostLedger {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger
}

// LastCandidates returns the candidates of the most recent successful send.
func (s *Session) LastCandidates() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.lastCandidates...)
}

// Send resolves the prompt (typed text, else clipboard), starts the
// completion call in the background and returns a channel delivering exactly
// one SendResult. The send is rejected without a state change when no prompt
// text can be resolved or another send is in flight.
func (s *Session) Send(ctx context.Context, req SendRequest) (<-chan SendResult, error) {
	prompt, err := s.resolvePrompt(req.Prompt)
	if err != nil {
		return nil, err
	}

	cfg := s.deps.ConfigStore.Load()
	completion := s.buildCompletionRequest(req, cfg, prompt)

	s.mu.Lock()
	if s.state == StateSending {
		s.mu.Unlock()
		return nil, domain.ErrBusy
	}
	ctx, cancel := context.WithCancel(ctx)
	s.cancelInflight = cancel
	s.state = StateSending
	s.mu.Unlock()

	outcomes, err := s.deps.Requester.Submit(ctx, completion)
	if err != nil {
		s.setState(StateIdle)
		cancel()
		return nil, err
	}

	results := make(chan SendResult, 1)
	s.wg.Go(func() {
		defer cancel()
		outcome := <-outcomes
		if outcome.Failure != nil {
			results <- s.finishFailed(prompt, outcome.Failure, req.Quiet)
			return
		}
		results <- s.finishSucceeded(prompt, completion.Model, cfg.TokenPricePer1K, outcome.Raw, req.Quiet)
	})
	return results, nil
}

// PickBest asks the model to choose among the last fetched candidates and
// copies the winner to the clipboard.
func (s *Session) PickBest(ctx context.Context) (<-chan PickOutcome, error) {
	s.mu.Lock()
	candidates := append([]string(nil), s.lastCandidates...)
	s.mu.Unlock()

	cfg := s.deps.ConfigStore.Load()
	outcomes, err := s.deps.Picker.PickBest(ctx, cfg.Model, candidates)
	if err != nil {
		return nil, err
	}

	results := make(chan PickOutcome, 1)
	s.wg.Go(func() {
		outcome := <-outcomes
		if outcome.Failure == nil {
			if err := s.deps.Clipboard.Write(outcome.Chosen); err != nil {
				s.deps.Logger.Warn("clipboard copy failed", map[string]interface{}{"error": err.Error()})
			}
		}
		results <- outcome
	})
	return results, nil
}

// Close cancels any in-flight request and waits for background workers.
func (s *Session) Close() {
	s.mu.Lock()
	if s.cancelInflight != nil {
		s.cancelInflight()
	}
	s.mu.Unlock()
	s.wg.Wait()
}

func (s *Session) resolvePrompt(typed string) (string, error) {
	prompt := strings.TrimSpace(typed)
	if prompt != "" {
		return prompt, nil
	}
	clip, err := s.deps.Clipboard.Read()
	if err != nil {
		s.deps.Logger.Warn("clipboard read failed", map[string]interface{}{"error": err.Error()})
		return "", domain.ErrEmptyPrompt
	}
	clip = strings.TrimSpace(clip)
	if clip == "" {
		return "", domain.ErrEmptyPrompt
	}
	s.deps.Logger.Debug("using clipboard as prompt", map[string]interface{}{"length": len(clip)})
	return clip, nil
}

func (s *Session) buildCompletionRequest(req SendRequest, cfg domain.Config, prompt string) domain.CompletionRequest {
	outbound := prompt
	for _, path := range req.AttachmentPaths {
		attachment, err := s.deps.ReadAttachment(path)
		if err != nil {
			// skip the file; the send proceeds without it
			s.deps.Logger.Warn("attachment skipped", map[string]interface{}{"error": err.Error()})
			continue
		}
		outbound += attachment.Render()
	}

	system := req.SystemPrompt
	if system == "" {
		system = domain.DefaultSystemPrompt
	}
	model := req.Model
	if model == "" {
		model = cfg.Model
	}
	temperature := req.Temperature
	if temperature == 0 {
		temperature = s.deps.DefaultTemperature
	}
	count := req.CandidateCount
	if count < 1 {
		count = 1
	}
	timeout := req.TimeoutSeconds
	if timeout < 1 {
		timeout = s.deps.DefaultTimeout
	}

	return domain.CompletionRequest{
		Messages: []domain.Message{
			{Role: domain.RoleSystem, Content: system},
			{Role: domain.RoleUser, Content: outbound},
		},
		Model:          model,
		Temperature:    temperature,
		CandidateCount: count,
		TimeoutSeconds: timeout,
	}
}

// finishSucceeded runs the normalize → estimate → persist tail of the
// pipeline. Zero candidates still count as success: the history entry is
// written with an empty responses list.
func (s *Session) finishSucceeded(prompt, model string, pricePer1K float64, raw []byte, quiet bool) SendResult {
	candidates := normalize.Candidates(raw)
	if candidates == nil {
		candidates = []string{}
	}

	// tokens are estimated for the prompt text, not the responses
	tokens := s.deps.Estimator.Estimate(prompt, model)

	s.mu.Lock()
	cost := s.ledger.Add(tokens, pricePer1K)
	ledger := s.ledger
	s.lastCandidates = candidates
	s.state = StateSucceeded
	s.mu.Unlock()

	entry := domain.HistoryEntry{Prompt: prompt, Responses: candidates}
	if err := s.deps.HistoryStore.Append(entry); err != nil {
		s.deps.Logger.Warn("history append failed", map[string]interface{}{"error": err.Error()})
	}

	s.deps.Logger.Info("received candidates", map[string]interface{}{
		"count":  len(candidates),
		"tokens": tokens,
	})
	if !quiet {
		s.deps.Notifier.Notify("ClipboardGPT", notificationPreview(candidates))
	}

	s.setState(StateIdle)
	return SendResult{
		Prompt:       prompt,
		Candidates:   candidates,
		PromptTokens: tokens,
		Cost:         cost,
		Ledger:       ledger,
	}
}

func (s *Session) finishFailed(prompt string, failure *domain.Failure, quiet bool) SendResult {
	s.setState(StateFailed)
	s.deps.Logger.Error("send failed", failure.Err, map[string]interface{}{
		"request_id": failure.RequestID,
	})
	if !quiet {
		s.deps.Notifier.Notify("ClipboardGPT: error", failure.Summary())
	}

	s.setState(StateIdle)
	return SendResult{Prompt: prompt, Failure: failure}
}

func (s *Session) setState(state State) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}

func notificationPreview(candidates []string) string {
	if len(candidates) == 0 || candidates[0] == "" {
		return "No candidates returned"
	}
	preview := candidates[0]
	if runes := []rune(preview); len(runes) > 140 {
		preview = string(runes[:140]) + "…"
	}
	return preview
}
