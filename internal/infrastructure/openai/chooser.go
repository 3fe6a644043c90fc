package openai

import (
	"context"
	"errors"
	"math"
	"strings"

	gopenai "github.com/sashabaranov/go-openai"

	"github.com/radik097/ClipboardGPT/internal/domain"
	"github.com/radik097/ClipboardGPT/internal/normalize"
	"github.com/radik097/ClipboardGPT/internal/ports"
)

// Chooser issues the short best-candidate selection call through the OpenAI
// SDK client. One call, one choice, temperature zero so the selection is
// deterministic.
type Chooser struct {
	client *gopenai.Client
}

// NewChooser builds a chooser against the same endpoint as the main client.
func NewChooser(baseURL, apiKey string) *Chooser {
	cfg := gopenai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = strings.TrimSuffix(baseURL, "/")
	}
	return &Chooser{client: gopenai.NewClientWithConfig(cfg)}
}

// Choose implements ports.ChoiceClient.
func (c *Chooser) Choose(ctx context.Context, model string, messages []domain.Message) (string, error) {
	// the SDK's temperature field is omitempty, so a literal 0 would be
	// dropped and the endpoint would apply its own default; the smallest
	// positive float keeps an effectively-zero temperature on the wire
	req := gopenai.ChatCompletionRequest{
		Model:       model,
		N:           1,
		Temperature: math.SmallestNonzeroFloat32,
		Messages:    toSDKMessages(messages),
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		var apiErr *gopenai.APIError
		if errors.As(err, &apiErr) && apiErr.HTTPStatusCode == 429 {
			return "", &domain.RateLimitError{Detail: apiErr.Message}
		}
		return "", &domain.TransportError{Op: "pick completion", Err: err}
	}

	candidates := normalize.Candidates(&resp)
	if len(candidates) == 0 {
		return "", nil
	}
	return candidates[0], nil
}

func toSDKMessages(messages []domain.Message) []gopenai.ChatCompletionMessage {
	out := make([]gopenai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		out = append(out, gopenai.ChatCompletionMessage{Role: string(m.Role), Content: m.Content})
	}
	return out
}

var _ ports.ChoiceClient = (*Chooser)(nil)
