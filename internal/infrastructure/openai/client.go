// Package openai talks to an OpenAI-compatible chat-completions endpoint.
// The primary client hand-rolls the HTTP call so the request body stays under
// our control: the timeout parameter is sent to the endpoint and silently
// dropped again when an older or newer API surface rejects it.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/radik097/ClipboardGPT/internal/domain"
	"github.com/radik097/ClipboardGPT/internal/ports"
)

// DefaultBaseURL is the provider default endpoint root.
const DefaultBaseURL = "https://api.openai.com/v1"

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionPayload struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float32       `json:"temperature"`
	N           int           `json:"n"`
	MaxTokens   int           `json:"max_tokens"`
	Timeout     int           `json:"timeout,omitempty"`
}

// Client issues chat-completion calls.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     ports.Logger
}

// NewClient builds a client. An empty apiKey means the provider default:
// no Authorization header is sent. An empty baseURL uses DefaultBaseURL.
func NewClient(baseURL, apiKey string, logger ports.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{},
		logger:     logger,
	}
}

// Complete performs exactly one chat-completion call and returns the raw
// response body. The only automatic retry is the timeout-parameter
// compatibility retry: when the endpoint rejects the request because of the
// timeout field, the same call is repeated once without it. Transient
// network failures are never retried.
func (c *Client) Complete(ctx context.Context, req domain.CompletionRequest) ([]byte, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, time.Duration(req.TimeoutSeconds)*time.Second)
	defer cancel()

	body, status, err := c.post(ctx, buildPayload(req, true))
	if err != nil {
		return nil, err
	}
	if status == http.StatusBadRequest && mentionsTimeoutParameter(body) {
		c.logger.Warn("endpoint rejected timeout parameter, retrying without it",
			map[string]interface{}{"model": req.Model})
		body, status, err = c.post(ctx, buildPayload(req, false))
		if err != nil {
			return nil, err
		}
	}

	switch {
	case status == http.StatusTooManyRequests:
		return nil, &domain.RateLimitError{Detail: snippet(body)}
	case status >= 400:
		return nil, &domain.TransportError{
			Op:  "chat completion",
			Err: fmt.Errorf("endpoint returned %d: %s", status, snippet(body)),
		}
	}
	return body, nil
}

func (c *Client) post(ctx context.Context, payload chatCompletionPayload) ([]byte, int, error) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, 0, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/chat/completions", bytes.NewReader(encoded))
	if err != nil {
		return nil, 0, err
	}
	httpReq.Header.Set("content-type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, 0, &domain.TransportError{Op: "chat completion", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, &domain.TransportError{Op: "read response", Err: err}
	}
	return body, resp.StatusCode, nil
}

func buildPayload(req domain.CompletionRequest, withTimeout bool) chatCompletionPayload {
	payload := chatCompletionPayload{
		Model:       req.Model,
		Messages:    toChatMessages(req.Messages),
		Temperature: req.Temperature,
		N:           req.CandidateCount,
		MaxTokens:   domain.MaxOutputTokens,
	}
	if withTimeout {
		payload.Timeout = req.TimeoutSeconds
	}
	return payload
}

func toChatMessages(messages []domain.Message) []chatMessage {
	out := make([]chatMessage, 0, len(messages))
	for _, m := range messages {
		out = append(out, chatMessage{Role: string(m.Role), Content: m.Content})
	}
	return out
}

func mentionsTimeoutParameter(body []byte) bool {
	return bytes.Contains(bytes.ToLower(body), []byte("timeout"))
}

func snippet(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) > 200 {
		text = text[:200] + "..."
	}
	return text
}

var _ ports.CompletionClient = (*Client)(nil)
