// Package normalize converts heterogeneous chat-completion results into an
// ordered list of plain-text candidates. Different client-library versions
// return either a typed object or a plain JSON document, with the assistant
// text nested under choices[].message.content or choices[].text; both shapes
// are handled explicitly rather than probed dynamically.
package normalize

import (
	"encoding/json"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// typed envelope for raw JSON bodies.
type result struct {
	Choices []choice `json:"choices"`
}

type choice struct {
	Message *message `json:"message"`
	Text    string   `json:"text"`
}

type message struct {
	Content string `json:"content"`
}

// Candidates extracts one trimmed text per choice, in the endpoint's order.
// Missing fields become ""; a result without a recognizable choices list
// yields an empty sequence, never an error.
func Candidates(raw any) []string {
	switch v := raw.(type) {
	case nil:
		return nil
	case *openai.ChatCompletionResponse:
		if v == nil {
			return nil
		}
		return fromOpenAI(*v)
	case openai.ChatCompletionResponse:
		return fromOpenAI(v)
	case json.RawMessage:
		return fromJSON(v)
	case []byte:
		return fromJSON(v)
	case map[string]any:
		return fromDocument(v)
	default:
		return nil
	}
}

func fromOpenAI(resp openai.ChatCompletionResponse) []string {
	if len(resp.Choices) == 0 {
		return nil
	}
	candidates := make([]string, 0, len(resp.Choices))
	for _, c := range resp.Choices {
		candidates = append(candidates, strings.TrimSpace(c.Message.Content))
	}
	return candidates
}

func fromJSON(data []byte) []string {
	var decoded result
	if err := json.Unmarshal(data, &decoded); err == nil && decoded.Choices != nil {
		candidates := make([]string, 0, len(decoded.Choices))
		for _, c := range decoded.Choices {
			candidates = append(candidates, choiceText(c))
		}
		return candidates
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil
	}
	return fromDocument(doc)
}

func choiceText(c choice) string {
	if c.Message != nil && c.Message.Content != "" {
		return strings.TrimSpace(c.Message.Content)
	}
	return strings.TrimSpace(c.Text)
}

func fromDocument(doc map[string]any) []string {
	rawChoices, ok := doc["choices"].([]any)
	if !ok {
		return nil
	}
	candidates := make([]string, 0, len(rawChoices))
	for _, rc := range rawChoices {
		entry, ok := rc.(map[string]any)
		if !ok {
			candidates = append(candidates, "")
			continue
		}
		text := ""
		if msg, ok := entry["message"].(map[string]any); ok {
			text, _ = msg["content"].(string)
		}
		if text == "" {
			text, _ = entry["text"].(string)
		}
		candidates = append(candidates, strings.TrimSpace(text))
	}
	return candidates
}
