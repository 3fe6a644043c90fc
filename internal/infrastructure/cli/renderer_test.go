package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/radik097/ClipboardGPT/internal/application/chat"
	"github.com/radik097/ClipboardGPT/internal/domain"
)

func TestRenderResult(t *testing.T) {
	tests := []struct {
		name     string
		result   chat.SendResult
		contains []string
	}{
		{
			name: "single answer",
			result: chat.SendResult{
				Candidates:   []string{"SYN, SYN-ACK, ACK."},
				PromptTokens: 1234,
				Cost:         0.0025,
				Ledger:       domain.CostLedger{TotalTokens: 1234, TotalCost: 0.0025},
			},
			contains: []string{"SYN, SYN-ACK, ACK.", "1,234", "$0.0025"},
		},
		{
			name: "multiple answers are numbered",
			result: chat.SendResult{
				Candidates: []string{"first", "second"},
			},
			contains: []string{"--- Answer 1 ---", "--- Answer 2 ---", "first", "second"},
		},
		{
			name: "empty answer placeholder",
			result: chat.SendResult{
				Candidates: []string{""},
			},
			contains: []string{"(empty answer)"},
		},
		{
			name:     "no answers",
			result:   chat.SendResult{Candidates: []string{}},
			contains: []string{"No answers returned."},
		},
		{
			name: "failure short summary only",
			result: chat.SendResult{
				Failure: domain.NewFailure(errors.New("connection refused"), "req-1"),
			},
			contains: []string{"Request failed: connection refused"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			RenderResult(&buf, tt.result)
			for _, want := range tt.contains {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("output missing %q:\n%s", want, buf.String())
				}
			}
		})
	}
}

func TestRenderResultFailureHidesTrace(t *testing.T) {
	var buf bytes.Buffer
	RenderResult(&buf, chat.SendResult{
		Failure: domain.NewFailure(errors.New("boom"), "req-2"),
	})
	if strings.Contains(buf.String(), "goroutine") {
		t.Errorf("diagnostic trace leaked into user output:\n%s", buf.String())
	}
}

func TestMarshalHistory(t *testing.T) {
	entries := []domain.HistoryEntry{
		{Prompt: "q1", Responses: []string{"a1"}},
		{Prompt: "q2", Responses: []string{}},
	}

	jsonOut, err := marshalHistory(entries, "json")
	if err != nil {
		t.Fatalf("marshalHistory(json) error = %v", err)
	}
	if !strings.Contains(string(jsonOut), `"prompt": "q1"`) {
		t.Errorf("json output = %s", jsonOut)
	}

	yamlOut, err := marshalHistory(entries, "yaml")
	if err != nil {
		t.Fatalf("marshalHistory(yaml) error = %v", err)
	}
	if !strings.Contains(string(yamlOut), "prompt: q1") {
		t.Errorf("yaml output = %s", yamlOut)
	}

	if _, err := marshalHistory(entries, "xml"); err == nil {
		t.Error("marshalHistory(xml) error = nil, want unsupported format")
	}
}
