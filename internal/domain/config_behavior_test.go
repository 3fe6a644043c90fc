package domain_test

import (
	"strings"
	"testing"

	"github.com/radik097/ClipboardGPT/internal/domain"
)

func TestConfig_FindPrompt(t *testing.T) {
	tests := []struct {
		name     string
		config   domain.Config
		lookup   string
		wantOK   bool
		wantText string
	}{
		{
			name: "finds prompt by name",
			config: domain.Config{
				Prompts: []domain.SavedPrompt{
					{Name: "review", Text: "Review this code."},
					{Name: "explain", Text: "Explain like I am five."},
				},
			},
			lookup:   "explain",
			wantOK:   true,
			wantText: "Explain like I am five.",
		},
		{
			name: "first duplicate wins",
			config: domain.Config{
				Prompts: []domain.SavedPrompt{
					{Name: "review", Text: "first"},
					{Name: "review", Text: "second"},
				},
			},
			lookup:   "review",
			wantOK:   true,
			wantText: "first",
		},
		{
			name:   "missing name",
			config: domain.DefaultConfig(),
			lookup: "nope",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prompt, ok := tt.config.FindPrompt(tt.lookup)
			if ok != tt.wantOK {
				t.Fatalf("FindPrompt(%q) ok = %v, want %v", tt.lookup, ok, tt.wantOK)
			}
			if ok && prompt.Text != tt.wantText {
				t.Errorf("FindPrompt(%q) text = %q, want %q", tt.lookup, prompt.Text, tt.wantText)
			}
		})
	}
}

func TestConfig_RemovePrompt(t *testing.T) {
	cfg := domain.Config{
		Prompts: []domain.SavedPrompt{
			{Name: "a", Text: "1"},
			{Name: "b", Text: "2"},
			{Name: "a", Text: "3"},
		},
	}

	if !cfg.RemovePrompt("a") {
		t.Fatal("RemovePrompt(a) = false, want true")
	}
	if len(cfg.Prompts) != 2 {
		t.Fatalf("prompts = %d, want 2", len(cfg.Prompts))
	}
	// only the first duplicate is removed
	if got, ok := cfg.FindPrompt("a"); !ok || got.Text != "3" {
		t.Errorf("remaining a = (%+v, %v)", got, ok)
	}
	if cfg.RemovePrompt("missing") {
		t.Error("RemovePrompt(missing) = true, want false")
	}
}

func TestHistoryEntry_Title(t *testing.T) {
	tests := []struct {
		name  string
		entry domain.HistoryEntry
		want  string
	}{
		{
			name:  "first line only",
			entry: domain.HistoryEntry{Prompt: "Explain the TCP handshake.\nIn detail."},
			want:  "Explain the TCP handshake.",
		},
		{
			name:  "long first line truncated",
			entry: domain.HistoryEntry{Prompt: strings.Repeat("x", 100)},
			want:  strings.Repeat("x", 60),
		},
		{
			name:  "empty prompt",
			entry: domain.HistoryEntry{},
			want:  "(no prompt)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.entry.Title(); got != tt.want {
				t.Errorf("Title() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCostLedger_Add(t *testing.T) {
	var ledger domain.CostLedger

	first := ledger.Add(1000, 0.002)
	if first != 0.002 {
		t.Errorf("Add(1000, 0.002) = %v, want 0.002", first)
	}
	ledger.Add(500, 0.002)

	if ledger.TotalTokens != 1500 {
		t.Errorf("TotalTokens = %d, want 1500", ledger.TotalTokens)
	}
	if ledger.TotalCost < 0.0029 || ledger.TotalCost > 0.0031 {
		t.Errorf("TotalCost = %v, want about 0.003", ledger.TotalCost)
	}
}

func TestCompletionRequest_Validate(t *testing.T) {
	valid := domain.CompletionRequest{
		Messages:       []domain.Message{{Role: domain.RoleUser, Content: "hi"}},
		Model:          "gpt-4o-mini",
		Temperature:    0.2,
		CandidateCount: 1,
		TimeoutSeconds: 60,
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}

	boundary := valid
	boundary.Temperature = 2
	if err := boundary.Validate(); err != nil {
		t.Errorf("Validate() with temperature 2 = %v, want nil", err)
	}
}
