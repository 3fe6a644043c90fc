package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/radik097/ClipboardGPT/internal/domain"
)

func TestConfigStoreLoadMissingFileReturnsDefaults(t *testing.T) {
	s := NewConfigStoreAt(filepath.Join(t.TempDir(), "config.json"))

	got := s.Load()
	if diff := cmp.Diff(domain.DefaultConfig(), got); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestConfigStoreLoadCorruptFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{broken"), 0o600); err != nil {
		t.Fatal(err)
	}

	s := NewConfigStoreAt(path)
	got := s.Load()
	if diff := cmp.Diff(domain.DefaultConfig(), got); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestConfigStoreRoundTrip(t *testing.T) {
	s := NewConfigStoreAt(filepath.Join(t.TempDir(), "config.json"))

	cfg := domain.Config{
		Prompts: []domain.SavedPrompt{
			{Name: "Helpful", Text: "You are a helpful assistant."},
			{Name: "Helpful", Text: "duplicate names are allowed"},
		},
		Model:           "gpt-4o",
		TokenPricePer1K: 0.01,
	}
	if err := s.Save(cfg); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got := s.Load()
	if diff := cmp.Diff(cfg, got); diff != "" {
		t.Errorf("round-trip mismatch (-want +got):\n%s", diff)
	}
}

func TestConfigStoreSaveFailureIsPersistenceError(t *testing.T) {
	dir := t.TempDir()
	// a path whose parent is a regular file cannot be created
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	s := NewConfigStoreAt(filepath.Join(blocker, "config.json"))
	err := s.Save(domain.DefaultConfig())
	if err == nil {
		t.Fatal("expected save error")
	}
	var perr *domain.PersistenceError
	if !errors.As(err, &perr) {
		t.Fatalf("expected PersistenceError, got %T: %v", err, err)
	}
}

func TestHistoryStoreAppendAndEntries(t *testing.T) {
	s := NewHistoryStoreAt(filepath.Join(t.TempDir(), "history.json"))

	if got := s.Entries(); len(got) != 0 {
		t.Fatalf("fresh store should be empty, got %v", got)
	}

	entries := []domain.HistoryEntry{
		{Prompt: "first", Responses: []string{"a", ""}},
		{Prompt: "second", Responses: []string{}},
		{Prompt: "third", Responses: []string{"b"}},
	}
	for _, e := range entries {
		if err := s.Append(e); err != nil {
			t.Fatalf("Append(%q) error = %v", e.Prompt, err)
		}
	}

	got := s.Entries()
	if diff := cmp.Diff(entries, got); diff != "" {
		t.Errorf("Entries() mismatch (-want +got):\n%s", diff)
	}
	if got[len(got)-1].Prompt != "third" {
		t.Errorf("most recent entry should be last, got %q", got[len(got)-1].Prompt)
	}
}

func TestHistoryStoreCorruptFileYieldsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	if err := os.WriteFile(path, []byte(`{"not":"an array"}`), 0o600); err != nil {
		t.Fatal(err)
	}

	s := NewHistoryStoreAt(path)
	if got := s.Entries(); len(got) != 0 {
		t.Errorf("corrupt history should load as empty, got %v", got)
	}

	// the store recovers on the next append
	if err := s.Append(domain.HistoryEntry{Prompt: "p", Responses: []string{"r"}}); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	if got := s.Entries(); len(got) != 1 {
		t.Errorf("expected 1 entry after recovery, got %d", len(got))
	}
}

func TestHistoryStoreClear(t *testing.T) {
	s := NewHistoryStoreAt(filepath.Join(t.TempDir(), "history.json"))
	if err := s.Append(domain.HistoryEntry{Prompt: "p", Responses: []string{"r"}}); err != nil {
		t.Fatal(err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if got := s.Entries(); len(got) != 0 {
		t.Errorf("expected no entries after Clear, got %v", got)
	}
}

func TestSQLiteHistoryStoreRoundTrip(t *testing.T) {
	s := NewSQLiteHistoryStoreAt(filepath.Join(t.TempDir(), "history.db"))

	entries := []domain.HistoryEntry{
		{Prompt: "Explain TCP handshake", Responses: []string{"SYN, SYN-ACK, ACK."}},
		{Prompt: "empty candidates", Responses: []string{"", "kept"}},
	}
	for _, e := range entries {
		if err := s.Append(e); err != nil {
			t.Fatalf("Append() error = %v", err)
		}
	}

	got := s.Entries()
	if diff := cmp.Diff(entries, got); diff != "" {
		t.Errorf("Entries() mismatch (-want +got):\n%s", diff)
	}

	if err := s.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if got := s.Entries(); len(got) != 0 {
		t.Errorf("expected empty store after Clear, got %v", got)
	}
}
