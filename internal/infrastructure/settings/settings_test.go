package settings

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaultsFromEnvOnly(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_BASE_URL", "")
	t.Setenv("OPENAI_API_BASE", "")

	s, err := Load(filepath.Join(t.TempDir(), "settings.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if s.APIKey != "sk-test" {
		t.Errorf("APIKey = %q", s.APIKey)
	}
	if s.Temperature != 0.2 {
		t.Errorf("Temperature = %v, want default 0.2", s.Temperature)
	}
	if s.TimeoutSeconds != 60 {
		t.Errorf("TimeoutSeconds = %d, want default 60", s.TimeoutSeconds)
	}
	if s.HistoryBackend != "json" {
		t.Errorf("HistoryBackend = %q, want default json", s.HistoryBackend)
	}
	if !s.Notifications {
		t.Error("Notifications = false, want default true")
	}
}

func TestLoadReadsSettingsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	content := "api_key: sk-from-file\nmodel: gpt-4o\ntimeout_seconds: 10\nhistory_backend: sqlite\nnotifications: false\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if s.APIKey != "sk-from-file" {
		t.Errorf("APIKey = %q", s.APIKey)
	}
	if s.Model != "gpt-4o" {
		t.Errorf("Model = %q", s.Model)
	}
	if s.TimeoutSeconds != 10 {
		t.Errorf("TimeoutSeconds = %d", s.TimeoutSeconds)
	}
	if s.HistoryBackend != "sqlite" {
		t.Errorf("HistoryBackend = %q", s.HistoryBackend)
	}
	if s.Notifications {
		t.Error("Notifications = true, want false from file")
	}
}

func TestLoadMalformedFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("api_key: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("Load() error = nil, want parse error")
	}
}

func TestLoadLegacyBaseURLVariable(t *testing.T) {
	t.Setenv("OPENAI_BASE_URL", "")
	t.Setenv("OPENAI_API_BASE", "http://localhost:8080/v1")

	s, err := Load(filepath.Join(t.TempDir(), "settings.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.BaseURL != "http://localhost:8080/v1" {
		t.Errorf("BaseURL = %q, want legacy variable value", s.BaseURL)
	}
}
