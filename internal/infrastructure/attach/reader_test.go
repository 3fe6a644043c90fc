package attach

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/radik097/ClipboardGPT/internal/domain"
)

func TestReadPlainFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte("hello attachment"), 0o600); err != nil {
		t.Fatal(err)
	}

	att, err := Read(path)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if att.SourcePath != path || att.Content != "hello attachment" {
		t.Errorf("unexpected attachment %+v", att)
	}
}

func TestReadReplacesInvalidUTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "binary.bin")
	if err := os.WriteFile(path, []byte{'o', 'k', 0xff, 0xfe, '!'}, 0o600); err != nil {
		t.Fatal(err)
	}

	att, err := Read(path)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if !strings.Contains(att.Content, "ok") || !strings.Contains(att.Content, "�") {
		t.Errorf("invalid bytes should be replaced, got %q", att.Content)
	}
}

func TestReadMissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "absent.txt"))
	var aerr *domain.AttachmentReadError
	if !errors.As(err, &aerr) {
		t.Fatalf("expected AttachmentReadError, got %T: %v", err, err)
	}
}

func TestAttachmentRenderTruncates(t *testing.T) {
	long := strings.Repeat("x", domain.AttachmentMaxChars+500)
	att := domain.Attachment{SourcePath: "/tmp/long.txt", Content: long}

	rendered := att.Render()
	if !strings.Contains(rendered, "[Attachment: /tmp/long.txt]") {
		t.Errorf("rendered block missing header: %q", rendered[:80])
	}
	if strings.Count(rendered, "x") != domain.AttachmentMaxChars {
		t.Errorf("expected content truncated to %d chars, got %d",
			domain.AttachmentMaxChars, strings.Count(rendered, "x"))
	}
}
