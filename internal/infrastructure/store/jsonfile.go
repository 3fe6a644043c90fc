// Package store persists the config and history documents. Both are small
// whole-document JSON files under the per-user data directory; every write
// rewrites the full document. Corrupt or unreadable files never crash the
// caller: loads fall back to the supplied default silently.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/radik097/ClipboardGPT/internal/pkg/filesystem"
)

// Dir returns the fixed per-user data directory.
func Dir() string {
	return filepath.Join(filesystem.UserHomeDir(), ".clipboardgpt")
}

// readJSON decodes path into out, reporting whether a usable document was
// read. Any I/O or parse error leaves out untouched.
func readJSON(path string, out any) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	return json.Unmarshal(data, out) == nil
}

// writeJSON rewrites path with the indented JSON encoding of doc, creating
// the parent directory when needed.
func writeJSON(path string, doc any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
