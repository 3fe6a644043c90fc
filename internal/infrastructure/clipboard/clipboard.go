// Package clipboard adapts the system clipboard: the fallback prompt source
// on send, and the destination for chosen candidates.
package clipboard

import (
	"github.com/atotto/clipboard"

	"github.com/radik097/ClipboardGPT/internal/ports"
)

// System talks to the OS clipboard.
type System struct{}

// New builds the clipboard adapter.
func New() *System {
	return &System{}
}

// Read returns the current clipboard text.
func (s *System) Read() (string, error) {
	return clipboard.ReadAll()
}

// Write replaces the clipboard contents.
func (s *System) Write(text string) error {
	return clipboard.WriteAll(text)
}

var _ ports.Clipboard = (*System)(nil)
