package domain

import "strings"

// HistoryEntry is one persisted prompt/response pair. Entries are immutable
// once written; insertion order is chronological order.
type HistoryEntry struct {
	Prompt    string   `json:"prompt"`
	Responses []string `json:"responses"`
}

// Title returns the list rendering of the entry: the first line of the
// prompt, truncated.
func (e HistoryEntry) Title() string {
	line := e.Prompt
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	if runes := []rune(line); len(runes) > 60 {
		line = string(runes[:60])
	}
	if line == "" {
		return "(no prompt)"
	}
	return line
}
