package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/radik097/ClipboardGPT/internal/application/chat"
	"github.com/radik097/ClipboardGPT/internal/domain"
)

const (
	ansiBold  = "\033[1m"
	ansiRed   = "\033[31m"
	ansiReset = "\033[0m"
)

// paint wraps text in an ANSI code when w is a terminal.
func paint(w io.Writer, code, text string) string {
	if !writerIsTerminal(w) {
		return text
	}
	return code + text + ansiReset
}

// RenderResult prints the candidate answers and the cost line.
func RenderResult(w io.Writer, result chat.SendResult) {
	if result.Failure != nil {
		fmt.Fprintf(w, "%s %s\n", paint(w, ansiRed, "Request failed:"), result.Failure.Summary())
		return
	}

	if len(result.Candidates) == 0 {
		fmt.Fprintln(w, "No answers returned.")
	}
	for i, candidate := range result.Candidates {
		if len(result.Candidates) > 1 {
			fmt.Fprintln(w, paint(w, ansiBold, fmt.Sprintf("--- Answer %d ---", i+1)))
		}
		if candidate == "" {
			fmt.Fprintln(w, "(empty answer)")
			continue
		}
		fmt.Fprintln(w, candidate)
	}

	fmt.Fprintf(w, "\nPrompt tokens: %s (approx.)  Cost: $%.4f  Session total: $%.4f\n",
		humanize.Comma(int64(result.PromptTokens)), result.Cost, result.Ledger.TotalCost)
}

// RenderHistoryEntry prints one stored exchange in full.
func RenderHistoryEntry(w io.Writer, position int, entry domain.HistoryEntry) {
	fmt.Fprintf(w, "#%d %s\n", position, entry.Title())
	fmt.Fprintln(w, strings.Repeat("-", 40))
	fmt.Fprintln(w, entry.Prompt)
	for i, response := range entry.Responses {
		fmt.Fprintf(w, "\n--- Answer %d ---\n", i+1)
		fmt.Fprintln(w, response)
	}
}
