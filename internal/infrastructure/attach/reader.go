// Package attach reads files destined for prompt inclusion.
package attach

import (
	"os"
	"strings"
	"unicode/utf8"

	"github.com/radik097/ClipboardGPT/internal/domain"
)

// Read loads one attachment as UTF-8 text. Invalid byte sequences are
// replaced with the Unicode replacement character rather than failing;
// truncation happens later, when the attachment is rendered into the prompt.
func Read(path string) (domain.Attachment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Attachment{}, &domain.AttachmentReadError{Path: path, Err: err}
	}

	text := string(data)
	if !utf8.ValidString(text) {
		text = strings.ToValidUTF8(text, string(utf8.RuneError))
	}
	return domain.Attachment{SourcePath: path, Content: text}, nil
}
