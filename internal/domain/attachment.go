package domain

import "fmt"

// AttachmentMaxChars bounds how much of an attached file is sent.
const AttachmentMaxChars = 2000

// Attachment is a file whose text is appended to the outbound prompt.
// Attachments are consumed once per send and do not persist.
type Attachment struct {
	SourcePath string
	Content    string
}

// Render produces the prompt block for this attachment, truncating the
// content to AttachmentMaxChars characters.
func (a Attachment) Render() string {
	content := a.Content
	if runes := []rune(content); len(runes) > AttachmentMaxChars {
		content = string(runes[:AttachmentMaxChars])
	}
	return fmt.Sprintf("\n\n[Attachment: %s]\n%s", a.SourcePath, content)
}
