package domain

// Role identifies the author of a chat message.
type Role string

const (
	RoleSystem    = Role("system")
	RoleUser      = Role("user")
	RoleAssistant = Role("assistant")
)

// Message is one entry in the ordered sequence sent to the endpoint.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// DefaultSystemPrompt is prepended to every send unless overridden.
const DefaultSystemPrompt = "You are a helpful assistant. Provide concise answers suitable for copy-pasting back to the clipboard."
