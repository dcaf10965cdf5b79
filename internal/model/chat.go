package model

type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

// Source is a citation attached to an assistant answer.
type Source struct {
	Title string `yaml:"title"`
	URL   string `yaml:"url"`
}

// ChatMessage is one line of a support conversation. It only lives in session state.
type ChatMessage struct {
	Role    ChatRole
	Content string
	Sources []Source
}
