package entities

// ChatMessage is one turn of a conversation forwarded to the chat provider.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
