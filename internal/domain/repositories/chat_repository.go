package repositories

import (
	"context"
	"encoding/json"

	"github.com/rios0rios0/workbench/internal/domain/entities"
)

// ChatRepository forwards a conversation to a hosted chat-completion model and
// returns the provider's completion object untouched.
type ChatRepository interface {
	Complete(ctx context.Context, messages []entities.ChatMessage) (json.RawMessage, error)
}
