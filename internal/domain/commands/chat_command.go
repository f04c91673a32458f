package commands

import (
	"context"
	"encoding/json"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/workbench/internal/domain/entities"
	"github.com/rios0rios0/workbench/internal/domain/repositories"
)

const roleSystem = "system"

// Chat is the interface for the chat proxy.
type Chat interface {
	Execute(ctx context.Context, messages []entities.ChatMessage) (json.RawMessage, error)
}

// ChatCommand forwards a conversation to the chat provider, prefixed by the
// configured system prompt. It keeps no history between calls.
type ChatCommand struct {
	chat     repositories.ChatRepository
	settings *entities.Settings
}

// NewChatCommand creates a new ChatCommand.
func NewChatCommand(chat repositories.ChatRepository, settings *entities.Settings) *ChatCommand {
	return &ChatCommand{
		chat:     chat,
		settings: settings,
	}
}

func (it *ChatCommand) Execute(ctx context.Context, messages []entities.ChatMessage) (json.RawMessage, error) {
	for i, message := range messages {
		if strings.TrimSpace(message.Role) == "" {
			return nil, entities.NewValidationError("messages", "message %d has no role", i)
		}
	}

	conversation := make([]entities.ChatMessage, 0, len(messages)+1)
	if prompt := strings.TrimSpace(it.settings.Chat.SystemPrompt); prompt != "" {
		conversation = append(conversation, entities.ChatMessage{Role: roleSystem, Content: prompt})
	}
	conversation = append(conversation, messages...)

	logger.Debugf("Forwarding %d message(s) to %s", len(conversation), it.settings.Chat.Model)
	return it.chat.Complete(ctx, conversation)
}
