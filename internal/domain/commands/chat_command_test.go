//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/workbench/internal/domain/commands"
	"github.com/rios0rios0/workbench/internal/domain/entities"
	builders "github.com/rios0rios0/workbench/test/domain/entitybuilders"
	doubles "github.com/rios0rios0/workbench/test/infrastructure/repositorydoubles"
)

func TestChatCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should prepend the system prompt and return the completion untouched", func(t *testing.T) {
		t.Parallel()

		// given
		chat := &doubles.SpyChatRepository{Completion: json.RawMessage(`{"id":"cmpl-1"}`)}
		settings := builders.NewSettingsBuilder().WithSystemPrompt("be brief").BuildSettings()
		cmd := commands.NewChatCommand(chat, settings)

		// when
		completion, err := cmd.Execute(context.Background(), []entities.ChatMessage{{Role: "user", Content: "hi"}})

		// then
		require.NoError(t, err)
		assert.JSONEq(t, `{"id":"cmpl-1"}`, string(completion))
		assert.Equal(t, []entities.ChatMessage{
			{Role: "system", Content: "be brief"},
			{Role: "user", Content: "hi"},
		}, chat.LastMessages)
	})

	t.Run("should not add a system message when the prompt is blank", func(t *testing.T) {
		t.Parallel()

		// given
		chat := &doubles.SpyChatRepository{}
		settings := builders.NewSettingsBuilder().WithSystemPrompt("").BuildSettings()
		cmd := commands.NewChatCommand(chat, settings)

		// when
		_, err := cmd.Execute(context.Background(), []entities.ChatMessage{{Role: "user", Content: "hi"}})

		// then
		require.NoError(t, err)
		assert.Len(t, chat.LastMessages, 1)
	})

	t.Run("should reject a message without a role", func(t *testing.T) {
		t.Parallel()

		// given
		chat := &doubles.SpyChatRepository{}
		cmd := commands.NewChatCommand(chat, builders.NewSettingsBuilder().BuildSettings())

		// when
		_, err := cmd.Execute(context.Background(), []entities.ChatMessage{{Content: "hi"}})

		// then
		var validationErr *entities.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Nil(t, chat.LastMessages)
	})
}
