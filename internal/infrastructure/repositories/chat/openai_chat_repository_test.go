//go:build unit

package chat_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/workbench/internal/domain/entities"
	chatRepo "github.com/rios0rios0/workbench/internal/infrastructure/repositories/chat"
	builders "github.com/rios0rios0/workbench/test/domain/entitybuilders"
)

const completionBody = `{
  "id": "cmpl-1",
  "object": "chat.completion",
  "created": 1700000000,
  "model": "deepseek-chat",
  "choices": [{"index": 0, "finish_reason": "stop", "message": {"role": "assistant", "content": "hello"}}]
}`

func TestOpenAIChatRepositoryComplete(t *testing.T) {
	t.Parallel()

	t.Run("should forward model and messages and return the completion verbatim", func(t *testing.T) {
		t.Parallel()

		// given
		var received struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/chat/completions", r.URL.Path)
			assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(completionBody))
		}))
		defer server.Close()
		repository := chatRepo.NewOpenAIChatRepository(
			builders.NewSettingsBuilder().WithChat(server.URL, "sk-test").BuildSettings(),
		)

		// when
		completion, err := repository.Complete(context.Background(), []entities.ChatMessage{
			{Role: "system", Content: "be brief"},
			{Role: "user", Content: "hi"},
		})

		// then
		require.NoError(t, err)
		assert.JSONEq(t, completionBody, string(completion))
		assert.Equal(t, "deepseek-chat", received.Model)
		require.Len(t, received.Messages, 2)
		assert.Equal(t, "system", received.Messages[0].Role)
		assert.Equal(t, "hi", received.Messages[1].Content)
	})

	t.Run("should refuse without an API key", func(t *testing.T) {
		t.Parallel()

		// given
		repository := chatRepo.NewOpenAIChatRepository(
			builders.NewSettingsBuilder().WithChat("http://127.0.0.1:1", "").BuildSettings(),
		)

		// when
		_, err := repository.Complete(context.Background(), []entities.ChatMessage{{Role: "user", Content: "hi"}})

		// then
		assert.ErrorIs(t, err, entities.ErrNotConfigured)
	})

	t.Run("should report a provider rejection as an upstream failure", func(t *testing.T) {
		t.Parallel()

		// given
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":{"message":"Model Not Exist","type":"invalid_request_error"}}`))
		}))
		defer server.Close()
		repository := chatRepo.NewOpenAIChatRepository(
			builders.NewSettingsBuilder().WithChat(server.URL, "sk-test").BuildSettings(),
		)

		// when
		_, err := repository.Complete(context.Background(), []entities.ChatMessage{{Role: "user", Content: "hi"}})

		// then
		require.ErrorIs(t, err, entities.ErrUpstream)
		assert.Contains(t, err.Error(), "400")
	})

	t.Run("should reject an unknown role", func(t *testing.T) {
		t.Parallel()

		// given
		repository := chatRepo.NewOpenAIChatRepository(
			builders.NewSettingsBuilder().WithChat("http://127.0.0.1:1", "sk-test").BuildSettings(),
		)

		// when
		_, err := repository.Complete(context.Background(), []entities.ChatMessage{{Role: "wizard", Content: "hi"}})

		// then
		var validationErr *entities.ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})
}
