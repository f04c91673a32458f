package chat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/rios0rios0/workbench/internal/domain/entities"
)

// OpenAIChatRepository implements repositories.ChatRepository against any
// OpenAI-compatible chat completion endpoint (DeepSeek by default).
type OpenAIChatRepository struct {
	client     openai.Client
	model      string
	configured bool
}

// NewOpenAIChatRepository creates the repository. Without an API key the client is
// still built, but Complete fails with entities.ErrNotConfigured.
func NewOpenAIChatRepository(settings *entities.Settings) *OpenAIChatRepository {
	apiKey := strings.TrimSpace(settings.Chat.APIKey)
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL := strings.TrimSpace(settings.Chat.BaseURL); baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	return &OpenAIChatRepository{
		client:     openai.NewClient(opts...),
		model:      settings.Chat.Model,
		configured: apiKey != "",
	}
}

func (it *OpenAIChatRepository) Complete(
	ctx context.Context,
	messages []entities.ChatMessage,
) (json.RawMessage, error) {
	if !it.configured {
		return nil, entities.ErrNotConfigured
	}

	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(it.model),
		Messages: make([]openai.ChatCompletionMessageParamUnion, 0, len(messages)),
	}
	for _, message := range messages {
		param, err := toMessageParam(message)
		if err != nil {
			return nil, err
		}
		params.Messages = append(params.Messages, param)
	}

	completion, err := it.client.Chat.Completions.New(ctx, params)
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return nil, fmt.Errorf("%w: chat provider returned %d: %s", entities.ErrUpstream, apiErr.StatusCode, apiErr.Message)
		}
		return nil, fmt.Errorf("%w: %w", entities.ErrUpstream, err)
	}

	return json.RawMessage(completion.RawJSON()), nil
}

func toMessageParam(message entities.ChatMessage) (openai.ChatCompletionMessageParamUnion, error) {
	switch strings.ToLower(strings.TrimSpace(message.Role)) {
	case "system":
		return openai.SystemMessage(message.Content), nil
	case "user":
		return openai.UserMessage(message.Content), nil
	case "assistant":
		return openai.AssistantMessage(message.Content), nil
	default:
		return openai.ChatCompletionMessageParamUnion{},
			entities.NewValidationError("messages", "role %q is not supported", message.Role)
	}
}
