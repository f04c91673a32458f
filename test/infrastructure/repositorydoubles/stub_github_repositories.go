//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"encoding/json"

	"github.com/rios0rios0/workbench/internal/domain/entities"
	"github.com/rios0rios0/workbench/internal/domain/repositories"
)

// StubOAuthRepository is a stub implementation of repositories.OAuthRepository.
type StubOAuthRepository struct {
	URL          string
	URLErr       error
	Token        string
	ExchangeErr  error
	LastCode     string
	ExchangeCall int
}

var _ repositories.OAuthRepository = (*StubOAuthRepository)(nil)

func (s *StubOAuthRepository) AuthorizeURL() (string, error) {
	return s.URL, s.URLErr
}

func (s *StubOAuthRepository) Exchange(_ context.Context, code string) (string, error) {
	s.ExchangeCall++
	s.LastCode = code
	return s.Token, s.ExchangeErr
}

// StubHostingRepository is a stub implementation of repositories.HostingRepository.
type StubHostingRepository struct {
	Repositories []entities.HostedRepository
	Err          error
	LastToken    string
}

var _ repositories.HostingRepository = (*StubHostingRepository)(nil)

func (s *StubHostingRepository) ListRepositories(
	_ context.Context,
	token string,
) ([]entities.HostedRepository, error) {
	s.LastToken = token
	return s.Repositories, s.Err
}

// SpyChatRepository implements repositories.ChatRepository and records the conversation it got.
type SpyChatRepository struct {
	Completion   json.RawMessage
	Err          error
	LastMessages []entities.ChatMessage
}

var _ repositories.ChatRepository = (*SpyChatRepository)(nil)

func (s *SpyChatRepository) Complete(
	_ context.Context,
	messages []entities.ChatMessage,
) (json.RawMessage, error) {
	s.LastMessages = messages
	return s.Completion, s.Err
}
