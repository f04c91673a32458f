//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"encoding/json"

	"github.com/rios0rios0/workbench/internal/domain/commands"
	"github.com/rios0rios0/workbench/internal/domain/entities"
)

// StubExecCommand is a stub implementation of commands.Exec.
type StubExecCommand struct {
	Result      *entities.CommandResult
	Err         error
	LastCommand string
}

var _ commands.Exec = (*StubExecCommand)(nil)

func (s *StubExecCommand) Execute(_ context.Context, command string) (*entities.CommandResult, error) {
	s.LastCommand = command
	return s.Result, s.Err
}

// StubWriteFilesCommand is a stub implementation of commands.WriteFiles.
type StubWriteFilesCommand struct {
	Results   []entities.FileWriteResult
	LastFiles []entities.FileSpec
}

var _ commands.WriteFiles = (*StubWriteFilesCommand)(nil)

func (s *StubWriteFilesCommand) Execute(_ context.Context, files []entities.FileSpec) []entities.FileWriteResult {
	s.LastFiles = files
	return s.Results
}

// StubChatCommand is a stub implementation of commands.Chat.
type StubChatCommand struct {
	Completion   json.RawMessage
	Err          error
	LastMessages []entities.ChatMessage
}

var _ commands.Chat = (*StubChatCommand)(nil)

func (s *StubChatCommand) Execute(_ context.Context, messages []entities.ChatMessage) (json.RawMessage, error) {
	s.LastMessages = messages
	return s.Completion, s.Err
}
