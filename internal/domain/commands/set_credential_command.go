package commands

import (
	"errors"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/workbench/internal/domain/entities"
)

// SetCredential is the interface for storing a caller-provided token.
type SetCredential interface {
	Execute(token string) error
}

// SetCredentialCommand replaces the stored credential.
type SetCredentialCommand struct {
	credentials *entities.CredentialStore
}

// NewSetCredentialCommand creates a new SetCredentialCommand.
func NewSetCredentialCommand(credentials *entities.CredentialStore) *SetCredentialCommand {
	return &SetCredentialCommand{credentials: credentials}
}

func (it *SetCredentialCommand) Execute(token string) error {
	if err := it.credentials.Set(token); err != nil {
		if errors.Is(err, entities.ErrEmptyToken) {
			return entities.NewValidationError("token", "must not be empty")
		}
		return err
	}

	logger.Info("Stored credential replaced")
	return nil
}
