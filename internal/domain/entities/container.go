package entities

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all entity providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	if err := container.Provide(NewSettingsFromEnvironment); err != nil {
		return err
	}
	if err := container.Provide(NewCredentialStore); err != nil {
		return err
	}
	return nil
}
