package controllers

import (
	"github.com/spf13/cobra"
	"go.uber.org/dig"

	"github.com/rios0rios0/workbench/internal/domain/entities"
	"github.com/rios0rios0/workbench/internal/infrastructure/server"
)

// FlagBinder is implemented by controllers that declare their own flags.
type FlagBinder interface {
	AddFlags(cmd *cobra.Command)
}

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	constructors := []any{
		server.NewServer,
		NewServeController,
		NewExecController,
		NewCloneController,
		NewSyncController,
		NewControllers,
	}
	for _, constructor := range constructors {
		if err := container.Provide(constructor); err != nil {
			return err
		}
	}
	return nil
}

// NewControllers aggregates all controllers into a slice for the AppInternal.
func NewControllers(
	serveController *ServeController,
	execController *ExecController,
	cloneController *CloneController,
	syncController *SyncController,
) *[]entities.Controller {
	return &[]entities.Controller{
		serveController,
		execController,
		cloneController,
		syncController,
	}
}
