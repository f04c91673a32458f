package controllers

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/workbench/internal/domain/commands"
	"github.com/rios0rios0/workbench/internal/domain/entities"
)

// SyncController handles the "sync" subcommand.
type SyncController struct {
	command commands.Sync
}

// NewSyncController creates a new SyncController.
func NewSyncController(command commands.Sync) *SyncController {
	return &SyncController{command: command}
}

// GetBind returns the Cobra command metadata for the sync controller.
func (it *SyncController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "sync <pull|push> <path>",
		Short: "Pull into or push from a working copy",
		Long: `Synchronize a working copy with its origin remote.

  pull  fast-forwards the working copy
  push  stages everything, commits (an empty commit is skipped) and pushes`,
	}
}

// AddFlags adds the sync-specific flags to the given Cobra command.
func (it *SyncController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("message", "m", "", "Commit message used by push")
	cmd.Flags().String("token", "", "GitHub token (defaults to GITHUB_TOKEN_SECRET)")
}

// Execute runs the operation given as first argument on the path given as second.
func (it *SyncController) Execute(cmd *cobra.Command, args []string) {
	if len(args) < 2 { //nolint:mnd // operation + path
		logger.Error("Usage: sync <pull|push> <path>")
		return
	}
	message, _ := cmd.Flags().GetString("message")
	token, _ := cmd.Flags().GetString("token")

	result, err := it.command.Execute(context.Background(), commands.SyncOptions{
		Operation: args[0],
		Path:      args[1],
		Message:   message,
		Token:     token,
	})
	if err != nil {
		logger.Errorf("Sync failed: %v", err)
		return
	}

	if result.Output != "" {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), result.Output)
	}
	logger.Infof("Git %s of %s succeeded", result.Operation, result.Path)
}
