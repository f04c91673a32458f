package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/workbench/internal/domain/commands"
	"github.com/rios0rios0/workbench/internal/domain/entities"
)

// CloneController handles the "clone" subcommand.
type CloneController struct {
	command commands.Clone
}

// NewCloneController creates a new CloneController.
func NewCloneController(command commands.Clone) *CloneController {
	return &CloneController{command: command}
}

// GetBind returns the Cobra command metadata for the clone controller.
func (it *CloneController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "clone <repo-url>",
		Short: "Clone a GitHub repository into the workspace",
		Long: `Clone a GitHub HTTPS repository into the workspace root.
Nothing happens when a directory with the repository name already exists.`,
	}
}

// AddFlags adds the clone-specific flags to the given Cobra command.
func (it *CloneController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("token", "", "GitHub token (defaults to GITHUB_TOKEN_SECRET)")
}

// Execute clones the repository given as first argument.
func (it *CloneController) Execute(cmd *cobra.Command, args []string) {
	if len(args) == 0 {
		logger.Error("A repository URL is required")
		return
	}
	token, _ := cmd.Flags().GetString("token")

	result, err := it.command.Execute(context.Background(), commands.CloneOptions{URL: args[0], Token: token})
	if err != nil {
		logger.Errorf("Clone failed: %v", err)
		return
	}

	if result.AlreadyPresent {
		logger.Infof("%s is already present at %s", result.Name, result.Path)
		return
	}
	logger.Infof("Cloned %s into %s", result.Name, result.Path)
}
