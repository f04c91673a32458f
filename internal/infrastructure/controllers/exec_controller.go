package controllers

import (
	"context"
	"fmt"
	"strings"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/workbench/internal/domain/commands"
	"github.com/rios0rios0/workbench/internal/domain/entities"
)

// ExecController handles the "exec" subcommand.
type ExecController struct {
	command commands.Exec
}

// NewExecController creates a new ExecController.
func NewExecController(command commands.Exec) *ExecController {
	return &ExecController{command: command}
}

// GetBind returns the Cobra command metadata for the exec controller.
func (it *ExecController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "exec [command...]",
		Short: "Run one shell command in the workspace",
		Long: `Run one shell command in the workspace root with the configured timeout,
exactly as the /api/execute endpoint does.`,
	}
}

// Execute joins the arguments into one command line and runs it.
func (it *ExecController) Execute(cmd *cobra.Command, args []string) {
	result, err := it.command.Execute(context.Background(), strings.Join(args, " "))
	if err != nil {
		logger.Errorf("Exec failed: %v", err)
		return
	}

	_, _ = fmt.Fprint(cmd.OutOrStdout(), result.Stdout)
	_, _ = fmt.Fprint(cmd.ErrOrStderr(), result.Stderr)
	if result.ExitCode != 0 {
		logger.Warnf("Command exited with code %d", result.ExitCode)
	}
}
