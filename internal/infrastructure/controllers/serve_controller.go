package controllers

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/workbench/internal/domain/entities"
	"github.com/rios0rios0/workbench/internal/infrastructure/server"
)

// ServeController handles the "serve" subcommand.
type ServeController struct {
	server   *server.Server
	settings *entities.Settings
}

// NewServeController creates a new ServeController.
func NewServeController(srv *server.Server, settings *entities.Settings) *ServeController {
	return &ServeController{
		server:   srv,
		settings: settings,
	}
}

// GetBind returns the Cobra command metadata for the serve controller.
func (it *ServeController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "serve",
		Short: "Start the HTTP gateway",
		Long: `Start the HTTP gateway exposing command execution, file writes,
GitHub login and repository synchronization to a browser front-end.

The gateway runs arbitrary commands on this host. Only expose it to trusted users.`,
	}
}

// Execute serves until SIGINT or SIGTERM.
func (it *ServeController) Execute(_ *cobra.Command, _ []string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !it.settings.GitHub.OAuthConfigured() {
		logger.Warn("GitHub OAuth is not configured: login endpoints will answer 503")
	}
	if it.settings.Chat.APIKey == "" {
		logger.Warn("Chat API key is not configured: the chat endpoint will answer 503")
	}
	logger.Infof("Workspace root: %s", it.settings.Workspace.Root)

	if err := it.server.ListenAndServe(ctx); err != nil {
		logger.Errorf("Server stopped: %v", err)
	}
}
