package main

import (
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/workbench/internal"
	"github.com/rios0rios0/workbench/internal/infrastructure/controllers"
)

func buildRootCommand() *cobra.Command {
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:   "workbench",
		Short: "Remote workspace gateway for a browser coding agent",
		Long: `A gateway that lets a browser front-end run shell commands, write files,
log in to GitHub and clone, pull and push repositories on this host.

Configuration is read from workbench.yaml (auto-detected, or the file named by
WORKBENCH_CONFIG), a .env file and environment variables such as PORT,
WORKSPACE_ROOT, GITHUB_CLIENT_ID, GITHUB_CLIENT_SECRET, REDIRECT_URI,
GITHUB_TOKEN_SECRET and DEEPSEEK_API_KEY.

Usage modes:
  workbench serve                     Start the HTTP gateway
  workbench exec -- ls -la            Run one command in the workspace
  workbench clone <repo-url>          Clone a GitHub repository
  workbench sync push <path> -m msg   Commit and push a working copy`,
		PersistentPreRun: func(command *cobra.Command, _ []string) {
			if verbose, _ := command.Flags().GetBool("verbose"); verbose {
				logger.SetLevel(logger.DebugLevel)
			}
		},
		RunE: func(command *cobra.Command, _ []string) error {
			return command.Help()
		},
	}

	// Global persistent flags
	cmd.PersistentFlags().BoolP("verbose", "v", false,
		"Enable verbose output")

	return cmd
}

func addSubcommands(rootCmd *cobra.Command, appContext *internal.AppInternal) {
	for _, controller := range appContext.GetControllers() {
		bind := controller.GetBind()
		ctrl := controller // capture for closure
		//nolint:exhaustruct // Minimal Command initialization with required fields only
		subCmd := &cobra.Command{
			Use:   bind.Use,
			Short: bind.Short,
			Long:  bind.Long,
			Run: func(command *cobra.Command, arguments []string) {
				ctrl.Execute(command, arguments)
			},
		}

		// Add controller-specific flags
		if binder, ok := ctrl.(controllers.FlagBinder); ok {
			binder.AddFlags(subCmd)
		}

		rootCmd.AddCommand(subCmd)
	}
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	cobraRoot := buildRootCommand()

	// Inject controllers via DIG and add them as subcommands
	appContext := injectAppContext()
	addSubcommands(cobraRoot, appContext)

	if err := cobraRoot.Execute(); err != nil {
		logger.Fatalf("Error executing 'workbench': %s", err)
	}
}
