package main

import (
	"errors"
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/safetnsr/model-graveyard/internal"
	"github.com/safetnsr/model-graveyard/internal/domain/entities"
	"github.com/safetnsr/model-graveyard/internal/infrastructure/controllers"
)

func buildRootCommand() *cobra.Command {
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:   "graveyard",
		Short: "Find deprecated AI models in your codebase",
		Long: `Scan a source tree for hardcoded AI model identifiers, classify them against
a registry of active, deprecated, and end-of-life models, and migrate
retired identifiers to their successors.

Usage:
  graveyard scan .              Scan the current directory
  graveyard scan ./src --json   Emit a machine-readable report
  graveyard migrate .           Preview replacements (dry-run)
  graveyard migrate . --apply   Write replacements to disk
  graveyard list                List all models in the registry`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	controllers.AddGlobalFlags(cmd)
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
			Args:  cobra.MaximumNArgs(1),
			RunE: func(command *cobra.Command, arguments []string) error {
				return ctrl.Execute(command, arguments)
			},
		}

		ctrl.AddFlags(subCmd)
		rootCmd.AddCommand(subCmd)
	}
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	logger.SetOutput(os.Stderr)
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	cobraRoot := buildRootCommand()

	// Inject controllers via DIG
	appContext := injectAppContext()
	addSubcommands(cobraRoot, appContext)

	if err := cobraRoot.Execute(); err != nil {
		if errors.Is(err, entities.ErrOutdatedModels) {
			os.Exit(1)
		}
		logger.Fatalf("Error executing 'graveyard': %s", err)
	}
}
