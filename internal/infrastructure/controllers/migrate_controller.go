package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/safetnsr/model-graveyard/internal/domain/commands"
	"github.com/safetnsr/model-graveyard/internal/domain/entities"
	domainRepos "github.com/safetnsr/model-graveyard/internal/domain/repositories"
	infraRepos "github.com/safetnsr/model-graveyard/internal/infrastructure/repositories"
)

// MigrateController handles the "migrate" subcommand.
type MigrateController struct {
	command            commands.Migrate
	registryRepository domainRepos.RegistryRepository
	reporterRegistry   *infraRepos.ReporterRegistry
}

// NewMigrateController creates a new MigrateController.
func NewMigrateController(
	command commands.Migrate,
	registryRepository domainRepos.RegistryRepository,
	reporterRegistry *infraRepos.ReporterRegistry,
) *MigrateController {
	return &MigrateController{
		command:            command,
		registryRepository: registryRepository,
		reporterRegistry:   reporterRegistry,
	}
}

// GetBind returns the Cobra command metadata for the migrate controller.
func (it *MigrateController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "migrate [path]",
		Short: "Replace deprecated models with their successors",
		Long: `Rewrite quoted deprecated and end-of-life model identifiers to the successor
recorded in the registry.

Runs as a dry-run by default and prints a diff for every change.
Use --apply to write the changes to disk.`,
	}
}

// AddFlags adds the migrate-specific flags to the given Cobra command.
func (it *MigrateController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("apply", false, "Write changes to disk (default: dry-run)")
}

// Execute runs the migration and renders the report.
func (it *MigrateController) Execute(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	settings, registry, reporter, err := prepare(cmd, it.registryRepository, it.reporterRegistry)
	if err != nil {
		logger.Errorf("Migration failed: %v", err)
		return err
	}

	apply, _ := cmd.Flags().GetBool("apply")

	report, err := it.command.Execute(ctx, registry, commands.MigrateOptions{
		ScanOptions: commands.ScanOptions{
			Root:    targetPath(args),
			Include: settings.Include,
			Exclude: settings.Exclude,
			Workers: settings.Workers,
		},
		Apply: apply,
	})
	if err != nil {
		logger.Errorf("Migration failed: %v", err)
		return err
	}

	return reporter.MigrationReport(cmd.OutOrStdout(), report)
}
