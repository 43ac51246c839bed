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

// ListController handles the "list" subcommand.
type ListController struct {
	command            commands.List
	registryRepository domainRepos.RegistryRepository
	reporterRegistry   *infraRepos.ReporterRegistry
}

// NewListController creates a new ListController.
func NewListController(
	command commands.List,
	registryRepository domainRepos.RegistryRepository,
	reporterRegistry *infraRepos.ReporterRegistry,
) *ListController {
	return &ListController{
		command:            command,
		registryRepository: registryRepository,
		reporterRegistry:   reporterRegistry,
	}
}

// GetBind returns the Cobra command metadata for the list controller.
func (it *ListController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "list",
		Short: "List all models in the registry",
		Long:  "List every model known to the registry grouped by status, with end-of-life dates and successors.",
	}
}

// AddFlags is a no-op; list only uses the global flags.
func (it *ListController) AddFlags(_ *cobra.Command) {}

// Execute renders the registry.
func (it *ListController) Execute(cmd *cobra.Command, _ []string) error {
	_, registry, reporter, err := prepare(cmd, it.registryRepository, it.reporterRegistry)
	if err != nil {
		logger.Errorf("List failed: %v", err)
		return err
	}

	return reporter.Registry(cmd.OutOrStdout(), it.command.Execute(context.Background(), registry))
}
