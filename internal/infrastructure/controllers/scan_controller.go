package controllers

import (
	"context"
	"fmt"
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/safetnsr/model-graveyard/internal/domain/commands"
	"github.com/safetnsr/model-graveyard/internal/domain/entities"
	domainRepos "github.com/safetnsr/model-graveyard/internal/domain/repositories"
	infraRepos "github.com/safetnsr/model-graveyard/internal/infrastructure/repositories"
	"github.com/safetnsr/model-graveyard/internal/infrastructure/reporters"
)

// ScanController handles the "scan" subcommand.
type ScanController struct {
	command            commands.Scan
	registryRepository domainRepos.RegistryRepository
	reporterRegistry   *infraRepos.ReporterRegistry
}

// NewScanController creates a new ScanController.
func NewScanController(
	command commands.Scan,
	registryRepository domainRepos.RegistryRepository,
	reporterRegistry *infraRepos.ReporterRegistry,
) *ScanController {
	return &ScanController{
		command:            command,
		registryRepository: registryRepository,
		reporterRegistry:   reporterRegistry,
	}
}

// GetBind returns the Cobra command metadata for the scan controller.
func (it *ScanController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "scan [path]",
		Short: "Scan for hardcoded model strings",
		Long: `Scan a directory tree for hardcoded AI model identifiers and classify
each occurrence against the registry as active, deprecated, or end-of-life.

Exits with a non-zero status when deprecated or end-of-life models are found,
so it can be used as a CI gate.`,
	}
}

// AddFlags adds the scan-specific flags to the given Cobra command.
func (it *ScanController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", "", "Write the report to this file instead of stdout")
	cmd.Flags().Int("workers", 0, "Number of files processed in parallel (default: number of CPUs)")
}

// Execute runs the scan and renders the report.
func (it *ScanController) Execute(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	settings, registry, reporter, err := prepare(cmd, it.registryRepository, it.reporterRegistry)
	if err != nil {
		logger.Errorf("Scan failed: %v", err)
		return err
	}

	workers, _ := cmd.Flags().GetInt("workers")
	if workers == 0 {
		workers = settings.Workers
	}

	report, err := it.command.Execute(ctx, registry, commands.ScanOptions{
		Root:    targetPath(args),
		Include: settings.Include,
		Exclude: settings.Exclude,
		Workers: workers,
	})
	if err != nil {
		logger.Errorf("Scan failed: %v", err)
		return err
	}

	output, _ := cmd.Flags().GetString("output")
	if output != "" {
		if writeErr := it.writeReport(output, reporter, report); writeErr != nil {
			logger.Errorf("Scan failed: %v", writeErr)
			return writeErr
		}
		logger.Infof("Report written to %s", output)
	} else if renderErr := reporter.ScanReport(cmd.OutOrStdout(), report); renderErr != nil {
		return renderErr
	}

	if report.Summary.HasIssues() {
		return entities.ErrOutdatedModels
	}
	return nil
}

// writeReport saves the report to a file, as JSON unless a structured
// format was explicitly requested.
func (it *ScanController) writeReport(
	path string,
	reporter domainRepos.Reporter,
	report *entities.ScanReport,
) error {
	if reporter.Format() == reporters.FormatTable {
		jsonReporter, err := it.reporterRegistry.Get(reporters.FormatJSON)
		if err != nil {
			return err
		}
		reporter = jsonReporter
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer file.Close()

	if renderErr := reporter.ScanReport(file, report); renderErr != nil {
		return fmt.Errorf("failed to write report: %w", renderErr)
	}
	return nil
}
