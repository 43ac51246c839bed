package controllers

import (
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/safetnsr/model-graveyard/internal/domain/entities"
	domainRepos "github.com/safetnsr/model-graveyard/internal/domain/repositories"
	infraRepos "github.com/safetnsr/model-graveyard/internal/infrastructure/repositories"
	"github.com/safetnsr/model-graveyard/internal/infrastructure/reporters"
)

// AddGlobalFlags adds the flags shared by every subcommand.
func AddGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringP("config", "c", "",
		"Path to config file (default: auto-detect)")
	cmd.PersistentFlags().String("registry", "",
		"Path to registry.yaml (default: next to the binary or in the working directory)")
	cmd.PersistentFlags().String("format", reporters.FormatTable,
		"Output format: table, json, or yaml")
	cmd.PersistentFlags().Bool("json", false,
		"Shorthand for --format json")
	cmd.PersistentFlags().BoolP("verbose", "v", false,
		"Enable verbose output")
}

// loadSettings reads the config file given by --config, or the auto-detected
// one. A missing auto-detected file yields empty settings.
func loadSettings(cmd *cobra.Command) (*entities.Settings, error) {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		found, err := entities.FindConfigFile()
		if err != nil {
			logger.Debugf("No config file found, using defaults: %v", err)
			return &entities.Settings{}, nil
		}
		configPath = found
	}

	logger.Debugf("Using config file: %s", configPath)
	return entities.NewSettings(configPath)
}

// loadRegistry loads the catalog, preferring --registry over the settings file.
func loadRegistry(
	cmd *cobra.Command,
	repository domainRepos.RegistryRepository,
	settings *entities.Settings,
) (*entities.Registry, error) {
	path, _ := cmd.Flags().GetString("registry")
	if path == "" {
		path = settings.Registry
	}
	return repository.Load(path)
}

// resolveReporter picks the reporter for --format (or --json).
func resolveReporter(cmd *cobra.Command, registry *infraRepos.ReporterRegistry) (domainRepos.Reporter, error) {
	format, _ := cmd.Flags().GetString("format")
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		format = reporters.FormatJSON
	}
	if format == "" {
		format = reporters.FormatTable
	}
	return registry.Get(format)
}

func applyVerbosity(cmd *cobra.Command) {
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		logger.SetLevel(logger.DebugLevel)
	}
}

func targetPath(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}

// prepare loads everything a controller needs before running its command.
func prepare(
	cmd *cobra.Command,
	registryRepository domainRepos.RegistryRepository,
	reporterRegistry *infraRepos.ReporterRegistry,
) (*entities.Settings, *entities.Registry, domainRepos.Reporter, error) {
	applyVerbosity(cmd)

	reporter, err := resolveReporter(cmd, reporterRegistry)
	if err != nil {
		return nil, nil, nil, err
	}

	settings, err := loadSettings(cmd)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	registry, err := loadRegistry(cmd, registryRepository, settings)
	if err != nil {
		return nil, nil, nil, err
	}

	return settings, registry, reporter, nil
}
