package repositories

import (
	"go.uber.org/dig"

	domainRepos "github.com/safetnsr/model-graveyard/internal/domain/repositories"
	"github.com/safetnsr/model-graveyard/internal/infrastructure/reporters"
	"github.com/safetnsr/model-graveyard/internal/infrastructure/repositories/filesystem"
	"github.com/safetnsr/model-graveyard/internal/infrastructure/repositories/yamlregistry"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	if err := container.Provide(func() domainRepos.RegistryRepository {
		return yamlregistry.NewRegistryRepository()
	}); err != nil {
		return err
	}

	if err := container.Provide(func() domainRepos.FileRepository {
		return filesystem.NewFileRepository()
	}); err != nil {
		return err
	}

	// Register reporter registry with all output formats
	if err := container.Provide(func() *ReporterRegistry {
		reg := NewReporterRegistry()
		reg.Register(reporters.NewTerminalReporter(false))
		reg.Register(reporters.NewJSONReporter())
		reg.Register(reporters.NewYAMLReporter())
		return reg
	}); err != nil {
		return err
	}

	return nil
}
