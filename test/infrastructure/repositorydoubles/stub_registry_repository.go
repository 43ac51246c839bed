//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/safetnsr/model-graveyard/internal/domain/entities"
	"github.com/safetnsr/model-graveyard/internal/domain/repositories"
)

// StubRegistryRepository implements repositories.RegistryRepository with a fixed result.
type StubRegistryRepository struct {
	Registry  *entities.Registry
	LoadErr   error
	LoadPaths []string
}

var _ repositories.RegistryRepository = (*StubRegistryRepository)(nil)

func (s *StubRegistryRepository) Load(path string) (*entities.Registry, error) {
	s.LoadPaths = append(s.LoadPaths, path)
	return s.Registry, s.LoadErr
}
