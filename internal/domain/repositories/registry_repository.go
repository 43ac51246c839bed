package repositories

import (
	"github.com/safetnsr/model-graveyard/internal/domain/entities"
)

// RegistryRepository loads the model catalog.
type RegistryRepository interface {
	// Load returns the catalog at path, or searches the default candidate
	// locations when path is empty. Implementations cache the result for the
	// lifetime of the process. A *entities.ConfigurationError is returned
	// when nothing could be loaded.
	Load(path string) (*entities.Registry, error)
}
