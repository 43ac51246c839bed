package yamlregistry

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/safetnsr/model-graveyard/internal/domain/entities"
)

// FileName is the catalog file name looked up in the default locations.
const FileName = "registry.yaml"

// RegistryRepository reads the model catalog from a YAML document.
type RegistryRepository struct {
	candidates func() []string

	mu    sync.Mutex
	cache map[string]*entities.Registry
}

// NewRegistryRepository creates a repository that searches next to the
// executable, one directory above it, and the working directory.
func NewRegistryRepository() *RegistryRepository {
	return NewRegistryRepositoryWithCandidates(DefaultCandidates)
}

// NewRegistryRepositoryWithCandidates uses a custom candidate list.
func NewRegistryRepositoryWithCandidates(candidates func() []string) *RegistryRepository {
	return &RegistryRepository{
		candidates: candidates,
		cache:      make(map[string]*entities.Registry),
	}
}

// DefaultCandidates returns the default registry locations in priority order.
func DefaultCandidates() []string {
	var candidates []string

	if executable, err := os.Executable(); err == nil {
		if resolved, evalErr := filepath.EvalSymlinks(executable); evalErr == nil {
			executable = resolved
		}
		dir := filepath.Dir(executable)
		candidates = append(candidates,
			filepath.Join(dir, FileName),
			filepath.Join(dir, "..", FileName),
		)
	}

	if cwd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(cwd, FileName))
	}

	return candidates
}

// Load returns the registry at path, or the first default candidate that
// parses when path is empty. Results are cached per path.
func (it *RegistryRepository) Load(path string) (*entities.Registry, error) {
	it.mu.Lock()
	defer it.mu.Unlock()

	if registry, ok := it.cache[path]; ok {
		return registry, nil
	}

	candidates := []string{path}
	if path == "" {
		candidates = it.candidates()
	}

	var errs []error
	for _, candidate := range candidates {
		registry, err := parseFile(candidate)
		if err != nil {
			logger.Debugf("Registry candidate %s rejected: %v", candidate, err)
			errs = append(errs, err)
			continue
		}

		logger.Debugf("Loaded %d models from %s", len(registry.Models), candidate)
		it.cache[path] = registry
		return registry, nil
	}

	return nil, &entities.ConfigurationError{
		Candidates: candidates,
		Err:        errors.Join(errs...),
	}
}

func parseFile(path string) (*entities.Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read registry %q: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates a registry document.
func Parse(data []byte) (*entities.Registry, error) {
	var document struct {
		Models []entities.ModelEntry `yaml:"models"`
	}
	if err := yaml.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("failed to parse registry: %w", err)
	}

	registry := entities.NewRegistry(document.Models)
	if err := registry.Validate(); err != nil {
		return nil, fmt.Errorf("invalid registry: %w", err)
	}

	return registry, nil
}
