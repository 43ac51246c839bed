package entities

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"
)

// dateSuffixPattern matches dated snapshot suffixes such as "-20240229".
var dateSuffixPattern = regexp.MustCompile(`-\d{8}$`)

// Registry is the loaded model catalog. The id/alias lookup index is built
// on first use and kept for the lifetime of the value.
type Registry struct {
	Models []ModelEntry `yaml:"models" json:"models"`

	once   sync.Once
	lookup map[string]*ModelEntry
}

// NewRegistry creates a registry over the given entries.
func NewRegistry(models []ModelEntry) *Registry {
	return &Registry{Models: models}
}

func (it *Registry) index() map[string]*ModelEntry {
	it.once.Do(func() {
		it.lookup = make(map[string]*ModelEntry, len(it.Models))
		for i := range it.Models {
			model := &it.Models[i]
			it.lookup[strings.ToLower(model.ID)] = model
			for _, alias := range model.Aliases {
				it.lookup[strings.ToLower(alias)] = model
			}
		}
	})
	return it.lookup
}

// Resolve returns the entry for a raw identifier, or nil when it is unknown.
// Lookup is case-insensitive; when the exact key is missing a trailing
// "-YYYYMMDD" suffix is stripped and the lookup retried once.
func (it *Registry) Resolve(raw string) *ModelEntry {
	lookup := it.index()
	key := strings.ToLower(strings.TrimSpace(raw))

	if model, ok := lookup[key]; ok {
		return model
	}

	if dateSuffixPattern.MatchString(key) {
		if model, ok := lookup[dateSuffixPattern.ReplaceAllString(key, "")]; ok {
			return model
		}
	}

	return nil
}

// IsKnown reports whether raw resolves to a registry entry.
func (it *Registry) IsKnown(raw string) bool {
	return it.Resolve(raw) != nil
}

// ByStatus returns the entries with the given status in catalog order.
func (it *Registry) ByStatus(status ModelStatus) []ModelEntry {
	var result []ModelEntry
	for _, model := range it.Models {
		if model.Status == status {
			result = append(result, model)
		}
	}
	return result
}

// Validate checks the structural requirements of a freshly parsed catalog.
// A missing successor on a deprecated entry is tolerated.
func (it *Registry) Validate() error {
	if len(it.Models) == 0 {
		return errors.New("registry has no models")
	}

	seen := make(map[string]bool, len(it.Models))
	for i, model := range it.Models {
		if model.ID == "" {
			return fmt.Errorf("models[%d].id is required", i)
		}
		if model.Provider == "" {
			return fmt.Errorf("models[%d].provider is required (id %q)", i, model.ID)
		}
		if !model.Status.IsValid() {
			return fmt.Errorf("models[%d].status %q is invalid (id %q)", i, model.Status, model.ID)
		}
		key := strings.ToLower(model.ID)
		if seen[key] {
			return fmt.Errorf("duplicate model id %q", model.ID)
		}
		seen[key] = true
	}

	return nil
}

// StatusGroup is a set of catalog entries sharing the same status.
type StatusGroup struct {
	Status ModelStatus  `json:"status"`
	Models []ModelEntry `json:"models"`
}
