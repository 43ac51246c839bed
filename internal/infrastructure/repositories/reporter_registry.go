package repositories

import (
	"fmt"
	"sort"
	"strings"

	domainRepos "github.com/safetnsr/model-graveyard/internal/domain/repositories"
)

// ReporterRegistry manages all registered output formats.
type ReporterRegistry struct {
	reporters map[string]domainRepos.Reporter
}

// NewReporterRegistry creates an empty reporter registry.
func NewReporterRegistry() *ReporterRegistry {
	return &ReporterRegistry{
		reporters: make(map[string]domainRepos.Reporter),
	}
}

// Register adds a reporter under its format name.
func (r *ReporterRegistry) Register(reporter domainRepos.Reporter) {
	r.reporters[reporter.Format()] = reporter
}

// Get returns the reporter for the given format.
func (r *ReporterRegistry) Get(format string) (domainRepos.Reporter, error) {
	reporter, ok := r.reporters[format]
	if !ok {
		return nil, fmt.Errorf("unsupported output format %q (supported: %s)", format, strings.Join(r.Names(), ", "))
	}
	return reporter, nil
}

// Names returns the sorted list of registered format names.
func (r *ReporterRegistry) Names() []string {
	names := make([]string, 0, len(r.reporters))
	for name := range r.reporters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
