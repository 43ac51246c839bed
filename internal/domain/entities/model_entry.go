package entities

// ModelStatus is the lifecycle state of a catalogued model.
type ModelStatus string

const (
	StatusActive     ModelStatus = "active"
	StatusDeprecated ModelStatus = "deprecated"
	StatusEOL        ModelStatus = "eol"
)

// IsValid reports whether the status is one of the known lifecycle states.
func (s ModelStatus) IsValid() bool {
	switch s {
	case StatusActive, StatusDeprecated, StatusEOL:
		return true
	default:
		return false
	}
}

// IsRetired is true for deprecated and end-of-life models.
func (s ModelStatus) IsRetired() bool {
	return s == StatusDeprecated || s == StatusEOL
}

// ModelEntry is a single record of the model registry.
// Entries are never mutated after the registry is loaded.
type ModelEntry struct {
	ID        string      `yaml:"id"                  json:"id"`
	Provider  string      `yaml:"provider"            json:"provider"`
	Aliases   []string    `yaml:"aliases,omitempty"   json:"aliases,omitempty"`
	Status    ModelStatus `yaml:"status"              json:"status"`
	EOL       string      `yaml:"eol,omitempty"       json:"eol,omitempty"`
	Successor string      `yaml:"successor,omitempty" json:"successor,omitempty"`
	Notes     string      `yaml:"notes,omitempty"     json:"notes,omitempty"`
}

// HasSuccessor reports whether a replacement model is known.
func (e *ModelEntry) HasSuccessor() bool {
	return e.Successor != ""
}
