//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/safetnsr/model-graveyard/internal/domain/entities"
)

// ModelEntryBuilder helps create test registry entries with a fluent interface.
type ModelEntryBuilder struct {
	*testkit.BaseBuilder
	id        string
	provider  string
	aliases   []string
	status    entities.ModelStatus
	eol       string
	successor string
	notes     string
}

// NewModelEntryBuilder creates a new builder with sensible defaults.
func NewModelEntryBuilder() *ModelEntryBuilder {
	return &ModelEntryBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		id:          "gpt-4o",
		provider:    "openai",
		status:      entities.StatusActive,
	}
}

// WithID sets the canonical identifier.
func (b *ModelEntryBuilder) WithID(id string) *ModelEntryBuilder {
	b.id = id
	return b
}

// WithProvider sets the provider.
func (b *ModelEntryBuilder) WithProvider(provider string) *ModelEntryBuilder {
	b.provider = provider
	return b
}

// WithAliases sets the aliases.
func (b *ModelEntryBuilder) WithAliases(aliases ...string) *ModelEntryBuilder {
	b.aliases = aliases
	return b
}

// WithStatus sets the lifecycle status.
func (b *ModelEntryBuilder) WithStatus(status entities.ModelStatus) *ModelEntryBuilder {
	b.status = status
	return b
}

// WithEOL sets the end-of-life date.
func (b *ModelEntryBuilder) WithEOL(eol string) *ModelEntryBuilder {
	b.eol = eol
	return b
}

// WithSuccessor sets the successor id.
func (b *ModelEntryBuilder) WithSuccessor(successor string) *ModelEntryBuilder {
	b.successor = successor
	return b
}

// WithNotes sets the free-text notes.
func (b *ModelEntryBuilder) WithNotes(notes string) *ModelEntryBuilder {
	b.notes = notes
	return b
}

// Build creates the entry (satisfies testkit.Builder interface).
func (b *ModelEntryBuilder) Build() interface{} {
	return b.BuildModelEntry()
}

// BuildModelEntry creates the entry with a concrete return type.
func (b *ModelEntryBuilder) BuildModelEntry() entities.ModelEntry {
	return entities.ModelEntry{
		ID:        b.id,
		Provider:  b.provider,
		Aliases:   append([]string(nil), b.aliases...),
		Status:    b.status,
		EOL:       b.eol,
		Successor: b.successor,
		Notes:     b.notes,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *ModelEntryBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.id = "gpt-4o"
	b.provider = "openai"
	b.aliases = nil
	b.status = entities.StatusActive
	b.eol = ""
	b.successor = ""
	b.notes = ""
	return b
}

// Clone creates a deep copy of the ModelEntryBuilder.
func (b *ModelEntryBuilder) Clone() testkit.Builder {
	return &ModelEntryBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		id:          b.id,
		provider:    b.provider,
		aliases:     append([]string(nil), b.aliases...),
		status:      b.status,
		eol:         b.eol,
		successor:   b.successor,
		notes:       b.notes,
	}
}
