//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/safetnsr/model-graveyard/internal/domain/entities"
)

// NewTestRegistry returns a small catalog covering every status, aliases,
// and successor chains.
func NewTestRegistry() *entities.Registry {
	return entities.NewRegistry([]entities.ModelEntry{
		NewModelEntryBuilder().WithID("gpt-4o").BuildModelEntry(),
		NewModelEntryBuilder().WithID("gpt-4o-mini").BuildModelEntry(),
		NewModelEntryBuilder().
			WithID("gpt-4").
			WithAliases("gpt-4-0613").
			WithStatus(entities.StatusDeprecated).
			WithEOL("2025-06-06").
			WithSuccessor("gpt-4o").
			BuildModelEntry(),
		NewModelEntryBuilder().
			WithID("gpt-3.5-turbo").
			WithStatus(entities.StatusDeprecated).
			WithSuccessor("gpt-4o-mini").
			BuildModelEntry(),
		NewModelEntryBuilder().
			WithID("text-davinci-003").
			WithStatus(entities.StatusEOL).
			WithEOL("2024-01-04").
			BuildModelEntry(),
		NewModelEntryBuilder().
			WithID("claude-opus-3").
			WithProvider("anthropic").
			WithAliases("claude-3-opus-20240229", "claude-3-opus-latest").
			WithStatus(entities.StatusDeprecated).
			WithEOL("2026-01-05").
			WithSuccessor("claude-opus-4").
			BuildModelEntry(),
		NewModelEntryBuilder().
			WithID("claude-opus-4").
			WithProvider("anthropic").
			BuildModelEntry(),
		NewModelEntryBuilder().
			WithID("claude-instant-1").
			WithProvider("anthropic").
			WithAliases("claude-instant-1.2").
			WithStatus(entities.StatusEOL).
			WithEOL("2024-11-06").
			WithSuccessor("claude-3-5-haiku").
			BuildModelEntry(),
	})
}
