//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safetnsr/model-graveyard/internal/domain/entities"
	builders "github.com/safetnsr/model-graveyard/test/domain/entitybuilders"
)

func TestRegistryResolve(t *testing.T) {
	t.Parallel()

	t.Run("should resolve a known model by id", func(t *testing.T) {
		t.Parallel()

		// given
		registry := builders.NewTestRegistry()

		// when
		model := registry.Resolve("gpt-4")

		// then
		require.NotNil(t, model)
		assert.Equal(t, "gpt-4", model.ID)
		assert.Equal(t, entities.StatusDeprecated, model.Status)
		assert.Equal(t, "gpt-4o", model.Successor)
	})

	t.Run("should resolve a model by alias", func(t *testing.T) {
		t.Parallel()

		// given
		registry := builders.NewTestRegistry()

		// when
		model := registry.Resolve("claude-3-opus-20240229")

		// then
		require.NotNil(t, model)
		assert.Equal(t, "claude-opus-3", model.ID)
	})

	t.Run("should be case-insensitive", func(t *testing.T) {
		t.Parallel()

		// given
		registry := builders.NewTestRegistry()

		// when
		upper := registry.Resolve("GPT-4O")
		lower := registry.Resolve("gpt-4o")

		// then
		require.NotNil(t, upper)
		assert.Same(t, lower, upper)
		assert.Equal(t, "gpt-4o", upper.ID)
	})

	t.Run("should trim surrounding whitespace", func(t *testing.T) {
		t.Parallel()

		// given
		registry := builders.NewTestRegistry()

		// when
		model := registry.Resolve("  gpt-4o-mini \t")

		// then
		require.NotNil(t, model)
		assert.Equal(t, "gpt-4o-mini", model.ID)
	})

	t.Run("should fall back to the base id when a date suffix is unknown", func(t *testing.T) {
		t.Parallel()

		// given
		registry := builders.NewTestRegistry()

		// when
		model := registry.Resolve("claude-opus-3-20240229")

		// then
		require.NotNil(t, model)
		assert.Equal(t, "claude-opus-3", model.ID)
	})

	t.Run("should not strip suffixes that are not eight digits", func(t *testing.T) {
		t.Parallel()

		// given
		registry := builders.NewTestRegistry()

		// when
		model := registry.Resolve("gpt-4o-2024")

		// then
		assert.Nil(t, model)
	})

	t.Run("should return nil for unknown model", func(t *testing.T) {
		t.Parallel()

		// given
		registry := builders.NewTestRegistry()

		// when
		model := registry.Resolve("unknown-vendor-xyz")

		// then
		assert.Nil(t, model)
		assert.False(t, registry.IsKnown("unknown-vendor-xyz"))
	})

	t.Run("should report known models through IsKnown", func(t *testing.T) {
		t.Parallel()

		// given
		registry := builders.NewTestRegistry()

		// when
		known := registry.IsKnown("Claude-Instant-1.2")

		// then
		assert.True(t, known)
	})
}

func TestRegistryByStatus(t *testing.T) {
	t.Parallel()

	t.Run("should return entries with the given status in catalog order", func(t *testing.T) {
		t.Parallel()

		// given
		registry := builders.NewTestRegistry()

		// when
		eol := registry.ByStatus(entities.StatusEOL)

		// then
		require.Len(t, eol, 2)
		assert.Equal(t, "text-davinci-003", eol[0].ID)
		assert.Equal(t, "claude-instant-1", eol[1].ID)
	})
}

func TestRegistryValidate(t *testing.T) {
	t.Parallel()

	t.Run("should accept a well-formed catalog", func(t *testing.T) {
		t.Parallel()

		// given
		registry := builders.NewTestRegistry()

		// when
		err := registry.Validate()

		// then
		require.NoError(t, err)
	})

	t.Run("should fail when the catalog is empty", func(t *testing.T) {
		t.Parallel()

		// given
		registry := entities.NewRegistry(nil)

		// when
		err := registry.Validate()

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no models")
	})

	t.Run("should fail when an id is missing", func(t *testing.T) {
		t.Parallel()

		// given
		registry := entities.NewRegistry([]entities.ModelEntry{
			builders.NewModelEntryBuilder().WithID("").BuildModelEntry(),
		})

		// when
		err := registry.Validate()

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "models[0].id is required")
	})

	t.Run("should fail when the provider is missing", func(t *testing.T) {
		t.Parallel()

		// given
		registry := entities.NewRegistry([]entities.ModelEntry{
			builders.NewModelEntryBuilder().WithProvider("").BuildModelEntry(),
		})

		// when
		err := registry.Validate()

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "provider is required")
	})

	t.Run("should fail when the status is unknown", func(t *testing.T) {
		t.Parallel()

		// given
		registry := entities.NewRegistry([]entities.ModelEntry{
			builders.NewModelEntryBuilder().WithStatus("retired").BuildModelEntry(),
		})

		// when
		err := registry.Validate()

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), `status "retired" is invalid`)
	})

	t.Run("should fail on duplicate ids ignoring case", func(t *testing.T) {
		t.Parallel()

		// given
		registry := entities.NewRegistry([]entities.ModelEntry{
			builders.NewModelEntryBuilder().WithID("gpt-4o").BuildModelEntry(),
			builders.NewModelEntryBuilder().WithID("GPT-4o").BuildModelEntry(),
		})

		// when
		err := registry.Validate()

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate model id")
	})

	t.Run("should tolerate a deprecated entry without successor", func(t *testing.T) {
		t.Parallel()

		// given
		registry := entities.NewRegistry([]entities.ModelEntry{
			builders.NewModelEntryBuilder().WithStatus(entities.StatusDeprecated).BuildModelEntry(),
		})

		// when
		err := registry.Validate()

		// then
		require.NoError(t, err)
	})
}
