//go:build unit

package entities_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safetnsr/model-graveyard/internal/domain/entities"
	builders "github.com/safetnsr/model-graveyard/test/domain/entitybuilders"
)

func TestNewScanReport(t *testing.T) {
	t.Parallel()

	t.Run("should sort matches by file then line", func(t *testing.T) {
		t.Parallel()

		// given
		matches := []entities.Match{
			{File: "b.py", Line: 1, Raw: "gpt-4"},
			{File: "a.py", Line: 9, Raw: "gpt-4"},
			{File: "a.py", Line: 2, Raw: "gpt-4o"},
		}

		// when
		report := entities.NewScanReport(time.Now(), "/root", 2, matches)

		// then
		require.Len(t, report.Matches, 3)
		assert.Equal(t, "a.py", report.Matches[0].File)
		assert.Equal(t, 2, report.Matches[0].Line)
		assert.Equal(t, 9, report.Matches[1].Line)
		assert.Equal(t, "b.py", report.Matches[2].File)
	})

	t.Run("should keep input order for matches on the same line", func(t *testing.T) {
		t.Parallel()

		// given
		matches := []entities.Match{
			{File: "a.py", Line: 1, Raw: "first"},
			{File: "a.py", Line: 1, Raw: "second"},
		}

		// when
		report := entities.NewScanReport(time.Now(), "/root", 1, matches)

		// then
		assert.Equal(t, "first", report.Matches[0].Raw)
		assert.Equal(t, "second", report.Matches[1].Raw)
	})

	t.Run("should never expose a nil match list", func(t *testing.T) {
		t.Parallel()

		// given / when
		report := entities.NewScanReport(time.Now(), "/root", 0, nil)

		// then
		assert.NotNil(t, report.Matches)
		assert.Empty(t, report.Matches)
	})
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	t.Run("should count every status and keep the total consistent", func(t *testing.T) {
		t.Parallel()

		// given
		registry := builders.NewTestRegistry()
		matches := []entities.Match{
			{Raw: "gpt-4", Model: registry.Resolve("gpt-4")},
			{Raw: "gpt-3.5-turbo", Model: registry.Resolve("gpt-3.5-turbo")},
			{Raw: "text-davinci-003", Model: registry.Resolve("text-davinci-003")},
			{Raw: "gpt-4o", Model: registry.Resolve("gpt-4o")},
			{Raw: "my-own-model"},
		}

		// when
		summary := entities.Summarize(matches)

		// then
		assert.Equal(t, 5, summary.Total)
		assert.Equal(t, 2, summary.Deprecated)
		assert.Equal(t, 1, summary.EOL)
		assert.Equal(t, 1, summary.Active)
		assert.Equal(t, 1, summary.Unknown)
		assert.Equal(t, summary.Total, summary.Deprecated+summary.EOL+summary.Active+summary.Unknown)
		assert.True(t, summary.HasIssues())
	})

	t.Run("should report no issues when only active and unknown models are present", func(t *testing.T) {
		t.Parallel()

		// given
		registry := builders.NewTestRegistry()
		matches := []entities.Match{
			{Raw: "gpt-4o", Model: registry.Resolve("gpt-4o")},
			{Raw: "custom"},
		}

		// when
		summary := entities.Summarize(matches)

		// then
		assert.False(t, summary.HasIssues())
	})
}

func TestDedupMatches(t *testing.T) {
	t.Parallel()

	t.Run("should keep the first match per file, line, and raw string", func(t *testing.T) {
		t.Parallel()

		// given
		matches := []entities.Match{
			{File: "a.py", Line: 1, Column: 0, Raw: "gpt-4"},
			{File: "a.py", Line: 1, Column: 8, Raw: "gpt-4"},
			{File: "a.py", Line: 1, Raw: "gpt-4o"},
			{File: "a.py", Line: 2, Raw: "gpt-4"},
			{File: "b.py", Line: 1, Raw: "gpt-4"},
		}

		// when
		result := entities.DedupMatches(matches)

		// then
		require.Len(t, result, 4)
		assert.Equal(t, 0, result[0].Column)
		assert.Equal(t, "gpt-4o", result[1].Raw)
	})
}

func TestMatchStatus(t *testing.T) {
	t.Parallel()

	t.Run("should return unknown for unresolved matches", func(t *testing.T) {
		t.Parallel()

		// given
		match := entities.Match{Raw: "custom"}

		// when / then
		assert.Equal(t, "unknown", match.Status())
	})

	t.Run("should return the resolved status", func(t *testing.T) {
		t.Parallel()

		// given
		entry := builders.NewModelEntryBuilder().WithStatus(entities.StatusEOL).BuildModelEntry()
		match := entities.Match{Raw: "x", Model: &entry}

		// when / then
		assert.Equal(t, "eol", match.Status())
	})
}

func TestMigrationReportAppliedCount(t *testing.T) {
	t.Parallel()

	t.Run("should count applied changes only", func(t *testing.T) {
		t.Parallel()

		// given
		report := &entities.MigrationReport{
			Changes: []*entities.MigrationChange{
				{From: "gpt-4", To: "gpt-4o", Applied: true},
				{From: "gpt-4", To: "gpt-4o", Applied: false},
				{From: "gpt-3.5-turbo", To: "gpt-4o-mini", Applied: true},
			},
			Applied: true,
		}

		// when / then
		assert.Equal(t, 2, report.AppliedCount())
	})
}
