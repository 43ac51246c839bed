//go:build unit

package reporters_test

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safetnsr/model-graveyard/internal/domain/entities"
	"github.com/safetnsr/model-graveyard/internal/infrastructure/reporters"
	builders "github.com/safetnsr/model-graveyard/test/domain/entitybuilders"
)

func sampleScanReport() *entities.ScanReport {
	registry := builders.NewTestRegistry()
	return entities.NewScanReport(
		time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		"/project",
		3,
		[]entities.Match{
			{File: "client.js", Line: 2, Column: 2, Raw: "gpt-4", Context: `model: "gpt-4",`, Model: registry.Resolve("gpt-4")},
			{File: "a.py", Line: 1, Column: 0, Raw: "in-house", Context: `model="in-house"`},
			{File: "a.py", Line: 3, Column: 0, Raw: "text-davinci-003", Context: `model="text-davinci-003"`, Model: registry.Resolve("text-davinci-003")},
		},
	)
}

func sampleMigrationReport(applied bool) *entities.MigrationReport {
	change := &entities.MigrationChange{File: "client.js", Line: 2, From: "gpt-4", To: "gpt-4o", Applied: applied}
	if !applied {
		change.Diff = "--- a/client.js\n+++ b/client.js\n@@ -2 +2 @@\n-  model: \"gpt-4\",\n+  model: \"gpt-4o\",\n"
	}
	return &entities.MigrationReport{Changes: []*entities.MigrationChange{change}, Applied: applied}
}

func TestTerminalReporterScanReport(t *testing.T) {
	t.Parallel()

	t.Run("should group matches by file and summarise", func(t *testing.T) {
		t.Parallel()

		// given
		var out bytes.Buffer
		reporter := reporters.NewTerminalReporter(true)

		// when
		err := reporter.ScanReport(&out, sampleScanReport())

		// then
		require.NoError(t, err)
		text := out.String()
		assert.Contains(t, text, "model-graveyard scan")
		assert.Contains(t, text, "path:    /project")
		assert.Contains(t, text, "files:   3")
		assert.Contains(t, text, "a.py\n")
		assert.Contains(t, text, `  2:2  ⚠ deprecated  "gpt-4" eol: 2025-06-06 → gpt-4o`)
		assert.Contains(t, text, `  1:0  ? unknown  "in-house"`)
		assert.Contains(t, text, `✖ eol  "text-davinci-003"`)
		assert.Contains(t, text, "total: 3  1 eol  1 deprecated  1 unknown")
		assert.Contains(t, text, "graveyard migrate [path]")
		assert.Less(t, bytes.Index(out.Bytes(), []byte("a.py")), bytes.Index(out.Bytes(), []byte("client.js")))
	})

	t.Run("should report an empty scan", func(t *testing.T) {
		t.Parallel()

		// given
		var out bytes.Buffer
		report := entities.NewScanReport(time.Now(), "/empty", 0, nil)

		// when
		err := reporters.NewTerminalReporter(true).ScanReport(&out, report)

		// then
		require.NoError(t, err)
		assert.Contains(t, out.String(), "✔ no model strings found")
		assert.NotContains(t, out.String(), "migrate")
	})

	t.Run("should truncate long context lines", func(t *testing.T) {
		t.Parallel()

		// given
		var out bytes.Buffer
		long := `model = "gpt-4o" ` + string(bytes.Repeat([]byte("x"), 200))
		report := entities.NewScanReport(time.Now(), "/p", 1, []entities.Match{
			{File: "a.py", Line: 1, Raw: "gpt-4o", Context: long, Model: builders.NewTestRegistry().Resolve("gpt-4o")},
		})

		// when
		err := reporters.NewTerminalReporter(true).ScanReport(&out, report)

		// then
		require.NoError(t, err)
		assert.Contains(t, out.String(), long[:120]+"\n")
		assert.NotContains(t, out.String(), long[:121])
	})
}

func TestTerminalReporterMigrationReport(t *testing.T) {
	t.Parallel()

	t.Run("should show the diff on dry-run", func(t *testing.T) {
		t.Parallel()

		// given
		var out bytes.Buffer

		// when
		err := reporters.NewTerminalReporter(true).MigrationReport(&out, sampleMigrationReport(false))

		// then
		require.NoError(t, err)
		text := out.String()
		assert.Contains(t, text, `  line 2  - "gpt-4"  →  + "gpt-4o"  [dry-run]`)
		assert.Contains(t, text, "    @@ -2 +2 @@\n")
		assert.Contains(t, text, "    +  model: \"gpt-4o\",\n")
		assert.Contains(t, text, "dry-run: 1 replacement(s) pending")
		assert.Contains(t, text, "run with --apply")
	})

	t.Run("should count applied changes", func(t *testing.T) {
		t.Parallel()

		// given
		var out bytes.Buffer

		// when
		err := reporters.NewTerminalReporter(true).MigrationReport(&out, sampleMigrationReport(true))

		// then
		require.NoError(t, err)
		assert.Contains(t, out.String(), "[applied]")
		assert.Contains(t, out.String(), "✔ applied 1 replacement(s)")
	})

	t.Run("should say when nothing needs migrating", func(t *testing.T) {
		t.Parallel()

		// given
		var out bytes.Buffer

		// when
		err := reporters.NewTerminalReporter(true).MigrationReport(&out, &entities.MigrationReport{})

		// then
		require.NoError(t, err)
		assert.Equal(t, "✔ nothing to migrate\n", out.String())
	})
}

func TestTerminalReporterRegistry(t *testing.T) {
	t.Parallel()

	// given
	var out bytes.Buffer
	registry := builders.NewTestRegistry()
	groups := []entities.StatusGroup{
		{Status: entities.StatusDeprecated, Models: registry.ByStatus(entities.StatusDeprecated)},
	}

	// when
	err := reporters.NewTerminalReporter(true).Registry(&out, groups)

	// then
	require.NoError(t, err)
	assert.Contains(t, out.String(), "deprecated (3)")
	assert.Contains(t, out.String(), "  gpt-4  [openai] eol: 2025-06-06 → gpt-4o")
}

func TestJSONReporter(t *testing.T) {
	t.Parallel()

	t.Run("should use camelCase report fields", func(t *testing.T) {
		t.Parallel()

		// given
		var out bytes.Buffer

		// when
		err := reporters.NewJSONReporter().ScanReport(&out, sampleScanReport())

		// then
		require.NoError(t, err)
		var decoded map[string]any
		require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
		assert.Equal(t, "2026-03-01T12:00:00Z", decoded["scannedAt"])
		assert.Equal(t, "/project", decoded["rootPath"])
		assert.InDelta(t, 3, decoded["filesScanned"], 0)
		assert.Equal(t, map[string]any{
			"total": 3.0, "deprecated": 1.0, "eol": 1.0, "active": 0.0, "unknown": 1.0,
		}, decoded["summary"])

		matches, ok := decoded["matches"].([]any)
		require.True(t, ok)
		require.Len(t, matches, 3)
		unknown, ok := matches[0].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "in-house", unknown["raw"])
		assert.Contains(t, unknown, "model")
		assert.Nil(t, unknown["model"])
	})

	t.Run("should omit the diff once applied", func(t *testing.T) {
		t.Parallel()

		// given
		var out bytes.Buffer

		// when
		err := reporters.NewJSONReporter().MigrationReport(&out, sampleMigrationReport(true))

		// then
		require.NoError(t, err)
		assert.JSONEq(t,
			`{"changes":[{"file":"client.js","line":2,"from":"gpt-4","to":"gpt-4o","applied":true}],"applied":true}`,
			out.String(),
		)
	})
}

func TestYAMLReporter(t *testing.T) {
	t.Parallel()

	// given
	var out bytes.Buffer

	// when
	err := reporters.NewYAMLReporter().MigrationReport(&out, sampleMigrationReport(true))

	// then
	require.NoError(t, err)
	assert.YAMLEq(t, `
applied: true
changes:
  - file: client.js
    line: 2
    from: gpt-4
    to: gpt-4o
    applied: true
`, out.String())
}
