package reporters

import (
	"encoding/json"
	"io"

	"github.com/safetnsr/model-graveyard/internal/domain/entities"
)

const FormatJSON = "json"

// JSONReporter writes indented JSON documents.
type JSONReporter struct{}

// NewJSONReporter creates a new JSONReporter.
func NewJSONReporter() *JSONReporter {
	return &JSONReporter{}
}

func (it *JSONReporter) Format() string { return FormatJSON }

func (it *JSONReporter) ScanReport(w io.Writer, report *entities.ScanReport) error {
	return it.encode(w, report)
}

func (it *JSONReporter) MigrationReport(w io.Writer, report *entities.MigrationReport) error {
	return it.encode(w, report)
}

func (it *JSONReporter) Registry(w io.Writer, groups []entities.StatusGroup) error {
	return it.encode(w, groups)
}

func (it *JSONReporter) encode(w io.Writer, value any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}
