package reporters

import (
	"fmt"
	"io"

	"sigs.k8s.io/yaml"

	"github.com/safetnsr/model-graveyard/internal/domain/entities"
)

const FormatYAML = "yaml"

// YAMLReporter writes YAML documents using the same field names as the JSON output.
type YAMLReporter struct{}

// NewYAMLReporter creates a new YAMLReporter.
func NewYAMLReporter() *YAMLReporter {
	return &YAMLReporter{}
}

func (it *YAMLReporter) Format() string { return FormatYAML }

func (it *YAMLReporter) ScanReport(w io.Writer, report *entities.ScanReport) error {
	return it.encode(w, report)
}

func (it *YAMLReporter) MigrationReport(w io.Writer, report *entities.MigrationReport) error {
	return it.encode(w, report)
}

func (it *YAMLReporter) Registry(w io.Writer, groups []entities.StatusGroup) error {
	return it.encode(w, groups)
}

func (it *YAMLReporter) encode(w io.Writer, value any) error {
	data, err := yaml.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	_, err = w.Write(data)
	return err
}
