package repositories

import (
	"io"

	"github.com/safetnsr/model-graveyard/internal/domain/entities"
)

// Reporter renders command results in a particular output format.
type Reporter interface {
	// Format returns the format name (e.g. "table", "json").
	Format() string

	ScanReport(w io.Writer, report *entities.ScanReport) error
	MigrationReport(w io.Writer, report *entities.MigrationReport) error
	Registry(w io.Writer, groups []entities.StatusGroup) error
}
