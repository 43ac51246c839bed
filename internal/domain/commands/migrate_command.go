package commands

import (
	"context"
	"path/filepath"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/safetnsr/model-graveyard/internal/domain/entities"
	"github.com/safetnsr/model-graveyard/internal/domain/repositories"
)

// Migrate is the interface for the migrate command.
type Migrate interface {
	Execute(ctx context.Context, registry *entities.Registry, opts MigrateOptions) (*entities.MigrationReport, error)
}

// MigrateOptions holds runtime options for a migration run.
type MigrateOptions struct {
	ScanOptions

	Apply bool // false renders a diff preview instead of writing
}

// MigrateCommand rewrites retired model identifiers to their successors.
type MigrateCommand struct {
	scan           Scan
	fileRepository repositories.FileRepository
}

// NewMigrateCommand creates a new MigrateCommand.
func NewMigrateCommand(scan Scan, fileRepository repositories.FileRepository) *MigrateCommand {
	return &MigrateCommand{
		scan:           scan,
		fileRepository: fileRepository,
	}
}

// Execute scans opts.Root and builds one change per deprecated or end-of-life
// match that has a successor. Each change is applied to its file on its own.
func (it *MigrateCommand) Execute(
	ctx context.Context,
	registry *entities.Registry,
	opts MigrateOptions,
) (*entities.MigrationReport, error) {
	report, err := it.scan.Execute(ctx, registry, opts.ScanOptions)
	if err != nil {
		return nil, err
	}

	changes := make([]*entities.MigrationChange, 0)
	for _, match := range report.Matches {
		if match.Model == nil || !match.Model.Status.IsRetired() || !match.Model.HasSuccessor() {
			continue
		}

		change := &entities.MigrationChange{
			File: match.File,
			Line: match.Line,
			From: match.Raw,
			To:   match.Model.Successor,
		}
		changes = append(changes, change)

		it.applyChange(report.RootPath, change, opts.Apply)
	}

	logger.Debugf("Migration planned %d change(s), apply=%t", len(changes), opts.Apply)
	return &entities.MigrationReport{
		Changes: changes,
		Applied: opts.Apply,
	}, nil
}

// applyChange performs a read-modify-write of the change's file. Any failure
// leaves change.Applied false and the file untouched.
func (it *MigrateCommand) applyChange(root string, change *entities.MigrationChange, apply bool) {
	path := filepath.Join(root, filepath.FromSlash(change.File))

	content, err := it.fileRepository.Read(path)
	if err != nil {
		logger.Debugf("Skipping change in %s: %v", change.File, err)
		return
	}

	lines := strings.Split(content, "\n")
	index := change.Line - 1
	if index < 0 || index >= len(lines) {
		logger.Debugf("Skipping change in %s: line %d out of range", change.File, change.Line)
		return
	}

	replaced, ok := replaceQuoted(lines[index], change.From, change.To)
	if !ok {
		logger.Debugf("Skipping change in %s:%d: quoted %q not found", change.File, change.Line, change.From)
		return
	}
	lines[index] = replaced
	modified := strings.Join(lines, "\n")

	if !apply {
		change.Diff = renderDiff(change.File, content, modified)
		return
	}

	if writeErr := it.fileRepository.Write(path, modified); writeErr != nil {
		logger.Debugf("Failed to apply change in %s:%d: %v", change.File, change.Line, writeErr)
		return
	}
	change.Applied = true
}
