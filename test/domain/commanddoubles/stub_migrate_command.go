//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/safetnsr/model-graveyard/internal/domain/commands"
	"github.com/safetnsr/model-graveyard/internal/domain/entities"
)

// StubMigrateCommand is a stub implementation of commands.Migrate.
type StubMigrateCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Report           *entities.MigrationReport
	LastOpts         commands.MigrateOptions
}

var _ commands.Migrate = (*StubMigrateCommand)(nil)

func (s *StubMigrateCommand) Execute(
	_ context.Context,
	_ *entities.Registry,
	opts commands.MigrateOptions,
) (*entities.MigrationReport, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.Report, s.ExecuteErr
}
