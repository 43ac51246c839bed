package commands

import (
	"context"

	"github.com/safetnsr/model-graveyard/internal/domain/entities"
)

// List is the interface for the list command.
type List interface {
	Execute(ctx context.Context, registry *entities.Registry) []entities.StatusGroup
}

// ListCommand groups the catalog by lifecycle status.
type ListCommand struct{}

// NewListCommand creates a new ListCommand.
func NewListCommand() *ListCommand {
	return &ListCommand{}
}

// Execute returns the non-empty groups in active, deprecated, eol order.
func (it *ListCommand) Execute(_ context.Context, registry *entities.Registry) []entities.StatusGroup {
	var groups []entities.StatusGroup
	for _, status := range []entities.ModelStatus{
		entities.StatusActive,
		entities.StatusDeprecated,
		entities.StatusEOL,
	} {
		models := registry.ByStatus(status)
		if len(models) == 0 {
			continue
		}
		groups = append(groups, entities.StatusGroup{Status: status, Models: models})
	}
	return groups
}
