package controllers

import (
	"go.uber.org/dig"

	"github.com/safetnsr/model-graveyard/internal/domain/entities"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register controller constructors
	if err := container.Provide(NewScanController); err != nil {
		return err
	}
	if err := container.Provide(NewMigrateController); err != nil {
		return err
	}
	if err := container.Provide(NewListController); err != nil {
		return err
	}
	if err := container.Provide(NewControllers); err != nil {
		return err
	}

	return nil
}

// NewControllers aggregates all controllers into a slice for the AppInternal.
func NewControllers(
	scanController *ScanController,
	migrateController *MigrateController,
	listController *ListController,
) *[]entities.Controller {
	return &[]entities.Controller{
		scanController,
		migrateController,
		listController,
	}
}
