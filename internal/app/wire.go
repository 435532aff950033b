package app

import (
	"go.uber.org/zap"

	"diffimp/internal/domain"
	calculationsvc "diffimp/internal/services/calculation"
	stackupsvc "diffimp/internal/services/stackup"
	"diffimp/internal/store"
)

// Wire bundles the store, services and logger for the CLI.
type Wire struct {
	Config      *Config
	Log         *zap.Logger
	Store       domain.StackupStore
	Stackup     domain.StackupService
	Calculation domain.CalculationService
}

// NewWire constructs the dependency graph from cfg. The session stackup
// starts as a template of cfg.DefaultCopperCount layers.
func NewWire(cfg *Config, log *zap.Logger) (*Wire, error) {
	// File-based store
	csvStore := store.NewFileStore()

	// High-level services
	stackupSvc := stackupsvc.New(csvStore, cfg.StackupTemplates(), log.Named("stackup"))
	if err := stackupSvc.Regenerate(cfg.DefaultCopperCount); err != nil {
		return nil, err
	}
	calcSvc := calculationsvc.New(log.Named("calculation"))

	return &Wire{
		Config:      cfg,
		Log:         log,
		Store:       csvStore,
		Stackup:     stackupSvc,
		Calculation: calcSvc,
	}, nil
}
