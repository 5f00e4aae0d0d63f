package app

import (
	"context"
	"fmt"

	"github.com/plof27/atomichron/internal/config"
	"github.com/plof27/atomichron/internal/service"
	"github.com/plof27/atomichron/internal/storage"
)

// App is the dependency injection container for all application components
type App struct {
	Config *config.Config
	Store  storage.Store

	Tracker service.TrackerService
}

// New creates a new App instance, initializing all dependencies
func New(ctx context.Context) (*App, error) {
	// Load config from default path
	cfg, err := config.LoadDefault()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return NewWithConfig(ctx, cfg)
}

// NewWithConfig creates an App with a provided config (useful for testing)
func NewWithConfig(ctx context.Context, cfg *config.Config) (*App, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("failed to create directories: %w", err)
	}

	store := storage.NewFileStore(cfg.Data.Path)
	lock := storage.NewLock(cfg.LockPath())
	tracker := service.NewTrackerService(store, lock)

	return &App{
		Config:  cfg,
		Store:   store,
		Tracker: tracker,
	}, nil
}

// SaveConfig saves the current configuration to disk
func (a *App) SaveConfig() error {
	return a.Config.Save(config.DefaultConfigPath())
}
