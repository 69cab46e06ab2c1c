package app

import (
	"go.uber.org/zap"

	"keyring/internal/domain"
	identitysvc "keyring/internal/services/identity"
	"keyring/internal/store"
	"keyring/internal/transport"
)

// Wire bundles the services and collaborators for the CLI.
type Wire struct {
	Config    Config
	Log       *zap.Logger
	Identity  domain.IdentityService
	Store     domain.StoreBackend
	Transport domain.Transport
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log, err := NewLogger(cfg)
	if err != nil {
		return nil, err
	}

	// Neither collaborator has a real backend yet.
	w := &Wire{
		Config:    cfg,
		Log:       log,
		Identity:  identitysvc.New(),
		Store:     store.NewUnimplemented(),
		Transport: transport.NewUnimplemented(),
	}
	log.Debug("wired dependencies",
		zap.String("store_path", cfg.StorePath),
		zap.String("log_level", cfg.LogLevel),
	)
	return w, nil
}

// Sync flushes buffered log entries.
func (w *Wire) Sync() {
	_ = w.Log.Sync()
}
