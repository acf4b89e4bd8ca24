package state

import (
	"path/filepath"

	"go.trai.ch/libsync/internal/core/domain"
	"go.trai.ch/libsync/internal/core/ports"
	"go.trai.ch/zerr"
)

// Opener opens the state store configured for a project.
type Opener struct{}

// NewOpener creates an Opener.
func NewOpener() *Opener {
	return &Opener{}
}

// Open returns the store selected by cfg.Backend. A relative StatePath is
// resolved against the project root.
func (o *Opener) Open(cfg *domain.Config) (ports.StateStore, error) {
	path := cfg.StatePath
	if !filepath.IsAbs(path) {
		path = filepath.Join(cfg.Layout.Root, path)
	}

	switch cfg.Backend {
	case domain.StoreBolt, "":
		return OpenBolt(path, cfg.Layout.Root)
	case domain.StoreFile:
		return NewFileStore(path, cfg.Layout.Root), nil
	default:
		return nil, zerr.With(domain.ErrUnknownStoreBackend, "backend", string(cfg.Backend))
	}
}
