// Package hashstore persists the last consistent digest of each tracked artifact.
package hashstore

import (
	"go.trai.ch/libsync/internal/core/domain"
	"go.trai.ch/libsync/internal/core/ports"
	"go.trai.ch/zerr"
)

// Store reads and writes artifact digests in the project state store.
type Store struct {
	state  ports.StateStore
	logger ports.Logger
}

// New creates a Store over state.
func New(state ports.StateStore, logger ports.Logger) *Store {
	return &Store{state: state, logger: logger}
}

// Get returns the stored digest for kind, or "" if none was stored.
// Store errors are logged and read as "".
func (s *Store) Get(kind domain.HashKind) string {
	v, err := s.state.Get(domain.StateScope, kind.Key())
	if err != nil {
		s.logger.Error(zerr.With(zerr.Wrap(err, "failed to get stored hash"), "key", kind.Key()))
		return ""
	}
	return v
}

// Set overwrites the stored digest for kind.
func (s *Store) Set(kind domain.HashKind, digest string) {
	s.logger.Debug("updating " + kind.Key() + " -> " + digest)
	if err := s.state.Put(domain.StateScope, kind.Key(), digest); err != nil {
		s.logger.Error(zerr.With(zerr.Wrap(err, "failed to set stored hash"), "key", kind.Key()))
	}
}
