package monitor

import (
	"context"

	"go.trai.ch/libsync/internal/core/domain"
)

// Consistency approves overwriting both stored digests after both artifacts
// changed at once.
type Consistency func(ctx context.Context) bool

// AlwaysConsistent treats every simultaneous change as already reconciled.
func AlwaysConsistent(context.Context) bool { return true }

// checkHashes compares the stored and computed digest of primary and reacts
// to a divergence. It is a no-op while another check is in progress.
func (m *Monitor) checkHashes(ctx context.Context, primary domain.HashKind, reaction Reaction) {
	release, ok := m.guard.Enter()
	if !ok {
		return
	}
	defer release()

	oldHash := m.store.Get(primary)
	newHash := m.hasher.ComputeHash(primary)
	if oldHash == newHash {
		return
	}

	secondary := primary.Other()
	storedSecondary := m.store.Get(secondary)
	computedSecondary := m.hasher.ComputeHash(secondary)
	if storedSecondary == computedSecondary {
		m.logger.Debug(primary.String() + " changed: " + display(oldHash) + " -> " + display(newHash))
		reaction.OnPrimaryMismatch(ctx, oldHash, newHash)
		return
	}

	if !m.consistent(ctx) {
		m.logger.Warn("library and lockfile both changed, leaving stored hashes as they are")
		return
	}

	m.logger.Debug("library and lockfile both changed, resynchronizing")
	m.store.Set(primary, newHash)
	m.store.Set(secondary, computedSecondary)
}

func display(digest string) string {
	if digest == "" {
		return "<none>"
	}
	return digest
}
