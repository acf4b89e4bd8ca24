package monitor

import (
	"context"

	"go.trai.ch/libsync/internal/core/domain"
	"go.trai.ch/libsync/internal/core/ports"
	"go.trai.ch/libsync/internal/engine/hashstore"
)

// Reaction handles a primary artifact that diverged while its pair stayed unchanged.
type Reaction interface {
	OnPrimaryMismatch(ctx context.Context, oldHash, newHash string)
}

// Requester starts snapshot runs.
type Requester interface {
	Request(ctx context.Context, target string)
}

// TriggerSnapshot reacts to a library change by snapshotting the lockfile.
// A library change is an applied fact, so it is recorded right away.
type TriggerSnapshot struct {
	Scheduler Requester
	// Enabled reports whether automatic snapshots are on. Nil means always.
	Enabled func(ctx context.Context) bool
	Logger  ports.Logger
}

// OnPrimaryMismatch implements Reaction.
func (r *TriggerSnapshot) OnPrimaryMismatch(ctx context.Context, _, newHash string) {
	if r.Enabled != nil && !r.Enabled(ctx) {
		r.Logger.Info("library changed, auto-snapshot is disabled")
		return
	}
	r.Scheduler.Request(ctx, newHash)
}

// ReviewLockfile reacts to a lockfile edit by asking what a restore would change.
// A lockfile edit expresses intent, so it is only accepted when nothing needs restoring.
type ReviewLockfile struct {
	Project  string
	Packages ports.PackageManager
	Store    *hashstore.Store
	Notifier ports.Notifier
	Logger   ports.Logger
}

// OnPrimaryMismatch implements Reaction.
func (r *ReviewLockfile) OnPrimaryMismatch(ctx context.Context, _, newHash string) {
	actions, err := r.Packages.PendingRestoreActions(ctx, r.Project)
	if err != nil {
		r.Logger.Error(err)
		return
	}

	if len(actions) == 0 {
		r.Store.Set(domain.HashLockfile, newHash)
		return
	}

	event := domain.NewEvent(domain.EventRestoreNeeded, r.Project)
	event.Actions = actions
	r.Notifier.Notify(ctx, event)
}
