// Package monitor detects divergence between the library and the lockfile of a
// project and decides how to reconcile it.
package monitor

import (
	"context"
	"os"

	"go.trai.ch/libsync/internal/core/domain"
	"go.trai.ch/libsync/internal/core/ports"
	"go.trai.ch/libsync/internal/engine/hashstore"
)

// Scheduler is the reconciliation state the monitor drives and reports.
type Scheduler interface {
	Requester
	Snapshotting() bool
	TargetHash() string
	Pending() bool
}

// Deps are the collaborators of a Monitor.
type Deps struct {
	Layout       domain.Layout
	Store        *hashstore.Store
	Hasher       ports.ArtifactHasher
	Scheduler    Scheduler
	Packages     ports.PackageManager
	Notifier     ports.Notifier
	Logger       ports.Logger
	AutoSnapshot bool
}

// Option configures a Monitor.
type Option func(*Monitor)

// WithConsistency replaces the predicate consulted before resynchronizing
// after a simultaneous change of both artifacts.
func WithConsistency(c Consistency) Option {
	return func(m *Monitor) {
		m.consistent = c
	}
}

// Monitor is the entry point for change notifications of one project.
// All methods must be called on the event loop.
type Monitor struct {
	layout     domain.Layout
	store      *hashstore.Store
	hasher     ports.ArtifactHasher
	scheduler  Scheduler
	logger     ports.Logger
	guard      Guard
	consistent Consistency

	snapshot Reaction
	review   Reaction
}

// New creates a Monitor.
func New(deps Deps, opts ...Option) *Monitor {
	m := &Monitor{
		layout:     deps.Layout,
		store:      deps.Store,
		hasher:     deps.Hasher,
		scheduler:  deps.Scheduler,
		logger:     deps.Logger,
		consistent: AlwaysConsistent,
	}

	project := deps.Layout.Root
	autoSnapshot := &cachedSetting{
		path: deps.Layout.OptionsFile,
		read: func(ctx context.Context) bool {
			return deps.Packages.Options(ctx, project).AutoSnapshot
		},
	}
	m.snapshot = &TriggerSnapshot{
		Scheduler: deps.Scheduler,
		Enabled: func(ctx context.Context) bool {
			return deps.AutoSnapshot && autoSnapshot.get(ctx)
		},
		Logger: deps.Logger,
	}
	m.review = &ReviewLockfile{
		Project:  project,
		Packages: deps.Packages,
		Store:    deps.Store,
		Notifier: deps.Notifier,
		Logger:   deps.Logger,
	}

	for _, opt := range opts {
		opt(m)
	}
	return m
}

// OnFileChanged handles a single changed path.
func (m *Monitor) OnFileChanged(ctx context.Context, path string) {
	m.OnFilesChanged(ctx, []string{path})
}

// OnFilesChanged handles a batch of changed paths. Each artifact is checked
// at most once per batch, in the order its first path appears.
func (m *Monitor) OnFilesChanged(ctx context.Context, paths []string) {
	var order []domain.HashKind
	seen := make(map[domain.HashKind]bool, 2)

	for _, path := range paths {
		kind, ok := Classify(m.layout, path, isDir(path))
		if !ok || seen[kind] {
			continue
		}
		seen[kind] = true
		order = append(order, kind)
	}

	for _, kind := range order {
		m.check(ctx, kind)
	}
}

// OnLibraryMutated handles a library change reported outside the watcher,
// such as a package install. It does nothing if the library does not exist.
func (m *Monitor) OnLibraryMutated(ctx context.Context) {
	if !isDir(m.layout.LibraryDir) {
		return
	}
	m.check(ctx, domain.HashLibrary)
}

// Check compares both artifacts against their stored digests.
func (m *Monitor) Check(ctx context.Context) {
	m.check(ctx, domain.HashLibrary)
	m.check(ctx, domain.HashLockfile)
}

func (m *Monitor) check(ctx context.Context, kind domain.HashKind) {
	if kind == domain.HashLibrary {
		m.checkHashes(ctx, domain.HashLibrary, m.snapshot)
		return
	}
	m.checkHashes(ctx, domain.HashLockfile, m.review)
}

// Resync records the current digests of both artifacts as consistent.
func (m *Monitor) Resync(_ context.Context) {
	release, ok := m.guard.Enter()
	if !ok {
		return
	}
	defer release()

	m.store.Set(domain.HashLibrary, m.hasher.LibraryHash())
	m.store.Set(domain.HashLockfile, m.hasher.LockfileHash())
}

// Status reports the stored and computed digests and the scheduler state.
func (m *Monitor) Status(_ context.Context) domain.SyncStatus {
	record := func(kind domain.HashKind) domain.HashRecord {
		return domain.HashRecord{
			Kind:     kind,
			Stored:   m.store.Get(kind),
			Computed: m.hasher.ComputeHash(kind),
		}
	}

	return domain.SyncStatus{
		Project:      m.layout.Root,
		Lockfile:     record(domain.HashLockfile),
		Library:      record(domain.HashLibrary),
		Snapshotting: m.scheduler.Snapshotting(),
		TargetHash:   m.scheduler.TargetHash(),
		Pending:      m.scheduler.Pending(),
	}
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
