package monitor_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/libsync/internal/core/domain"
	"go.trai.ch/libsync/internal/core/ports/mocks"
	"go.trai.ch/libsync/internal/engine/hashstore"
	"go.trai.ch/libsync/internal/engine/monitor"
	"go.uber.org/mock/gomock"
)

type memState map[string]string

func (m memState) Get(scope, key string) (string, error) { return m[scope+"/"+key], nil }

func (m memState) Put(scope, key, value string) error {
	m[scope+"/"+key] = value
	return nil
}

func (m memState) Close() error { return nil }

// fakeHasher returns fixed digests and counts how often it was asked.
type fakeHasher struct {
	library  string
	lockfile string
	calls    int
}

func (h *fakeHasher) LibraryHash() string {
	h.calls++
	return h.library
}

func (h *fakeHasher) LockfileHash() string {
	h.calls++
	return h.lockfile
}

func (h *fakeHasher) ComputeHash(kind domain.HashKind) string {
	if kind == domain.HashLibrary {
		return h.LibraryHash()
	}
	return h.LockfileHash()
}

type fakeScheduler struct {
	requests  []string
	onRequest func()
}

func (s *fakeScheduler) Request(_ context.Context, target string) {
	s.requests = append(s.requests, target)
	if s.onRequest != nil {
		s.onRequest()
	}
}

func (s *fakeScheduler) Snapshotting() bool { return len(s.requests) > 0 }
func (s *fakeScheduler) TargetHash() string { return "" }
func (s *fakeScheduler) Pending() bool      { return false }

type fixture struct {
	monitor   *monitor.Monitor
	layout    domain.Layout
	state     memState
	hasher    *fakeHasher
	scheduler *fakeScheduler
	packages  *mocks.MockPackageManager
	notifier  *mocks.MockNotifier
	logger    *mocks.MockLogger
}

func newFixture(t *testing.T, opts ...monitor.Option) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		layout:    domain.NewLayout(t.TempDir()),
		state:     memState{},
		hasher:    &fakeHasher{},
		scheduler: &fakeScheduler{},
		packages:  mocks.NewMockPackageManager(ctrl),
		notifier:  mocks.NewMockNotifier(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
	}
	f.logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	f.packages.EXPECT().Options(gomock.Any(), f.layout.Root).Return(domain.DefaultOptions()).AnyTimes()

	f.monitor = monitor.New(monitor.Deps{
		Layout:       f.layout,
		Store:        hashstore.New(f.state, f.logger),
		Hasher:       f.hasher,
		Scheduler:    f.scheduler,
		Packages:     f.packages,
		Notifier:     f.notifier,
		Logger:       f.logger,
		AutoSnapshot: true,
	}, opts...)
	return f
}

func (f *fixture) store(kind domain.HashKind, digest string) {
	f.state[domain.StateScope+"/"+kind.Key()] = digest
}

func (f *fixture) stored(kind domain.HashKind) string {
	return f.state[domain.StateScope+"/"+kind.Key()]
}

func TestMonitor_BothEmptyIsNoop(t *testing.T) {
	f := newFixture(t)

	f.monitor.Check(t.Context())

	assert.Empty(t, f.scheduler.requests)
	assert.Empty(t, f.state, "nothing is written")
}

func TestMonitor_LibraryMismatchTriggersSnapshot(t *testing.T) {
	f := newFixture(t)
	f.store(domain.HashLibrary, "A")
	f.store(domain.HashLockfile, "L")
	f.hasher.library = "B"
	f.hasher.lockfile = "L"

	f.monitor.OnLibraryMutated(t.Context())
	assert.Empty(t, f.scheduler.requests, "library directory does not exist yet")

	require.NoError(t, os.MkdirAll(f.layout.LibraryDir, domain.DirPerm))
	f.monitor.OnLibraryMutated(t.Context())

	assert.Equal(t, []string{"B"}, f.scheduler.requests)
	assert.Equal(t, "A", f.stored(domain.HashLibrary), "stored hash waits for the snapshot")
}

func TestMonitor_AutoSnapshotDisabledByOptions(t *testing.T) {
	ctrl := gomock.NewController(t)
	layout := domain.NewLayout(t.TempDir())
	state := memState{}
	logger := mocks.NewMockLogger(ctrl)
	packages := mocks.NewMockPackageManager(ctrl)
	sched := &fakeScheduler{}

	opts := domain.DefaultOptions()
	opts.AutoSnapshot = false
	packages.EXPECT().Options(gomock.Any(), layout.Root).Return(opts)
	logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	logger.EXPECT().Info("library changed, auto-snapshot is disabled")

	m := monitor.New(monitor.Deps{
		Layout:       layout,
		Store:        hashstore.New(state, logger),
		Hasher:       &fakeHasher{library: "B"},
		Scheduler:    sched,
		Packages:     packages,
		Logger:       logger,
		AutoSnapshot: true,
	})
	m.Check(t.Context())

	assert.Empty(t, sched.requests)
}

func TestMonitor_AutoSnapshotOptionReadOncePerOptionsFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	layout := domain.NewLayout(t.TempDir())
	state := memState{
		domain.StateScope + "/" + domain.HashLibrary.Key():  "A",
		domain.StateScope + "/" + domain.HashLockfile.Key(): "L",
	}
	logger := mocks.NewMockLogger(ctrl)
	packages := mocks.NewMockPackageManager(ctrl)
	sched := &fakeScheduler{}

	disabled := domain.DefaultOptions()
	disabled.AutoSnapshot = false
	gomock.InOrder(
		packages.EXPECT().Options(gomock.Any(), layout.Root).Return(domain.DefaultOptions()),
		packages.EXPECT().Options(gomock.Any(), layout.Root).Return(disabled),
	)
	logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	logger.EXPECT().Info("library changed, auto-snapshot is disabled")

	m := monitor.New(monitor.Deps{
		Layout:       layout,
		Store:        hashstore.New(state, logger),
		Hasher:       &fakeHasher{library: "B", lockfile: "L"},
		Scheduler:    sched,
		Packages:     packages,
		Logger:       logger,
		AutoSnapshot: true,
	})

	m.Check(t.Context())
	m.Check(t.Context())
	assert.Equal(t, []string{"B", "B"}, sched.requests, "options are not read again")

	require.NoError(t, os.MkdirAll(filepath.Dir(layout.OptionsFile), domain.DirPerm))
	require.NoError(t, os.WriteFile(layout.OptionsFile, []byte("auto.snapshot: FALSE\n"), domain.FilePerm))

	m.Check(t.Context())
	assert.Len(t, sched.requests, 2, "a changed options file is read again")
}

func TestMonitor_BothDivergedResynchronizes(t *testing.T) {
	f := newFixture(t)
	f.store(domain.HashLibrary, "A")
	f.store(domain.HashLockfile, "L1")
	f.hasher.library = "B"
	f.hasher.lockfile = "L2"

	f.monitor.OnFileChanged(t.Context(), f.layout.Lockfile)

	assert.Empty(t, f.scheduler.requests)
	assert.Equal(t, "B", f.stored(domain.HashLibrary))
	assert.Equal(t, "L2", f.stored(domain.HashLockfile))
}

func TestMonitor_ConsistencyHookVetoesResync(t *testing.T) {
	f := newFixture(t, monitor.WithConsistency(func(context.Context) bool { return false }))
	f.store(domain.HashLibrary, "A")
	f.store(domain.HashLockfile, "L1")
	f.hasher.library = "B"
	f.hasher.lockfile = "L2"
	f.logger.EXPECT().Warn(gomock.Any()).Times(2)

	f.monitor.Check(t.Context())

	assert.Empty(t, f.scheduler.requests)
	assert.Equal(t, "A", f.stored(domain.HashLibrary))
	assert.Equal(t, "L1", f.stored(domain.HashLockfile))
}

func TestMonitor_CleanLockfileEditIsAccepted(t *testing.T) {
	f := newFixture(t)
	f.store(domain.HashLockfile, "L1")
	f.hasher.lockfile = "L2"
	f.packages.EXPECT().PendingRestoreActions(gomock.Any(), f.layout.Root).Return(nil, nil).Times(1)

	f.monitor.OnFileChanged(t.Context(), f.layout.Lockfile)
	assert.Equal(t, "L2", f.stored(domain.HashLockfile))

	// Nothing changed since, so the second check finds matching hashes.
	f.monitor.OnFileChanged(t.Context(), f.layout.Lockfile)
}

func TestMonitor_LockfileEditNeedingRestoreNotifies(t *testing.T) {
	f := newFixture(t)
	f.store(domain.HashLockfile, "L1")
	f.hasher.lockfile = "L2"

	actions := []domain.RestoreAction{{Package: "digest", Action: "add"}, {Package: "rlang", Action: "remove"}}
	f.packages.EXPECT().PendingRestoreActions(gomock.Any(), f.layout.Root).Return(actions, nil)
	f.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Do(func(_ context.Context, e domain.Event) {
		assert.Equal(t, domain.EventRestoreNeeded, e.Kind)
		assert.Equal(t, actions, e.Actions)
	})

	f.monitor.OnFileChanged(t.Context(), f.layout.Lockfile)

	assert.Equal(t, "L1", f.stored(domain.HashLockfile))
}

func TestMonitor_RestoreQueryErrorIsLogged(t *testing.T) {
	f := newFixture(t)
	f.store(domain.HashLockfile, "L1")
	f.hasher.lockfile = "L2"
	f.packages.EXPECT().PendingRestoreActions(gomock.Any(), f.layout.Root).Return(nil, errors.New("R crashed"))
	f.logger.EXPECT().Error(gomock.Any())

	f.monitor.OnFileChanged(t.Context(), f.layout.Lockfile)

	assert.Equal(t, "L1", f.stored(domain.HashLockfile))
}

func TestMonitor_NestedCheckIsSuppressed(t *testing.T) {
	f := newFixture(t)
	f.store(domain.HashLibrary, "A")
	f.hasher.library = "B"
	require.NoError(t, os.MkdirAll(f.layout.LibraryDir, domain.DirPerm))

	var nestedCalls int
	f.scheduler.onRequest = func() {
		before := f.hasher.calls
		f.monitor.OnLibraryMutated(t.Context())
		f.monitor.Check(t.Context())
		f.monitor.Resync(t.Context())
		nestedCalls = f.hasher.calls - before
	}

	f.monitor.OnLibraryMutated(t.Context())

	assert.Equal(t, []string{"B"}, f.scheduler.requests)
	assert.Zero(t, nestedCalls, "nested checks compute nothing")
	assert.Equal(t, "A", f.stored(domain.HashLibrary))
}

func TestMonitor_OnFilesChangedChecksEachArtifactOnce(t *testing.T) {
	f := newFixture(t)
	f.store(domain.HashLibrary, "A")
	f.hasher.library = "B"
	pkg := filepath.Join(f.layout.LibraryDir, "R-4.3", "dplyr")

	f.monitor.OnFilesChanged(t.Context(), []string{
		filepath.Join(pkg, "DESCRIPTION"),
		filepath.Join(pkg, "NAMESPACE"),
		filepath.Join(f.layout.LibraryDir, "R-4.3", "shiny", "DESCRIPTION"),
		filepath.Join(f.layout.Root, "analysis.R"),
	})

	assert.Equal(t, []string{"B"}, f.scheduler.requests)
}

func TestMonitor_IgnoresUninterestingPaths(t *testing.T) {
	f := newFixture(t)
	f.store(domain.HashLibrary, "A")
	f.hasher.library = "B"

	f.monitor.OnFilesChanged(t.Context(), []string{
		filepath.Join(f.layout.LibraryDir, "R-4.3", "rstudio", "DESCRIPTION"),
		filepath.Join(f.layout.Root, "R", "DESCRIPTION"),
	})

	assert.Empty(t, f.scheduler.requests)
	assert.Zero(t, f.hasher.calls)
}

func TestMonitor_Resync(t *testing.T) {
	f := newFixture(t)
	f.store(domain.HashLibrary, "A")
	f.hasher.library = "B"
	f.hasher.lockfile = "L"

	f.monitor.Resync(t.Context())

	assert.Equal(t, "B", f.stored(domain.HashLibrary))
	assert.Equal(t, "L", f.stored(domain.HashLockfile))
}

func TestMonitor_Status(t *testing.T) {
	f := newFixture(t)
	f.store(domain.HashLibrary, "A")
	f.store(domain.HashLockfile, "L")
	f.hasher.library = "B"
	f.hasher.lockfile = "L"

	status := f.monitor.Status(t.Context())

	assert.Equal(t, f.layout.Root, status.Project)
	assert.Equal(t, domain.HashRecord{Kind: domain.HashLibrary, Stored: "A", Computed: "B"}, status.Library)
	assert.Equal(t, domain.HashRecord{Kind: domain.HashLockfile, Stored: "L", Computed: "L"}, status.Lockfile)
	assert.False(t, status.InSync())
	assert.False(t, status.Snapshotting)
}
