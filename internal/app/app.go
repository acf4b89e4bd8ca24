// Package app implements the application layer for libsync.
package app

import (
	"context"
	"io"
	"path/filepath"

	"go.trai.ch/libsync/internal/adapters/fs"      //nolint:depguard // Wired in app layer
	"go.trai.ch/libsync/internal/adapters/notify"  //nolint:depguard // Wired in app layer
	"go.trai.ch/libsync/internal/adapters/packrat" //nolint:depguard // Wired in app layer
	"go.trai.ch/libsync/internal/adapters/state"   //nolint:depguard // Wired in app layer
	"go.trai.ch/libsync/internal/adapters/watcher" //nolint:depguard // Wired in app layer
	"go.trai.ch/libsync/internal/core/domain"
	"go.trai.ch/libsync/internal/core/ports"
	"go.trai.ch/libsync/internal/engine/monitor"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	walker       *fs.Walker
	stores       *state.Opener
	packages     packrat.Factory
	watcher      ports.Watcher
	hub          *notify.Hub
	tracer       ports.Tracer
	runner       ports.CommandRunner
	monitorOpts  []monitor.Option
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	log ports.Logger,
	walker *fs.Walker,
	stores *state.Opener,
	packages packrat.Factory,
	runner ports.CommandRunner,
	w ports.Watcher,
	hub *notify.Hub,
	tracer ports.Tracer,
) *App {
	return &App{
		configLoader: loader,
		logger:       log,
		walker:       walker,
		stores:       stores,
		packages:     packages,
		runner:       runner,
		watcher:      w,
		hub:          hub,
		tracer:       tracer,
	}
}

// WithMonitorOptions configures the monitors created for each project.
func (a *App) WithMonitorOptions(opts ...monitor.Option) *App {
	a.monitorOpts = append(a.monitorOpts, opts...)
	return a
}

// Subscribe registers an observer of the events emitted while the App runs.
func (a *App) Subscribe() (<-chan domain.Event, func()) {
	return a.hub.Subscribe()
}

// WatchOptions configuration for the Watch method.
type WatchOptions struct {
	// Events receives one JSON document per emitted event when set.
	Events io.Writer
}

// Watch monitors the project containing dir until ctx is cancelled.
func (a *App) Watch(ctx context.Context, dir string, opts WatchOptions) error {
	p, err := a.openProject(dir)
	if err != nil {
		return err
	}
	defer a.closeProject(p)

	root := p.cfg.Layout.Root
	if err := a.watcher.Start(ctx, root); err != nil {
		return err
	}
	defer func() {
		_ = a.watcher.Stop()
	}()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return p.loop.Run(ctx)
	})

	debouncer := watcher.NewDebouncer(p.cfg.Debounce, func(paths []string) {
		p.loop.Post(func() { p.monitor.OnFilesChanged(ctx, paths) })
	})
	g.Go(func() error {
		for event := range a.watcher.Events() {
			debouncer.Add(event.Path)
		}
		// The stream can end before shutdown when the watcher closes on its own.
		if ctx.Err() == nil {
			debouncer.Flush()
			return nil
		}
		debouncer.Stop()
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		return a.watcher.Stop()
	})

	if opts.Events != nil {
		events, cancel := a.hub.Subscribe()
		defer cancel()
		sink := notify.NewJSONNotifier(opts.Events, a.logger)
		g.Go(func() error {
			for {
				select {
				case <-ctx.Done():
					drain(ctx, events, sink)
					return nil
				case event, ok := <-events:
					if !ok {
						return nil
					}
					sink.Notify(ctx, event)
				}
			}
		})
	}

	// Pick up changes made while nothing was watching.
	p.loop.Post(func() { p.monitor.Check(ctx) })
	a.logger.Info("watching " + root)

	return g.Wait()
}

// Check compares both artifacts of the project containing dir with their
// stored digests and reconciles them. It returns once any snapshot has finished.
func (a *App) Check(ctx context.Context, dir string) error {
	return a.withProject(ctx, dir, func(ctx context.Context, p *project) {
		p.monitor.Check(ctx)
	})
}

// NotifyChanged feeds changed paths into the project containing dir, as a
// watcher would. Without paths the library is treated as mutated.
func (a *App) NotifyChanged(ctx context.Context, dir string, paths []string) error {
	abs := make([]string, 0, len(paths))
	for _, path := range paths {
		resolved, err := filepath.Abs(path)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to resolve path"), "path", path)
		}
		abs = append(abs, resolved)
	}

	return a.withProject(ctx, dir, func(ctx context.Context, p *project) {
		if len(abs) == 0 {
			p.monitor.OnLibraryMutated(ctx)
			return
		}
		p.monitor.OnFilesChanged(ctx, abs)
	})
}

// Resync records the current digests of the project containing dir as consistent.
func (a *App) Resync(ctx context.Context, dir string) error {
	return a.withProject(ctx, dir, func(ctx context.Context, p *project) {
		p.monitor.Resync(ctx)
	})
}

// Status reports the synchronization state of the project containing dir.
func (a *App) Status(ctx context.Context, dir string) (domain.SyncStatus, error) {
	var status domain.SyncStatus
	err := a.withProject(ctx, dir, func(ctx context.Context, p *project) {
		status = p.monitor.Status(ctx)
	})
	return status, err
}

// Context reports whether packrat applies to the project containing dir.
func (a *App) Context(ctx context.Context, dir string) domain.PackageContext {
	cfg, project := a.configFor(dir)
	return a.packages(cfg).Context(ctx, project)
}

// Options reads the packrat options of the project containing dir.
func (a *App) Options(ctx context.Context, dir string) (domain.Options, error) {
	root, err := a.configLoader.DiscoverRoot(dir)
	if err != nil {
		return domain.Options{}, err
	}
	cfg, err := a.configLoader.Load(root)
	if err != nil {
		return domain.Options{}, err
	}
	return a.packages(cfg).Options(ctx, root), nil
}

// Prerequisites reports what is needed to packify a project.
func (a *App) Prerequisites(ctx context.Context, dir string) domain.Prerequisites {
	cfg, _ := a.configFor(dir)
	return a.packages(cfg).Prerequisites(ctx)
}

// Bootstrap packifies the project at dir. Observers are told to refresh
// their package list whether or not bootstrapping succeeded.
func (a *App) Bootstrap(ctx context.Context, dir string) error {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return zerr.Wrap(err, domain.ErrFailedToGetRoot.Error())
	}
	cfg, err := a.configLoader.Load(abs)
	if err != nil {
		return err
	}

	a.logger.Info("bootstrapping " + abs)
	err = a.packages(cfg).Bootstrap(ctx, abs)
	a.notifier().Notify(ctx, domain.NewEvent(domain.EventInstalledPackagesChanged, abs))
	return err
}

// Install installs packrat.
func (a *App) Install(ctx context.Context, dir string) error {
	cfg, _ := a.configFor(dir)
	a.logger.Info("installing packrat")
	return a.packages(cfg).Install(ctx)
}

// configFor returns the configuration of the project containing dir and its
// root. Outside a project the defaults apply and the root is "".
func (a *App) configFor(dir string) (*domain.Config, string) {
	root, err := a.configLoader.DiscoverRoot(dir)
	if err == nil {
		if cfg, err := a.configLoader.Load(root); err == nil {
			return cfg, root
		}
	}

	abs, absErr := filepath.Abs(dir)
	if absErr != nil {
		abs = dir
	}
	a.logger.Debug("no project found, using defaults")
	return domain.DefaultConfig(abs), ""
}

// drain forwards events that were already delivered to the subscription.
func drain(ctx context.Context, events <-chan domain.Event, sink ports.Notifier) {
	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			sink.Notify(ctx, event)
		default:
			return
		}
	}
}

func (a *App) notifier() ports.Notifier {
	return notify.Multi{notify.NewLogNotifier(a.logger), a.hub}
}
