package app

import (
	"context"

	"go.trai.ch/libsync/internal/adapters/fs" //nolint:depguard // Wired in app layer
	"go.trai.ch/libsync/internal/core/domain"
	"go.trai.ch/libsync/internal/core/ports"
	"go.trai.ch/libsync/internal/engine/hashstore"
	"go.trai.ch/libsync/internal/engine/loop"
	"go.trai.ch/libsync/internal/engine/monitor"
	"go.trai.ch/libsync/internal/engine/scheduler"
	"go.trai.ch/zerr"
)

// project is the engine of one open project.
type project struct {
	cfg     *domain.Config
	store   ports.StateStore
	loop    *loop.Loop
	sched   *scheduler.Scheduler
	monitor *monitor.Monitor
}

func (a *App) openProject(dir string) (*project, error) {
	root, err := a.configLoader.DiscoverRoot(dir)
	if err != nil {
		return nil, err
	}

	cfg, err := a.configLoader.Load(root)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	store, err := a.stores.Open(cfg)
	if err != nil {
		return nil, err
	}

	hasher := fs.NewHasher(a.walker, cfg.Layout, a.logger)
	packages := a.packages(cfg)
	hashes := hashstore.New(store, a.logger)
	notifier := a.notifier()
	l := loop.New()

	sched := scheduler.NewScheduler(scheduler.Deps{
		Project:  root,
		Loop:     l,
		Packages: packages,
		Runner:   a.runner,
		Hasher:   hasher,
		Store:    hashes,
		Notifier: notifier,
		Tracer:   a.tracer,
		Logger:   a.logger,
	})

	mon := monitor.New(monitor.Deps{
		Layout:       cfg.Layout,
		Store:        hashes,
		Hasher:       hasher,
		Scheduler:    sched,
		Packages:     packages,
		Notifier:     notifier,
		Logger:       a.logger,
		AutoSnapshot: cfg.AutoSnapshot,
	}, a.monitorOpts...)

	return &project{cfg: cfg, store: store, loop: l, sched: sched, monitor: mon}, nil
}

func (a *App) closeProject(p *project) {
	if err := p.store.Close(); err != nil {
		a.logger.Error(err)
	}
}

// withProject runs fn on the loop of the project containing dir and waits
// for any snapshot it started to finish.
func (a *App) withProject(ctx context.Context, dir string, fn func(context.Context, *project)) error {
	p, err := a.openProject(dir)
	if err != nil {
		return err
	}
	defer a.closeProject(p)

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = p.loop.Run(ctx)
	}()
	defer func() {
		cancel()
		<-done
	}()

	var settled <-chan struct{}
	if err := p.loop.Do(ctx, func() {
		fn(ctx, p)
		settled = p.sched.Settled()
	}); err != nil {
		return err
	}

	select {
	case <-settled:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
