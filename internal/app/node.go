package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/libsync/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/libsync/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/libsync/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/libsync/internal/adapters/notify"    //nolint:depguard // Wired in app layer
	"go.trai.ch/libsync/internal/adapters/packrat"   //nolint:depguard // Wired in app layer
	"go.trai.ch/libsync/internal/adapters/shell"     //nolint:depguard // Wired in app layer
	"go.trai.ch/libsync/internal/adapters/state"     //nolint:depguard // Wired in app layer
	"go.trai.ch/libsync/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/libsync/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/libsync/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			fs.WalkerNodeID,
			state.NodeID,
			packrat.NodeID,
			shell.NodeID,
			watcher.NodeID,
			notify.NodeID,
			telemetry.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewComponents(a, log), nil
		},
	})
}

//nolint:cyclop // One lookup per dependency
func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	walker, err := graft.Dep[*fs.Walker](ctx)
	if err != nil {
		return nil, err
	}
	stores, err := graft.Dep[*state.Opener](ctx)
	if err != nil {
		return nil, err
	}
	packages, err := graft.Dep[packrat.Factory](ctx)
	if err != nil {
		return nil, err
	}
	runner, err := graft.Dep[ports.CommandRunner](ctx)
	if err != nil {
		return nil, err
	}
	w, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}
	hub, err := graft.Dep[*notify.Hub](ctx)
	if err != nil {
		return nil, err
	}
	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, log, walker, stores, packages, runner, w, hub, tracer), nil
}
