// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/libsync/internal/adapters/config"
	_ "go.trai.ch/libsync/internal/adapters/fs"
	_ "go.trai.ch/libsync/internal/adapters/logger"
	_ "go.trai.ch/libsync/internal/adapters/notify"
	_ "go.trai.ch/libsync/internal/adapters/packrat"
	_ "go.trai.ch/libsync/internal/adapters/shell"
	_ "go.trai.ch/libsync/internal/adapters/state"
	_ "go.trai.ch/libsync/internal/adapters/telemetry"
	_ "go.trai.ch/libsync/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/libsync/internal/app"
)
