package ports

import (
	"context"
	"iter"
)

// WatchOp is the kind of change a watch event reports.
type WatchOp uint8

const (
	// OpCreate reports a created file or directory.
	OpCreate WatchOp = iota
	// OpWrite reports modified file content.
	OpWrite
	// OpRemove reports a removed file or directory.
	OpRemove
	// OpRename reports a renamed file or directory.
	OpRename
)

// String implements fmt.Stringer.
func (o WatchOp) String() string {
	switch o {
	case OpCreate:
		return "create"
	case OpWrite:
		return "write"
	case OpRemove:
		return "remove"
	case OpRename:
		return "rename"
	default:
		return "unknown"
	}
}

// WatchEvent is a single change notification for a path under the project.
type WatchEvent struct {
	// Path is the absolute path that changed.
	Path string
	// Operation is the kind of change.
	Operation WatchOp
}

// Watcher delivers change notifications for a directory tree.
//
//go:generate mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks
type Watcher interface {
	// Start watches root recursively until ctx is done or Stop is called.
	Start(ctx context.Context, root string) error
	// Stop releases the watcher. Events is closed afterwards.
	Stop() error
	// Events yields change notifications in arrival order.
	Events() iter.Seq[WatchEvent]
}
