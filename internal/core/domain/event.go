package domain

import "time"

// EventKind names a notification emitted to observers.
type EventKind string

const (
	// EventInstalledPackagesChanged signals that the dependency list should be refreshed.
	EventInstalledPackagesChanged EventKind = "installed-packages-changed"
	// EventRestoreNeeded signals that the lockfile has changes requiring manual resolution.
	EventRestoreNeeded EventKind = "restore-needed"
)

// Event is a fire-and-forget notification.
type Event struct {
	Kind    EventKind       `json:"kind"`
	Time    time.Time       `json:"time"`
	Project string          `json:"project"`
	Actions []RestoreAction `json:"actions,omitempty"`
}

// NewEvent creates an event of the given kind stamped with the current time.
func NewEvent(kind EventKind, project string) Event {
	return Event{Kind: kind, Time: time.Now(), Project: project}
}
