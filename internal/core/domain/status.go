package domain

// SyncStatus is a diagnostic snapshot of the synchronization state of a project.
type SyncStatus struct {
	Project      string     `json:"project"`
	Lockfile     HashRecord `json:"lockfile"`
	Library      HashRecord `json:"library"`
	Snapshotting bool       `json:"snapshotting"`
	TargetHash   string     `json:"target_hash,omitempty"`
	Pending      bool       `json:"pending"`
}

// InSync reports whether both artifacts match their stored digests.
func (s SyncStatus) InSync() bool {
	return !s.Lockfile.Diverged() && !s.Library.Diverged()
}
