// Package domain contains the core models of project synchronization:
// tracked artifacts, their digests, and the events emitted when they change.
package domain

import "fmt"

// HashKind identifies one of the two tracked artifacts.
type HashKind uint8

const (
	// HashLockfile is the digest of the lockfile content.
	HashLockfile HashKind = iota
	// HashLibrary is the digest of the marker files in the library directory.
	HashLibrary
)

// StateScope is the persistence scope under which stored hashes live.
const StateScope = "libsync"

// Key returns the persistence key for the hash kind.
func (k HashKind) Key() string {
	if k == HashLockfile {
		return "lockfileHash"
	}
	return "libraryHash"
}

// Other returns the paired artifact kind.
func (k HashKind) Other() HashKind {
	if k == HashLockfile {
		return HashLibrary
	}
	return HashLockfile
}

// String implements fmt.Stringer.
func (k HashKind) String() string {
	switch k {
	case HashLockfile:
		return "lockfile"
	case HashLibrary:
		return "library"
	default:
		return fmt.Sprintf("HashKind(%d)", uint8(k))
	}
}

// HashRecord pairs the stored digest of an artifact with its freshly computed one.
// An empty digest means the value was never stored, or the artifact has no content.
type HashRecord struct {
	Kind     HashKind `json:"-"`
	Stored   string   `json:"stored"`
	Computed string   `json:"computed"`
}

// Diverged reports whether the artifact has changed since its digest was stored.
func (r HashRecord) Diverged() bool {
	return r.Stored != r.Computed
}
