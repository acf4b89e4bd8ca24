package ports

import "go.trai.ch/libsync/internal/core/domain"

// ArtifactHasher computes content digests of the tracked artifacts.
// An empty digest means the artifact is absent or has no content.
//
//go:generate mockgen -destination=mocks/mock_hasher.go -package=mocks -source=hasher.go
type ArtifactHasher interface {
	// LibraryHash digests the marker files found under the library directory.
	LibraryHash() string
	// LockfileHash digests the lockfile content.
	LockfileHash() string
	// ComputeHash dispatches to the digest for kind.
	ComputeHash(kind domain.HashKind) string
}
