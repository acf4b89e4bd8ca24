package fs

import (
	"errors"
	"fmt"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/libsync/internal/core/domain"
	"go.trai.ch/libsync/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ArtifactHasher = (*Hasher)(nil)

// Hasher digests the tracked artifacts of one project layout.
type Hasher struct {
	walker *Walker
	layout domain.Layout
	logger ports.Logger
}

// NewHasher creates a Hasher for layout.
func NewHasher(walker *Walker, layout domain.Layout, logger ports.Logger) *Hasher {
	return &Hasher{walker: walker, layout: layout, logger: logger}
}

// ComputeHash dispatches to the digest for kind.
func (h *Hasher) ComputeHash(kind domain.HashKind) string {
	if kind == domain.HashLockfile {
		return h.LockfileHash()
	}
	return h.LibraryHash()
}

// LibraryHash digests the concatenated content of every marker file under
// the library directory. It returns "" when no marker file contributed content.
func (h *Hasher) LibraryHash() string {
	if _, err := os.Stat(h.layout.LibraryDir); err != nil {
		if !errors.Is(err, iofs.ErrNotExist) {
			h.logger.Error(zerr.With(zerr.Wrap(err, domain.ErrFileReadFailed.Error()), "path", h.layout.LibraryDir))
		}
		return ""
	}

	digest := xxhash.New()
	var contributed int64

	for path, err := range h.walker.WalkFiles(h.layout.LibraryDir, nil) {
		if err != nil {
			h.logger.Error(zerr.With(zerr.Wrap(err, domain.ErrFileReadFailed.Error()), "path", path))
			continue
		}
		if filepath.Base(path) != h.layout.Marker {
			continue
		}

		n, err := h.copyFile(digest, path)
		if err != nil {
			h.logger.Error(err)
		}
		contributed += n
	}

	if contributed == 0 {
		return ""
	}
	return format(digest)
}

// LockfileHash digests the lockfile. It returns "" when the lockfile does not exist.
func (h *Hasher) LockfileHash() string {
	if _, err := os.Stat(h.layout.Lockfile); err != nil {
		if !errors.Is(err, iofs.ErrNotExist) {
			h.logger.Error(zerr.With(zerr.Wrap(err, domain.ErrFileReadFailed.Error()), "path", h.layout.Lockfile))
		}
		return ""
	}

	digest := xxhash.New()
	if _, err := h.copyFile(digest, h.layout.Lockfile); err != nil {
		h.logger.Error(err)
		return ""
	}
	return format(digest)
}

// copyFile streams the file at path into w.
// A partially read file has already contributed its bytes when an error is returned.
func (h *Hasher) copyFile(w io.Writer, path string) (int64, error) {
	f, err := os.Open(path) //nolint:gosec // Path comes from the project layout
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrFileReadFailed.Error()), "path", path)
	}
	defer f.Close() //nolint:errcheck // Read-only file

	n, err := io.Copy(w, f)
	if err != nil {
		return n, zerr.With(zerr.Wrap(err, domain.ErrFileReadFailed.Error()), "path", path)
	}
	return n, nil
}

func format(d *xxhash.Digest) string {
	return fmt.Sprintf("%016x", d.Sum64())
}
