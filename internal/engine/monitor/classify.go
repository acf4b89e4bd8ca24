package monitor

import (
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/libsync/internal/core/domain"
)

// Classify maps a changed path to the artifact it belongs to.
// isDir tells whether path is a directory; removed paths are never directories.
func Classify(layout domain.Layout, path string, isDir bool) (domain.HashKind, bool) {
	path = filepath.Clean(path)
	base := filepath.Base(path)

	if base == filepath.Base(layout.Lockfile) {
		return domain.HashLockfile, true
	}

	rel, err := filepath.Rel(layout.LibraryDir, path)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return 0, false
	}
	if !isDir && base != layout.Marker {
		return 0, false
	}

	parent := filepath.Base(filepath.Dir(path))
	if slices.Contains(layout.Ignored, base) || slices.Contains(layout.Ignored, parent) {
		return 0, false
	}
	return domain.HashLibrary, true
}
