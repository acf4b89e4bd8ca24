package fs_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/libsync/internal/adapters/fs"
	"go.trai.ch/libsync/internal/core/domain"
	"go.trai.ch/libsync/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
	require.NoError(t, os.WriteFile(path, []byte(content), domain.PrivateFilePerm))
}

func newHasher(t *testing.T) (*fs.Hasher, domain.Layout) {
	t.Helper()
	ctrl := gomock.NewController(t)
	layout := domain.NewLayout(t.TempDir())
	return fs.NewHasher(fs.NewWalker(), layout, mocks.NewMockLogger(ctrl)), layout
}

func TestHasher_LibraryHash_Empty(t *testing.T) {
	h, layout := newHasher(t)

	assert.Empty(t, h.LibraryHash(), "missing library directory")

	require.NoError(t, os.MkdirAll(layout.LibraryDir, domain.DirPerm))
	writeFile(t, filepath.Join(layout.LibraryDir, "pkg", "NAMESPACE"), "export(x)")
	assert.Empty(t, h.LibraryHash(), "library without marker files")
}

func TestHasher_LibraryHash_ConcatenatesMarkers(t *testing.T) {
	h, layout := newHasher(t)

	writeFile(t, filepath.Join(layout.LibraryDir, "R-3.1", "aaa", "DESCRIPTION"), "Package: aaa\n")
	writeFile(t, filepath.Join(layout.LibraryDir, "R-3.1", "bbb", "DESCRIPTION"), "Package: bbb\n")
	writeFile(t, filepath.Join(layout.LibraryDir, "R-3.1", "bbb", "R", "bbb.R"), "f <- 1")

	want := fmt.Sprintf("%016x", xxhash.Sum64String("Package: aaa\nPackage: bbb\n"))
	assert.Equal(t, want, h.LibraryHash())
	assert.Equal(t, want, h.ComputeHash(domain.HashLibrary))
}

func TestHasher_LibraryHash_Deterministic(t *testing.T) {
	h, layout := newHasher(t)
	writeFile(t, filepath.Join(layout.LibraryDir, "pkg", "DESCRIPTION"), "Package: pkg\nVersion: 1.0\n")

	first := h.LibraryHash()
	assert.Len(t, first, 16)
	assert.Equal(t, first, h.LibraryHash())

	writeFile(t, filepath.Join(layout.LibraryDir, "pkg", "DESCRIPTION"), "Package: pkg\nVersion: 1.1\n")
	assert.NotEqual(t, first, h.LibraryHash())
}

func TestHasher_LockfileHash(t *testing.T) {
	h, layout := newHasher(t)

	assert.Empty(t, h.LockfileHash())

	writeFile(t, layout.Lockfile, "PackratFormat: 1.4\n")
	want := fmt.Sprintf("%016x", xxhash.Sum64String("PackratFormat: 1.4\n"))
	assert.Equal(t, want, h.LockfileHash())
	assert.Equal(t, want, h.ComputeHash(domain.HashLockfile))
}

func TestHasher_LockfileHash_ReadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	layout := domain.NewLayout(t.TempDir())
	require.NoError(t, os.MkdirAll(layout.Lockfile, domain.DirPerm))

	log.EXPECT().Error(gomock.Any()).Times(1)

	h := fs.NewHasher(fs.NewWalker(), layout, log)
	assert.Empty(t, h.LockfileHash())
}
