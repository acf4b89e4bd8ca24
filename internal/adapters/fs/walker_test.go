package fs_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/libsync/internal/adapters/fs"
)

func TestWalker_WalkFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "b", "file"), "b")
	writeFile(t, filepath.Join(root, "a", "file"), "a")
	writeFile(t, filepath.Join(root, "skip", "file"), "skip")
	writeFile(t, filepath.Join(root, "top"), "top")

	var got []string
	for path, err := range fs.NewWalker().WalkFiles(root, []string{"skip"}) {
		require.NoError(t, err)
		rel, relErr := filepath.Rel(root, path)
		require.NoError(t, relErr)
		got = append(got, rel)
	}

	assert.Equal(t, []string{
		filepath.Join("a", "file"),
		filepath.Join("b", "file"),
		"top",
	}, got)
}

func TestWalker_WalkFiles_Missing(t *testing.T) {
	var errs int
	for _, err := range fs.NewWalker().WalkFiles(filepath.Join(t.TempDir(), "missing"), nil) {
		if err != nil {
			errs++
		}
	}
	assert.Equal(t, 1, errs)
}

func TestWalker_WalkFiles_Break(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a"), "a")
	writeFile(t, filepath.Join(root, "b"), "b")

	count := 0
	for range fs.NewWalker().WalkFiles(root, nil) {
		count++
		break
	}
	assert.Equal(t, 1, count)
}
