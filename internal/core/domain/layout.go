package domain

import (
	"path/filepath"
	"time"
)

const (
	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "libsync.yaml"

	// LibsyncDirName is the name of the internal project metadata directory.
	LibsyncDirName = ".libsync"

	// StateDirName is the name of the file-backed state directory.
	StateDirName = "state"

	// StateDBName is the name of the bolt state database.
	StateDBName = "state.db"

	// PackratDirName is the directory packrat keeps its files in.
	PackratDirName = "packrat"

	// DefaultLibraryDir is the library directory relative to the project root.
	DefaultLibraryDir = "packrat/lib"

	// DefaultLockfile is the lockfile path relative to the project root.
	DefaultLockfile = "packrat/packrat.lock"

	// DefaultOptionsFile is the packrat options file relative to the project root.
	DefaultOptionsFile = "packrat/packrat.opts"

	// MarkerFileName is the file whose content summarizes an installed package.
	MarkerFileName = "DESCRIPTION"

	// DefaultDebounce is the default window for coalescing file system events.
	DefaultDebounce = 50 * time.Millisecond

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// DefaultIgnoredDirs are library subdirectories managed by the IDE rather than the package manager.
func DefaultIgnoredDirs() []string {
	return []string{"manipulate", "rstudio"}
}

// DefaultStatePath returns the default bolt database path.
// It joins .libsync and state.db.
func DefaultStatePath() string {
	return filepath.Join(LibsyncDirName, StateDBName)
}

// DefaultFileStatePath returns the default directory for file-backed state.
// It joins .libsync and state.
func DefaultFileStatePath() string {
	return filepath.Join(LibsyncDirName, StateDirName)
}

// Layout holds the absolute locations of the tracked artifacts of a project.
type Layout struct {
	// Root is the absolute project directory.
	Root string
	// LibraryDir is the absolute path of the dependency library.
	LibraryDir string
	// Lockfile is the absolute path of the lockfile.
	Lockfile string
	// OptionsFile is the absolute path of the package manager options file.
	OptionsFile string
	// Marker is the file name summarized into the library digest.
	Marker string
	// Ignored lists directory names inside the library that are never tracked.
	Ignored []string
}

// NewLayout returns the default layout rooted at root.
func NewLayout(root string) Layout {
	return Layout{
		Root:        root,
		LibraryDir:  filepath.Join(root, DefaultLibraryDir),
		Lockfile:    filepath.Join(root, DefaultLockfile),
		OptionsFile: filepath.Join(root, DefaultOptionsFile),
		Marker:      MarkerFileName,
		Ignored:     DefaultIgnoredDirs(),
	}
}
