// Package config loads libsync.yaml and locates project roots.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/libsync/internal/core/domain"
	"go.trai.ch/libsync/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// DiscoverRoot walks up from cwd to the nearest directory holding either a
// libsync.yaml or a packrat directory.
func (l *Loader) DiscoverRoot(cwd string) (string, error) {
	abs, err := filepath.Abs(cwd)
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrFailedToGetRoot.Error())
	}

	for dir := abs; ; {
		if isFile(filepath.Join(dir, domain.ConfigFileName)) || isDir(filepath.Join(dir, domain.PackratDirName)) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", zerr.With(domain.ErrProjectNotFound, "cwd", abs)
		}
		dir = parent
	}
}

// Load reads the libsync.yaml of root. A missing file yields the defaults.
func (l *Loader) Load(root string) (*domain.Config, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrFailedToGetRoot.Error())
	}

	cfg := domain.DefaultConfig(root)
	cfg.StatePath = filepath.Join(root, cfg.StatePath)

	path := filepath.Join(root, domain.ConfigFileName)
	data, err := os.ReadFile(path) //nolint:gosec // Path is the project config file
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var pf Projectfile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	if err := l.apply(cfg, &pf); err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return cfg, nil
}

//nolint:cyclop // One branch per optional field
func (l *Loader) apply(cfg *domain.Config, pf *Projectfile) error {
	root := cfg.Layout.Root

	if pf.Library != "" {
		cfg.Layout.LibraryDir = resolvePath(root, pf.Library)
	}
	if pf.Lockfile != "" {
		cfg.Layout.Lockfile = resolvePath(root, pf.Lockfile)
	}
	if pf.Options != "" {
		cfg.Layout.OptionsFile = resolvePath(root, pf.Options)
	}
	if pf.Marker != "" {
		if filepath.Base(pf.Marker) != pf.Marker {
			return zerr.With(domain.ErrInvalidConfig, "marker", pf.Marker)
		}
		cfg.Layout.Marker = pf.Marker
	}
	if pf.Ignore != nil {
		cfg.Layout.Ignored = pf.Ignore
	}

	switch domain.StoreBackend(pf.State.Backend) {
	case "", domain.StoreBolt:
		cfg.Backend = domain.StoreBolt
	case domain.StoreFile:
		cfg.Backend = domain.StoreFile
		cfg.StatePath = filepath.Join(root, domain.DefaultFileStatePath())
	default:
		return zerr.With(domain.ErrUnknownStoreBackend, "backend", pf.State.Backend)
	}
	if pf.State.Path != "" {
		cfg.StatePath = resolvePath(root, pf.State.Path)
	}

	if pf.Debounce != "" {
		d, err := time.ParseDuration(pf.Debounce)
		if err != nil || d < 0 {
			return zerr.With(domain.ErrInvalidConfig, "debounce", pf.Debounce)
		}
		cfg.Debounce = d
	}

	if pf.AutoSnapshot != nil {
		cfg.AutoSnapshot = *pf.AutoSnapshot
	}

	if pf.Commands != nil {
		applyCommands(&cfg.Commands, pf.Commands)
	}

	if !isWithin(root, cfg.Layout.LibraryDir) {
		l.Logger.Warn("library directory is outside the project root: " + cfg.Layout.LibraryDir)
	}
	return nil
}

func applyCommands(dst *domain.Commands, src *CommandsDTO) {
	override := func(dst *[]string, src []string) {
		if src != nil {
			*dst = src
		}
	}
	override(&dst.Snapshot, src.Snapshot)
	override(&dst.RestoreActions, src.RestoreActions)
	override(&dst.Available, src.Available)
	override(&dst.Packified, src.Packified)
	override(&dst.ModeOn, src.ModeOn)
	override(&dst.Bootstrap, src.Bootstrap)
	override(&dst.Install, src.Install)
	override(&dst.BuildTools, src.BuildTools)
}

func resolvePath(root, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(root, p)
}
