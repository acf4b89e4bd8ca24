package packrat

import (
	"errors"
	"io/fs"
	"os"

	"go.trai.ch/libsync/internal/core/domain"
	"go.trai.ch/libsync/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Option keys in packrat.opts.
const (
	keyAutoSnapshot = "auto.snapshot"
	keyVCSIgnoreLib = "vcs.ignore.lib"
	keyVCSIgnoreSrc = "vcs.ignore.src"
)

// ReadOptions parses the "key: value" options file at path. Missing keys,
// unparsable values and a missing file fall back to the defaults. Problems
// other than a missing file are logged.
func ReadOptions(path string, logger ports.Logger) domain.Options {
	opts := domain.DefaultOptions()

	data, err := os.ReadFile(path) //nolint:gosec // Path comes from the project layout
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logger.Error(zerr.With(zerr.Wrap(err, domain.ErrFileReadFailed.Error()), "path", path))
		}
		return opts
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		logger.Error(zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path))
		return opts
	}

	opts.AutoSnapshot = boolOption(raw, keyAutoSnapshot, opts.AutoSnapshot, logger)
	opts.VCSIgnoreLib = boolOption(raw, keyVCSIgnoreLib, opts.VCSIgnoreLib, logger)
	opts.VCSIgnoreSrc = boolOption(raw, keyVCSIgnoreSrc, opts.VCSIgnoreSrc, logger)
	return opts
}

func boolOption(raw map[string]any, key string, def bool, logger ports.Logger) bool {
	v, ok := raw[key]
	if !ok || v == nil {
		return def
	}
	b, ok := v.(bool)
	if !ok {
		logger.Warn("ignoring non-logical packrat option " + key)
		return def
	}
	return b
}
