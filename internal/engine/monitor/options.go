package monitor

import (
	"context"
	"os"
	"time"
)

// fileStamp identifies one version of a file.
type fileStamp struct {
	exists  bool
	size    int64
	modTime time.Time
}

func stampOf(path string) fileStamp {
	info, err := os.Stat(path)
	if err != nil {
		return fileStamp{}
	}
	return fileStamp{exists: true, size: info.Size(), modTime: info.ModTime()}
}

func (s fileStamp) same(o fileStamp) bool {
	return s.exists == o.exists && s.size == o.size && s.modTime.Equal(o.modTime)
}

// cachedSetting remembers a value read from the package manager until the
// file it comes from changes. Reading it may start external processes, so
// it is not repeated for every mismatch.
type cachedSetting struct {
	path   string
	read   func(ctx context.Context) bool
	loaded bool
	stamp  fileStamp
	value  bool
}

func (c *cachedSetting) get(ctx context.Context) bool {
	stamp := stampOf(c.path)
	if c.loaded && stamp.same(c.stamp) {
		return c.value
	}
	c.value = c.read(ctx)
	c.stamp = stamp
	c.loaded = true
	return c.value
}
