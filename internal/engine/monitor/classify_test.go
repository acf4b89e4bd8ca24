package monitor_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/libsync/internal/core/domain"
	"go.trai.ch/libsync/internal/engine/monitor"
)

func TestClassify(t *testing.T) {
	layout := domain.NewLayout("/work/proj")
	lib := layout.LibraryDir

	tests := []struct {
		name     string
		path     string
		isDir    bool
		wantKind domain.HashKind
		wantOK   bool
	}{
		{name: "lockfile", path: layout.Lockfile, wantKind: domain.HashLockfile, wantOK: true},
		{name: "lockfile by name", path: "/elsewhere/packrat.lock", wantKind: domain.HashLockfile, wantOK: true},
		{name: "marker file", path: filepath.Join(lib, "R-4.3", "dplyr", "DESCRIPTION"), wantKind: domain.HashLibrary, wantOK: true},
		{name: "package directory", path: filepath.Join(lib, "R-4.3", "dplyr"), isDir: true, wantKind: domain.HashLibrary, wantOK: true},
		{name: "other library file", path: filepath.Join(lib, "R-4.3", "dplyr", "NAMESPACE")},
		{name: "library root itself", path: lib, isDir: true},
		{name: "manipulate directory", path: filepath.Join(lib, "R-4.3", "manipulate"), isDir: true},
		{name: "inside rstudio", path: filepath.Join(lib, "R-4.3", "rstudio", "DESCRIPTION")},
		{name: "outside library", path: "/work/proj/R/DESCRIPTION"},
		{name: "sibling with library prefix", path: "/work/proj/packrat/library/DESCRIPTION"},
		{name: "options file", path: layout.OptionsFile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, ok := monitor.Classify(layout, tt.path, tt.isDir)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantKind, kind)
			}
		})
	}
}
