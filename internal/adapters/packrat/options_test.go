package packrat_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/libsync/internal/adapters/packrat"
	"go.trai.ch/libsync/internal/core/domain"
	"go.trai.ch/libsync/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const packratOpts = `auto.snapshot: TRUE
use.cache: FALSE
print.banner.on.startup: auto
vcs.ignore.lib: FALSE
vcs.ignore.src: TRUE
external.packages:
ignored.directories:
    data
    inst
snapshot.fields:
    Imports
    Depends
`

func TestReadOptions(t *testing.T) {
	tests := []struct {
		name    string
		content string
		setup   func(log *mocks.MockLogger)
		want    domain.Options
	}{
		{
			name:    "packrat file",
			content: packratOpts,
			want:    domain.Options{AutoSnapshot: true, VCSIgnoreLib: false, VCSIgnoreSrc: true},
		},
		{
			name:    "missing keys use defaults",
			content: "use.cache: TRUE\n",
			want:    domain.DefaultOptions(),
		},
		{
			name:    "non-logical value",
			content: "auto.snapshot: sometimes\n",
			setup: func(log *mocks.MockLogger) {
				log.EXPECT().Warn("ignoring non-logical packrat option auto.snapshot")
			},
			want: domain.DefaultOptions(),
		},
		{
			name:    "unparsable file",
			content: "auto.snapshot: [\n",
			setup: func(log *mocks.MockLogger) {
				log.EXPECT().Error(gomock.Any())
			},
			want: domain.DefaultOptions(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			log := mocks.NewMockLogger(ctrl)
			if tt.setup != nil {
				tt.setup(log)
			}

			path := filepath.Join(t.TempDir(), "packrat.opts")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))

			assert.Equal(t, tt.want, packrat.ReadOptions(path, log))
		})
	}
}

func TestReadOptions_Missing(t *testing.T) {
	ctrl := gomock.NewController(t)

	got := packrat.ReadOptions(filepath.Join(t.TempDir(), "packrat.opts"), mocks.NewMockLogger(ctrl))

	assert.Equal(t, domain.DefaultOptions(), got)
}
