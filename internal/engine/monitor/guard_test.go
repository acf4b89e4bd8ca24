package monitor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/libsync/internal/engine/monitor"
)

func TestGuard(t *testing.T) {
	var g monitor.Guard

	release, ok := g.Enter()
	require.True(t, ok)
	assert.True(t, g.Held())

	nested, ok := g.Enter()
	assert.False(t, ok, "guard is not re-entrant")
	assert.Nil(t, nested)

	release()
	assert.False(t, g.Held())

	release, ok = g.Enter()
	require.True(t, ok, "guard can be taken again after release")
	release()
}
