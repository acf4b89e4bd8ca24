package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/libsync/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func newLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	l := logger.New()
	l.SetOutput(buf)
	return l, buf
}

func TestLogger_Levels(t *testing.T) {
	l, buf := newLogger(t)

	l.Info("info")
	l.Warn("warn")
	l.Debug("debug")

	assert.Equal(t, "info\n! warn\n", buf.String())
}

func TestLogger_Verbose(t *testing.T) {
	l, buf := newLogger(t)
	l.SetVerbose(true)

	l.Debug("debug")

	assert.Equal(t, "○ debug\n", buf.String())
}

func TestLogger_ErrorChain(t *testing.T) {
	l, buf := newLogger(t)

	inner := zerr.With(zerr.New("permission denied"), "path", "/p/packrat/packrat.lock")
	l.Error(zerr.Wrap(inner, "failed to read file"))

	out := buf.String()
	assert.Contains(t, out, "Error: failed to read file")
	assert.Contains(t, out, "Caused by:")
	assert.Contains(t, out, "→ permission denied")
	assert.Contains(t, out, "path: /p/packrat/packrat.lock")
}

func TestLogger_ErrorNil(t *testing.T) {
	l, buf := newLogger(t)
	l.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_JSON(t *testing.T) {
	l, buf := newLogger(t)
	l.SetJSON(true)

	l.Error(errors.New("boom"))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "ERROR", rec["level"])
	assert.Equal(t, "operation failed", rec["msg"])
	assert.Equal(t, "boom", rec["error"])
}

func TestLogger_SetOutputNil(t *testing.T) {
	l := logger.New()
	assert.NotPanics(t, func() { l.SetOutput(nil) })
}
