package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, slog.LevelInfo)
	log.Debug("hidden")
	log.Info("shown", slog.String("key", "UPI Pin"))

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, `key="UPI Pin"`)
}

func TestOpenFileAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "reminders.log")

	log, closeFn, err := OpenFile(path, slog.LevelDebug)
	require.NoError(t, err)
	log.Debug("first")
	require.NoError(t, closeFn())

	log, closeFn, err = OpenFile(path, slog.LevelDebug)
	require.NoError(t, err)
	log.Debug("second")
	require.NoError(t, closeFn())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "first")
	assert.Contains(t, string(b), "second")
}

func TestOpenFileWithoutPath(t *testing.T) {
	log, closeFn, err := OpenFile("", slog.LevelDebug)
	require.NoError(t, err)
	require.NotNil(t, closeFn)
	log.Error("dropped")
	assert.NoError(t, closeFn())
}
