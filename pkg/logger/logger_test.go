package logger

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "warn")

	log.Debug("debug %d", 1)
	log.Info("info %d", 2)
	log.Warn("warn %d", 3)
	log.Error("error %d", 4)

	out := buf.String()
	assert.NotContains(t, out, "debug 1")
	assert.NotContains(t, out, "info 2")
	assert.Contains(t, out, "[WARN] warn 3")
	assert.Contains(t, out, "[ERROR] error 4")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, LevelWarn, ParseLevel("warning"))
	assert.Equal(t, LevelError, ParseLevel("error"))
	assert.Equal(t, LevelInfo, ParseLevel("whatever"))
}

func TestNew_WithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "service.log")

	log, err := New(path, "info")
	require.NoError(t, err)

	log.Info("written to file")
	require.NoError(t, log.Close())
}
