package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	var buf bytes.Buffer
	Init("debug", "json", &buf)
	t.Cleanup(func() { Log.SetOutput(os.Stderr) })

	Log.WithField("session_id", "abc").Debug("Turn processed.")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "abc", entry["session_id"])
	assert.Equal(t, "Turn processed.", entry["msg"])
	assert.Equal(t, "debug", entry["level"])
}

func TestInit_FallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	Init("chatty", "text", &buf)
	t.Cleanup(func() { Log.SetOutput(os.Stderr) })

	assert.Equal(t, logrus.InfoLevel, Log.GetLevel())
	Log.Debug("hidden")
	Log.Info("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.True(t, strings.Contains(buf.String(), "shown"))
}

func TestOutput(t *testing.T) {
	var fallback bytes.Buffer
	w, closeFn, err := Output("", &fallback)
	require.NoError(t, err)
	assert.Same(t, &fallback, w)
	assert.NoError(t, closeFn())

	path := filepath.Join(t.TempDir(), "game.log")
	w, closeFn, err = Output(path, &fallback)
	require.NoError(t, err)
	_, err = w.Write([]byte("line\n"))
	require.NoError(t, err)
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "line\n", string(data))
}
