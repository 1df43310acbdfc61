package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew_NoFileIsNop(t *testing.T) {
	l, err := New(Options{})
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zap.ErrorLevel))
}

func TestNew_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "fastpath.log")
	l, err := New(Options{File: path})
	require.NoError(t, err)

	l.Info("quiz submitted", zap.Int("score", 4))
	l.Debug("hidden")
	_ = l.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, `"msg":"quiz submitted"`)
	assert.Contains(t, out, `"score":4`)
	assert.Contains(t, out, `"logger":"fastpath"`)
	assert.False(t, strings.Contains(out, "hidden"))
}

func TestNew_DebugLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	l, err := New(Options{File: path, Debug: true})
	require.NoError(t, err)

	l.Debug("phase change")
	_ = l.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "phase change")
}

func TestNew_PathIsNotParsedAsURL(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "runs #1 100%")
	path := filepath.Join(dir, "fastpath.log")

	l, err := New(Options{File: path})
	require.NoError(t, err)
	l.Info("industry selected")
	_ = l.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "industry selected")
}

func TestNew_AppendsToExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fastpath.log")
	require.NoError(t, os.WriteFile(path, []byte("earlier run\n"), 0o644))

	l, err := New(Options{File: path})
	require.NoError(t, err)
	l.Info("quiz submitted")
	_ = l.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "earlier run\n"))
	assert.Contains(t, string(data), "quiz submitted")
}
