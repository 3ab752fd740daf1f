package logger

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStructured_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	log, err := NewStructured("debug", "json", path)
	require.NoError(t, err)

	log.WithFields(map[string]interface{}{"op": "recommend"}).
		WithError(errors.New("boom")).
		Debug("request failed", map[string]interface{}{"status": 502})
	_ = log.Sync()

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"msg":"request failed"`)
	assert.Contains(t, string(b), `"op":"recommend"`)
	assert.Contains(t, string(b), `"status":502`)
	assert.Contains(t, string(b), `"error":"boom"`)
}

func TestNewStructured_LevelFilters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	log, err := NewStructured("warn", "json", path)
	require.NoError(t, err)
	log.Info("hidden", nil)
	log.Warn("shown", nil)
	_ = log.Sync()

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "hidden")
	assert.Contains(t, string(b), "shown")
}

func TestNoOpAndTestLoggers(t *testing.T) {
	NewNoOpLogger().Error("ignored", map[string]interface{}{"k": "v"})
	NewTestLogger(t).Info("visible in -v", nil)
}
