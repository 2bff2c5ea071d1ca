package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultSpecPath, cfg.Spec.Path)
	assert.False(t, cfg.Vendor.Avid)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	content := `
spec:
  path: /opt/rp210/full.csv
vendor:
  avid: true
  overlays:
    - /etc/mxfdict/house.yml
log:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/opt/rp210/full.csv", cfg.Spec.Path)
	assert.True(t, cfg.Vendor.Avid)
	assert.Equal(t, []string{"/etc/mxfdict/house.yml"}, cfg.Vendor.Overlays)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("MXFDICT_SPEC_PATH", "/tmp/override.csv")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/override.csv", cfg.Spec.Path)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/config.yml")
	assert.Error(t, err)
}

func TestLoadOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vendor.yml")
	content := `
"8003":
  type: StrongReferenceArray
  name: Avid Attributes
"8005":
  type: UTF-16 char string
  name: Avid Tagged Value Name
  description: Name half of an Avid tagged value pair
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	entries, err := LoadOverlay(path)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "StrongReferenceArray", entries["8003"].Type)
	assert.Equal(t, "Avid Attributes", entries["8003"].Name)
	assert.Empty(t, entries["8003"].Description)
	assert.Equal(t, "Name half of an Avid tagged value pair", entries["8005"].Description)
}

func TestLoadOverlayMissing(t *testing.T) {
	_, err := LoadOverlay("/nonexistent/vendor.yml")
	assert.Error(t, err)
}
