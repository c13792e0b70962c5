package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 7001, cfg.Server.Port)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.True(t, cfg.Output.Colors)
	assert.Equal(t, 500, cfg.Watch.DebounceMS)
	assert.Empty(t, cfg.Server.HistoryDB)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bigo.yml")
	data := []byte(`
server:
  port: 8080
  history_db: /tmp/history.db
output:
  format: text
  colors: false
enrich:
  script: notes.risor
watch:
  debounce_ms: 250
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "/tmp/history.db", cfg.Server.HistoryDB)
	assert.Equal(t, "text", cfg.Output.Format)
	assert.False(t, cfg.Output.Colors)
	assert.Equal(t, "notes.risor", cfg.Enrich.Script)
	assert.Equal(t, 250, cfg.Watch.DebounceMS)
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bigo.yml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 9000\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, 500, cfg.Watch.DebounceMS)
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"bad port", "server:\n  port: 0\n"},
		{"bad format", "output:\n  format: xml\n"},
		{"negative debounce", "watch:\n  debounce_ms: -1\n"},
		{"bad yaml", "{{{"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bigo.yml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0o644))
			_, err := LoadConfig(path)
			require.Error(t, err)
		})
	}
}

func TestLoadConfig_UnreadableFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yml"))
	require.Error(t, err)
}
