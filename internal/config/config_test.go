package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gsys/gsys/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, DefaultTickRate, cfg.TickRate)
	assert.Equal(t, "q", cfg.ExitKey)
	assert.Equal(t, "plain", cfg.Format)
	assert.Equal(t, 30.0, cfg.Window)
	assert.NoError(t, Validate(cfg))
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
tick_rate: 500ms
exit_key: esc
format: json
window: 60
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 500*time.Millisecond, cfg.TickRate)
	assert.Equal(t, "esc", cfg.ExitKey)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, 60.0, cfg.Window)
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "exit_key: x\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "x", cfg.ExitKey)
	assert.Equal(t, DefaultTickRate, cfg.TickRate)
	assert.Equal(t, DefaultWindow, cfg.Window)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeConfig(t, "tick_rate: [not a duration\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults valid", func(c *Config) {}, false},
		{"tick rate at floor", func(c *Config) { c.TickRate = MinTickRate }, false},
		{"tick rate too low", func(c *Config) { c.TickRate = 10 * time.Millisecond }, true},
		{"zero window", func(c *Config) { c.Window = 0 }, true},
		{"negative window", func(c *Config) { c.Window = -5 }, true},
		{"bad format", func(c *Config) { c.Format = "xml" }, true},
		{"yaml format", func(c *Config) { c.Format = "yaml" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := Validate(cfg)
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, errors.IsCode(err, errors.ErrConfig))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFindExplicitMissing(t *testing.T) {
	_, err := Find(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestLoadResolvedNoFile(t *testing.T) {
	// Run from an empty directory with HOME pointed somewhere empty; the
	// resolver must fall back to defaults rather than fail.
	dir := t.TempDir()
	t.Setenv("HOME", dir)

	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer func() { _ = os.Chdir(cwd) }()

	cfg, err := LoadResolved("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestWriteDefaultRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, WriteDefault(path))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
