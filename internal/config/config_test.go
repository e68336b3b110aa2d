package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/fileman/pkg/fileman"
)

func envMap(vars map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, fileman.DefaultChunkSize, cfg.ChunkSize)
	assert.Equal(t, "0700", cfg.CreateMode)
	assert.False(t, cfg.Color)
	assert.False(t, cfg.Verbose)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_AllFields(t *testing.T) {
	dir := t.TempDir()
	content := `chunk_size: 4096
create_mode: "0644"
color: true
verbose: true
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 4096, cfg.ChunkSize)
	assert.Equal(t, "0644", cfg.CreateMode)
	assert.True(t, cfg.Color)
	assert.True(t, cfg.Verbose)

	mode, err := cfg.FileMode()
	require.NoError(t, err)
	assert.Equal(t, fs.FileMode(0o644), mode)
}

func TestLoad_MinimalYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("color: true\n"), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, fileman.DefaultChunkSize, cfg.ChunkSize)
	assert.Equal(t, "0700", cfg.CreateMode)
	assert.True(t, cfg.Color)
}

func TestLoad_FileNotFound(t *testing.T) {
	cfg, err := Load(t.TempDir())
	assert.True(t, errors.Is(err, ErrConfigNotFound), "expected ErrConfigNotFound, got: %v", err)
	assert.Nil(t, cfg)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("{{invalid"), 0644))

	cfg, err := Load(dir)
	assert.ErrorIs(t, err, fileman.ErrInvalidConfig)
	assert.Nil(t, cfg)
}

func TestApplyEnv(t *testing.T) {
	cfg := Default()
	err := cfg.ApplyEnv(envMap(map[string]string{
		EnvChunkSize:  "64",
		EnvCreateMode: "600",
		EnvColor:      "true",
		EnvVerbose:    "1",
	}))
	require.NoError(t, err)

	assert.Equal(t, 64, cfg.ChunkSize)
	assert.Equal(t, "600", cfg.CreateMode)
	assert.True(t, cfg.Color)
	assert.True(t, cfg.Verbose)
}

func TestApplyEnv_EmptyValuesIgnored(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.ApplyEnv(envMap(map[string]string{EnvChunkSize: ""})))
	assert.Equal(t, fileman.DefaultChunkSize, cfg.ChunkSize)
}

// Environment variables win over the file.
func TestApplyEnv_OverridesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("chunk_size: 2048\ncolor: true\n"), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.NoError(t, cfg.ApplyEnv(envMap(map[string]string{EnvChunkSize: "512"})))

	assert.Equal(t, 512, cfg.ChunkSize)
	assert.True(t, cfg.Color, "keys without an override keep the file value")
}

func TestApplyEnv_Malformed(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"chunk size", EnvChunkSize, "big"},
		{"color", EnvColor, "sometimes"},
		{"verbose", EnvVerbose, "loud"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Default().ApplyEnv(envMap(map[string]string{tt.key: tt.val}))
			assert.ErrorIs(t, err, fileman.ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"zero chunk", func(c *Config) { c.ChunkSize = 0 }, true},
		{"negative chunk", func(c *Config) { c.ChunkSize = -1 }, true},
		{"empty mode", func(c *Config) { c.CreateMode = "" }, false},
		{"non-octal mode", func(c *Config) { c.CreateMode = "0789" }, true},
		{"mode too wide", func(c *Config) { c.CreateMode = "1777" }, true},
		{"text mode", func(c *Config) { c.CreateMode = "rwx" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, fileman.ErrInvalidConfig)
				assert.Equal(t, fileman.ExitConfigError, fileman.ExitCodeForError(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFileMode_EmptyIsDefault(t *testing.T) {
	cfg := &Config{}
	mode, err := cfg.FileMode()
	require.NoError(t, err)
	assert.Equal(t, fileman.DefaultCreateMode, mode)
}
