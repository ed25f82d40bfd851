package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	require.NoError(t, cfg.Validate())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pokerhand.hcl")
	src := `
batch {
  workers   = 8
  fail_fast = true
  strict    = true
}

output {
  format   = "json"
  path     = "results.json"
  no_color = true
}

log {
  level = "debug"
}
`
	require.NoError(t, os.WriteFile(path, []byte(src), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, BatchSettings{Workers: 8, FailFast: true, Strict: true}, cfg.Batch)
	assert.Equal(t, OutputSettings{Format: FormatJSON, Path: "results.json", NoColor: true}, cfg.Output)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestParsePartialConfigKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`batch { strict = true }`), "partial.hcl")
	require.NoError(t, err)

	assert.True(t, cfg.Batch.Strict)
	assert.Equal(t, 4, cfg.Batch.Workers)
	assert.Equal(t, FormatText, cfg.Output.Format)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestParseEmpty(t *testing.T) {
	cfg, err := Parse(nil, "empty.hcl")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"syntax error", `batch {`},
		{"unknown attribute", `batch { threads = 2 }`},
		{"wrong type", `batch { workers = "many" }`},
		{"unknown block", `server { port = 1 }`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src), "bad.hcl")
			require.Error(t, err)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"zero workers", func(c *Config) { c.Batch.Workers = 0 }, "workers must be positive"},
		{"bad format", func(c *Config) { c.Output.Format = "xml" }, "invalid output format"},
		{"bad level", func(c *Config) { c.Log.Level = "trace" }, "invalid log level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}
