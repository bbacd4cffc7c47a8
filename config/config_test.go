package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "kitchen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, "tick_rate: 60\nlog_level: debug\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 60.0, cfg.TickRate)
	assert.Equal(t, "debug", cfg.LogLevel)
	// Keys absent from the file keep their defaults
	assert.Equal(t, Default().EventBuffer, cfg.EventBuffer)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := writeConfig(t, "tick_rate: [not a number\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"zero tick rate", func(c *Config) { c.TickRate = 0 }, true},
		{"negative tick rate", func(c *Config) { c.TickRate = -5 }, true},
		{"negative buffer", func(c *Config) { c.EventBuffer = -1 }, true},
		{"unknown level", func(c *Config) { c.LogLevel = "loud" }, true},
		{"warn level", func(c *Config) { c.LogLevel = "warn" }, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDT(t *testing.T) {
	cfg := Default()
	cfg.TickRate = 20
	assert.InDelta(t, 0.05, cfg.DT(), 1e-12)
}

func TestNewLogger(t *testing.T) {
	cfg := Default()
	logger, err := cfg.NewLogger()
	require.NoError(t, err)
	assert.NotNil(t, logger)

	cfg.LogLevel = "nope"
	_, err = cfg.NewLogger()
	assert.Error(t, err)
}
