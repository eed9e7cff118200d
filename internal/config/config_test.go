package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/addrgen/internal/config"
	addrerr "github.com/mrz1836/addrgen/pkg/errors"
)

func TestLoadSave_RoundTrip(t *testing.T) {
	t.Parallel()
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.yaml")

	// Create config with custom values
	cfg := config.Defaults()
	cfg.Server.Listen = "127.0.0.1:8080"
	cfg.Server.RateLimit.RequestsPerSecond = 2.5
	cfg.Logging.Level = "debug"
	cfg.Output.Verbose = true

	require.NoError(t, config.Save(cfg, path))

	// Verify file exists
	_, err := os.Stat(path)
	require.NoError(t, err)

	loaded, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, cfg.Version, loaded.Version)
	assert.Equal(t, "127.0.0.1:8080", loaded.Server.Listen)
	assert.InDelta(t, 2.5, loaded.Server.RateLimit.RequestsPerSecond, 0.0001)
	assert.Equal(t, "debug", loaded.Logging.Level)
	assert.True(t, loaded.Output.Verbose)
}

func TestDefaults(t *testing.T) {
	t.Parallel()
	cfg := config.Defaults()

	assert.Equal(t, 1, cfg.Version)
	assert.Equal(t, "~/.addrgen", cfg.Home)
	assert.Equal(t, ":5000", cfg.Server.Listen)
	assert.Equal(t, config.DefaultListen, cfg.Server.Listen)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout())
	assert.Equal(t, 15*time.Second, cfg.Server.WriteTimeout())
	assert.Equal(t, time.Minute, cfg.Server.IdleTimeout())
	assert.InDelta(t, 10.0, cfg.Server.RateLimit.RequestsPerSecond, 0.0001)
	assert.Equal(t, 20, cfg.Server.RateLimit.Burst)
	assert.True(t, cfg.Server.Metrics)
	assert.Equal(t, "auto", cfg.Output.DefaultFormat)
	assert.Equal(t, "error", cfg.Logging.Level)
	assert.Equal(t, 168, cfg.Logging.MaxAgeHours)
	assert.Equal(t, 24, cfg.Logging.RotationHours)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  listen: \":6000\"\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":6000", cfg.Server.Listen)
	assert.Equal(t, 20, cfg.Server.RateLimit.Burst)
	assert.Equal(t, "error", cfg.Logging.Level)
}

func TestLoad_FileNotFound(t *testing.T) {
	t.Parallel()
	_, err := config.Load("/nonexistent/path/config.yaml")
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.ErrorIs(t, err, addrerr.ErrConfigNotFound)
}

func TestLoad_InvalidYAML(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [unclosed"), 0o600))

	_, err := config.Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, addrerr.ErrConfigInvalid)
}

func TestLoadOrDefault(t *testing.T) {
	t.Parallel()

	cfg, err := config.LoadOrDefault(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Defaults(), cfg)
}

func TestSave_CreatesDirectory(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "nested", "dir", "config.yaml")

	require.NoError(t, config.Save(config.Defaults(), path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestPath(t *testing.T) {
	t.Parallel()
	assert.Equal(t, filepath.Join("/home/user/.addrgen", "config.yaml"), config.Path("/home/user/.addrgen"))
}

func TestDefaultHome(t *testing.T) {
	t.Parallel()
	assert.Equal(t, ".addrgen", filepath.Base(config.DefaultHome()))
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr bool
		problem string
	}{
		{"defaults", func(*config.Config) {}, false, ""},
		{"rate limit disabled", func(c *config.Config) {
			c.Server.RateLimit = config.RateLimit{}
		}, false, ""},
		{"json output", func(c *config.Config) { c.Output.DefaultFormat = "JSON" }, false, ""},
		{"empty listen", func(c *config.Config) { c.Server.Listen = " " }, true, "server.listen"},
		{"negative timeout", func(c *config.Config) { c.Server.IdleTimeoutSeconds = -1 }, true, "timeouts"},
		{"negative rps", func(c *config.Config) { c.Server.RateLimit.RequestsPerSecond = -1 }, true, "requests_per_second"},
		{"zero burst", func(c *config.Config) { c.Server.RateLimit.Burst = 0 }, true, "burst"},
		{"bad format", func(c *config.Config) { c.Output.DefaultFormat = "xml" }, true, "default_format"},
		{"bad level", func(c *config.Config) { c.Logging.Level = "trace" }, true, "logging.level"},
		{"negative rotation", func(c *config.Config) { c.Logging.RotationHours = -2 }, true, "rotation"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg := config.Defaults()
			tc.mutate(cfg)

			err := cfg.Validate()
			if !tc.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, addrerr.ErrConfigInvalid)
			assert.Contains(t, err.Error(), tc.problem)
		})
	}
}

func TestConfig_Getters(t *testing.T) {
	t.Parallel()
	cfg := config.Defaults()
	cfg.Home = "/tmp/addrgen"
	cfg.Logging.File = "/tmp/addrgen/addrgen.log"
	cfg.Output.DefaultFormat = "json"
	cfg.Output.Verbose = true

	assert.Equal(t, "/tmp/addrgen", cfg.GetHome())
	assert.Equal(t, "error", cfg.GetLoggingLevel())
	assert.Equal(t, "/tmp/addrgen/addrgen.log", cfg.GetLoggingFile())
	assert.Equal(t, "json", cfg.GetOutputFormat())
	assert.True(t, cfg.IsVerbose())
	assert.Len(t, cfg.LogOptions(), 2)
}
