package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raysh454/fhscan/internal/config"
	"github.com/raysh454/fhscan/internal/testutil"
	"github.com/raysh454/fhscan/internal/webclient"
)

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestDefaultConfig(t *testing.T) {
	cfg := config.DefaultConfig()

	assert.Equal(t, ":8080", cfg.Server.ListenAddr)
	assert.Equal(t, 8, cfg.Batch.MaxConcurrency)
	assert.Equal(t, 1000, cfg.Batch.MaxItems)
	assert.Equal(t, webclient.ClientNetHTTP, cfg.WebClient.Client)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.True(t, cfg.Storage.HistoryEnabled())
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
		errMsg string
	}{
		{"empty listen addr", func(c *config.Config) { c.Server.ListenAddr = " " }, "server.listen_addr"},
		{"zero concurrency", func(c *config.Config) { c.Batch.MaxConcurrency = 0 }, "batch.max_concurrency"},
		{"zero max items", func(c *config.Config) { c.Batch.MaxItems = 0 }, "batch.max_items"},
		{"bad backend", func(c *config.Config) { c.WebClient.Client = "curl" }, "webclient.backend"},
		{"negative timeout", func(c *config.Config) { c.WebClient.Timeout = -time.Second }, "durations"},
		{"bad log level", func(c *config.Config) { c.Log.Level = "loud" }, "log.level"},
		{"bad jurisdiction", func(c *config.Config) { c.Scanner.DefaultJurisdiction = "C4" }, "default_jurisdiction"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestMerge_OnlyOverridesSetValues(t *testing.T) {
	cfg := config.DefaultConfig()
	off := false
	cfg.Merge(&config.Config{
		Server:  config.ServerConfig{ListenAddr: ":9090"},
		Storage: config.StorageConfig{History: &off},
		Scanner: config.ScannerConfig{DefaultJurisdiction: "CA"},
		WebClient: webclient.Config{
			Client:  "ChromeDP",
			Timeout: 5 * time.Second,
		},
	})

	assert.Equal(t, ":9090", cfg.Server.ListenAddr)
	assert.False(t, cfg.Storage.HistoryEnabled())
	assert.Equal(t, "CA", cfg.Scanner.DefaultJurisdiction)
	assert.Equal(t, webclient.ClientChromedp, cfg.WebClient.Client)
	assert.Equal(t, 5*time.Second, cfg.WebClient.Timeout)
	// untouched
	assert.Equal(t, 8, cfg.Batch.MaxConcurrency)
	assert.Equal(t, "info", cfg.Log.Level)

	cfg.Merge(nil)
	assert.Equal(t, ":9090", cfg.Server.ListenAddr)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "fhscan.yaml")
	cfg := config.DefaultConfig()
	cfg.Scanner.DefaultJurisdiction = "NY"
	require.NoError(t, cfg.SaveToFile(path))

	loaded, err := config.LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "NY", loaded.Scanner.DefaultJurisdiction)
	assert.Equal(t, cfg.WebClient.Timeout, loaded.WebClient.Timeout)
}

func TestLoadFromFile_Errors(t *testing.T) {
	_, err := config.LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	writeFile(t, bad, "server: [unclosed")
	_, err = config.LoadFromFile(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}

// ─── Loader ────────────────────────────────────────────────────────────

func TestLoader_Precedence(t *testing.T) {
	home := t.TempDir()
	project := t.TempDir()
	work := filepath.Join(project, "a", "b")
	require.NoError(t, os.MkdirAll(work, 0o755))

	writeFile(t, filepath.Join(home, ".config", "fhscan", "config.yaml"), `
server:
  listen_addr: ":7000"
log:
  level: debug
batch:
  max_concurrency: 2
`)
	writeFile(t, filepath.Join(project, "fhscan.yaml"), `
server:
  listen_addr: ":7001"
scanner:
  default_jurisdiction: CA
`)
	explicit := filepath.Join(t.TempDir(), "override.yaml")
	writeFile(t, explicit, `
webclient:
  timeout: 3s
batch:
  max_concurrency: 4
`)

	logger := &testutil.DummyLogger{}
	loader := config.NewLoader(logger)
	loader.HomeDir = home
	loader.WorkDir = work

	cfg, err := loader.Load(explicit)
	require.NoError(t, err)

	assert.Equal(t, ":7001", cfg.Server.ListenAddr, "project beats user")
	assert.Equal(t, "debug", cfg.Log.Level, "user beats default")
	assert.Equal(t, "CA", cfg.Scanner.DefaultJurisdiction)
	assert.Equal(t, 4, cfg.Batch.MaxConcurrency, "explicit beats user")
	assert.Equal(t, 3*time.Second, cfg.WebClient.Timeout)
	assert.Len(t, logger.Debugs, 3)
}

func TestLoader_NoFiles(t *testing.T) {
	loader := config.NewLoader(nil)
	loader.HomeDir = t.TempDir()
	loader.WorkDir = t.TempDir()

	cfg, err := loader.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)
}

func TestLoader_MissingExplicitFile(t *testing.T) {
	loader := config.NewLoader(nil)
	loader.HomeDir = t.TempDir()
	loader.WorkDir = t.TempDir()

	_, err := loader.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoader_InvalidResult(t *testing.T) {
	work := t.TempDir()
	writeFile(t, filepath.Join(work, "fhscan.yaml"), "log:\n  level: shouting\n")

	loader := config.NewLoader(nil)
	loader.HomeDir = t.TempDir()
	loader.WorkDir = work

	_, err := loader.Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log.level")
}

func TestLoader_BrokenUserConfigIsWarned(t *testing.T) {
	home := t.TempDir()
	writeFile(t, filepath.Join(home, ".config", "fhscan", "config.yaml"), "::: not yaml")

	logger := &testutil.DummyLogger{}
	loader := config.NewLoader(logger)
	loader.HomeDir = home
	loader.WorkDir = t.TempDir()

	_, err := loader.Load("")
	require.NoError(t, err)
	assert.Len(t, logger.Warns, 1)
}

func TestEnsureUserConfig(t *testing.T) {
	loader := config.NewLoader(nil)
	loader.HomeDir = t.TempDir()

	path, err := loader.EnsureUserConfig()
	require.NoError(t, err)
	assert.FileExists(t, path)

	again, err := loader.EnsureUserConfig()
	require.NoError(t, err)
	assert.Equal(t, path, again)
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "data"), config.ExpandHome("~/data"))
	assert.Equal(t, "/abs/path", config.ExpandHome("/abs/path"))
	assert.Equal(t, "~user/x", config.ExpandHome("~user/x"))
}
