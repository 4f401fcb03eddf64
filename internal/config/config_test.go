package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())
	return home
}

func TestLoad_Defaults(t *testing.T) {
	home := isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, EnvLocal, cfg.Env)
	assert.Equal(t, "localhost:8080", cfg.Server.Address)
	assert.Equal(t, DriverSQLite, cfg.Storage.Driver)
	assert.Equal(t, filepath.Join(home, ".receivecopy", "receives.db"), cfg.Storage.SQLitePath)
	assert.Equal(t, "receives", cfg.Storage.CacheKey)
	assert.Equal(t, "receives.json", cfg.Seed.Source)
	assert.Equal(t, 10*time.Second, cfg.Seed.Timeout)
	assert.Equal(t, 20, cfg.PageSize)
	assert.True(t, cfg.IsLocal())
}

func TestLoad_EnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("APP_ENV", "PROD")
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("PAGE_SIZE", "0")
	t.Setenv("SEED_SOURCE", "https://example.org/receives.json")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.True(t, cfg.IsProd())
	assert.Equal(t, DriverMemory, cfg.Storage.Driver)
	assert.Equal(t, 0, cfg.PageSize)
	assert.Equal(t, "https://example.org/receives.json", cfg.Seed.Source)
}

func TestLoad_ConfigFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("storage_driver: memory\npage_size: 50\ncache_key: archive\n"), 0o600))
	t.Setenv("PAGE_SIZE", "15")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, DriverMemory, cfg.Storage.Driver)
	assert.Equal(t, "archive", cfg.Storage.CacheKey)
	assert.Equal(t, 15, cfg.PageSize, "environment wins over file")
}

func TestLoad_MissingConfigFile(t *testing.T) {
	isolate(t)

	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Env:      EnvDev,
			Server:   server{Address: ":8080"},
			Storage:  storage{Driver: DriverMemory, CacheKey: "receives"},
			Seed:     seed{Timeout: time.Second},
			PageSize: 20,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "unknown env", mutate: func(c *Config) { c.Env = "staging" }, wantErr: "unknown app_env"},
		{name: "unknown driver", mutate: func(c *Config) { c.Storage.Driver = "redis" }, wantErr: "unknown storage_driver"},
		{name: "postgres without uri", mutate: func(c *Config) { c.Storage.Driver = DriverPostgres }, wantErr: "database_uri is required"},
		{name: "negative page size", mutate: func(c *Config) { c.PageSize = -1 }, wantErr: "page_size"},
		{name: "empty cache key", mutate: func(c *Config) { c.Storage.CacheKey = "" }, wantErr: "cache_key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMustLoad_PanicsOnInvalidConfig(t *testing.T) {
	isolate(t)
	t.Setenv("STORAGE_DRIVER", "floppy")

	assert.Panics(t, func() { MustLoad("") })
}
