package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"moviegrip/internal/eventbus"
)

func TestLoadCreatesDefaultFile(t *testing.T) {
	t.Setenv(APIKeyEnv, "")
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	svc := NewConfigService(path)

	cfg, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "version = 1")
	assert.Contains(t, string(data), "debounce_ms = 500")
}

func TestLoadKeepsDefaultsForMissingKeys(t *testing.T) {
	t.Setenv(APIKeyEnv, "")
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
version = 1

[catalog]
api_key = "abc123"

[search]
sort_by_default = true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := NewConfigService(path).Load()
	require.NoError(t, err)
	assert.Equal(t, "abc123", cfg.Catalog.APIKey)
	assert.True(t, cfg.Search.SortByDefault)
	assert.Equal(t, 500*time.Millisecond, cfg.Debounce())
	assert.Equal(t, 10*time.Second, cfg.Timeout())
	assert.Equal(t, "https://www.omdbapi.com/", cfg.Catalog.BaseURL)
	assert.True(t, cfg.UISettings.ShowYear)
}

func TestLoadNormalizesInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[catalog]
timeout_seconds = -3
max_concurrent_requests = 0

[search]
debounce_ms = 0
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := NewConfigService(path).LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Catalog.TimeoutSeconds)
	assert.Equal(t, 4, cfg.Catalog.MaxConcurrent)
	assert.Equal(t, 500, cfg.Search.DebounceMS)
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = [oops"), 0644))

	_, err := NewConfigService(path).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestEnvironmentOverridesAPIKeyOnlyOnLoad(t *testing.T) {
	t.Setenv(APIKeyEnv, "from-env")
	path := filepath.Join(t.TempDir(), "config.toml")
	svc := NewConfigService(path)

	cfg, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Catalog.APIKey)

	raw, err := svc.LoadFromPath(path)
	require.NoError(t, err)
	assert.Empty(t, raw.Catalog.APIKey, "env key must not be written to disk")
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv(APIKeyEnv, "")
	path := filepath.Join(t.TempDir(), "config.toml")
	svc := NewConfigService(path)

	cfg := DefaultConfig()
	cfg.Search.SortByDefault = true
	cfg.Search.SkipInvalidQueries = true
	cfg.Search.DebounceMS = 250
	require.NoError(t, svc.Save(cfg))

	loaded, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadFromMissingPath(t *testing.T) {
	_, err := NewConfigService("").LoadFromPath(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")
}

func TestConfigEventsArePublished(t *testing.T) {
	t.Setenv(APIKeyEnv, "")
	bus := eventbus.New(zap.NewNop())
	defer bus.Close()

	events := make(chan eventbus.DomainEvent, 2)
	bus.Subscribe(eventbus.EventConfigLoaded, func(e eventbus.DomainEvent) { events <- e })
	bus.Subscribe(eventbus.EventConfigSaved, func(e eventbus.DomainEvent) { events <- e })

	path := filepath.Join(t.TempDir(), "config.toml")
	svc := NewConfigServiceWithBus(path, bus)
	assert.Equal(t, path, svc.Path())

	cfg, err := svc.Load()
	require.NoError(t, err)
	require.NoError(t, svc.Save(cfg))

	seen := map[eventbus.EventType]bool{}
	for i := 0; i < 2; i++ {
		select {
		case e := <-events:
			seen[e.Type()] = true
		case <-time.After(time.Second):
			t.Fatal("config event was not published")
		}
	}
	assert.True(t, seen[eventbus.EventConfigLoaded])
	assert.True(t, seen[eventbus.EventConfigSaved])
}
