package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"moviegrip/internal/eventbus"
)

// APIKeyEnv overrides catalog.api_key when set
const APIKeyEnv = "MOVIEGRIP_API_KEY"

// Config represents the application configuration
type Config struct {
	Version    int             `toml:"version"`
	Catalog    CatalogSettings `toml:"catalog"`
	Search     SearchSettings  `toml:"search"`
	UISettings UISettings      `toml:"ui"`
	Log        LogSettings     `toml:"log"`
}

// CatalogSettings configures the remote movie catalog
type CatalogSettings struct {
	BaseURL        string `toml:"base_url"`
	APIKey         string `toml:"api_key"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
	MaxConcurrent  int    `toml:"max_concurrent_requests"`
}

// SearchSettings configures query handling
type SearchSettings struct {
	DebounceMS         int  `toml:"debounce_ms"`
	SortByDefault      bool `toml:"sort_by_default"`
	SkipInvalidQueries bool `toml:"skip_invalid_queries"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowYear  bool `toml:"show_year"`
	AltScreen bool `toml:"alt_screen"`
}

// LogSettings configures the log file
type LogSettings struct {
	File  string `toml:"file"`
	Debug bool   `toml:"debug"`
}

// Debounce returns the debounce window as a duration
func (c *Config) Debounce() time.Duration {
	return time.Duration(c.Search.DebounceMS) * time.Millisecond
}

// Timeout returns the catalog request timeout
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Catalog.TimeoutSeconds) * time.Second
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultPath returns the per-user config file location
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "moviegrip", "config.toml")
}

// NewConfigService creates a config service for path ("" selects DefaultPath)
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

// Path returns the file the service reads and writes
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration, creating the file with defaults when missing
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		if err := cs.SaveToPath(cfg, cs.filePath); err != nil {
			return nil, err
		}
		applyEnv(cfg)
		cs.publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
		return cfg, nil
	}

	cfg, err := cs.LoadFromPath(cs.filePath)
	if err != nil {
		return nil, err
	}
	applyEnv(cfg)
	cs.publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	return cfg, nil
}

// Save saves the configuration to the service's file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}
	cs.publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	return nil
}

// LoadFromPath loads configuration from a specific path.
// Environment overrides are not applied, so the result is safe to save back.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start from defaults so missing keys keep sensible values
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	normalize(cfg)

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func (cs *configService) publish(event eventbus.DomainEvent) {
	if cs.bus != nil {
		cs.bus.Publish(event)
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Catalog: CatalogSettings{
			BaseURL:        "https://www.omdbapi.com/",
			TimeoutSeconds: 10,
			MaxConcurrent:  4,
		},
		Search: SearchSettings{
			DebounceMS: 500,
		},
		UISettings: UISettings{
			ShowYear:  true,
			AltScreen: true,
		},
		Log: LogSettings{
			File: "moviegrip.log",
		},
	}
}

// normalize replaces nonsensical values with defaults
func normalize(cfg *Config) {
	def := DefaultConfig()
	if cfg.Version == 0 {
		cfg.Version = def.Version
	}
	if cfg.Catalog.BaseURL == "" {
		cfg.Catalog.BaseURL = def.Catalog.BaseURL
	}
	if cfg.Catalog.TimeoutSeconds <= 0 {
		cfg.Catalog.TimeoutSeconds = def.Catalog.TimeoutSeconds
	}
	if cfg.Catalog.MaxConcurrent <= 0 {
		cfg.Catalog.MaxConcurrent = def.Catalog.MaxConcurrent
	}
	if cfg.Search.DebounceMS <= 0 {
		cfg.Search.DebounceMS = def.Search.DebounceMS
	}
}

func applyEnv(cfg *Config) {
	if key := os.Getenv(APIKeyEnv); key != "" {
		cfg.Catalog.APIKey = key
	}
}
