package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Keys for the persisted history lists
const (
	KeyRecentTerms   = "recent_terms"
	KeyRecentFilters = "recent_filters"
)

// Config represents the application configuration. The Lists map is the
// persistence store for the bounded history lists, keyed by list name.
type Config struct {
	Version   int                 `toml:"version"`
	LastRoot  string              `toml:"last_root"`
	MatchCase bool                `toml:"match_case"`
	Lists     map[string][]string `toml:"lists"`
}

// GetList returns the persisted string list under key, or nil.
func (c *Config) GetList(key string) []string {
	return c.Lists[key]
}

// SetList replaces the persisted string list under key.
func (c *Config) SetList(key string, values []string) {
	if c.Lists == nil {
		c.Lists = make(map[string][]string)
	}
	c.Lists[key] = values
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a config service storing its file under the
// user config directory.
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	grepgripDir := filepath.Join(configDir, "grepgrip")
	os.MkdirAll(grepgripDir, 0755)

	return &configService{
		filePath: filepath.Join(grepgripDir, "config.toml"),
	}
}

// NewConfigServiceAt creates a config service with an explicit file path.
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

// Load loads the configuration from file
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	return cs.LoadFromPath(cs.filePath)
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Lists == nil {
		cfg.Lists = make(map[string][]string)
	}

	return &cfg, nil
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

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Lists:   make(map[string][]string),
	}
}
