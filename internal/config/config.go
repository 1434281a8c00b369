package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration: picker behavior plus the
// catalog of entries the prompt shows.
type Config struct {
	Version int     `toml:"version"`
	Picker  Picker  `toml:"picker"`
	Entries []Entry `toml:"entry"`
}

// Picker holds the navigation and search settings, mirroring the options of
// the prompt controller.
type Picker struct {
	PageSize      int  `toml:"page_size"`
	WrapAround    bool `toml:"wrap_around"`
	LeafOnly      bool `toml:"leaf_only"`
	SkipGroups    bool `toml:"skip_groups"`
	Search        bool `toml:"search"`
	FilterMatches bool `toml:"filter_matches"`
}

// Entry is one catalog row in display order. Group rows are headers, not
// selectable results.
type Entry struct {
	Label string `toml:"label"`
	Group bool   `toml:"group,omitempty"`
}

// Service handles configuration management
type Service interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// service is the concrete implementation
type service struct {
	filePath string
}

// NewService creates a config service rooted at the user config directory.
func NewService() Service {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	dir := filepath.Join(configDir, "quickpick")
	os.MkdirAll(dir, 0755)

	return &service{
		filePath: filepath.Join(dir, "config.toml"),
	}
}

// NewServiceAt creates a config service backed by an explicit file path.
func NewServiceAt(path string) Service {
	return &service{filePath: path}
}

// Load loads the configuration from file, falling back to defaults when the
// file does not exist yet.
func (s *service) Load() (*Config, error) {
	if _, err := os.Stat(s.filePath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	return s.LoadFromPath(s.filePath)
}

// Save saves the configuration to file
func (s *service) Save(config *Config) error {
	return s.SaveToPath(config, s.filePath)
}

// LoadFromPath loads configuration from a specific path
func (s *service) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Unset page size means "use the default", not "page by zero".
	if cfg.Picker.PageSize <= 0 {
		cfg.Picker.PageSize = DefaultConfig().Picker.PageSize
	}

	return &cfg, nil
}

// SaveToPath saves configuration to a specific path
func (s *service) SaveToPath(config *Config, path string) error {
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
		Picker: Picker{
			PageSize:   10,
			WrapAround: true,
			LeafOnly:   true,
			SkipGroups: true,
			Search:     true,
		},
	}
}
