package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	DefaultCategory string `yaml:"default_category"`
	DefaultSort     string `yaml:"default_sort"`
	ReverseSort     bool   `yaml:"reverse_sort"`
	FileManager     string `yaml:"file_manager"`
	CopyPathOnAdd   bool   `yaml:"copy_path_on_add"`

	// UI Settings
	DisplayDateFormat string `yaml:"display_date_format"`
	ColorTheme        string `yaml:"color_theme"`
	TableWidth        int    `yaml:"table_width"`

	// Search Settings
	MaxSearchResults int `yaml:"max_search_results"`

	// Watcher
	WatchDebounceMS int  `yaml:"watch_debounce_ms"`
	WatchRemoveDrop bool `yaml:"watch_remove_drop"`
}

// DefaultConfig returns a Config struct with default values
func DefaultConfig() *Config {
	return &Config{
		DefaultCategory:   "other",
		DefaultSort:       "date",
		ReverseSort:       false,
		FileManager:       "",
		CopyPathOnAdd:     true,
		DisplayDateFormat: "2006-01-02",
		ColorTheme:        "auto",
		TableWidth:        0,
		MaxSearchResults:  50,
		WatchDebounceMS:   500,
		WatchRemoveDrop:   false,
	}
}

// Load reads configuration from the specified file path
func Load(path string) (*Config, error) {
	// Start with default config
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		// If file doesn't exist, return default config (not an error)
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply defaults for essential values if missing
	if cfg.DefaultCategory == "" {
		cfg.DefaultCategory = "other"
	}
	if cfg.DefaultSort == "" {
		cfg.DefaultSort = "date"
	}
	if cfg.DisplayDateFormat == "" {
		cfg.DisplayDateFormat = "2006-01-02"
	}
	if cfg.MaxSearchResults <= 0 {
		cfg.MaxSearchResults = 50
	}
	if cfg.WatchDebounceMS <= 0 {
		cfg.WatchDebounceMS = 500
	}

	if !isValidSort(cfg.DefaultSort) {
		cfg.DefaultSort = "date"
	}

	return cfg, nil
}

// Save persists the current configuration to the specified file path
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// isValidSort checks if the default sort field is valid
func isValidSort(sort string) bool {
	validSorts := []string{"date", "name", "category"}
	for _, valid := range validSorts {
		if sort == valid {
			return true
		}
	}
	return false
}
