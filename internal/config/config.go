package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/fenilsonani/dupescan/pkg/utils"
)

// Config represents the application configuration
type Config struct {
	// ScanRoots are the directories scanned for duplicates and large
	// files. Empty means the platform's default user directories.
	ScanRoots []string `yaml:"scan_roots"`

	MinFileSize string   `yaml:"min_file_size"` // e.g. "1MB"
	MaxDepth    int      `yaml:"max_depth"`
	ExcludeDirs []string `yaml:"exclude_dirs"`
	SkipHidden  bool     `yaml:"skip_hidden"`

	// ProtectedMarkers extend the platform's protected-location list.
	ProtectedMarkers []string `yaml:"protected_markers"`

	FingerprintStrategy string `yaml:"fingerprint_strategy"` // sampled, full, sha256
	VerifyBeforeDelete  bool   `yaml:"verify_before_delete"`

	OutputFormat string `yaml:"output_format"` // summary, table, json, yaml
	Verbose      bool   `yaml:"verbose"`

	// LargeFileCategories maps a category name to the extensions
	// (without leading dots) classified under it.
	LargeFileCategories map[string][]string `yaml:"large_file_categories"`
}

// MinFileSizeBytes returns the parsed minimum file size.
func (c *Config) MinFileSizeBytes() (int64, error) {
	if c.MinFileSize == "" {
		return 0, nil
	}
	return utils.ParseSize(c.MinFileSize)
}

// Load loads configuration from a file
func Load(configPath string) (*Config, error) {
	// If config doesn't exist, return default config
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return GetDefault(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Save saves configuration to a file
func Save(config *Config, configPath string) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.MaxDepth < 0 {
		return fmt.Errorf("max depth must be >= 0")
	}

	if c.MinFileSize != "" {
		if _, err := utils.ParseSize(c.MinFileSize); err != nil {
			return fmt.Errorf("invalid min file size %q: %w", c.MinFileSize, err)
		}
	}

	switch c.FingerprintStrategy {
	case "", "sampled", "full", "sha256":
	default:
		return fmt.Errorf("unknown fingerprint strategy: %s", c.FingerprintStrategy)
	}

	switch c.OutputFormat {
	case "", "summary", "table", "json", "yaml":
	default:
		return fmt.Errorf("unknown output format: %s", c.OutputFormat)
	}

	for _, root := range c.ScanRoots {
		if !filepath.IsAbs(root) {
			return fmt.Errorf("scan root must be absolute: %s", root)
		}
	}

	return nil
}

// GetConfigPath returns the default config path
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	configDir := filepath.Join(homeDir, ".config", "dupescan")
	return filepath.Join(configDir, "config.yaml"), nil
}

// EnsureConfigExists creates a default config file if it doesn't exist
func EnsureConfigExists() (string, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return "", err
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := Save(GetDefault(), configPath); err != nil {
			return "", err
		}
	}

	return configPath, nil
}
