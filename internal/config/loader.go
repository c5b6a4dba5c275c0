package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".onekp"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File represents the structure of the .onekp configuration file.
// All fields are optional; zero values mean "keep the current setting".
// Durations use Go duration syntax ("3s", "1h30m").
type File struct {
	// MetadataURL overrides the sample metadata table location.
	MetadataURL string `yaml:"metadataURL,omitempty"`

	// AssembliesURL overrides the assemblies directory listing location.
	AssembliesURL string `yaml:"assembliesURL,omitempty"`

	// Interval overrides the minimum time between requests.
	Interval string `yaml:"interval,omitempty"`

	// MaxRetry overrides the number of attempts per URL.
	MaxRetry int `yaml:"maxRetry,omitempty"`

	// CacheDir overrides the bootstrap document cache directory.
	CacheDir string `yaml:"cacheDir,omitempty"`

	// CacheTTL overrides the cache staleness threshold.
	CacheTTL string `yaml:"cacheTTL,omitempty"`

	// UserAgent overrides the HTTP User-Agent header.
	UserAgent string `yaml:"userAgent,omitempty"`
}

// Apply merges the file's settings into cfg. Only fields that are set in
// the file are applied; everything else keeps its current value. Duration
// fields that fail to parse return an error naming the field.
func (cf *File) Apply(cfg *Config) error {
	if cf.MetadataURL != "" {
		cfg.MetadataURL = cf.MetadataURL
	}
	if cf.AssembliesURL != "" {
		cfg.AssembliesURL = cf.AssembliesURL
	}
	if cf.Interval != "" {
		d, err := time.ParseDuration(cf.Interval)
		if err != nil {
			return fmt.Errorf("config file: invalid interval: %w", err)
		}
		cfg.Interval = d
	}
	if cf.MaxRetry != 0 {
		cfg.MaxRetry = cf.MaxRetry
	}
	if cf.CacheDir != "" {
		cfg.CacheDir = cf.CacheDir
	}
	if cf.CacheTTL != "" {
		d, err := time.ParseDuration(cf.CacheTTL)
		if err != nil {
			return fmt.Errorf("config file: invalid cacheTTL: %w", err)
		}
		cfg.CacheTTL = d
	}
	if cf.UserAgent != "" {
		cfg.UserAgent = cf.UserAgent
	}
	return nil
}

// LoadConfigFile loads settings from a YAML file.
// If the file does not exist, it returns ErrConfigNotFound.
// Callers should handle this error appropriately based on whether
// the config file path was explicitly specified by the user.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}

	return &cf, nil
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .onekp in the current directory
// 3. Look for .onekp in the user's home directory
//
// Returns the path to the configuration file if found, or empty string if not found.
func FindConfigFile(configPath string) string {
	// If explicit path is provided, use it
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	// Check current directory
	cwd, err := os.Getwd()
	if err == nil {
		cwdConfig := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(cwdConfig); err == nil {
			return cwdConfig
		}
	}

	// Check home directory
	home, err := os.UserHomeDir()
	if err == nil {
		homeConfig := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(homeConfig); err == nil {
			return homeConfig
		}
	}

	return ""
}
