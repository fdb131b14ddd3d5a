package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const configFileName = ".recteditrc.yaml"

type Config struct {
	SaveDirectory   string        `yaml:"save_directory"`
	StateFile       string        `yaml:"state_file"`
	ExportDirectory string        `yaml:"export_directory"`
	ClampCursor     bool          `yaml:"clamp_cursor"`
	TickInterval    time.Duration `yaml:"tick_interval"`
}

func defaultConfig() *Config {
	return &Config{
		StateFile:    defaultStateFile,
		TickInterval: 16 * time.Millisecond,
	}
}

// loadConfig reads ~/.recteditrc.yaml. A missing or broken file leaves the
// defaults in place.
func loadConfig() *Config {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return defaultConfig()
	}
	config, err := loadConfigFile(filepath.Join(homeDir, configFileName), homeDir)
	if err != nil {
		return defaultConfig()
	}
	return config
}

func loadConfigFile(path, homeDir string) (*Config, error) {
	config := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return defaultConfig(), fmt.Errorf("yaml unmarshal: %w", err)
	}

	config.SaveDirectory = expandDir(config.SaveDirectory, homeDir)
	config.ExportDirectory = expandDir(config.ExportDirectory, homeDir)
	if config.StateFile == "" {
		config.StateFile = defaultStateFile
	}
	if config.TickInterval <= 0 {
		config.TickInterval = defaultConfig().TickInterval
	}
	return config, nil
}

func expandDir(value, homeDir string) string {
	if value == "" {
		return ""
	}
	if strings.HasPrefix(value, "~") {
		value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
	}
	if !filepath.IsAbs(value) {
		if absPath, err := filepath.Abs(value); err == nil {
			value = absPath
		}
	}
	return value
}

// GetSavePath resolves filename against the save directory.
func (c *Config) GetSavePath(filename string) string {
	if c.SaveDirectory == "" || filepath.IsAbs(filename) {
		return filename
	}
	return filepath.Join(c.SaveDirectory, filename)
}

// GetExportPath resolves filename against the export directory, creating the
// directory if needed.
func (c *Config) GetExportPath(filename string) (string, error) {
	if c.ExportDirectory == "" {
		return filename, nil
	}
	if err := os.MkdirAll(c.ExportDirectory, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}
	return filepath.Join(c.ExportDirectory, filename), nil
}
