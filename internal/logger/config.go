package logger

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds logging configuration
type Config struct {
	Level          string `yaml:"level"`
	Format         string `yaml:"format"`
	FileEnabled    bool   `yaml:"file_enabled"`
	FilePath       string `yaml:"file_path"`
	FileFormat     string `yaml:"file_format"`
	FileMaxSizeMB  int    `yaml:"file_max_size_mb"`
	FileMaxBackups int    `yaml:"file_max_backups"`
	FileMaxAgeDays int    `yaml:"file_max_age_days"`
}

type fileConfig struct {
	Logging Config `yaml:"logging"`
}

// DefaultConfig logs warnings and above as text to stderr, no file.
func DefaultConfig() Config {
	return Config{
		Level:          "WARN",
		Format:         "text",
		FilePath:       "logs/dicesim.log",
		FileFormat:     "json",
		FileMaxSizeMB:  10,
		FileMaxBackups: 3,
		FileMaxAgeDays: 14,
	}
}

// LoadConfig reads the logging section of a YAML file and applies
// DICESIM_LOG_* environment overrides. A missing file yields defaults;
// a malformed one is an error.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return config, fmt.Errorf("failed to read logging config: %w", err)
		default:
			var fc fileConfig
			if err := yaml.Unmarshal(data, &fc); err != nil {
				return config, fmt.Errorf("failed to parse logging config: %w", err)
			}
			config = merge(config, fc.Logging)
		}
	}

	if v := os.Getenv("DICESIM_LOG_LEVEL"); v != "" {
		config.Level = v
	}
	if v := os.Getenv("DICESIM_LOG_FORMAT"); v != "" {
		config.Format = v
	}
	if v := os.Getenv("DICESIM_LOG_FILE_ENABLED"); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			config.FileEnabled = enabled
		}
	}
	if v := os.Getenv("DICESIM_LOG_FILE_PATH"); v != "" {
		config.FilePath = v
	}

	return config, nil
}

// merge overlays the non-zero fields of loaded onto base.
func merge(base, loaded Config) Config {
	if loaded.Level != "" {
		base.Level = loaded.Level
	}
	if loaded.Format != "" {
		base.Format = loaded.Format
	}
	base.FileEnabled = loaded.FileEnabled
	if loaded.FilePath != "" {
		base.FilePath = loaded.FilePath
	}
	if loaded.FileFormat != "" {
		base.FileFormat = loaded.FileFormat
	}
	if loaded.FileMaxSizeMB > 0 {
		base.FileMaxSizeMB = loaded.FileMaxSizeMB
	}
	if loaded.FileMaxBackups > 0 {
		base.FileMaxBackups = loaded.FileMaxBackups
	}
	if loaded.FileMaxAgeDays > 0 {
		base.FileMaxAgeDays = loaded.FileMaxAgeDays
	}
	return base
}
