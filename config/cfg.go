// Package config defines program configuration and its preparation helpers.
package config

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"
)

type (
	LoggerConfig struct {
		Level       string `yaml:"level"`
		Destination string `yaml:"destination,omitempty"`
		Mode        string `yaml:"mode,omitempty"`
	}

	LoggingConfig struct {
		FileLogger    LoggerConfig `yaml:"file"`
		ConsoleLogger LoggerConfig `yaml:"console"`
	}

	ExportConfig struct {
		SiteTitle  string `yaml:"site_title,omitempty"`
		Stylesheet string `yaml:"stylesheet,omitempty"`
	}

	Config struct {
		Logging LoggingConfig `yaml:"logging"`
		Export  ExportConfig  `yaml:"export"`
	}
)

func defaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			ConsoleLogger: LoggerConfig{Level: "normal"},
			FileLogger:    LoggerConfig{Level: "none", Mode: "append"},
		},
	}
}

// LoadConfiguration reads YAML configuration from path. An empty path means
// defaults only.
func LoadConfiguration(path string) (*Config, error) {
	cfg := defaultConfig()
	if len(path) == 0 {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read configuration: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("unable to parse configuration: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Prepare returns the default configuration serialized to YAML.
func Prepare() ([]byte, error) {
	return Dump(defaultConfig())
}

// Dump serializes active configuration values back to YAML.
func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("unable to serialize configuration: %w", err)
	}
	return data, nil
}

func (c *Config) validate() error {
	for name, lc := range map[string]LoggerConfig{"console": c.Logging.ConsoleLogger, "file": c.Logging.FileLogger} {
		switch lc.Level {
		case "", "none", "normal", "debug":
		default:
			return fmt.Errorf("unknown %s log level %q", name, lc.Level)
		}
		switch lc.Mode {
		case "", "append", "overwrite":
		default:
			return fmt.Errorf("unknown %s log mode %q", name, lc.Mode)
		}
	}
	fl := c.Logging.FileLogger
	if (fl.Level == "normal" || fl.Level == "debug") && len(fl.Destination) == 0 {
		return fmt.Errorf("file logging requested without destination")
	}
	return nil
}
