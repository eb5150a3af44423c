// Package config resolves server configuration from defaults, an
// optional YAML file, and environment variable overrides, in that
// order.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Port            string   `yaml:"port"`
	MaxUploadSize   int64    `yaml:"max_upload_size"`
	InputDir        string   `yaml:"input_dir"`
	OutputDir       string   `yaml:"output_dir"`
	StaticDir       string   `yaml:"static_dir"`
	DBPath          string   `yaml:"db_path"`
	PipelineCommand []string `yaml:"pipeline_command"`
	LogLevel        string   `yaml:"log_level"`
}

func Default() Config {
	return Config{
		Port:          "8080",
		MaxUploadSize: 104857600,
		InputDir:      "./input",
		OutputDir:     "./output",
		StaticDir:     "./static",
		DBPath:        "./videos.db",
		LogLevel:      "info",
	}
}

// Load builds the effective configuration. path may be empty; a
// missing file at the default location is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if path == "" {
		path = "config.yaml"
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	case explicit:
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("PORT"); v != "" {
		c.Port = v
	}
	if v := os.Getenv("MAX_UPLOAD_SIZE"); v != "" {
		size, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid MAX_UPLOAD_SIZE: %w", err)
		}
		c.MaxUploadSize = size
	}
	if v := os.Getenv("INPUT_DIR"); v != "" {
		c.InputDir = v
	}
	if v := os.Getenv("OUTPUT_DIR"); v != "" {
		c.OutputDir = v
	}
	if v := os.Getenv("STATIC_DIR"); v != "" {
		c.StaticDir = v
	}
	if v := os.Getenv("DB_PATH"); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	return nil
}
