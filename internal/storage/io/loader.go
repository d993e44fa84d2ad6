package io

import (
	"context"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"

	"github.com/taskdeck/taskdeck/internal/model"
)

// ConfigYAMLRepository loads application configuration from YAML files.
type ConfigYAMLRepository struct {
	fs fs.FS
}

// NewConfigYAMLRepository creates a new YAML config repository.
func NewConfigYAMLRepository(filesystem fs.FS) *ConfigYAMLRepository {
	return &ConfigYAMLRepository{fs: filesystem}
}

// GetConfig loads an application configuration from a YAML file and returns a
// validated domain model. Missing fields keep their zero values so the caller
// can layer defaults and flag overrides on top.
func (r *ConfigYAMLRepository) GetConfig(ctx context.Context, path string) (model.AppConfig, error) {
	data, err := fs.ReadFile(r.fs, path)
	if err != nil {
		return model.AppConfig{}, fmt.Errorf("reading config file: %w", err)
	}

	if ctx.Err() != nil {
		return model.AppConfig{}, ctx.Err()
	}

	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return model.AppConfig{}, fmt.Errorf("parsing YAML: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return model.AppConfig{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg.toModel(), nil
}

// AppConfig represents the YAML structure for application configuration.
type AppConfig struct {
	Store  StoreConfig  `yaml:"store"`
	Logger LoggerConfig `yaml:"logger"`
}

// StoreConfig represents the YAML structure for store configuration.
type StoreConfig struct {
	Backend string `yaml:"backend"`
	Path    string `yaml:"path"`
}

// LoggerConfig represents the YAML structure for logger configuration.
type LoggerConfig struct {
	Type  string `yaml:"type"`
	Debug bool   `yaml:"debug"`
}

func (c AppConfig) validate() error {
	switch c.Store.Backend {
	case "", string(model.StoreBackendMemory), string(model.StoreBackendFile), string(model.StoreBackendSQLite):
	default:
		return fmt.Errorf("unknown store backend %q", c.Store.Backend)
	}

	switch c.Logger.Type {
	case "", "default", "json":
	default:
		return fmt.Errorf("unknown logger type %q", c.Logger.Type)
	}

	return nil
}

func (c AppConfig) toModel() model.AppConfig {
	return model.AppConfig{
		Store: model.StoreConfig{
			Backend: model.StoreBackend(c.Store.Backend),
			Path:    c.Store.Path,
		},
		Logger: model.LoggerConfig{
			Type:  c.Logger.Type,
			Debug: c.Logger.Debug,
		},
	}
}
