package main

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/hmartens/cpp2capnp/encode"
)

// fileConfig mirrors the flag surface for YAML configuration. Flags
// already set on the command line take precedence.
type fileConfig struct {
	Mode   string `yaml:"mode"` // strict (default) or lenient
	Output string `yaml:"output"`
	Dir    string `yaml:"dir"`
	Filter string `yaml:"filter"`
	FileID string `yaml:"fileID"`
}

func (cfg *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	fc := &fileConfig{}
	if err := yaml.Unmarshal(data, fc); err != nil {
		return fmt.Errorf("config %q: %w", path, err)
	}
	if cfg.Output == "" {
		cfg.Output = fc.Output
	}
	if cfg.Dir == "" {
		cfg.Dir = fc.Dir
	}
	if cfg.Filter == "" {
		cfg.Filter = fc.Filter
	}
	if cfg.FileID == "" {
		cfg.FileID = fc.FileID
	}
	switch fc.Mode {
	case "", "strict":
	case "lenient":
		cfg.Lenient = true
	default:
		return fmt.Errorf("config %q: unknown mode %q", path, fc.Mode)
	}
	return nil
}

func (cfg *Config) applyDefaults() {
	if cfg.Output == "" {
		cfg.Output = "generated.capnp"
	}
	if cfg.Dir == "" {
		cfg.Dir = "."
	}
	if cfg.FileID == "" {
		cfg.FileID = encode.DefaultFileID
	}
	if cfg.Color == "" {
		cfg.Color = "auto"
	}
}
