// Copyright (c) 2025 complex (complex@ft.hn)
// See LICENSE for licensing information

// Package config loads the idcard command configuration from YAML or JSON
// with environment overrides.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// EnvPath names the environment variable holding the config file path
const EnvPath = "IDCARD_CONFIG"

var (
	ErrInvalidFormat = errors.New("invalid configuration file format")
	ErrInvalidValue  = errors.New("invalid configuration value")
)

// Config is the command configuration
type Config struct {
	// Lang is a BCP 47 tag selecting the output labels
	Lang string `yaml:"lang" json:"lang" validate:"required,oneof=zh zh-Hans zh-CN en en-US en-GB"`

	// Output is "text" or "json"
	Output string `yaml:"output" json:"output" validate:"required,oneof=text json"`

	// RegionsFile replaces the packaged region table when set
	RegionsFile string `yaml:"regions_file" json:"regions_file"`

	// PseudonymSalt keys the pseudonym command
	PseudonymSalt string `yaml:"pseudonym_salt" json:"pseudonym_salt"`

	Log LogConfig `yaml:"log" json:"log"`
}

// LogConfig controls diagnostics written by the command
type LogConfig struct {
	Level string `yaml:"level" json:"level" validate:"required,oneof=debug info warn error"`
	File  string `yaml:"file" json:"file"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Default returns the configuration used when no file exists
func Default() *Config {
	return &Config{
		Lang:   "zh-Hans",
		Output: "text",
		Log:    LogConfig{Level: "warn"},
	}
}

// Load reads the file at path, or at $IDCARD_CONFIG when path is empty.
// A missing file yields the defaults. Environment overrides are applied
// last and the result is validated.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvPath)
	}

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config: %w", err)
		default:
			if err := decode(path, data, cfg); err != nil {
				return nil, err
			}
		}
	}

	mergeEnvVars(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decode(path string, data []byte, cfg *Config) error {
	switch ext := filepath.Ext(path); ext {
	case ".json":
		if err := json.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("%w: JSON parsing failed: %v", ErrInvalidFormat, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("%w: YAML parsing failed: %v", ErrInvalidFormat, err)
		}
	default:
		return fmt.Errorf("%w: unsupported config file format: %s", ErrInvalidFormat, ext)
	}
	return nil
}

// mergeEnvVars applies IDCARD_* overrides
func mergeEnvVars(cfg *Config) {
	if v := os.Getenv("IDCARD_LANG"); v != "" {
		cfg.Lang = v
	}
	if v := os.Getenv("IDCARD_OUTPUT"); v != "" {
		cfg.Output = v
	}
	if v := os.Getenv("IDCARD_REGIONS_FILE"); v != "" {
		cfg.RegionsFile = v
	}
	if v := os.Getenv("IDCARD_PSEUDONYM_SALT"); v != "" {
		cfg.PseudonymSalt = v
	}
	if v := os.Getenv("IDCARD_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
}

// Validate checks every field against its allowed values
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}
	fe := verrs[0]
	if fe.Tag() == "oneof" {
		return fmt.Errorf("%w: %s must be one of [%s], got %q", ErrInvalidValue, fe.Namespace(), fe.Param(), fe.Value())
	}
	return fmt.Errorf("%w: %s is %s", ErrInvalidValue, fe.Namespace(), fe.Tag())
}
