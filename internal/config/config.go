// Package config manages protomod configuration.
//
// Settings describing the local toolchain (protoc location, output plugin,
// standing include paths) live in an optional .protomod.yaml next to the
// schemas, so a repository can pin its generator setup without every
// invocation repeating it. Flags override the file, the file overrides
// defaults, and PROTOMOD_PROTOC overrides the protoc location everywhere.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the config file protomod looks for in the working
// directory when no --config flag is given.
const DefaultFile = ".protomod.yaml"

// Config holds the generator toolchain settings.
type Config struct {
	// Protoc is the path to the protoc binary
	Protoc string `yaml:"protoc"`

	// Plugin is the generator output plugin name (e.g. "prost")
	Plugin string `yaml:"plugin"`

	// ExtraArgs are appended verbatim to every generator invocation
	ExtraArgs []string `yaml:"extra_args"`

	// Includes are schema import paths added to every compile
	Includes []string `yaml:"includes"`
}

// Default returns the built-in configuration. PROTOMOD_PROTOC overrides the
// protoc location.
func Default() *Config {
	cfg := &Config{
		Protoc: "protoc",
		Plugin: "prost",
	}
	if protoc := os.Getenv("PROTOMOD_PROTOC"); protoc != "" {
		cfg.Protoc = protoc
	}
	return cfg
}

// Load reads the config file at path on top of the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if cfg.Protoc == "" {
		cfg.Protoc = "protoc"
	}
	if cfg.Plugin == "" {
		cfg.Plugin = "prost"
	}
	if protoc := os.Getenv("PROTOMOD_PROTOC"); protoc != "" {
		cfg.Protoc = protoc
	}
	return cfg, nil
}

// LoadOrDefault loads the config file at path, or the default file when
// path is empty. A missing default file is not an error; a missing explicit
// file is.
func LoadOrDefault(path string) (*Config, error) {
	if path != "" {
		return Load(path)
	}

	cfg, err := Load(DefaultFile)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}
