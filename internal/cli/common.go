package cli

import (
	"fmt"

	"protomod/internal/config"
	"protomod/internal/engine"
	"protomod/internal/fsops"
	"protomod/internal/generator"
)

// newEngine creates a new engine with real implementations of all
// dependencies, configured from the given config file path ("" means the
// default location).
func newEngine(configPath string) (*engine.Engine, error) {
	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	fs := fsops.NewRealFS()
	runner := &generator.Protoc{
		Binary:    cfg.Protoc,
		Plugin:    cfg.Plugin,
		ExtraArgs: cfg.ExtraArgs,
	}

	return engine.New(fs, runner, cfg), nil
}
