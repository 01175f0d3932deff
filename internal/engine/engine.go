// Package engine provides the core business logic for protomod operations.
//
// The engine package acts as the orchestration layer between CLI commands
// and lower-level operations. It coordinates schema patching, the external
// code generator, module tree planning, and file emission.
//
// Key components:
//   - Engine: Main orchestrator that coordinates all operations
//   - Build: The patch -> generate -> plan -> emit pipeline
//   - Patch: Standalone schema edition patching
//
// Every pipeline is single-shot and fail-fast: a structural problem aborts
// the whole run, since partially generated code is unsafe to publish.
package engine

import (
	"protomod/internal/config"
	"protomod/internal/fsops"
	"protomod/internal/generator"
)

// Engine orchestrates all protomod operations.
// It is the main API surface called by the CLI.
type Engine struct {
	fs     fsops.FS
	runner generator.Runner
	cfg    *config.Config
}

// New creates a new Engine with the given dependencies.
func New(fs fsops.FS, runner generator.Runner, cfg *config.Config) *Engine {
	return &Engine{
		fs:     fs,
		runner: runner,
		cfg:    cfg,
	}
}
