package engine

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"protomod/internal/descriptor"
	"protomod/internal/generator"
	"protomod/internal/patcher"
	"protomod/internal/planner"
)

// DefaultOutput is the output directory used when none is requested.
const DefaultOutput = "out"

// Algorithm steps:
// 1. Validate the source path
// 2. Prepare the output directory
// 3. Create a temporary working directory
// 4. Patch schema editions into the working directory
// 5. Run the external code generator
// 6. Collect flat artifacts and build the module tree
// 7. Derive the emission plan
// 8. Emit planned files (skipped on DryRun)
// 9. Cross-check the descriptor set, if requested
func (e *Engine) Build(ctx context.Context, req *BuildRequest) (*BuildResult, error) {
	if req.Source == "" {
		return nil, fmt.Errorf("%w: source path is required", ErrValidation)
	}
	info, err := e.fs.Lstat(req.Source)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot read source %s: %v", ErrValidation, req.Source, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: source %s is not a directory", ErrValidation, req.Source)
	}

	output := req.Output
	if output == "" {
		output = DefaultOutput
	}

	if !req.DryRun {
		if err := e.prepareOutput(output, req.KeepOutput); err != nil {
			return nil, err
		}
	}

	tempDir, err := os.MkdirTemp(req.TempDir, "protomod-")
	if err != nil {
		return nil, fmt.Errorf("failed to create a temporary working directory: %w", err)
	}
	defer func() {
		_ = os.RemoveAll(tempDir)
	}()

	patchedDir := filepath.Join(tempDir, "protos")
	patched, err := patcher.PatchDir(e.fs, req.Source, patchedDir)
	if err != nil {
		return nil, fmt.Errorf("failed to patch schemas: %w", err)
	}

	codeDir := filepath.Join(tempDir, "code")
	if err := e.fs.MkdirAll(codeDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create the generated code directory: %w", err)
	}

	includes := make([]string, 0, len(e.cfg.Includes)+len(req.Includes)+1)
	includes = append(includes, e.cfg.Includes...)
	includes = append(includes, req.Includes...)
	includes = append(includes, patchedDir)

	genReq := &generator.Request{
		Files:             patched.Files,
		Includes:          includes,
		OutDir:            codeDir,
		DescriptorSetPath: req.DescriptorSetPath,
		BuildClient:       req.BuildClient,
		BuildServer:       req.BuildServer,
		WellKnownTypes:    req.WellKnownTypes,
	}
	if err := e.runner.Generate(ctx, genReq); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerate, err)
	}

	artifacts, err := generator.Collect(e.fs, codeDir)
	if err != nil {
		return nil, fmt.Errorf("failed to collect generated artifacts: %w", err)
	}

	root, err := planner.BuildTree(artifacts)
	if err != nil {
		return nil, fmt.Errorf("failed to build the module tree: %w", err)
	}

	plan, err := planner.Plan(root)
	if err != nil {
		return nil, fmt.Errorf("failed to plan the module tree: %w", err)
	}

	result := &BuildResult{
		Plan:           plan,
		OutputDir:      output,
		PatchedSchemas: len(patched.Files),
		Rewritten:      patched.Replaced,
		Artifacts:      len(artifacts),
	}

	if !req.DryRun {
		if err := e.emit(plan, output, req.KeepOutput); err != nil {
			return nil, err
		}
	}

	if req.DescriptorSetPath != "" {
		fds, err := descriptor.Load(e.fs, req.DescriptorSetPath)
		if err != nil {
			return nil, err
		}
		result.Packages = descriptor.Packages(fds)
		result.MissingPackages = descriptor.Missing(fds, artifacts)
	}

	return result, nil
}

// prepareOutput recreates the output directory, or just ensures it exists
// when the caller asked to keep previous contents.
func (e *Engine) prepareOutput(output string, keep bool) error {
	if !keep {
		exists, err := e.fs.Exists(output)
		if err != nil {
			return fmt.Errorf("failed to check the output directory: %w", err)
		}
		if exists {
			if err := e.fs.RemoveAll(output); err != nil {
				return fmt.Errorf("failed to remove the previous output directory: %w", err)
			}
		}
	}

	if err := e.fs.MkdirAll(output, 0755); err != nil {
		return fmt.Errorf("failed to create the output directory: %w", err)
	}
	return nil
}
