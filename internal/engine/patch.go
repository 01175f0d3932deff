package engine

import (
	"context"
	"fmt"

	"protomod/internal/patcher"
)

// Patch rewrites edition declarations across a schema tree without running
// the generator.
func (e *Engine) Patch(ctx context.Context, req *PatchRequest) (*PatchResult, error) {
	if req.Source == "" {
		return nil, fmt.Errorf("%w: source path is required", ErrValidation)
	}
	if req.Dest == "" {
		return nil, fmt.Errorf("%w: destination path is required", ErrValidation)
	}

	info, err := e.fs.Lstat(req.Source)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot read source %s: %v", ErrValidation, req.Source, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: source %s is not a directory", ErrValidation, req.Source)
	}

	result, err := patcher.PatchDir(e.fs, req.Source, req.Dest)
	if err != nil {
		return nil, fmt.Errorf("failed to patch schemas: %w", err)
	}

	return &PatchResult{
		Files:     result.Files,
		Rewritten: result.Replaced,
	}, nil
}
