package engine

import (
	"fmt"
	"path/filepath"

	"protomod/internal/planner"
)

// emit materializes the emission plan under the output directory. Planned
// paths are validated before any write so a malformed plan cannot escape
// the output root. With keep set, colliding files fail instead of being
// overwritten.
func (e *Engine) emit(plan planner.EmissionPlan, output string, keep bool) error {
	for _, file := range plan {
		if err := e.fs.ValidateRelPath(file.Path); err != nil {
			return fmt.Errorf("refusing to emit %q: %w", file.Path, err)
		}
	}

	for _, file := range plan {
		dest := filepath.Join(output, filepath.FromSlash(file.Path))

		var err error
		if keep {
			err = e.fs.WriteFileNew(dest, file.Content, 0644)
		} else {
			err = e.fs.AtomicWrite(dest, file.Content, 0644)
		}
		if err != nil {
			return fmt.Errorf("failed to emit %s: %w", file.Path, err)
		}
	}
	return nil
}
