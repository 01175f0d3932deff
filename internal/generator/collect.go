package generator

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"protomod/internal/fsops"
	"protomod/internal/planner"
)

// OutputExt is the extension of the generator's flat output files.
const OutputExt = ".rs"

// Collect reads the generator's flat output directory and returns one
// artifact per generated file. File names map straight to package names:
// "crabs.disney.rs" holds package crabs.disney, and "_.rs" the unnamed
// package. Artifacts are returned sorted by package name so downstream
// errors are stable.
func Collect(fsys fsops.FS, dir string) ([]planner.Artifact, error) {
	var artifacts []planner.Artifact

	err := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("failed to read the generated output directory: %w", err)
		}
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), OutputExt) {
			return nil
		}

		content, err := fsys.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read generated file %s: %w", path, err)
		}

		artifacts = append(artifacts, planner.Artifact{
			Package: strings.TrimSuffix(entry.Name(), OutputExt),
			Content: content,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(artifacts, func(i, j int) bool {
		return artifacts[i].Package < artifacts[j].Package
	})
	return artifacts, nil
}
