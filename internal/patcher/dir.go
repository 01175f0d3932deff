package patcher

import (
	"bytes"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"protomod/internal/fsops"
)

// SchemaExt is the file extension of protobuf schema files.
const SchemaExt = ".proto"

// DirResult describes a patched schema tree.
type DirResult struct {
	// Files are the patched schema paths under the destination, sorted
	Files []string

	// Replaced is the number of schemas whose edition declaration was
	// rewritten
	Replaced int
}

// PatchDir walks srcDir for schema files, patches each into dstDir
// preserving the relative layout, and returns the destination paths. Files
// without a .proto extension are ignored.
func PatchDir(fsys fsops.FS, srcDir, dstDir string) (*DirResult, error) {
	result := &DirResult{}

	err := filepath.WalkDir(srcDir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("failed to read the schema directory: %w", err)
		}
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), SchemaExt) {
			return nil
		}

		rel, err := filepath.Rel(srcDir, path)
		if err != nil {
			return fmt.Errorf("failed to resolve schema path %s: %w", path, err)
		}

		data, err := fsys.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read schema %s: %w", path, err)
		}

		var patched bytes.Buffer
		outcome, err := PatchEdition(bytes.NewReader(data), &patched)
		if err != nil {
			return fmt.Errorf("failed to patch schema %s: %w", path, err)
		}

		dst := filepath.Join(dstDir, rel)
		if err := fsys.AtomicWrite(dst, patched.Bytes(), 0644); err != nil {
			return fmt.Errorf("failed to write patched schema %s: %w", dst, err)
		}

		result.Files = append(result.Files, dst)
		if outcome == Replaced {
			result.Replaced++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(result.Files)
	return result, nil
}
