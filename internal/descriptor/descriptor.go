// Package descriptor inspects the FileDescriptorSet emitted alongside a
// generator run.
//
// The descriptor set is the generator's own account of what it compiled;
// comparing its declared packages against the collected artifacts catches a
// generator that silently skipped a package before the broken tree ships.
package descriptor

import (
	"fmt"
	"sort"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/descriptorpb"

	"protomod/internal/fsops"
	"protomod/internal/planner"
)

// Load reads and decodes an encoded FileDescriptorSet.
func Load(fsys fsops.FS, path string) (*descriptorpb.FileDescriptorSet, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read the file descriptor set: %w", err)
	}

	var fds descriptorpb.FileDescriptorSet
	if err := proto.Unmarshal(data, &fds); err != nil {
		return nil, fmt.Errorf("failed to decode the file descriptor set: %w", err)
	}
	return &fds, nil
}

// Packages returns the distinct packages declared across the set, sorted.
// Files without a package declaration count as the unnamed package.
func Packages(fds *descriptorpb.FileDescriptorSet) []string {
	seen := make(map[string]struct{})
	for _, file := range fds.GetFile() {
		seen[packageOf(file)] = struct{}{}
	}

	packages := make([]string, 0, len(seen))
	for pkg := range seen {
		packages = append(packages, pkg)
	}
	sort.Strings(packages)
	return packages
}

// Missing returns packages declared in the set that have no collected
// artifact, sorted. A non-empty result means generated code went missing
// between the generator and the planner.
func Missing(fds *descriptorpb.FileDescriptorSet, artifacts []planner.Artifact) []string {
	collected := make(map[string]struct{}, len(artifacts))
	for _, artifact := range artifacts {
		collected[artifact.Package] = struct{}{}
	}

	var missing []string
	for _, pkg := range Packages(fds) {
		if _, ok := collected[pkg]; !ok {
			missing = append(missing, pkg)
		}
	}
	return missing
}

func packageOf(file *descriptorpb.FileDescriptorProto) string {
	if pkg := file.GetPackage(); pkg != "" {
		return pkg
	}
	return planner.RootPackage
}
