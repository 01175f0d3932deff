package planner

import (
	"bytes"
	"path"
	"sort"
)

// ModFileName is the module declaration file emitted for every tree node.
const ModFileName = "mod.rs"

// File is one planned output file.
type File struct {
	// Path is the file location relative to the output root, slash-separated
	Path string

	// Content is the exact bytes to write
	Content []byte
}

// EmissionPlan is the ordered list of output files derived from a module
// tree. Parent module files precede their children's.
type EmissionPlan []File

// Plan traverses the tree and derives its emission plan.
//
// Every node, the root included, emits exactly one module file at
// <segments...>/mod.rs: a "pub mod <child>;" line per immediate child sorted
// lexicographically, then a blank line if the node also carries content,
// then the node's generated content byte-for-byte. Sorting by segment name
// makes the plan invariant under permutation of the input artifacts, so
// repeated runs over the same packages produce byte-identical trees.
//
// Fails with ErrEmptyInput on an empty tree rather than planning nothing.
func Plan(root *Node) (EmissionPlan, error) {
	if root == nil || (len(root.children) == 0 && root.artifact == nil) {
		return nil, ErrEmptyInput
	}

	var plan EmissionPlan
	planNode(root, "", &plan)
	return plan, nil
}

func planNode(node *Node, dir string, plan *EmissionPlan) {
	names := make([]string, 0, len(node.children))
	for name := range node.children {
		names = append(names, name)
	}
	sort.Strings(names)

	var buf bytes.Buffer
	for _, name := range names {
		buf.WriteString("pub mod ")
		buf.WriteString(name)
		buf.WriteString(";\n")
	}
	if node.artifact != nil {
		if len(names) > 0 {
			buf.WriteByte('\n')
		}
		buf.Write(node.artifact.Content)
	}

	*plan = append(*plan, File{
		Path:    path.Join(dir, ModFileName),
		Content: buf.Bytes(),
	})

	for _, name := range names {
		planNode(node.children[name], path.Join(dir, name), plan)
	}
}
