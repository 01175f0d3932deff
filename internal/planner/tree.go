package planner

import (
	"fmt"
	"strings"
)

// Node is one segment of the module hierarchy. A node may carry generated
// content, child modules, or both: a package that is also a prefix of a
// deeper package (foo alongside foo.bar) is legal and keeps both.
type Node struct {
	children map[string]*Node
	artifact *Artifact
}

func newNode() *Node {
	return &Node{children: make(map[string]*Node)}
}

// BuildTree converts a set of flat artifacts into a module tree rooted at
// the returned node.
//
// Package names are split on "." and walked from the root, creating nodes as
// needed; the artifact's content attaches to the final node. Segments equal
// to RootPackage attach content to the current node instead of descending,
// which is how the unnamed package reaches the tree root.
//
// Fails with ErrEmptyInput when artifacts is empty, ErrMalformedPackage when
// a name has empty segments, and ErrDuplicatePackage when two artifacts land
// on the same terminal node.
func BuildTree(artifacts []Artifact) (*Node, error) {
	if len(artifacts) == 0 {
		return nil, ErrEmptyInput
	}

	root := newNode()
	for i := range artifacts {
		artifact := &artifacts[i]

		segments, err := splitPackage(artifact.Package)
		if err != nil {
			return nil, err
		}

		node := root
		for _, segment := range segments {
			if segment == RootPackage {
				continue
			}
			child, ok := node.children[segment]
			if !ok {
				child = newNode()
				node.children[segment] = child
			}
			node = child
		}

		if node.artifact != nil {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatePackage, artifact.Package)
		}
		node.artifact = artifact
	}

	return root, nil
}

// splitPackage validates a dotted package name and returns its segments.
func splitPackage(pkg string) ([]string, error) {
	if pkg == "" {
		return nil, fmt.Errorf("%w: empty package name", ErrMalformedPackage)
	}

	segments := strings.Split(pkg, ".")
	for _, segment := range segments {
		if segment == "" {
			return nil, fmt.Errorf("%w: %q contains an empty segment", ErrMalformedPackage, pkg)
		}
	}
	return segments, nil
}
