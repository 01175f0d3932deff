package planner

// RootPackage is the name the generator gives to output declared without a
// protobuf package. Its content attaches to the root of the module tree.
const RootPackage = "_"

// Artifact is one flat generated output unit, keyed by the dotted package
// name it was generated for.
type Artifact struct {
	// Package is the dot-delimited package name (e.g. "foo.bar.baz"), or
	// RootPackage for the unnamed package
	Package string

	// Content is the generated source, carried byte-for-byte into the plan
	Content []byte
}
