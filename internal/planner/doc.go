// Package planner converts the code generator's flat, dot-named output into
// a nested module tree and derives a deterministic file emission plan.
//
// The generator emits one source file per protobuf package, named after the
// full dotted package name (e.g. foo.bar.baz). The planner rebuilds the
// package hierarchy from those names, rejects duplicate and malformed
// packages, and plans one module file per tree node that re-exports the
// node's child modules and carries its own generated content.
//
// Key responsibilities:
//   - Build the module tree from flat artifacts (BuildTree)
//   - Fail fast on malformed or duplicate package names instead of silently
//     dropping generated code
//   - Derive a reproducible emission plan whose output is independent of the
//     order artifacts were supplied (Plan)
package planner
