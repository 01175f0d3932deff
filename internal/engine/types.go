package engine

import "protomod/internal/planner"

// BuildRequest represents a request to compile schemas into a module tree.
type BuildRequest struct {
	// Source is the directory containing the protobuf schemas
	Source string

	// Output is the directory receiving the module tree (default "out")
	Output string

	// Includes are additional schema import paths
	Includes []string

	// TempDir overrides where the temporary working directory is created
	TempDir string

	// DescriptorSetPath, when set, keeps an encoded FileDescriptorSet
	// there and cross-checks it against the planned tree
	DescriptorSetPath string

	// BuildClient requests RPC client code
	BuildClient bool

	// BuildServer requests RPC server stubs
	BuildServer bool

	// WellKnownTypes requests compilation of the well-known types
	WellKnownTypes bool

	// KeepOutput leaves an existing output directory in place instead of
	// recreating it; colliding files then fail the run
	KeepOutput bool

	// DryRun computes the emission plan without writing output files
	DryRun bool
}

// BuildResult represents the result of a build.
type BuildResult struct {
	// Plan is the emission plan that was (or would be) materialized
	Plan planner.EmissionPlan

	// OutputDir is the resolved output directory
	OutputDir string

	// PatchedSchemas is the number of schema files fed to the generator
	PatchedSchemas int

	// Rewritten is the number of schemas whose edition declaration was
	// patched to proto3 syntax
	Rewritten int

	// Artifacts is the number of flat generated packages collected
	Artifacts int

	// Packages are the packages declared in the descriptor set, when one
	// was requested
	Packages []string

	// MissingPackages are descriptor-set packages with no generated
	// artifact, when a descriptor set was requested
	MissingPackages []string
}

// PatchRequest represents a request to patch schemas without compiling.
type PatchRequest struct {
	// Source is the directory containing the protobuf schemas
	Source string

	// Dest is the directory receiving the patched schemas
	Dest string
}

// PatchResult represents the result of a standalone patch.
type PatchResult struct {
	// Files are the patched schema paths under the destination
	Files []string

	// Rewritten is the number of schemas whose edition declaration was
	// patched
	Rewritten int
}
