package planner

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPlan(t *testing.T, artifacts []Artifact) EmissionPlan {
	t.Helper()

	root, err := BuildTree(artifacts)
	require.NoError(t, err)

	plan, err := Plan(root)
	require.NoError(t, err)
	return plan
}

func TestPlan_NestedTree(t *testing.T) {
	plan := mustPlan(t, []Artifact{
		{Package: RootPackage, Content: []byte("struct Root;\n")},
		{Package: "a.b.c", Content: []byte("struct Branch;\n")},
		{Package: "a.b.c.d", Content: []byte("struct Leaf;\n")},
		{Package: "z", Content: []byte("struct Parallel;\n")},
	})

	want := EmissionPlan{
		{Path: "mod.rs", Content: []byte("pub mod a;\npub mod z;\n\nstruct Root;\n")},
		{Path: "a/mod.rs", Content: []byte("pub mod b;\n")},
		{Path: "a/b/mod.rs", Content: []byte("pub mod c;\n")},
		{Path: "a/b/c/mod.rs", Content: []byte("pub mod d;\n\nstruct Branch;\n")},
		{Path: "a/b/c/d/mod.rs", Content: []byte("struct Leaf;\n")},
		{Path: "z/mod.rs", Content: []byte("struct Parallel;\n")},
	}

	if diff := cmp.Diff(want, plan); diff != "" {
		t.Errorf("emission plan mismatch (-want +got):\n%s", diff)
	}
}

func TestPlan_LeafAndInternalNode(t *testing.T) {
	plan := mustPlan(t, []Artifact{
		{Package: "a", Content: []byte("struct A;\n")},
		{Package: "a.b", Content: []byte("struct B;\n")},
	})

	want := EmissionPlan{
		{Path: "mod.rs", Content: []byte("pub mod a;\n")},
		{Path: "a/mod.rs", Content: []byte("pub mod b;\n\nstruct A;\n")},
		{Path: "a/b/mod.rs", Content: []byte("struct B;\n")},
	}

	if diff := cmp.Diff(want, plan); diff != "" {
		t.Errorf("emission plan mismatch (-want +got):\n%s", diff)
	}
}

func TestPlan_OneContentFilePerArtifact(t *testing.T) {
	artifacts := []Artifact{
		{Package: "crabs", Content: []byte("struct Ferris;\n")},
		{Package: "crabs.disney.ariel", Content: []byte("struct Sebastian;\n")},
		{Package: "crabs.sponge_bob", Content: []byte("struct MrKrabs;\n")},
	}
	plan := mustPlan(t, artifacts)

	byPath := make(map[string]string, len(plan))
	for _, f := range plan {
		_, seen := byPath[f.Path]
		require.False(t, seen, "duplicate planned path %q", f.Path)
		byPath[f.Path] = string(f.Content)
	}

	for _, a := range artifacts {
		path := strings.ReplaceAll(a.Package, ".", "/") + "/" + ModFileName
		content, ok := byPath[path]
		require.True(t, ok, "no planned file for package %q at %q", a.Package, path)
		assert.True(t, strings.HasSuffix(content, string(a.Content)),
			"file %q should end with the package's generated content", path)
	}
}

func TestPlan_InvariantUnderInputOrder(t *testing.T) {
	artifacts := []Artifact{
		{Package: "a.b.c", Content: []byte("struct Branch;\n")},
		{Package: "a.b.c.d", Content: []byte("struct Leaf;\n")},
		{Package: "z", Content: []byte("struct Parallel;\n")},
		{Package: RootPackage, Content: []byte("struct Root;\n")},
	}

	reference := mustPlan(t, artifacts)

	// Rotate through every cyclic permutation of the input.
	for i := 1; i < len(artifacts); i++ {
		rotated := append(append([]Artifact{}, artifacts[i:]...), artifacts[:i]...)
		plan := mustPlan(t, rotated)

		if diff := cmp.Diff(reference, plan); diff != "" {
			t.Errorf("plan differs for rotation %d (-reference +got):\n%s", i, diff)
		}
	}
}

func TestPlan_Idempotent(t *testing.T) {
	root, err := BuildTree([]Artifact{
		{Package: "a", Content: []byte("struct A;\n")},
		{Package: "a.b", Content: []byte("struct B;\n")},
		{Package: "z", Content: []byte("struct Z;\n")},
	})
	require.NoError(t, err)

	first, err := Plan(root)
	require.NoError(t, err)
	second, err := Plan(root)
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("planning the same tree twice diverged (-first +second):\n%s", diff)
	}
}

func TestPlan_EmptyTree(t *testing.T) {
	_, err := Plan(nil)
	require.ErrorIs(t, err, ErrEmptyInput)

	_, err = Plan(newNode())
	require.ErrorIs(t, err, ErrEmptyInput)
}
