package patcher

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"protomod/internal/fsops"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestPatchDir(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()

	writeFile(t, filepath.Join(src, "ferris.proto"), "edition = \"2023\";\n\npackage crabs;\n")
	writeFile(t, filepath.Join(src, "nested", "ariel.proto"), "syntax = \"proto3\";\n\npackage crabs.disney.ariel;\n")
	writeFile(t, filepath.Join(src, "notes.txt"), "not a schema\n")

	result, err := PatchDir(fsops.NewRealFS(), src, dst)
	require.NoError(t, err)

	want := []string{
		filepath.Join(dst, "ferris.proto"),
		filepath.Join(dst, "nested", "ariel.proto"),
	}
	assert.Equal(t, want, result.Files)
	assert.Equal(t, 1, result.Replaced)

	patched, err := os.ReadFile(filepath.Join(dst, "ferris.proto"))
	require.NoError(t, err)
	assert.Equal(t, "syntax = \"proto3\";\n\npackage crabs;\n", string(patched))

	untouched, err := os.ReadFile(filepath.Join(dst, "nested", "ariel.proto"))
	require.NoError(t, err)
	assert.Equal(t, "syntax = \"proto3\";\n\npackage crabs.disney.ariel;\n", string(untouched))

	_, err = os.Stat(filepath.Join(dst, "notes.txt"))
	assert.True(t, os.IsNotExist(err), "non-schema files should not be copied")
}

func TestPatchDir_EmptyTree(t *testing.T) {
	result, err := PatchDir(fsops.NewRealFS(), t.TempDir(), t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, result.Files)
	assert.Zero(t, result.Replaced)
}

func TestPatchDir_MissingSource(t *testing.T) {
	_, err := PatchDir(fsops.NewRealFS(), filepath.Join(t.TempDir(), "missing"), t.TempDir())
	require.Error(t, err)
}
