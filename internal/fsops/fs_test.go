package fsops

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAtomicWrite(t *testing.T) {
	fs := NewRealFS()
	path := filepath.Join(t.TempDir(), "nested", "dir", "file.txt")

	if err := fs.AtomicWrite(path, []byte("hello"), 0644); err != nil {
		t.Fatalf("AtomicWrite() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read written file: %v", err)
	}
	if string(data) != "hello" {
		t.Errorf("expected %q, got %q", "hello", string(data))
	}
}

func TestAtomicWrite_Overwrite(t *testing.T) {
	fs := NewRealFS()
	path := filepath.Join(t.TempDir(), "file.txt")

	if err := fs.AtomicWrite(path, []byte("first"), 0644); err != nil {
		t.Fatalf("AtomicWrite() error = %v", err)
	}
	if err := fs.AtomicWrite(path, []byte("second"), 0644); err != nil {
		t.Fatalf("AtomicWrite() overwrite error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read written file: %v", err)
	}
	if string(data) != "second" {
		t.Errorf("expected %q, got %q", "second", string(data))
	}
}

func TestAtomicWrite_NoTempFileLeftBehind(t *testing.T) {
	fs := NewRealFS()
	dir := t.TempDir()

	if err := fs.AtomicWrite(filepath.Join(dir, "file.txt"), []byte("data"), 0644); err != nil {
		t.Fatalf("AtomicWrite() error = %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("failed to read dir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only the target file in dir, got %d entries", len(entries))
	}
}

func TestWriteFileNew(t *testing.T) {
	fs := NewRealFS()
	path := filepath.Join(t.TempDir(), "nested", "file.txt")

	if err := fs.WriteFileNew(path, []byte("hello"), 0644); err != nil {
		t.Fatalf("WriteFileNew() error = %v", err)
	}

	if err := fs.WriteFileNew(path, []byte("again"), 0644); err == nil {
		t.Error("expected error when writing to an existing file")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read written file: %v", err)
	}
	if string(data) != "hello" {
		t.Errorf("existing file should be untouched, got %q", string(data))
	}
}

func TestExists(t *testing.T) {
	fs := NewRealFS()
	dir := t.TempDir()

	exists, err := fs.Exists(dir)
	if err != nil {
		t.Fatalf("Exists() error = %v", err)
	}
	if !exists {
		t.Error("expected existing directory to exist")
	}

	exists, err = fs.Exists(filepath.Join(dir, "missing"))
	if err != nil {
		t.Fatalf("Exists() error = %v", err)
	}
	if exists {
		t.Error("expected missing path to not exist")
	}
}

func TestValidateRelPath(t *testing.T) {
	fs := NewRealFS()

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{name: "simple file", path: "mod.rs", wantErr: false},
		{name: "nested file", path: "a/b/mod.rs", wantErr: false},
		{name: "empty", path: "", wantErr: true},
		{name: "current directory", path: ".", wantErr: true},
		{name: "absolute", path: "/etc/passwd", wantErr: true},
		{name: "traversal", path: "../outside", wantErr: true},
		{name: "nested traversal", path: "a/../../outside", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := fs.ValidateRelPath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRelPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}
}
