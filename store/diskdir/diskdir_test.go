package diskdir

import (
	"context"
	"errors"
	"testing"

	"github.com/lexigraph/segcodec/store"
)

func TestNew_MissingRoot(t *testing.T) {
	if _, err := New("/nonexistent/path/for/test"); err == nil {
		t.Error("New() on missing root succeeded, want error")
	}
}

func TestDirectory_ReadWrite(t *testing.T) {
	d, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	ctx := context.Background()

	if err := d.WriteFile(ctx, "_0.si", []byte("metadata")); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	data, err := d.ReadFile(ctx, "_0.si")
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != "metadata" {
		t.Errorf("ReadFile() = %q, want %q", data, "metadata")
	}
}

func TestDirectory_ReadMissing(t *testing.T) {
	d, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	_, err = d.ReadFile(context.Background(), "missing")
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("ReadFile() error = %v, want ErrNotFound", err)
	}
}

func TestDirectory_Overwrite(t *testing.T) {
	d, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	ctx := context.Background()

	if err := d.WriteFile(ctx, "f", []byte("first")); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if err := d.WriteFile(ctx, "f", []byte("second")); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	data, err := d.ReadFile(ctx, "f")
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != "second" {
		t.Errorf("ReadFile() = %q, want %q", data, "second")
	}
}

func TestDirectory_ListFiles(t *testing.T) {
	d, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	ctx := context.Background()

	if err := d.WriteFile(ctx, "_0.si", nil); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if err := d.WriteFile(ctx, "_0.fnm", nil); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	names, err := d.ListFiles(ctx)
	if err != nil {
		t.Fatalf("ListFiles() error = %v", err)
	}
	if len(names) != 2 {
		t.Errorf("ListFiles() = %v, want 2 files", names)
	}
}

func TestDirectory_DeleteFile(t *testing.T) {
	d, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	ctx := context.Background()

	if err := d.WriteFile(ctx, "f", []byte("x")); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if err := d.DeleteFile(ctx, "f"); err != nil {
		t.Fatalf("DeleteFile() error = %v", err)
	}
	if err := d.DeleteFile(ctx, "f"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("DeleteFile() on missing file error = %v, want ErrNotFound", err)
	}
}

func TestDirectory_RejectsEscapingNames(t *testing.T) {
	d, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	ctx := context.Background()

	for _, name := range []string{"", "..", "a/b", `a\b`} {
		if err := d.WriteFile(ctx, name, nil); err == nil {
			t.Errorf("WriteFile(%q) succeeded, want error", name)
		}
	}
}
