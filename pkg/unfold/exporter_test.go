package unfold

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestPDFPath(t *testing.T) {
	tests := map[string]string{
		"/models/cube.obj":      "/models/cube_unfold.pdf",
		"/models/CUBE.OBJ":      "/models/CUBE_unfold.pdf",
		"/models/my.obj.v2.obj": "/models/my.obj.v2_unfold.pdf",
		"/models/mesh":          "/models/mesh_unfold.pdf",
	}
	for in, expected := range tests {
		if got := PDFPath(in); got != expected {
			t.Errorf("PDFPath(%s): expected %s, got %s", in, expected, got)
		}
	}
}

func TestParseOutput(t *testing.T) {
	pages, err := parseOutput([]byte("Blender 4.1\nread obj\nSaved a 3-page document\n"))
	if err != nil || pages != 3 {
		t.Errorf("expected 3 pages, got %d (%v)", pages, err)
	}

	pages, err = parseOutput([]byte("Blender quit\n"))
	if err != nil || pages != -1 {
		t.Errorf("expected no report, got %d (%v)", pages, err)
	}

	_, err = parseOutput([]byte("ERROR_INVALID_INPUT: No island to unfold\n"))
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if err.Error() != "mesh cannot be unfolded: No island to unfold" {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestExportToolNotFound(t *testing.T) {
	e := NewExporter("objview-no-such-blender", "unfold.py", t.TempDir())
	if _, err := e.Export(context.Background(), "cube.obj"); !errors.Is(err, ErrToolNotFound) {
		t.Errorf("expected ErrToolNotFound, got %v", err)
	}
}

// fakeTool writes a shell script standing in for Blender
func fakeTool(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("needs a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "blender")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestExportRunsTool(t *testing.T) {
	tool := fakeTool(t, `[ "$1" = "--background" ] && [ "$2" = "--python" ] && [ "$4" = "--" ] || exit 2
echo "Saved a 2-page document"
`)
	dir := t.TempDir()
	objPath := filepath.Join(dir, "cube.obj")

	result, err := NewExporter(tool, "unfold.py", dir).Export(context.Background(), objPath)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if result.Pages != 2 {
		t.Errorf("expected 2 pages, got %d", result.Pages)
	}
	if result.PDF != filepath.Join(dir, "cube_unfold.pdf") {
		t.Errorf("unexpected pdf path %s", result.PDF)
	}
}

func TestExportInvalidInput(t *testing.T) {
	tool := fakeTool(t, `echo "ERROR_INVALID_INPUT: mesh has no faces"
`)
	_, err := NewExporter(tool, "unfold.py", t.TempDir()).Export(context.Background(), "empty.obj")
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestExportToolFails(t *testing.T) {
	tool := fakeTool(t, `echo "boom" >&2
exit 3
`)
	_, err := NewExporter(tool, "unfold.py", t.TempDir()).Export(context.Background(), "cube.obj")
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.Is(err, ErrInvalidInput) || errors.Is(err, ErrToolNotFound) {
		t.Errorf("unexpected sentinel in %v", err)
	}
}
