package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherDebouncesBurst(t *testing.T) {
	dir := t.TempDir()
	model := filepath.Join(dir, "model.obj")
	material := filepath.Join(dir, "model.mtl")
	other := filepath.Join(dir, "notes.txt")
	for _, f := range []string{model, material, other} {
		if err := os.WriteFile(f, []byte("# start\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	fw, err := NewFileWatcher(100 * time.Millisecond)
	if err != nil {
		t.Fatalf("NewFileWatcher failed: %v", err)
	}
	defer fw.Close()

	changes := make(chan string, 10)
	if err := fw.Watch([]string{model, material}, func(path string) { changes <- path }); err != nil {
		t.Fatalf("Watch failed: %v", err)
	}
	fw.Start()

	if err := os.WriteFile(other, []byte("ignored\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(model, []byte("v 0 0 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(material, []byte("newmtl a\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case path := <-changes:
		if path != material && path != model {
			t.Errorf("unexpected path %s", path)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}

	select {
	case path := <-changes:
		t.Errorf("burst should report once, got a second change for %s", path)
	case <-time.After(400 * time.Millisecond):
	}
}

func TestWatcherReplacesWatchedSet(t *testing.T) {
	first := filepath.Join(t.TempDir(), "a.obj")
	second := filepath.Join(t.TempDir(), "b.obj")
	for _, f := range []string{first, second} {
		if err := os.WriteFile(f, nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	fw, err := NewFileWatcher(10 * time.Millisecond)
	if err != nil {
		t.Fatalf("NewFileWatcher failed: %v", err)
	}
	defer fw.Close()

	noop := func(string) {}
	if err := fw.Watch([]string{first}, noop); err != nil {
		t.Fatalf("Watch failed: %v", err)
	}
	if err := fw.Watch([]string{second}, noop); err != nil {
		t.Fatalf("Watch failed: %v", err)
	}

	files := fw.Files()
	if len(files) != 1 || files[0] != second {
		t.Errorf("expected only %s, got %v", second, files)
	}

	if err := fw.RemoveAll(); err != nil {
		t.Fatalf("RemoveAll failed: %v", err)
	}
	if len(fw.Files()) != 0 {
		t.Error("RemoveAll should clear the watched set")
	}
}

func TestWatcherClosed(t *testing.T) {
	fw, err := NewFileWatcher(time.Millisecond)
	if err != nil {
		t.Fatalf("NewFileWatcher failed: %v", err)
	}
	if err := fw.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := fw.Watch([]string{"x.obj"}, func(string) {}); err == nil {
		t.Error("Watch after Close should fail")
	}
}
