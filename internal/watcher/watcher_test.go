package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// waitEvent waits up to timeout for an event on ch.
func waitEvent(ch <-chan Event, timeout time.Duration) (Event, bool) {
	select {
	case ev := <-ch:
		return ev, true
	case <-time.After(timeout):
		return Event{}, false
	}
}

func startWatcher(t *testing.T, root, ignore string) chan Event {
	t.Helper()
	events := make(chan Event, 10)
	w := New(root, ignore, func(ev Event) { events <- ev })
	if err := w.Start(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(w.Stop)
	return events
}

func TestRouteFileChange(t *testing.T) {
	dir := t.TempDir()
	events := startWatcher(t, dir, filepath.Join(dir, "routes.gen.ts"))

	path := filepath.Join(dir, "users.ts")
	os.WriteFile(path, []byte("export const GET = () => {}"), 0644)

	ev, ok := waitEvent(events, 2*time.Second)
	if !ok {
		t.Fatal("expected event for .ts file, got none")
	}
	if ev.Path != path {
		t.Errorf("expected path %q, got %q", path, ev.Path)
	}
}

func TestJsFileChange(t *testing.T) {
	dir := t.TempDir()
	events := startWatcher(t, dir, filepath.Join(dir, "routes.gen.ts"))

	os.WriteFile(filepath.Join(dir, "legacy.js"), []byte("export const GET = () => {}"), 0644)

	if _, ok := waitEvent(events, 2*time.Second); !ok {
		t.Fatal("expected event for .js file, got none")
	}
}

func TestUnrecognizedExtensionIgnored(t *testing.T) {
	dir := t.TempDir()
	events := startWatcher(t, dir, filepath.Join(dir, "routes.gen.ts"))

	os.WriteFile(filepath.Join(dir, "readme.md"), []byte("# docs"), 0644)

	if ev, ok := waitEvent(events, 500*time.Millisecond); ok {
		t.Fatalf("expected no event for .md file, got %+v", ev)
	}
}

func TestOutputFileIgnored(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "routes.gen.ts")
	events := startWatcher(t, dir, out)

	os.WriteFile(out, []byte("// Code generated by routegen. DO NOT EDIT."), 0644)

	if ev, ok := waitEvent(events, 500*time.Millisecond); ok {
		t.Fatalf("expected no event for the output file, got %+v", ev)
	}
}

func TestRemovedFileReported(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "users.ts")
	os.WriteFile(path, []byte("export const GET = () => {}"), 0644)

	events := startWatcher(t, dir, filepath.Join(dir, "routes.gen.ts"))
	os.Remove(path)

	ev, ok := waitEvent(events, 2*time.Second)
	if !ok {
		t.Fatal("expected event for removed file, got none")
	}
	if ev.Path != path {
		t.Errorf("expected path %q, got %q", path, ev.Path)
	}
}

func TestNewDirectoryWatched(t *testing.T) {
	dir := t.TempDir()
	events := startWatcher(t, dir, filepath.Join(dir, "routes.gen.ts"))

	sub := filepath.Join(dir, "users")
	if err := os.Mkdir(sub, 0755); err != nil {
		t.Fatal(err)
	}
	// Give the watcher a moment to pick up the new directory.
	time.Sleep(100 * time.Millisecond)

	os.WriteFile(filepath.Join(sub, "[id].ts"), []byte("export const GET = () => {}"), 0644)

	if _, ok := waitEvent(events, 2*time.Second); !ok {
		t.Fatal("expected event from newly created directory, got none")
	}
}
