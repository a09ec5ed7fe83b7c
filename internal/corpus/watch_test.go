package corpus

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNewWatcherSeedsFromExistingFiles(t *testing.T) {
	dir := t.TempDir()

	if err := os.WriteFile(filepath.Join(dir, "seed1"), []byte("hello"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher() error: %v", err)
	}
	defer w.Close()

	data, ok := w.FetchRandomPrior()
	if !ok {
		t.Fatal("FetchRandomPrior() should succeed with a seeded corpus file")
	}

	if string(data) != "hello" {
		t.Fatalf("FetchRandomPrior() = %q, want %q", data, "hello")
	}
}

func TestWatcherFetchRandomPriorEmptyDirIsFalse(t *testing.T) {
	dir := t.TempDir()

	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher() error: %v", err)
	}
	defer w.Close()

	if _, ok := w.FetchRandomPrior(); ok {
		t.Fatal("FetchRandomPrior() on an empty directory should return false")
	}
}

func TestWatcherPicksUpNewlyCreatedFile(t *testing.T) {
	dir := t.TempDir()

	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher() error: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "grown"), []byte("world"), 0o644); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(2 * time.Second)

	var found bool

	for time.Now().Before(deadline) {
		if data, ok := w.FetchRandomPrior(); ok && string(data) == "world" {
			found = true
			break
		}

		time.Sleep(20 * time.Millisecond)
	}

	if !found {
		t.Fatal("watcher did not observe the newly created corpus file within the deadline")
	}
}

func TestNewWatcherErrorsOnMissingDirectory(t *testing.T) {
	if _, err := NewWatcher(filepath.Join(t.TempDir(), "does-not-exist")); err == nil {
		t.Fatal("NewWatcher() should error on a nonexistent directory")
	}
}
