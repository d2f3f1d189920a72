package content

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
)

func TestWatch_RemoteAndEmptyAreNotWatched(t *testing.T) {
	for _, origin := range []string{"", "https://example.com/feed.xml"} {
		w, err := Watch(origin, time.Millisecond)
		if err != nil || w != nil {
			t.Errorf("Watch(%q) = %v, %v; want nil, nil", origin, w, err)
		}
	}
}

func TestWatch_MissingPath(t *testing.T) {
	if _, err := Watch(filepath.Join(t.TempDir(), "missing"), time.Millisecond); err == nil {
		t.Fatal("expected error for missing source")
	}
}

func TestWatch_DirectoryChange(t *testing.T) {
	dir := t.TempDir()
	w, err := Watch(dir, 20*time.Millisecond)
	if err != nil {
		t.Fatalf("Watch failed: %v", err)
	}
	defer func() { _ = w.Close() }()

	if err := os.WriteFile(filepath.Join(dir, "note.md"), []byte("# hi"), 0600); err != nil {
		t.Fatal(err)
	}

	select {
	case _, ok := <-w.Changes():
		if !ok {
			t.Fatal("changes closed early")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}
}

func TestWatcher_CloseClosesChanges(t *testing.T) {
	w, err := Watch(t.TempDir(), time.Millisecond)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	_ = w.Close()

	select {
	case _, ok := <-w.Changes():
		if ok {
			t.Fatal("expected closed channel")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("changes not closed")
	}
}

func TestRelevant(t *testing.T) {
	tests := []struct {
		name string
		ev   fsnotify.Event
		file string
		want bool
	}{
		{name: "DirDoc", ev: fsnotify.Event{Name: "/d/a.md", Op: fsnotify.Write}, want: true},
		{name: "DirOther", ev: fsnotify.Event{Name: "/d/a.swp", Op: fsnotify.Write}, want: false},
		{name: "Chmod", ev: fsnotify.Event{Name: "/d/a.md", Op: fsnotify.Chmod}, want: false},
		{name: "FileMatch", ev: fsnotify.Event{Name: "/d/feed.xml", Op: fsnotify.Create}, file: "feed.xml", want: true},
		{name: "FileOther", ev: fsnotify.Event{Name: "/d/other.xml", Op: fsnotify.Create}, file: "feed.xml", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := relevant(tt.ev, tt.file); got != tt.want {
				t.Errorf("relevant() = %v, want %v", got, tt.want)
			}
		})
	}
}
