package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDeliversRegisteredPathOnly(t *testing.T) {
	dir := t.TempDir()
	watched := filepath.Join(dir, "capacity")
	ignored := filepath.Join(dir, "voltage")
	if err := os.WriteFile(watched, []byte("50\n"), 0644); err != nil {
		t.Fatal(err)
	}

	w, err := New()
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if err := w.Register(watched); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	if err := os.WriteFile(ignored, []byte("12000\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(watched, []byte("51\n"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case ev := <-w.Events():
		if ev.Path != watched {
			t.Errorf("event path = %s, want %s", ev.Path, watched)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for watcher event")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	w, err := New()
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop after cancel")
	}
}
