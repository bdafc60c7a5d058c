package config

import (
	"os"
	"testing"
	"time"
)

func TestWatchReload(t *testing.T) {
	path := writeConfig(t, "shortcuts.yaml", yamlConfig)

	w, err := Watch(path, WithDebounce(10*time.Millisecond))
	if err != nil {
		t.Fatalf("Watch() error = %v", err)
	}
	defer w.Close()

	updated := `
jump:
  shortcuts:
    - key: Space
`
	if err := os.WriteFile(path, []byte(updated), 0o644); err != nil {
		t.Fatalf("rewriting config: %v", err)
	}

	select {
	case groups := <-w.Groups():
		g, ok := groups["jump"]
		if !ok {
			t.Fatalf("reloaded groups = %v, want jump", groups)
		}
		if got := g.Label(); got != "Space" {
			t.Errorf("jump Label() = %q, want %q", got, "Space")
		}
	case err := <-w.Errors():
		t.Fatalf("unexpected reload error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
}

func TestWatchCoalescesWriteBurst(t *testing.T) {
	path := writeConfig(t, "shortcuts.yaml", yamlConfig)

	w, err := Watch(path, WithDebounce(50*time.Millisecond))
	if err != nil {
		t.Fatalf("Watch() error = %v", err)
	}
	defer w.Close()

	// A burst of rewrites ending on quit; the first delivery should already
	// reflect the final write.
	for _, name := range []string{"one", "two", "quit"} {
		content := name + ":\n  shortcuts:\n    - key: Escape\n"
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("rewriting config: %v", err)
		}
		time.Sleep(5 * time.Millisecond)
	}

	select {
	case groups := <-w.Groups():
		if _, ok := groups["quit"]; !ok {
			t.Errorf("first delivery = %v, want the final write (quit)", groups)
		}
	case err := <-w.Errors():
		t.Fatalf("unexpected reload error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
}

func TestWatchReloadError(t *testing.T) {
	path := writeConfig(t, "shortcuts.yaml", yamlConfig)

	w, err := Watch(path, WithDebounce(10*time.Millisecond))
	if err != nil {
		t.Fatalf("Watch() error = %v", err)
	}
	defer w.Close()

	bad := `
save:
  shortcuts:
    - key: NoSuchKey
`
	if err := os.WriteFile(path, []byte(bad), 0o644); err != nil {
		t.Fatalf("rewriting config: %v", err)
	}

	select {
	case groups := <-w.Groups():
		t.Fatalf("got groups %v, want a parse error", groups)
	case <-w.Errors():
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload error")
	}
}

func TestWatchClose(t *testing.T) {
	path := writeConfig(t, "shortcuts.yaml", yamlConfig)

	w, err := Watch(path)
	if err != nil {
		t.Fatalf("Watch() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}
