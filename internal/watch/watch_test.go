package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_NoPaths(t *testing.T) {
	t.Parallel()

	_, err := New(nil, 0)
	require.Error(t, err)
}

func TestNew_DefaultDebounce(t *testing.T) {
	t.Parallel()

	w, err := New([]string{filepath.Join(t.TempDir(), "README.md")}, 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	assert.Equal(t, DefaultDebounce, w.debounce)
}

func TestNew_MissingDirectory(t *testing.T) {
	t.Parallel()

	_, err := New([]string{filepath.Join(t.TempDir(), "nope", "README.md")}, 0)
	require.Error(t, err)
}

func TestRelevant(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	readme := filepath.Join(dir, "README.md")

	w, err := New([]string{readme}, time.Millisecond)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{"write", fsnotify.Event{Name: readme, Op: fsnotify.Write}, true},
		{"create after rename", fsnotify.Event{Name: readme, Op: fsnotify.Create}, true},
		{"chmod only", fsnotify.Event{Name: readme, Op: fsnotify.Chmod}, false},
		{"sibling file", fsnotify.Event{Name: filepath.Join(dir, "other.md"), Op: fsnotify.Write}, false},
	}

	for _, tt := range tests {
		path, ok := w.relevant(tt.event)
		assert.Equal(t, tt.want, ok, tt.name)
		if tt.want {
			assert.Equal(t, readme, path, tt.name)
		}
	}
}

func TestRun_DebouncesWrites(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	readme := filepath.Join(dir, "README.md")
	require.NoError(t, os.WriteFile(readme, []byte("### A\n"), 0o600))

	w, err := New([]string{readme}, 50*time.Millisecond)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	calls := make(chan []string, 10)
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func(_ context.Context, paths []string) {
			calls <- paths
		})
	}()

	for i := range 3 {
		require.NoError(t, os.WriteFile(readme, []byte("### A\n| row |\n"), 0o600), "write %d", i)
	}

	select {
	case paths := <-calls:
		assert.Equal(t, []string{readme}, paths)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for change callback")
	}

	// Writes to unwatched siblings never trigger the callback.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.md"), []byte("x"), 0o600))

	select {
	case paths := <-calls:
		// A late event from the first burst is acceptable; a sibling is not.
		assert.Equal(t, []string{readme}, paths)
	case <-time.After(200 * time.Millisecond):
	}

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}
}
