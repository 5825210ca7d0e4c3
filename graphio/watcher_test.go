// SPDX-License-Identifier: MIT

package graphio_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mstforest/graphio"
)

func waitChange(t *testing.T, w *graphio.Watcher) graphio.Change {
	t.Helper()
	select {
	case c, ok := <-w.Changes:
		require.True(t, ok, "changes channel closed early")
		return c
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for change")
	}

	return graphio.Change{}
}

func TestWatcher_DetectsWriteAndRemove(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "g.txt")
	require.NoError(t, os.WriteFile(path, []byte("1\nA\n"), 0o644))

	w, err := graphio.NewWatcher(path)
	require.NoError(t, err)
	w.Debounce = 20 * time.Millisecond
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	// Unrelated files in the same directory are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(path, []byte("2\nA\nB\n"), 0o644))
	c := waitChange(t, w)
	assert.Equal(t, w.Path, c.Path)
	assert.False(t, c.Removed)

	require.NoError(t, os.Remove(path))
	c = waitChange(t, w)
	assert.True(t, c.Removed)
}

func TestWatcher_StopsOnCancel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "g.txt")
	require.NoError(t, os.WriteFile(path, []byte("1\nA\n"), 0o644))

	w, err := graphio.NewWatcher(path)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, w.Start(ctx))
	cancel()

	w.Stop()
	w.Stop()
	_, ok := <-w.Changes
	assert.False(t, ok)
}

func TestWatcher_StopWithoutStart(t *testing.T) {
	w, err := graphio.NewWatcher(filepath.Join(t.TempDir(), "g.txt"))
	require.NoError(t, err)
	w.Stop()
	_, ok := <-w.Changes
	assert.False(t, ok)
}
