package ingest

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartWatcher_DebounceEmitsOncePerSettledFile(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	evCh, errCh, err := StartWatcher(ctx, WatchConfig{
		Root:     dir,
		Debounce: 150 * time.Millisecond,
	})
	require.NoError(t, err)

	// Simulate a slow upload: several write bursts into the same archive.
	path := filepath.Join(dir, "incoming.zip")
	f, err := os.Create(path)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		_, err := f.Write([]byte("archive bytes chunk"))
		require.NoError(t, err)
		require.NoError(t, f.Sync())
		time.Sleep(30 * time.Millisecond)
	}
	require.NoError(t, f.Close())

	select {
	case got := <-evCh:
		assert.Equal(t, path, got)
	case werr := <-errCh:
		t.Fatalf("watch error: %v", werr)
	case <-time.After(3 * time.Second):
		t.Fatal("debounced emission never arrived")
	}

	// The bursts coalesced; nothing further may be emitted once settled.
	select {
	case got := <-evCh:
		t.Fatalf("unexpected second emission: %s", got)
	case <-time.After(400 * time.Millisecond):
	}
}

func TestStartWatcher_IgnoresNonArchives(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	evCh, _, err := StartWatcher(ctx, WatchConfig{Root: dir, Debounce: 50 * time.Millisecond})
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not an archive"), 0o644))

	select {
	case got := <-evCh:
		t.Fatalf("non-archive emitted: %s", got)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestStartWatcher_InitialScanEmitsExistingArchives(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "already-here.zip")
	require.NoError(t, os.WriteFile(existing, []byte("zip bytes"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	evCh, _, err := StartWatcher(ctx, WatchConfig{Root: dir, InitialScan: true})
	require.NoError(t, err)

	select {
	case got := <-evCh:
		assert.Equal(t, existing, got)
	case <-time.After(time.Second):
		t.Fatal("initial scan emitted nothing")
	}
}

func TestStartWatcher_RequiresRoot(t *testing.T) {
	_, _, err := StartWatcher(context.Background(), WatchConfig{Root: "  "})
	require.Error(t, err)
}
