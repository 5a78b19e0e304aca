package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestWatcherFiresOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "day9.dat")

	var fired atomic.Int32
	w, err := NewInputWatcher(path, func() { fired.Add(1) }, nil)
	require.NoError(t, err)

	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	require.NoError(t, os.WriteFile(path, []byte("R 4\n"), 0644))

	require.Eventually(t, func() bool {
		return fired.Load() >= 1
	}, 3*time.Second, 50*time.Millisecond)
}

func TestWatcherDebouncesBursts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "day9.dat")

	var fired atomic.Int32
	w, err := NewInputWatcher(path, func() { fired.Add(1) }, nil)
	require.NoError(t, err)

	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	// Editors save by emitting several writes back to back.
	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(path, []byte("U 1\n"), 0644))
		time.Sleep(20 * time.Millisecond)
	}

	require.Eventually(t, func() bool {
		return fired.Load() >= 1
	}, 3*time.Second, 50*time.Millisecond)
	assert.EqualValues(t, 1, fired.Load())
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "day9.dat")

	var fired atomic.Int32
	w, err := NewInputWatcher(path, func() { fired.Add(1) }, nil)
	require.NoError(t, err)

	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "day10.dat"), []byte("noop\n"), 0644))

	time.Sleep(debounceInterval + 300*time.Millisecond)
	assert.EqualValues(t, 0, fired.Load())
}

func TestWatcherStopIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "day9.dat")

	w, err := NewInputWatcher(path, func() {}, nil)
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))

	w.Stop()
	w.Stop()
}
