//go:build unix

package flock_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/clockface/internal/errors"
	"github.com/mrz1836/clockface/internal/flock"
)

func TestAcquire(t *testing.T) {
	t.Parallel()

	t.Run("creates and keeps the lock file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "clock.png")

		l, err := flock.Acquire(path)
		require.NoError(t, err)
		assert.Equal(t, path+flock.Suffix, l.Path())
		assert.FileExists(t, path+flock.Suffix)

		require.NoError(t, l.Release())
		assert.FileExists(t, path+flock.Suffix)
	})

	t.Run("second acquire fails while held", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "clock.png")

		first, err := flock.Acquire(path)
		require.NoError(t, err)
		defer func() { _ = first.Release() }()

		_, err = flock.Acquire(path)
		require.ErrorIs(t, err, errors.ErrOutputLocked)
	})

	t.Run("acquire succeeds after release", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "clock.png")

		first, err := flock.Acquire(path)
		require.NoError(t, err)
		require.NoError(t, first.Release())

		second, err := flock.Acquire(path)
		require.NoError(t, err)
		require.NoError(t, second.Release())
	})

	t.Run("waiter opened before release keeps exclusive ownership", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "clock.png")

		a, err := flock.Acquire(path)
		require.NoError(t, err)

		// b opens the lock file while a still holds it
		b, err := os.OpenFile(path+flock.Suffix, os.O_RDWR, 0o600) //nolint:gosec // test file
		require.NoError(t, err)
		defer func() { _ = b.Close() }()

		require.NoError(t, a.Release())
		require.NoError(t, flock.Exclusive(b.Fd()))
		defer func() { _ = flock.Unlock(b.Fd()) }()

		_, err = flock.Acquire(path)
		require.ErrorIs(t, err, errors.ErrOutputLocked, "a third acquirer must not get the lock b holds")
	})

	t.Run("release is idempotent", func(t *testing.T) {
		t.Parallel()
		l, err := flock.Acquire(filepath.Join(t.TempDir(), "clock.png"))
		require.NoError(t, err)

		require.NoError(t, l.Release())
		assert.NoError(t, l.Release())
	})

	t.Run("missing directory", func(t *testing.T) {
		t.Parallel()
		_, err := flock.Acquire(filepath.Join(t.TempDir(), "missing", "clock.png"))
		require.Error(t, err)
		assert.NotErrorIs(t, err, errors.ErrOutputLocked)
	})
}

func TestExclusive_RawDescriptors(t *testing.T) {
	t.Parallel()

	name := filepath.Join(t.TempDir(), "raw.lock")
	f1, err := os.OpenFile(name, os.O_RDWR|os.O_CREATE, 0o600) //nolint:gosec // test file
	require.NoError(t, err)
	defer func() { _ = f1.Close() }()
	f2, err := os.OpenFile(name, os.O_RDWR, 0o600) //nolint:gosec // test file
	require.NoError(t, err)
	defer func() { _ = f2.Close() }()

	require.NoError(t, flock.Exclusive(f1.Fd()))
	require.Error(t, flock.Exclusive(f2.Fd()), "separate open file descriptions conflict")
	require.NoError(t, flock.Unlock(f1.Fd()))
	require.NoError(t, flock.Exclusive(f2.Fd()))
	require.NoError(t, flock.Unlock(f2.Fd()))
}
