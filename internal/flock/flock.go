// Package flock guards a file with a sibling ".lock" file held under an
// exclusive, non-blocking OS lock. The lock file is never removed: the OS
// lock on its inode is the ownership record.
//
//	l, err := flock.Acquire("clock.png")
//	if err != nil {
//	    // another process holds clock.png.lock
//	}
//	defer l.Release()
package flock

import (
	"fmt"
	"os"
	"sync"

	"github.com/mrz1836/clockface/internal/errors"
)

// Suffix is appended to the guarded path to name the lock file.
const Suffix = ".lock"

// Lock is a held lock. Release it when done.
type Lock struct {
	file *os.File
	once sync.Once
}

// Acquire locks path+Suffix, creating it if needed. It fails with
// errors.ErrOutputLocked when another process holds the lock.
func Acquire(path string) (*Lock, error) {
	name := path + Suffix
	f, err := os.OpenFile(name, os.O_RDWR|os.O_CREATE, 0o600) //nolint:gosec // path comes from the user's --png flag
	if err != nil {
		return nil, fmt.Errorf("failed to open lock file: %w", err)
	}

	if err := Exclusive(f.Fd()); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("%w: %s: %w", errors.ErrOutputLocked, name, err)
	}
	return &Lock{file: f}, nil
}

// Path returns the lock file path.
func (l *Lock) Path() string { return l.file.Name() }

// Release unlocks and closes the lock file; the file stays in place.
// Safe to call more than once.
func (l *Lock) Release() error {
	var err error
	l.once.Do(func() {
		err = Unlock(l.file.Fd())
		if closeErr := l.file.Close(); err == nil {
			err = closeErr
		}
	})
	return err
}
