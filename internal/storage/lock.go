package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"
)

// staleAfter is how old a lockfile must be before it is assumed to be left
// over from a crashed process and reclaimed.
const staleAfter = time.Minute

// Lock is an advisory lockfile guarding the load-mutate-save sequence
// against a second concurrent invocation. It sits beside the data file and
// stays outside the entry list itself.
type Lock struct {
	path string
}

// NewLock creates a Lock at the given path
func NewLock(path string) *Lock {
	return &Lock{path: path}
}

// Acquire takes the lock, failing if another process holds it. A lockfile
// older than staleAfter is treated as abandoned and reclaimed once.
func (l *Lock) Acquire() error {
	if err := l.tryCreate(); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrExist) {
		return fmt.Errorf("creating lockfile %s: %w", l.path, err)
	}

	info, err := os.Stat(l.path)
	if err == nil && time.Since(info.ModTime()) > staleAfter {
		_ = os.Remove(l.path)
		if err := l.tryCreate(); err == nil {
			return nil
		}
	}

	return fmt.Errorf("another atomichron process holds the lock (%s)", l.path)
}

// Release removes the lockfile
func (l *Lock) Release() error {
	if err := os.Remove(l.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing lockfile %s: %w", l.path, err)
	}
	return nil
}

func (l *Lock) tryCreate() error {
	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	fmt.Fprintf(f, "%d\n", os.Getpid())
	return f.Close()
}
