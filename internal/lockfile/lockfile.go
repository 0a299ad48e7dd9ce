// Package lockfile guards the catalog data file with an advisory file lock
// so that only one libris process mutates it at a time.
package lockfile

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"github.com/agentstation/libris/pkg/constants"
	"github.com/agentstation/libris/pkg/errors"
)

// Lock is a held advisory lock on a file.
type Lock struct {
	fl *flock.Flock
}

// Acquire takes the lock at path without blocking. It fails with ErrLocked
// when another process already holds it.
func Acquire(path string) (*Lock, error) {
	if err := os.MkdirAll(filepath.Dir(path), constants.DirPermissions); err != nil {
		return nil, errors.WrapIO("create", filepath.Dir(path), err)
	}

	fl := flock.New(path)
	ok, err := fl.TryLock()
	if err != nil {
		return nil, errors.WrapIO("lock", path, err)
	}
	if !ok {
		return nil, fmt.Errorf("%s: %w", path, errors.ErrLocked)
	}
	return &Lock{fl: fl}, nil
}

// Path returns the lock file path.
func (l *Lock) Path() string {
	return l.fl.Path()
}

// Release drops the lock.
func (l *Lock) Release() error {
	if err := l.fl.Unlock(); err != nil {
		return errors.WrapIO("unlock", l.fl.Path(), err)
	}
	return nil
}
