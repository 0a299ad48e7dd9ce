// Package libris manages a small lending library: a catalog of books with
// copy counts, persisted to a single yaml file and healed from embedded
// defaults when that file is missing or unreadable.
package libris

import (
	"os"
	"path/filepath"

	"github.com/agentstation/libris/pkg/books"
	"github.com/agentstation/libris/pkg/constants"
)

// Libris manages a book catalog with persistence and event hooks.
type Libris interface {
	// Catalog returns a copy of the current catalog
	Catalog() books.Catalog

	// Available returns books with at least one copy on the shelf
	Available() []books.Book

	// Borrowed returns books with at least one copy out on loan
	Borrowed() []books.Book

	// Borrow checks out one copy by exact title and persists the change
	Borrow(title string) (books.Book, error)

	// Return checks one copy back in by exact title and persists the change
	Return(title string) (books.Book, error)

	// Reset replaces the catalog with the embedded defaults and persists them
	Reset() error

	// Path returns the catalog file path
	Path() string

	// OnBorrow registers a callback fired after each successful borrow
	OnBorrow(BorrowHook)

	// OnReturn registers a callback fired after each successful return
	OnReturn(ReturnHook)

	// Close releases the data file lock
	Close() error
}

// DefaultDataFile returns the well-known catalog file location,
// ~/.libris/books.yaml. It falls back to the working directory when the
// home directory cannot be determined.
func DefaultDataFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return constants.DataFileName
	}
	return filepath.Join(home, constants.DataDirName, constants.DataFileName)
}
