package libris

import (
	"path/filepath"
	"sync"

	"github.com/agentstation/libris/internal/lockfile"
	"github.com/agentstation/libris/pkg/books"
	"github.com/agentstation/libris/pkg/constants"
)

// client is the internal implementation of the Libris interface.
type client struct {
	mu      sync.RWMutex
	catalog books.Catalog
	config  *config
	lock    *lockfile.Lock
	hooks   *hooks
}

// New creates a new Libris instance with the given options. The catalog is
// loaded from the configured path, healing to the embedded defaults when
// the file is missing or unreadable.
func New(opts ...Option) (Libris, error) {
	c := &client{
		config: defaultConfig(),
		hooks:  newHooks(),
	}

	for _, opt := range opts {
		if err := opt(c.config); err != nil {
			return nil, err
		}
	}

	if c.config.locking {
		lockPath := filepath.Join(filepath.Dir(c.config.path), constants.LockFileName)
		lock, err := lockfile.Acquire(lockPath)
		if err != nil {
			return nil, err
		}
		c.lock = lock
	}

	if c.config.catalog != nil {
		c.catalog = c.config.catalog
	} else {
		c.catalog = books.NewLocal(c.config.path)
	}

	return c, nil
}

// Catalog returns a copy of the current catalog.
func (c *client) Catalog() books.Catalog {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.catalog.Copy()
}

// Available returns books with at least one copy on the shelf.
func (c *client) Available() []books.Book {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.catalog.Available()
}

// Borrowed returns books with at least one copy out on loan.
func (c *client) Borrowed() []books.Book {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.catalog.Borrowed()
}

// Borrow checks out one copy by exact title. On success the catalog is
// saved; a save failure is surfaced to the caller (the in-memory mutation
// is kept, the user must know it was not durably recorded).
func (c *client) Borrow(title string) (books.Book, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	book, err := c.catalog.Borrow(title)
	if err != nil {
		return books.Book{}, err
	}

	if err := c.save(); err != nil {
		return book, err
	}

	c.hooks.triggerBorrow(book)
	return book, nil
}

// Return checks one copy back in by exact title. Persistence behaves as
// for Borrow.
func (c *client) Return(title string) (books.Book, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	book, err := c.catalog.Return(title)
	if err != nil {
		return books.Book{}, err
	}

	if err := c.save(); err != nil {
		return book, err
	}

	c.hooks.triggerReturn(book)
	return book, nil
}

// Reset replaces the catalog with the embedded defaults and persists them.
func (c *client) Reset() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	cat, err := books.New(books.WithEmbedded(), books.WithWritePath(c.config.path))
	if err != nil {
		return err
	}
	c.catalog = cat

	return c.save()
}

// Path returns the catalog file path.
func (c *client) Path() string {
	return c.config.path
}

// OnBorrow registers a callback fired after each successful borrow.
func (c *client) OnBorrow(fn BorrowHook) {
	c.hooks.onBorrow(fn)
}

// OnReturn registers a callback fired after each successful return.
func (c *client) OnReturn(fn ReturnHook) {
	c.hooks.onReturn(fn)
}

// Close releases the data file lock.
func (c *client) Close() error {
	if c.lock == nil {
		return nil
	}
	err := c.lock.Release()
	c.lock = nil
	return err
}

// save persists the catalog unless autosave is disabled. Callers must hold
// the write lock.
func (c *client) save() error {
	if !c.config.autosave {
		return nil
	}
	return c.catalog.Save()
}
