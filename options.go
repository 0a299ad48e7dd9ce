package libris

import (
	"github.com/agentstation/libris/pkg/books"
	"github.com/agentstation/libris/pkg/errors"
)

// config holds the settings a Libris instance is built from.
type config struct {
	path     string
	catalog  books.Catalog
	locking  bool
	autosave bool
}

// defaultConfig returns the default configuration.
func defaultConfig() *config {
	return &config{
		path:     DefaultDataFile(),
		locking:  true,
		autosave: true,
	}
}

// Option is a function that configures a Libris instance
type Option func(*config) error

// WithPath configures the catalog file location.
func WithPath(path string) Option {
	return func(c *config) error {
		if path == "" {
			return errors.NewConfigError("libris", "path must not be empty", nil)
		}
		c.path = path
		return nil
	}
}

// WithCatalog configures the initial catalog to use instead of loading
// from disk. Useful for testing.
func WithCatalog(catalog books.Catalog) Option {
	return func(c *config) error {
		c.catalog = catalog
		return nil
	}
}

// WithoutLock disables the advisory data file lock.
func WithoutLock() Option {
	return func(c *config) error {
		c.locking = false
		return nil
	}
}

// WithAutosaveDisabled disables saving after each successful mutation.
func WithAutosaveDisabled() Option {
	return func(c *config) error {
		c.autosave = false
		return nil
	}
}
