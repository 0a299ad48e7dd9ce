// Package app provides the application context and dependency management
// for the libris CLI. It centralizes configuration, logging, and the
// library instance behind a single injectable type.
package app

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/agentstation/libris"
	"github.com/agentstation/libris/pkg/books"
)

// App represents the libris application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Library instance (lazy-initialized, singleton)
	mu      sync.RWMutex
	library libris.Libris
}

// New creates a new App instance with the given version information.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	// Load configuration
	config, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	app.config = config

	// Initialize logger
	logger := NewLogger(config)
	app.logger = &logger

	// Apply any custom options
	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// Format returns the configured output format ("" means auto-detect).
func (a *App) Format() string {
	return a.config.Format
}

// Quiet returns whether minimal output was requested.
func (a *App) Quiet() bool {
	return a.config.Quiet
}

// Library returns the library instance, creating it lazily if needed.
// This is thread-safe and ensures only one instance is created.
func (a *App) Library() (libris.Libris, error) {
	a.mu.RLock()
	if a.library != nil {
		lib := a.library
		a.mu.RUnlock()
		return lib, nil
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	// Double-check after acquiring write lock
	if a.library != nil {
		return a.library, nil
	}

	lib, err := libris.New(libris.WithPath(a.config.DataFile))
	if err != nil {
		return nil, err
	}

	// Mirror mutations into the structured log.
	lib.OnBorrow(func(book books.Book) {
		a.logger.Debug().
			Str("title", book.Title).
			Int("borrowed", book.Borrowed).
			Int("available", book.Available()).
			Msg("Borrowed")
	})
	lib.OnReturn(func(book books.Book) {
		a.logger.Debug().
			Str("title", book.Title).
			Int("borrowed", book.Borrowed).
			Int("available", book.Available()).
			Msg("Returned")
	})

	a.library = lib
	return lib, nil
}

// Close releases resources held by the app, in particular the data file
// lock. It is safe to call when no library was ever created.
func (a *App) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.library == nil {
		return nil
	}
	err := a.library.Close()
	a.library = nil
	return err
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithLibrary sets a custom library instance (useful for testing).
func WithLibrary(lib libris.Libris) Option {
	return func(a *App) error {
		a.library = lib
		return nil
	}
}
