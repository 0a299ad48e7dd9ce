package books

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/agentstation/libris/internal/embedded"
)

// catalogOptions holds the configuration for a catalog instance.
type catalogOptions struct {
	readFS    fs.FS  // filesystem to load from, nil for memory catalogs
	readName  string // file name within readFS
	writePath string // path saves are written to, empty disables Save
	books     []Book // initial contents, applied before auto-load
}

// Option is a function that configures a catalog.
type Option func(*catalogOptions)

// catalogDefaults returns the default catalog options (memory catalog).
func catalogDefaults() *catalogOptions {
	return &catalogOptions{}
}

// apply applies the given options and returns the receiver.
func (o *catalogOptions) apply(opts ...Option) *catalogOptions {
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithEmbedded configures the catalog to load the compiled-in default data.
func WithEmbedded() Option {
	return func(o *catalogOptions) {
		o.readFS = embedded.FS
		o.readName = embedded.BooksFile
	}
}

// WithFile configures the catalog to load from and save to the yaml file
// at path.
func WithFile(path string) Option {
	return func(o *catalogOptions) {
		o.readFS = os.DirFS(filepath.Dir(path))
		o.readName = filepath.Base(path)
		o.writePath = path
	}
}

// WithFS configures the catalog to load the named file from a custom
// filesystem implementation. Useful for tests with fstest.MapFS.
func WithFS(fsys fs.FS, name string) Option {
	return func(o *catalogOptions) {
		o.readFS = fsys
		o.readName = name
	}
}

// WithWritePath sets the path Save writes to without loading from it.
func WithWritePath(path string) Option {
	return func(o *catalogOptions) {
		o.writePath = path
	}
}

// WithBooks seeds the catalog with the given books.
func WithBooks(books ...Book) Option {
	return func(o *catalogOptions) {
		o.books = append(o.books, books...)
	}
}
