// Package books provides the core catalog system for tracking a small
// library of lendable titles. A catalog is an ordered set of book records
// with copy counts; it can live purely in memory, be compiled into the
// binary, or be backed by a single yaml file on disk.
//
// Example usage:
//
//	// Load the catalog file, healing to the embedded defaults if the
//	// file is missing or unreadable.
//	catalog := books.NewLocal("/home/user/.libris/books.yaml")
//
//	book, err := catalog.Borrow("The Hobbit")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%d copies left\n", book.Available())
package books

import (
	"fmt"

	"github.com/agentstation/libris/pkg/errors"
)

// Compile-time interface checks to ensure proper implementation.
var (
	_ Catalog     = (*catalog)(nil)
	_ Reader      = (*catalog)(nil)
	_ Writer      = (*catalog)(nil)
	_ Copier      = (*catalog)(nil)
	_ Persistence = (*catalog)(nil)
)

// catalog is the single concrete implementation of the Catalog interface.
// It can work as:
// - Memory catalog (readFS == nil)
// - Embedded catalog (readFS is embed.FS)
// - File catalog (readFS is os.DirFS of the data directory).
type catalog struct {
	options *catalogOptions
	list    []Book
	index   map[string]int // title -> position in list
}

// New creates a new catalog with the given options.
// WithEmbedded() = embedded default catalog with auto-load.
// WithFile(path) = file-backed catalog with auto-load.
func New(opts ...Option) (Catalog, error) {
	cat := &catalog{
		options: catalogDefaults().apply(opts...),
		index:   make(map[string]int),
	}

	for _, book := range cat.options.books {
		if err := cat.Add(book); err != nil {
			return nil, err
		}
	}

	// Auto-load if configured with a filesystem
	if cat.options.readFS != nil {
		if err := cat.Load(); err != nil {
			return nil, err
		}
	}

	return cat, nil
}

// Default returns the embedded default catalog: a fixed, non-empty starter
// set with no copies out on loan. The contents are deterministic so callers
// and tests can rely on them.
func Default() Catalog {
	cat, err := New(WithEmbedded())
	if err != nil {
		// The embedded catalog is validated by tests at build time;
		// failing to parse it is a programming error.
		panic(fmt.Sprintf("books: embedded default catalog: %v", err))
	}
	return cat
}

// NewLocal creates a catalog from the yaml file at path. If the file is
// missing, unreadable, or does not parse into a valid catalog, the embedded
// default catalog is returned instead; corruption never surfaces as an
// error. The returned catalog saves back to path.
func NewLocal(path string) Catalog {
	cat, err := New(WithFile(path))
	if err != nil {
		cat = Default()
	}
	cat.(*catalog).options.writePath = path
	return cat
}

// NewEmpty creates an in-memory empty catalog. This is useful for testing
// or temporary catalogs that don't need persistence.
func NewEmpty() Catalog {
	return &catalog{
		options: catalogDefaults(),
		index:   make(map[string]int),
	}
}

// Books returns every book in catalog order.
func (cat *catalog) Books() []Book {
	out := make([]Book, len(cat.list))
	copy(out, cat.list)
	return out
}

// Len returns the number of books in the catalog.
func (cat *catalog) Len() int {
	return len(cat.list)
}

// Book returns a book by exact title match.
func (cat *catalog) Book(title string) (Book, error) {
	i, ok := cat.index[title]
	if !ok {
		return Book{}, &errors.NotFoundError{
			Resource: "book",
			Title:    title,
		}
	}
	return cat.list[i], nil
}

// Available returns books with available copies, in catalog order.
func (cat *catalog) Available() []Book {
	var out []Book
	for _, book := range cat.list {
		if book.Available() > 0 {
			out = append(out, book)
		}
	}
	return out
}

// Borrowed returns books with borrowed copies, in catalog order.
func (cat *catalog) Borrowed() []Book {
	var out []Book
	for _, book := range cat.list {
		if book.Borrowed > 0 {
			out = append(out, book)
		}
	}
	return out
}

// Add appends a book to the catalog.
func (cat *catalog) Add(book Book) error {
	if err := book.Validate(); err != nil {
		return err
	}
	if _, exists := cat.index[book.Title]; exists {
		return fmt.Errorf("book %q: %w", book.Title, errors.ErrAlreadyExists)
	}
	cat.index[book.Title] = len(cat.list)
	cat.list = append(cat.list, book)
	return nil
}

// Borrow checks out one copy. The catalog is unchanged on failure.
func (cat *catalog) Borrow(title string) (Book, error) {
	i, ok := cat.index[title]
	if !ok {
		return Book{}, &errors.NotFoundError{Resource: "book", Title: title}
	}
	book := cat.list[i]
	if book.Available() == 0 {
		return Book{}, &errors.AvailabilityError{
			Title:     title,
			Operation: "borrow",
			Total:     book.Total,
			Borrowed:  book.Borrowed,
		}
	}
	book.Borrowed++
	cat.list[i] = book
	return book, nil
}

// Return checks one copy back in. The catalog is unchanged on failure.
func (cat *catalog) Return(title string) (Book, error) {
	i, ok := cat.index[title]
	if !ok {
		return Book{}, &errors.NotFoundError{Resource: "book", Title: title}
	}
	book := cat.list[i]
	if book.Borrowed == 0 {
		return Book{}, &errors.AvailabilityError{
			Title:     title,
			Operation: "return",
			Total:     book.Total,
			Borrowed:  book.Borrowed,
		}
	}
	book.Borrowed--
	cat.list[i] = book
	return book, nil
}

// Copy creates an independent copy of the catalog.
func (cat *catalog) Copy() Catalog {
	newCat := &catalog{
		options: cat.options,
		list:    make([]Book, len(cat.list)),
		index:   make(map[string]int, len(cat.index)),
	}
	copy(newCat.list, cat.list)
	for title, i := range cat.index {
		newCat.index[title] = i
	}
	return newCat
}

// replaceWith swaps the catalog contents for the given books. The input
// must already be validated.
func (cat *catalog) replaceWith(list []Book) {
	cat.list = make([]Book, len(list))
	copy(cat.list, list)
	cat.index = make(map[string]int, len(list))
	for i, book := range cat.list {
		cat.index[book.Title] = i
	}
}
