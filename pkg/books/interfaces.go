package books

// Reader provides read-only access to catalog data.
type Reader interface {
	// Books returns every book in catalog order.
	Books() []Book

	// Book returns a book by exact, case-sensitive title match.
	Book(title string) (Book, error)

	// Available returns books with at least one copy on the shelf,
	// in catalog order.
	Available() []Book

	// Borrowed returns books with at least one copy out on loan,
	// in catalog order.
	Borrowed() []Book

	// Len returns the number of books in the catalog.
	Len() int
}

// Writer provides mutation operations for catalog data.
type Writer interface {
	// Add appends a book to the catalog. It fails if the title is
	// already present or the copy counts are invalid.
	Add(book Book) error

	// Borrow checks out one copy of the titled book and returns the
	// updated record.
	Borrow(title string) (Book, error)

	// Return checks one copy of the titled book back in and returns
	// the updated record.
	Return(title string) (Book, error)
}

// Copier provides catalog copying capabilities.
type Copier interface {
	// Copy returns an independent copy of the catalog.
	Copy() Catalog
}

// Persistence provides load and save operations for catalog data.
type Persistence interface {
	// Load replaces the catalog contents from the configured source.
	Load() error

	// Save writes the catalog to the configured path.
	Save() error
}

// Catalog is the complete interface combining all catalog capabilities.
// It is composed of smaller, focused interfaces following the Interface
// Segregation Principle.
type Catalog interface {
	Reader
	Writer
	Copier
	Persistence
}

// ReadOnlyCatalog provides read-only access to a catalog.
type ReadOnlyCatalog interface {
	Reader
	Copier
}
