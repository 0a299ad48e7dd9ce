package books

import (
	"io/fs"

	"github.com/goccy/go-yaml"

	"github.com/agentstation/libris/pkg/errors"
)

// Parse decodes a serialized catalog and validates the catalog invariants:
// copy counts in range, unique titles, at least one book. It is a pure
// function; the healing policy (fall back to the default catalog) lives in
// NewLocal so the two can be tested independently.
func Parse(data []byte) (Catalog, error) {
	var list []Book
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, errors.WrapParse("yaml", "", err)
	}
	if len(list) == 0 {
		return nil, errors.NewValidationError("books", len(list), "catalog must contain at least one book")
	}
	return New(WithBooks(list...))
}

// Load replaces the catalog contents from the configured filesystem.
// A catalog with no filesystem (memory catalog) loads nothing.
func (cat *catalog) Load() error {
	if cat.options.readFS == nil {
		return nil // Memory catalog - nothing to load
	}

	data, err := fs.ReadFile(cat.options.readFS, cat.options.readName)
	if err != nil {
		return errors.WrapIO("read", cat.options.readName, err)
	}

	parsed, err := Parse(data)
	if err != nil {
		return err
	}

	cat.replaceWith(parsed.Books())
	return nil
}
