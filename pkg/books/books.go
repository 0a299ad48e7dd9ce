package books

import (
	"github.com/agentstation/libris/pkg/errors"
)

// Book is a single catalog entry. Title is the lookup key and must be
// unique within a catalog; matching is exact and case-sensitive.
type Book struct {
	ID       string `json:"id,omitempty" yaml:"id,omitempty"`
	Title    string `json:"title" yaml:"title"`
	Author   string `json:"author,omitempty" yaml:"author,omitempty"`
	Total    int    `json:"total_copies" yaml:"total_copies"`
	Borrowed int    `json:"borrowed_copies" yaml:"borrowed_copies"`
}

// Available returns the number of copies not currently out on loan.
func (b Book) Available() int {
	return b.Total - b.Borrowed
}

// Validate checks the copy-count invariant: 0 <= borrowed <= total.
func (b Book) Validate() error {
	if b.Title == "" {
		return errors.NewValidationError("title", b.Title, "must not be empty")
	}
	if b.Total < 0 {
		return errors.NewValidationError("total_copies", b.Total, "must be non-negative")
	}
	if b.Borrowed < 0 {
		return errors.NewValidationError("borrowed_copies", b.Borrowed, "must be non-negative")
	}
	if b.Borrowed > b.Total {
		return errors.NewValidationError("borrowed_copies", b.Borrowed, "must not exceed total_copies")
	}
	return nil
}
