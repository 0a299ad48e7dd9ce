package libris

// Compile-time interface check to ensure proper implementation.
var _ Persistence = (*client)(nil)

// Persistence handles catalog persistence operations.
type Persistence interface {
	// Save persists the current catalog to disk
	Save() error
}

// Save persists the current catalog to disk using the catalog's native
// save functionality. Mutating operations already save automatically;
// this exists for callers that disabled autosave.
func (c *client) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.catalog.Save()
}
