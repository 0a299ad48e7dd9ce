package libris

import (
	"sync"

	"github.com/agentstation/libris/pkg/books"
)

// Hook function types for catalog events
type (
	// BorrowHook is called after a copy is successfully borrowed
	BorrowHook func(book books.Book)

	// ReturnHook is called after a copy is successfully returned
	ReturnHook func(book books.Book)
)

// hooks manages event callbacks for catalog changes
type hooks struct {
	mu       sync.RWMutex
	borrowed []BorrowHook
	returned []ReturnHook
}

// newHooks creates a new hooks instance
func newHooks() *hooks {
	return &hooks{}
}

// onBorrow registers a callback for successful borrows
func (h *hooks) onBorrow(fn BorrowHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.borrowed = append(h.borrowed, fn)
}

// onReturn registers a callback for successful returns
func (h *hooks) onReturn(fn ReturnHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.returned = append(h.returned, fn)
}

// triggerBorrow fires all borrow hooks with the updated record
func (h *hooks) triggerBorrow(book books.Book) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, hook := range h.borrowed {
		hook(book)
	}
}

// triggerReturn fires all return hooks with the updated record
func (h *hooks) triggerReturn(book books.Book) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, hook := range h.returned {
		hook(book)
	}
}
