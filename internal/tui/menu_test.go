package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agentstation/libris"
)

func newTestModel(t *testing.T) *model {
	t.Helper()
	lib, err := libris.New(
		libris.WithPath(filepath.Join(t.TempDir(), "books.yaml")),
		libris.WithoutLock(),
	)
	if err != nil {
		t.Fatalf("libris.New failed: %v", err)
	}
	t.Cleanup(func() { _ = lib.Close() })
	return newModel(lib)
}

func key(s string) tea.KeyMsg {
	if s == "enter" {
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	if s == "esc" {
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMenuQuit(t *testing.T) {
	m := newTestModel(t)

	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("q should quit from the menu")
	}
}

func TestViewAvailableListing(t *testing.T) {
	m := newTestModel(t)

	// First menu entry is the available listing.
	m.Update(key("enter"))
	if m.screen != screenListing {
		t.Fatalf("expected listing screen, got %v", m.screen)
	}

	view := m.View()
	if !strings.Contains(view, "Available books") {
		t.Errorf("listing view missing header: %q", view)
	}
	if !strings.Contains(view, "The Hobbit") {
		t.Errorf("listing view missing default book: %q", view)
	}

	// Any key returns to the menu.
	m.Update(key("x"))
	if m.screen != screenMenu {
		t.Error("any key should return to the menu from a listing")
	}
}

func TestBorrowFlow(t *testing.T) {
	m := newTestModel(t)

	// Move to "Borrow a book" (third entry) and select it.
	m.Update(key("j"))
	m.Update(key("j"))
	m.Update(key("enter"))
	if m.screen != screenPicker {
		t.Fatalf("expected picker screen, got %v", m.screen)
	}

	// Pick the first available book.
	m.Update(key("enter"))
	if m.screen != screenMenu {
		t.Fatalf("expected to return to menu, got %v", m.screen)
	}
	if !strings.Contains(m.status, "You borrowed") {
		t.Errorf("expected borrow confirmation, got status=%q err=%q", m.status, m.errMsg)
	}

	if got := len(m.lib.Borrowed()); got != 1 {
		t.Errorf("expected 1 borrowed book, got %d", got)
	}
}

func TestReturnWithNothingBorrowed(t *testing.T) {
	m := newTestModel(t)

	// Move to "Return a book" (fourth entry) and select it.
	m.Update(key("j"))
	m.Update(key("j"))
	m.Update(key("j"))
	m.Update(key("enter"))

	if m.screen != screenMenu {
		t.Errorf("picker should not open with nothing to return")
	}
	if !strings.Contains(m.errMsg, "no borrowed books") {
		t.Errorf("expected empty-return message, got %q", m.errMsg)
	}
}

func TestPickerCancel(t *testing.T) {
	m := newTestModel(t)

	m.Update(key("j"))
	m.Update(key("j"))
	m.Update(key("enter"))
	if m.screen != screenPicker {
		t.Fatalf("expected picker screen, got %v", m.screen)
	}

	m.Update(key("esc"))
	if m.screen != screenMenu {
		t.Error("esc should cancel the picker")
	}
	if len(m.lib.Borrowed()) != 0 {
		t.Error("cancelled picker must not mutate the catalog")
	}
}
