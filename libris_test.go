package libris

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/agentstation/libris/pkg/books"
	"github.com/agentstation/libris/pkg/errors"
)

func newTestClient(t *testing.T) (Libris, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "books.yaml")
	lib, err := New(WithPath(path), WithoutLock())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	t.Cleanup(func() { _ = lib.Close() })
	return lib, path
}

func TestNewHealsToDefaults(t *testing.T) {
	lib, _ := newTestClient(t)

	cat := lib.Catalog()
	if cat.Len() == 0 {
		t.Fatal("catalog must never be empty after initialization")
	}

	want := books.Default().Books()
	got := cat.Books()
	if len(got) != len(want) {
		t.Fatalf("expected default catalog with %d books, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("default catalog entry %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestBorrowPersists(t *testing.T) {
	lib, path := newTestClient(t)

	book, err := lib.Borrow("The Hobbit")
	if err != nil {
		t.Fatalf("Borrow failed: %v", err)
	}
	if book.Borrowed != 1 {
		t.Errorf("expected 1 borrowed, got %d", book.Borrowed)
	}

	// A fresh client sees the persisted state.
	if err := lib.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	reopened, err := New(WithPath(path), WithoutLock())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer reopened.Close()

	reloaded, err := reopened.Catalog().Book("The Hobbit")
	if err != nil {
		t.Fatalf("Book lookup failed: %v", err)
	}
	if reloaded.Borrowed != 1 {
		t.Errorf("persisted borrowed count = %d, want 1", reloaded.Borrowed)
	}
}

func TestBorrowErrors(t *testing.T) {
	lib, _ := newTestClient(t)

	if _, err := lib.Borrow("No Such Book"); !errors.IsNotFound(err) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	// Exhaust The Hobbit (2 copies).
	for i := 0; i < 2; i++ {
		if _, err := lib.Borrow("The Hobbit"); err != nil {
			t.Fatalf("Borrow %d failed: %v", i+1, err)
		}
	}
	if _, err := lib.Borrow("The Hobbit"); !errors.IsNoCopies(err) {
		t.Errorf("expected ErrNoCopies, got %v", err)
	}

	if _, err := lib.Return("1984"); !errors.IsNothingBorrowed(err) {
		t.Errorf("expected ErrNothingBorrowed, got %v", err)
	}
}

func TestListings(t *testing.T) {
	lib, _ := newTestClient(t)

	if len(lib.Borrowed()) != 0 {
		t.Error("fresh catalog should have no borrowed books")
	}

	if _, err := lib.Borrow("1984"); err != nil {
		t.Fatalf("Borrow failed: %v", err)
	}

	borrowed := lib.Borrowed()
	if len(borrowed) != 1 || borrowed[0].Title != "1984" {
		t.Errorf("Borrowed() = %v, want just 1984", borrowed)
	}

	// 1984 still has copies left so it stays available.
	for _, book := range lib.Available() {
		if book.Title == "1984" && book.Available() != 2 {
			t.Errorf("1984 availability = %d, want 2", book.Available())
		}
	}
}

func TestHooks(t *testing.T) {
	lib, _ := newTestClient(t)

	var borrows, returns []string
	lib.OnBorrow(func(book books.Book) { borrows = append(borrows, book.Title) })
	lib.OnReturn(func(book books.Book) { returns = append(returns, book.Title) })

	if _, err := lib.Borrow("1984"); err != nil {
		t.Fatalf("Borrow failed: %v", err)
	}
	if _, err := lib.Return("1984"); err != nil {
		t.Fatalf("Return failed: %v", err)
	}
	if _, err := lib.Borrow("No Such Book"); err == nil {
		t.Fatal("expected error")
	}

	if len(borrows) != 1 || borrows[0] != "1984" {
		t.Errorf("borrow hooks = %v, want [1984]", borrows)
	}
	if len(returns) != 1 || returns[0] != "1984" {
		t.Errorf("return hooks = %v, want [1984]", returns)
	}
}

func TestReset(t *testing.T) {
	lib, path := newTestClient(t)

	if _, err := lib.Borrow("The Hobbit"); err != nil {
		t.Fatalf("Borrow failed: %v", err)
	}
	if err := lib.Reset(); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}

	book, err := lib.Catalog().Book("The Hobbit")
	if err != nil {
		t.Fatalf("Book lookup failed: %v", err)
	}
	if book.Borrowed != 0 {
		t.Errorf("Reset should clear borrowed counts, got %d", book.Borrowed)
	}

	if _, err := os.Stat(path); err != nil {
		t.Errorf("Reset should write the catalog file: %v", err)
	}
}

func TestSaveFailureSurfaces(t *testing.T) {
	dir := t.TempDir()
	// A directory at the data file path makes every write fail.
	blocked := filepath.Join(dir, "books.yaml")
	if err := os.Mkdir(blocked, 0o755); err != nil {
		t.Fatal(err)
	}

	lib, err := New(WithPath(blocked), WithoutLock())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer lib.Close()

	_, err = lib.Borrow("The Hobbit")
	if !errors.IsIOError(err) {
		t.Errorf("expected IOError from save, got %v", err)
	}
}

func TestFileLock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "books.yaml")

	lib, err := New(WithPath(path))
	if err != nil {
		t.Fatalf("New with locking failed: %v", err)
	}

	lockPath := filepath.Join(filepath.Dir(path), "books.lock")
	if _, err := os.Stat(lockPath); err != nil {
		t.Errorf("lock file should exist while the client is open: %v", err)
	}

	if err := lib.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
	// Close is idempotent.
	if err := lib.Close(); err != nil {
		t.Errorf("second Close failed: %v", err)
	}
}
