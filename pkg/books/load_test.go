package books

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/libris/pkg/errors"
)

const sampleYAML = `- id: B001
  title: "1984"
  author: George Orwell
  total_copies: 3
  borrowed_copies: 1
- id: B002
  title: The Hobbit
  author: J.R.R. Tolkien
  total_copies: 2
  borrowed_copies: 0
`

func TestParse(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		cat, err := Parse([]byte(sampleYAML))
		require.NoError(t, err)
		require.Equal(t, 2, cat.Len())

		book, err := cat.Book("1984")
		require.NoError(t, err)
		assert.Equal(t, "George Orwell", book.Author)
		assert.Equal(t, 3, book.Total)
		assert.Equal(t, 1, book.Borrowed)
		assert.Equal(t, 2, book.Available())
	})

	t.Run("Malformed", func(t *testing.T) {
		_, err := Parse([]byte("{{not yaml"))
		require.Error(t, err)
		assert.True(t, errors.IsParseError(err))
	})

	t.Run("BorrowedExceedsTotal", func(t *testing.T) {
		_, err := Parse([]byte("- title: Broken\n  total_copies: 1\n  borrowed_copies: 5\n"))
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("DuplicateTitles", func(t *testing.T) {
		_, err := Parse([]byte("- title: Twin\n  total_copies: 1\n- title: Twin\n  total_copies: 2\n"))
		require.Error(t, err)
		assert.True(t, errors.IsAlreadyExists(err))
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := Parse([]byte("[]\n"))
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestLoadFromFS(t *testing.T) {
	fsys := fstest.MapFS{
		"books.yaml": &fstest.MapFile{Data: []byte(sampleYAML)},
	}

	cat, err := New(WithFS(fsys, "books.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 2, cat.Len())

	// Insertion order is preserved from the file.
	books := cat.Books()
	assert.Equal(t, "1984", books[0].Title)
	assert.Equal(t, "The Hobbit", books[1].Title)
}

func TestNewLocal(t *testing.T) {
	t.Run("MissingFileHealsToDefault", func(t *testing.T) {
		cat := NewLocal(filepath.Join(t.TempDir(), "books.yaml"))
		assertDefaultCatalog(t, cat)
	})

	t.Run("CorruptFileHealsToDefault", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "books.yaml")
		require.NoError(t, os.WriteFile(path, []byte("{{{ definitely not yaml"), 0o644))

		cat := NewLocal(path)
		assertDefaultCatalog(t, cat)
	})

	t.Run("InvalidCountsHealToDefault", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "books.yaml")
		require.NoError(t, os.WriteFile(path, []byte("- title: Broken\n  total_copies: 1\n  borrowed_copies: 9\n"), 0o644))

		cat := NewLocal(path)
		assertDefaultCatalog(t, cat)
	})

	t.Run("ValidFileLoads", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "books.yaml")
		require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o644))

		cat := NewLocal(path)
		require.Equal(t, 2, cat.Len())
		book, err := cat.Book("1984")
		require.NoError(t, err)
		assert.Equal(t, 1, book.Borrowed)
	})

	t.Run("HealedCatalogSavesToPath", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "books.yaml")

		cat := NewLocal(path)
		_, err := cat.Borrow("The Hobbit")
		require.NoError(t, err)
		require.NoError(t, cat.Save())

		reloaded := NewLocal(path)
		book, err := reloaded.Book("The Hobbit")
		require.NoError(t, err)
		assert.Equal(t, 1, book.Borrowed)
	})
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "books.yaml")

	cat := Default()
	_, err := cat.Borrow("To Kill a Mockingbird")
	require.NoError(t, err)

	saver, err := New(WithBooks(cat.Books()...), WithWritePath(path))
	require.NoError(t, err)
	require.NoError(t, saver.Save())

	reloaded := NewLocal(path)

	// Same titles, same counts, same order.
	assert.Equal(t, cat.Books(), reloaded.Books())
}

func TestSaveWithoutPath(t *testing.T) {
	cat := NewEmpty()
	err := cat.Save()
	require.Error(t, err)

	var cfgErr *errors.ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

// assertDefaultCatalog checks that cat is exactly the embedded default set.
func assertDefaultCatalog(t *testing.T, cat Catalog) {
	t.Helper()
	want := Default().Books()
	require.NotEmpty(t, want)
	assert.Equal(t, want, cat.Books())
	for _, book := range cat.Books() {
		assert.NoError(t, book.Validate())
		assert.Zero(t, book.Borrowed)
	}
}
