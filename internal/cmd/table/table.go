// Package table converts book records into tabular data for display.
package table

import (
	"strconv"

	"github.com/agentstation/libris/pkg/books"
)

// Align represents column alignment options.
type Align int

const (
	// AlignDefault uses the renderer's default alignment.
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data holds rows and headers ready for rendering.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align
}

// BooksToData formats the full catalog listing with both copy counts.
func BooksToData(list []books.Book) Data {
	data := Data{
		Headers:         []string{"ID", "Title", "Author", "Total", "Available", "Borrowed"},
		ColumnAlignment: []Align{AlignLeft, AlignLeft, AlignLeft, AlignRight, AlignRight, AlignRight},
	}
	for _, book := range list {
		data.Rows = append(data.Rows, []string{
			book.ID,
			book.Title,
			book.Author,
			strconv.Itoa(book.Total),
			strconv.Itoa(book.Available()),
			strconv.Itoa(book.Borrowed),
		})
	}
	return data
}

// AvailableToData formats the available-books listing.
func AvailableToData(list []books.Book) Data {
	data := Data{
		Headers:         []string{"ID", "Title", "Author", "Available"},
		ColumnAlignment: []Align{AlignLeft, AlignLeft, AlignLeft, AlignRight},
	}
	for _, book := range list {
		data.Rows = append(data.Rows, []string{
			book.ID,
			book.Title,
			book.Author,
			strconv.Itoa(book.Available()),
		})
	}
	return data
}

// BorrowedToData formats the borrowed-books listing.
func BorrowedToData(list []books.Book) Data {
	data := Data{
		Headers:         []string{"ID", "Title", "Author", "Borrowed"},
		ColumnAlignment: []Align{AlignLeft, AlignLeft, AlignLeft, AlignRight},
	}
	for _, book := range list {
		data.Rows = append(data.Rows, []string{
			book.ID,
			book.Title,
			book.Author,
			strconv.Itoa(book.Borrowed),
		})
	}
	return data
}
