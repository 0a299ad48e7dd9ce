package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/libris/internal/cmd/table"
	"github.com/agentstation/libris/pkg/books"
)

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(FormatJSON)

	err := f.Format(&buf, []books.Book{{Title: "1984", Total: 3, Borrowed: 1}})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"title": "1984"`)
	assert.Contains(t, buf.String(), `"total_copies": 3`)
}

func TestYAMLFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(FormatYAML)

	err := f.Format(&buf, []books.Book{{Title: "The Hobbit", Total: 2}})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "title: The Hobbit")
	assert.Contains(t, buf.String(), "total_copies: 2")
}

func TestTableFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(FormatTable)

	data := table.AvailableToData([]books.Book{
		{ID: "B005", Title: "The Hobbit", Author: "J.R.R. Tolkien", Total: 2},
	})
	err := f.Format(&buf, data)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "The Hobbit")
	assert.Contains(t, out, "J.R.R. Tolkien")
	assert.Contains(t, strings.ToUpper(out), "AVAILABLE")
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"table", FormatTable, false},
		{"JSON", FormatJSON, false},
		{"yaml", FormatYAML, false},
		{"", Format(""), false},
		{"csv", Format(""), true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "ParseFormat(%q)", tt.in)
			continue
		}
		require.NoError(t, err, "ParseFormat(%q)", tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestStructToData(t *testing.T) {
	data := StructToData(books.Book{ID: "B001", Title: "1984", Total: 3, Borrowed: 2})

	require.Equal(t, []string{"Property", "Value"}, data.Headers)
	require.Len(t, data.Rows, 5)
	assert.Equal(t, []string{"Id", "B001"}, data.Rows[0])
	assert.Equal(t, []string{"Title", "1984"}, data.Rows[1])
	assert.Equal(t, []string{"Total Copies", "3"}, data.Rows[3])
}
