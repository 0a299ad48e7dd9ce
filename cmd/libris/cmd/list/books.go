package list

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentstation/libris/internal/cmd/output"
	"github.com/agentstation/libris/internal/cmd/table"
	"github.com/agentstation/libris/pkg/books"
)

// newAvailableCommand creates the list available subcommand.
func newAvailableCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:     "available",
		Short:   "List books with copies on the shelf",
		Aliases: []string{"avail"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lib, err := app.Library()
			if err != nil {
				return err
			}
			list := lib.Available()
			return render(app, list, table.AvailableToData(list))
		},
	}
}

// newBorrowedCommand creates the list borrowed subcommand.
func newBorrowedCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "borrowed",
		Short: "List books with copies out on loan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lib, err := app.Library()
			if err != nil {
				return err
			}
			list := lib.Borrowed()
			return render(app, list, table.BorrowedToData(list))
		},
	}
}

// newBooksCommand creates the list books subcommand.
func newBooksCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:     "books",
		Short:   "List every book with both copy counts",
		Aliases: []string{"all"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lib, err := app.Library()
			if err != nil {
				return err
			}
			list := lib.Catalog().Books()
			return render(app, list, table.BooksToData(list))
		},
	}
}

// render writes the listing in the configured format. Table output uses
// the pre-built tabular form; json/yaml emit the raw records.
func render(app AppContext, list []books.Book, tableData table.Data) error {
	format := output.DetectFormat(app.Format())
	formatter := output.NewFormatter(format)

	if !app.Quiet() && format == output.FormatTable {
		fmt.Fprintf(os.Stderr, "Found %d books\n", len(list))
	}

	var data any = list
	if format == output.FormatTable {
		if len(list) == 0 {
			fmt.Println("No books to display.")
			return nil
		}
		data = tableData
	}
	return formatter.Format(os.Stdout, data)
}
