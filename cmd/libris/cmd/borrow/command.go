// Package borrow provides the command for checking out a copy of a book.
package borrow

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentstation/libris"
	"github.com/agentstation/libris/internal/cmd/output"
	"github.com/agentstation/libris/pkg/logging"
)

// AppContext defines the interface that the borrow command needs from the app.
type AppContext interface {
	Library() (libris.Libris, error)
	Format() string
}

// NewCommand creates the borrow command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:     "borrow <title>",
		GroupID: "core",
		Short:   "Borrow one copy of a book",
		Long: `Borrow checks out one copy of the titled book and saves the catalog.

The title must match exactly, including case.`,
		Example: `  libris borrow "The Hobbit"
  libris borrow 1984 --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := app.Library()
			if err != nil {
				return err
			}

			book, err := lib.Borrow(args[0])
			if err != nil {
				return err
			}
			logging.Ctx(cmd.Context()).Debug().
				Str("title", book.Title).
				Int("available", book.Available()).
				Msg("Borrowed via command")

			format := output.DetectFormat(app.Format())
			if format == output.FormatTable {
				fmt.Printf("You borrowed %q. %d of %d copies remain available.\n",
					book.Title, book.Available(), book.Total)
				return nil
			}
			return output.NewFormatter(format).Format(os.Stdout, book)
		},
	}
}
