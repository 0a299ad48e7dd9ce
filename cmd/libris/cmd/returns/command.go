// Package returns provides the command for checking a borrowed copy back in.
package returns

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentstation/libris"
	"github.com/agentstation/libris/internal/cmd/output"
	"github.com/agentstation/libris/pkg/logging"
)

// AppContext defines the interface that the return command needs from the app.
type AppContext interface {
	Library() (libris.Libris, error)
	Format() string
}

// NewCommand creates the return command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:     "return <title>",
		GroupID: "core",
		Short:   "Return one borrowed copy of a book",
		Long: `Return checks one copy of the titled book back in and saves the catalog.

The title must match exactly, including case.`,
		Example: `  libris return "The Hobbit"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := app.Library()
			if err != nil {
				return err
			}

			book, err := lib.Return(args[0])
			if err != nil {
				return err
			}
			logging.Ctx(cmd.Context()).Debug().
				Str("title", book.Title).
				Int("available", book.Available()).
				Msg("Returned via command")

			format := output.DetectFormat(app.Format())
			if format == output.FormatTable {
				fmt.Printf("Thank you for returning %q. %d of %d copies now available.\n",
					book.Title, book.Available(), book.Total)
				return nil
			}
			return output.NewFormatter(format).Format(os.Stdout, book)
		},
	}
}
