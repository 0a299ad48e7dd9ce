// Package list provides commands for listing catalog contents.
package list

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/agentstation/libris"
)

// AppContext defines the interface that list commands need from the app.
// This allows for better testability and decoupling from the full app.
type AppContext interface {
	Library() (libris.Libris, error)
	Logger() *zerolog.Logger
	Format() string
	Quiet() bool
}

// NewCommand creates the list command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list [resource]",
		GroupID: "core",
		Short:   "List books from the catalog",
		Long: `List displays books from the local catalog.

Available subcommands:
  available   - books with copies on the shelf
  borrowed    - books with copies out on loan
  books       - every book with both counts`,
		Example: `  libris list available            # What can be borrowed right now
  libris list borrowed             # What is currently out on loan
  libris list books --format json  # Full catalog as JSON`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to help if no subcommand
			if len(args) == 0 {
				return cmd.Help()
			}
			return fmt.Errorf("unknown resource: %s", args[0])
		},
	}

	// Add subcommands using the app context
	cmd.AddCommand(newAvailableCommand(app))
	cmd.AddCommand(newBorrowedCommand(app))
	cmd.AddCommand(newBooksCommand(app))

	return cmd
}
