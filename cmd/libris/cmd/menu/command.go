// Package menu provides the interactive menu command.
package menu

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/agentstation/libris"
	"github.com/agentstation/libris/internal/tui"
)

// AppContext defines the interface that the menu command needs from the app.
type AppContext interface {
	Library() (libris.Libris, error)
	Logger() *zerolog.Logger
}

// NewCommand creates the menu command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:     "menu",
		GroupID: "core",
		Short:   "Browse and lend books interactively",
		Long: `Menu opens an interactive session for browsing the catalog, borrowing,
and returning books. Every successful mutation is saved immediately.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lib, err := app.Library()
			if err != nil {
				return err
			}

			app.Logger().Debug().Str("data", lib.Path()).Msg("Starting interactive menu")
			return tui.Run(lib)
		},
	}
}
