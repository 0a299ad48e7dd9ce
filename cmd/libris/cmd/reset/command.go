// Package reset provides the command for restoring the default catalog.
package reset

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/agentstation/libris"
)

// AppContext defines the interface that the reset command needs from the app.
type AppContext interface {
	Library() (libris.Libris, error)
	Logger() *zerolog.Logger
}

// NewCommand creates the reset command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "reset",
		GroupID: "management",
		Short:   "Replace the catalog with the built-in starter set",
		Long: `Reset overwrites the catalog file with the built-in starter catalog,
discarding all borrow state. This is the same catalog libris falls back
to when the file is missing or corrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lib, err := app.Library()
			if err != nil {
				return err
			}

			if !yes {
				fmt.Fprintf(cmd.OutOrStdout(), "This discards all borrow state in %s. Continue? [y/N] ", lib.Path())
				reader := bufio.NewReader(cmd.InOrStdin())
				answer, _ := reader.ReadString('\n')
				if !strings.EqualFold(strings.TrimSpace(answer), "y") {
					fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
					return nil
				}
			}

			if err := lib.Reset(); err != nil {
				return err
			}

			app.Logger().Info().Str("data", lib.Path()).Msg("Catalog reset to defaults")
			fmt.Fprintf(cmd.OutOrStdout(), "Catalog reset to defaults at %s\n", lib.Path())
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")

	return cmd
}
