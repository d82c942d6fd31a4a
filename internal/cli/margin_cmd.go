package cli

import (
	"fmt"

	"github.com/alexanderramin/disasterops/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newMarginCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:     "margin",
		Aliases: []string{"margins"},
		Short:   "Compare budgeted and actual margins, labor and materials",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.ensureOps(ctx); err != nil {
				return err
			}
			resp, err := a.Margins.Margins(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatMargins(resp))
			return nil
		},
	}
}
