package cli

import (
	"fmt"

	"github.com/alexanderramin/disasterops/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newDashboardCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show revenue, balances, deposits and today's priorities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(cmd, a)
		},
	}
}

func runDashboard(cmd *cobra.Command, a *App) error {
	ctx := cmd.Context()
	if err := a.ensureOps(ctx); err != nil {
		return err
	}
	resp, err := a.Dashboard.Dashboard(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatDashboard(resp))
	return nil
}
