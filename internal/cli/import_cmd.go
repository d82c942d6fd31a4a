package cli

import (
	"fmt"

	"github.com/alexanderramin/disasterops/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newImportCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Replace the seed database with the projects in a JSON or YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensureImport(); err != nil {
				return err
			}
			res, err := a.Import.ImportFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			msg := fmt.Sprintf("Imported %d projects into %s", res.ProjectCount, a.Config.DBPath)
			if res.WeekOf != nil {
				msg += fmt.Sprintf(" (week of %s)", res.WeekOf.Format("2006-01-02"))
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.StyleGreen.Render(msg))
			return nil
		},
	}
}
