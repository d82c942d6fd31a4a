package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/disasterops/internal/app"
	"github.com/alexanderramin/disasterops/internal/cli/formatter"
	"github.com/alexanderramin/disasterops/internal/sorter"
	"github.com/spf13/cobra"
)

func sortKeyNames() string {
	keys := sorter.Keys()
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}

func newProjectsCmd(a *App) *cobra.Command {
	var sortKey, dir string
	var desc, interactive bool

	cmd := &cobra.Command{
		Use:     "projects",
		Aliases: []string{"ls"},
		Short:   "List projects, optionally sorted by a column",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var cfg sorter.Config
			if sortKey != "" {
				key, err := sorter.ParseKey(sortKey)
				if err != nil {
					return fmt.Errorf("%w (valid keys: %s)", err, sortKeyNames())
				}
				cfg.Key = key
			}
			d, err := sorter.ParseDirection(dir)
			if err != nil {
				return err
			}
			cfg.Direction = d
			if desc {
				cfg.Direction = sorter.Desc
			}

			ctx := cmd.Context()
			if interactive && (a.IsTerminal == nil || !a.IsTerminal()) {
				return fmt.Errorf("--interactive needs a terminal")
			}
			if err := a.ensureOps(ctx); err != nil {
				return err
			}
			if interactive {
				return runBoard(ctx, a, cfg, cmd.InOrStdin(), cmd.OutOrStdout())
			}
			resp, err := a.Projects.ListProjects(ctx, app.ProjectListRequest{Sort: cfg})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatProjectList(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&sortKey, "sort", "", "Sort column (e.g. revenue, balance_due, priority, due_date)")
	cmd.Flags().StringVar(&dir, "dir", "asc", "Sort direction: asc or desc")
	cmd.Flags().BoolVar(&desc, "desc", false, "Sort descending (same as --dir desc)")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Browse projects and edit the week's schedule in a terminal UI")
	cmd.MarkFlagsMutuallyExclusive("dir", "desc")

	return cmd
}

func newShowCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show financial, cost and job details for one project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.ensureOps(ctx); err != nil {
				return err
			}
			resp, err := a.Projects.ProjectDetail(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProjectDetail(resp))
			return nil
		},
	}
}
