package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/disasterops/internal/app"
	"github.com/alexanderramin/disasterops/internal/cli/formatter"
	"github.com/alexanderramin/disasterops/internal/domain"
	"github.com/spf13/cobra"
)

// parseScheduleChange splits "ID:DAY". The id may itself contain colons.
func parseScheduleChange(action app.ScheduleAction, arg string) (app.ScheduleChange, error) {
	i := strings.LastIndex(arg, ":")
	if i <= 0 || i == len(arg)-1 {
		return app.ScheduleChange{}, fmt.Errorf("invalid schedule change %q (expected ID:DAY)", arg)
	}
	day, err := domain.ParseWeekday(arg[i+1:])
	if err != nil {
		return app.ScheduleChange{}, err
	}
	return app.ScheduleChange{Action: action, ProjectID: arg[:i], Day: day}, nil
}

func newScheduleCmd(a *App) *cobra.Command {
	var adds, removes []string

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Show the weekly crew board, applying any --add/--remove changes first",
		Long: `Show the Monday-Friday board with crew-hours per day and the open jobs
still waiting for a slot.

Changes apply to this run only; the seed database is never modified.
All --add changes are applied before --remove changes.`,
		Example: `  disasterops schedule --add 2:Thu --add 2:Fri
  disasterops schedule --remove 1:Tuesday`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var changes []app.ScheduleChange
			for _, arg := range adds {
				c, err := parseScheduleChange(app.ScheduleAdd, arg)
				if err != nil {
					return err
				}
				changes = append(changes, c)
			}
			for _, arg := range removes {
				c, err := parseScheduleChange(app.ScheduleRemove, arg)
				if err != nil {
					return err
				}
				changes = append(changes, c)
			}

			ctx := cmd.Context()
			if err := a.ensureOps(ctx); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, c := range changes {
				res, err := a.Schedule.ChangeSchedule(ctx, c)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, formatter.FormatScheduleChange(c, res))
			}
			if len(changes) > 0 {
				fmt.Fprintln(out)
			}

			resp, err := a.Schedule.Schedule(ctx, app.ScheduleRequest{})
			if err != nil {
				return err
			}
			fmt.Fprintln(out, formatter.FormatSchedule(resp))
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&adds, "add", nil, "Schedule a project for a day, as ID:DAY (repeatable)")
	cmd.Flags().StringArrayVar(&removes, "remove", nil, "Unschedule a project from a day, as ID:DAY (repeatable)")

	return cmd
}
