package cli

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/disasterops/internal/app"
	"github.com/alexanderramin/disasterops/internal/cli/formatter"
	"github.com/alexanderramin/disasterops/internal/config"
	"github.com/alexanderramin/disasterops/internal/db"
	"github.com/alexanderramin/disasterops/internal/repository"
	"github.com/alexanderramin/disasterops/internal/service"
	"github.com/alexanderramin/disasterops/internal/store"
	"github.com/spf13/cobra"
)

// App holds configuration and the use cases CLI commands run against.
// Use cases left nil are built on first use from Config, so commands that
// never touch the database never open it.
type App struct {
	Config   config.Config
	Observer service.UseCaseObserver

	Dashboard app.DashboardUseCase
	Projects  app.ProjectListUseCase
	Schedule  app.ScheduleUseCase
	Margins   app.MarginUseCase
	Import    service.ImportService

	// IsTerminal reports whether stdout is a terminal; nil means it is not.
	IsTerminal func() bool

	database *sql.DB
}

// NewRootCmd creates the top-level "disasterops" command and registers all
// subcommands against the provided App.
func NewRootCmd(a *App) *cobra.Command {
	var weekOf string

	root := &cobra.Command{
		Use:           "disasterops",
		Short:         "Restoration job dashboard: revenue, weekly crew schedule, margins",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			isTTY := a.IsTerminal != nil && a.IsTerminal()
			formatter.ConfigureColor(bool(a.Config.NoColor), isTTY)
			if weekOf != "" {
				d, err := config.ParseDate(weekOf)
				if err != nil {
					return fmt.Errorf("--week-of: %w", err)
				}
				a.Config.WeekOf = d
			}
			return nil
		},
		// Without a subcommand the dashboard is shown.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(cmd, a)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.Config.DBPath, "db", a.Config.DBPath, "SQLite seed database path")
	flags.StringVar(&a.Config.File, "file", a.Config.File, "JSON or YAML snapshot file (used instead of the database)")
	flags.StringVar(&weekOf, "week-of", "", "Label the schedule for the week containing this date (YYYY-MM-DD)")
	flags.BoolVar((*bool)(&a.Config.NoColor), "no-color", bool(a.Config.NoColor), "Disable colored output")

	root.AddCommand(
		newDashboardCmd(a),
		newProjectsCmd(a),
		newShowCmd(a),
		newScheduleCmd(a),
		newMarginCmd(a),
		newImportCmd(a),
	)

	return root
}

// Close releases the database if one was opened.
func (a *App) Close() error {
	if a.database == nil {
		return nil
	}
	err := a.database.Close()
	a.database = nil
	return err
}

func (a *App) observer() service.UseCaseObserver {
	if a.Observer == nil {
		return service.NoopUseCaseObserver{}
	}
	return a.Observer
}

func (a *App) openDB() (*sql.DB, error) {
	if a.database != nil {
		return a.database, nil
	}
	database, err := db.OpenDB(a.Config.DBPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	a.database = database
	return database, nil
}

// ensureOps loads the portfolio once and wires the view use cases over it.
func (a *App) ensureOps(ctx context.Context) error {
	if a.Dashboard != nil && a.Projects != nil && a.Schedule != nil && a.Margins != nil {
		return nil
	}

	var repo repository.ProjectRepo
	if a.Config.File == "" {
		database, err := a.openDB()
		if err != nil {
			return err
		}
		repo = repository.NewSQLiteProjectRepo(database)
	}

	pf, err := service.NewPortfolioLoader(repo, a.observer()).Load(ctx, a.Config.File)
	if err != nil {
		return err
	}
	snap, err := store.NewSnapshot(pf.Projects)
	if err != nil {
		return fmt.Errorf("loading snapshot from %s: %w", pf.Source, err)
	}

	ops := service.NewOpsService(store.New(snap), service.ResolveWeek(a.Config.WeekOf.Ptr(), pf.WeekOf), a.observer())
	a.Dashboard = ops
	a.Projects = ops
	a.Schedule = ops
	a.Margins = ops
	return nil
}

func (a *App) ensureImport() error {
	if a.Import != nil {
		return nil
	}
	database, err := a.openDB()
	if err != nil {
		return err
	}
	a.Import = service.NewImportService(db.NewSQLiteUnitOfWork(database), a.observer())
	return nil
}
