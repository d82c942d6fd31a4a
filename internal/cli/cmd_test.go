package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/disasterops/internal/app"
	"github.com/alexanderramin/disasterops/internal/config"
	"github.com/alexanderramin/disasterops/internal/domain"
	"github.com/alexanderramin/disasterops/internal/scheduler"
	"github.com/alexanderramin/disasterops/internal/service"
	"github.com/alexanderramin/disasterops/internal/store"
	"github.com/alexanderramin/disasterops/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp wires an App over the sample portfolio held in memory.
func testApp(t *testing.T) *App {
	t.Helper()
	snap, err := store.NewSnapshot(testutil.SamplePortfolio())
	require.NoError(t, err)
	ops := service.NewOpsService(store.New(snap), scheduler.DefaultWeek())
	return &App{
		Dashboard: ops,
		Projects:  ops,
		Schedule:  ops,
		Margins:   ops,
	}
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, a *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(a)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

// --- dashboard ---

func TestRootCmd_NoArgsShowsDashboard(t *testing.T) {
	out, err := executeCmd(t, testApp(t))
	require.NoError(t, err)
	assert.Contains(t, out, "DASHBOARD")
	assert.Contains(t, out, ", Team")
	assert.Contains(t, out, "$97,400")
}

func TestDashboardCmd(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "dashboard")
	require.NoError(t, err)
	assert.Contains(t, out, "Total at risk: $69,300")
}

func TestDashboardCmd_RejectsArgs(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "dashboard", "extra")
	assert.Error(t, err)
}

// --- projects ---

func TestProjectsCmd_SortDesc(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "projects", "--sort", "balance_due", "--desc")
	require.NoError(t, err)
	assert.Contains(t, out, "BALANCE ▼")
	assert.Contains(t, out, "sorted by balanceDue desc")
	assert.Less(t, indexOf(out, "American Legion"), indexOf(out, "Riverside Church"))
}

func TestProjectsCmd_DirFlag(t *testing.T) {
	byFlag, err := executeCmd(t, testApp(t), "projects", "--sort", "balance_due", "--desc")
	require.NoError(t, err)
	byDir, err := executeCmd(t, testApp(t), "projects", "--sort", "balance_due", "--dir", "DESC")
	require.NoError(t, err)
	assert.Equal(t, byFlag, byDir)

	_, err = executeCmd(t, testApp(t), "projects", "--sort", "revenue", "--dir", "sideways")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid sort direction")
}

func TestProjectsCmd_DefaultOrder(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "ls")
	require.NoError(t, err)
	assert.Less(t, indexOf(out, "Dave Bleeker"), indexOf(out, "American Legion"))
	assert.NotContains(t, out, "sorted by")
}

func TestProjectsCmd_UnknownSortKey(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "projects", "--sort", "colour")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown sort key")
	assert.Contains(t, err.Error(), "revenue")
}

// --- show ---

func TestShowCmd(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "show", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Kelly Carmody")
	assert.Contains(t, out, "$3,500 over")
}

func TestShowCmd_NotFound(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "show", "99")
	require.ErrorIs(t, err, app.ErrProjectNotFound)
}

func TestShowCmd_RequiresID(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "show")
	assert.Error(t, err)
}

// --- schedule ---

func TestScheduleCmd_Board(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "schedule")
	require.NoError(t, err)
	assert.Contains(t, out, "MONDAY 11/11  24 crew-hours")
	assert.Contains(t, out, "UNSCHEDULED PROJECTS (1)")
}

func TestScheduleCmd_AddAndRemove(t *testing.T) {
	a := testApp(t)
	out, err := executeCmd(t, a, "schedule", "--add", "2:thu", "--remove", "1:Tuesday", "--add", "nope:Mon")
	require.NoError(t, err)

	assert.Contains(t, out, "Added 2 to Thursday 11/14")
	assert.Contains(t, out, "Removed 1 from Tuesday")
	assert.Contains(t, out, "No change: added nope to Monday")
	assert.Contains(t, out, "THURSDAY 11/14  32 crew-hours")
	assert.Contains(t, out, "TUESDAY 11/12  0 crew-hours")
	assert.NotContains(t, out, "UNSCHEDULED PROJECTS")
}

func TestScheduleCmd_InvalidFlagValue(t *testing.T) {
	tests := []struct {
		arg  string
		want string
	}{
		{"2", "expected ID:DAY"},
		{":Mon", "expected ID:DAY"},
		{"2:", "expected ID:DAY"},
		{"2:Saturday", "invalid weekday"},
	}
	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			_, err := executeCmd(t, testApp(t), "schedule", "--add", tt.arg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestParseScheduleChange_IDWithColon(t *testing.T) {
	c, err := parseScheduleChange(app.ScheduleAdd, "job:7:Fri")
	require.NoError(t, err)
	assert.Equal(t, "job:7", c.ProjectID)
	assert.Equal(t, domain.Friday, c.Day)
}

// --- margin ---

func TestMarginCmd(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "margins")
	require.NoError(t, err)
	assert.Contains(t, out, "MARGIN ANALYSIS")
	assert.Contains(t, out, "$190 loss")
}

// --- loading from file and database ---

func TestFileFlag_LoadsSnapshotFile(t *testing.T) {
	a := &App{Config: config.Config{DBPath: filepath.Join(t.TempDir(), "unused.db")}}
	t.Cleanup(func() { _ = a.Close() })

	out, err := executeCmd(t, a, "--file", filepath.Join("testdata", "week.yaml"), "schedule")
	require.NoError(t, err)
	assert.Contains(t, out, "Week of 11/10 - 11/14")
	assert.Contains(t, out, "Dave Bleeker")
	assert.Nil(t, a.database, "file snapshots never open the database")
}

func TestWeekOfFlag_OverridesStoredWeek(t *testing.T) {
	a := &App{}
	out, err := executeCmd(t, a, "--file", filepath.Join("testdata", "week.yaml"), "--week-of", "2025-11-19", "schedule")
	require.NoError(t, err)
	assert.Contains(t, out, "Week of 11/17 - 11/21")
}

func TestWeekOfFlag_Invalid(t *testing.T) {
	_, err := executeCmd(t, &App{}, "--week-of", "soon", "schedule")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--week-of")
}

func TestImportThenDashboardFromDatabase(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "ops", "seed.db")

	importer := &App{Config: config.Config{DBPath: dbPath}}
	out, err := executeCmd(t, importer, "import", filepath.Join("testdata", "week.yaml"))
	require.NoError(t, importer.Close())
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 2 projects")
	assert.Contains(t, out, "(week of 2025-11-10)")

	reader := &App{Config: config.Config{DBPath: dbPath}}
	t.Cleanup(func() { _ = reader.Close() })
	out, err = executeCmd(t, reader, "projects", "--sort", "revenue")
	require.NoError(t, err)
	assert.Less(t, indexOf(out, "Dave Bleeker"), indexOf(out, "American Legion"))
}

func TestImportCmd_InvalidFile(t *testing.T) {
	a := &App{Config: config.Config{DBPath: filepath.Join(t.TempDir(), "seed.db")}}
	t.Cleanup(func() { _ = a.Close() })

	_, err := executeCmd(t, a, "import", filepath.Join("testdata", "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading import file")
}
