package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/alexanderramin/disasterops/internal/app"
	"github.com/alexanderramin/disasterops/internal/cli/formatter"
	"github.com/alexanderramin/disasterops/internal/domain"
	"github.com/alexanderramin/disasterops/internal/sorter"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

type boardMode int

const (
	modeProjects boardMode = iota
	modeSchedule
	modeDetail
	modePicker
)

type boardKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Tab    key.Binding
	Enter  key.Binding
	Sort   key.Binding
	Days   key.Binding
	Pick   key.Binding
	Back   key.Binding
	Quit   key.Binding
	Cancel key.Binding
}

var boardKeys = boardKeyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Tab:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "projects/schedule")),
	Enter:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
	Sort:   key.NewBinding(key.WithKeys("c", "t", "s", "r", "b", "m", "p", "d"), key.WithHelp("c/t/s/r/b/m/p/d", "sort column")),
	Days:   key.NewBinding(key.WithKeys("1", "2", "3", "4", "5"), key.WithHelp("1-5", "toggle Mon-Fri")),
	Pick:   key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "pick day")),
	Back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Quit:   key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	Cancel: key.NewBinding(key.WithKeys("ctrl+c")),
}

// Column hotkeys, one per sortable table header.
var sortHotkeys = map[string]sorter.Key{
	"c": sorter.KeyCustomer,
	"t": sorter.KeyJobType,
	"s": sorter.KeyStatus,
	"r": sorter.KeyRevenue,
	"b": sorter.KeyBalanceDue,
	"m": sorter.KeyActualMargin,
	"p": sorter.KeyPriority,
	"d": sorter.KeyDueDate,
}

var dayHotkeys = map[string]domain.Weekday{
	"1": domain.Monday,
	"2": domain.Tuesday,
	"3": domain.Wednesday,
	"4": domain.Thursday,
	"5": domain.Friday,
}

type boardLoadedMsg struct {
	list     *app.ProjectListResponse
	schedule *app.ScheduleResponse
	err      error
}

type detailLoadedMsg struct {
	detail *app.ProjectDetailResponse
	err    error
}

type scheduleChangedMsg struct {
	change app.ScheduleChange
	result app.ScheduleChangeResult
	err    error
}

// boardModel is the interactive projects table and weekly board. Column
// hotkeys toggle the sort; day hotkeys and the picker add or remove the
// selected project on a weekday for this session only.
type boardModel struct {
	ctx  context.Context
	app  *App
	mode boardMode
	sort sorter.Config

	list     *app.ProjectListResponse
	schedule *app.ScheduleResponse
	detail   *app.ProjectDetailResponse
	cursor   int
	selected string

	form    *huh.Form
	pickDay domain.Weekday

	help     help.Model
	status   string
	err      error
	quitting bool
}

func newBoardModel(ctx context.Context, a *App, sort sorter.Config) *boardModel {
	return &boardModel{
		ctx:  ctx,
		app:  a,
		sort: sort,
		help: help.New(),
	}
}

func (m *boardModel) Init() tea.Cmd {
	return m.load()
}

func (m *boardModel) load() tea.Cmd {
	ctx, a, cfg := m.ctx, m.app, m.sort
	return func() tea.Msg {
		list, err := a.Projects.ListProjects(ctx, app.ProjectListRequest{Sort: cfg})
		if err != nil {
			return boardLoadedMsg{err: err}
		}
		schedule, err := a.Schedule.Schedule(ctx, app.ScheduleRequest{})
		return boardLoadedMsg{list: list, schedule: schedule, err: err}
	}
}

func (m *boardModel) loadDetail(id string) tea.Cmd {
	ctx, a := m.ctx, m.app
	return func() tea.Msg {
		detail, err := a.Projects.ProjectDetail(ctx, id)
		return detailLoadedMsg{detail: detail, err: err}
	}
}

// toggleDay removes p from day when it is already scheduled there and adds it
// otherwise.
func (m *boardModel) toggleDay(p domain.Project, day domain.Weekday) tea.Cmd {
	change := app.ScheduleChange{Action: app.ScheduleAdd, ProjectID: p.ID, Day: day}
	if p.IsScheduledOn(day) {
		change.Action = app.ScheduleRemove
	}
	ctx, a := m.ctx, m.app
	return func() tea.Msg {
		res, err := a.Schedule.ChangeSchedule(ctx, change)
		return scheduleChangedMsg{change: change, result: res, err: err}
	}
}

func (m *boardModel) current() (domain.Project, bool) {
	if m.list == nil || m.cursor >= len(m.list.Rows) {
		return domain.Project{}, false
	}
	return m.list.Rows[m.cursor].Project, true
}

func (m *boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

	case boardLoadedMsg:
		m.err = msg.err
		if msg.err != nil {
			return m, nil
		}
		m.list, m.schedule = msg.list, msg.schedule
		m.cursor = 0
		for i, r := range m.list.Rows {
			if r.Project.ID == m.selected {
				m.cursor = i
			}
		}
		m.remember()

	case detailLoadedMsg:
		if msg.err != nil {
			m.status = formatter.StyleRed.Render("Error: " + msg.err.Error())
			return m, nil
		}
		m.detail = msg.detail
		m.mode = modeDetail

	case scheduleChangedMsg:
		if msg.err != nil {
			m.status = formatter.StyleRed.Render("Error: " + msg.err.Error())
			return m, nil
		}
		m.status = formatter.FormatScheduleChange(msg.change, msg.result)
		return m, m.load()

	case tea.KeyMsg:
		if key.Matches(msg, boardKeys.Cancel) {
			m.quitting = true
			return m, tea.Quit
		}
		if m.mode == modePicker {
			return m.updatePicker(msg)
		}
		return m.updateKeys(msg)
	}

	if m.mode == modePicker {
		return m.updatePicker(msg)
	}
	return m, nil
}

func (m *boardModel) remember() {
	if p, ok := m.current(); ok {
		m.selected = p.ID
	}
}

func (m *boardModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.mode == modeDetail {
		if key.Matches(msg, boardKeys.Back) {
			m.mode = modeProjects
			m.detail = nil
		} else if key.Matches(msg, boardKeys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, boardKeys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, boardKeys.Up):
		if m.cursor > 0 {
			m.cursor--
			m.remember()
		}
	case key.Matches(msg, boardKeys.Down):
		if m.list != nil && m.cursor < len(m.list.Rows)-1 {
			m.cursor++
			m.remember()
		}
	case key.Matches(msg, boardKeys.Tab):
		if m.mode == modeProjects {
			m.mode = modeSchedule
		} else {
			m.mode = modeProjects
		}
		m.status = ""
	case key.Matches(msg, boardKeys.Enter):
		if p, ok := m.current(); ok {
			return m, m.loadDetail(p.ID)
		}
	case m.mode == modeProjects && key.Matches(msg, boardKeys.Sort):
		m.sort = sorter.Toggle(m.sort, sortHotkeys[msg.String()])
		return m, m.load()
	case m.mode == modeSchedule && key.Matches(msg, boardKeys.Days):
		if p, ok := m.current(); ok {
			return m, m.toggleDay(p, dayHotkeys[msg.String()])
		}
	case m.mode == modeSchedule && key.Matches(msg, boardKeys.Pick):
		if p, ok := m.current(); ok {
			m.form = m.newDayPicker(p)
			m.mode = modePicker
			return m, m.form.Init()
		}
	}
	return m, nil
}

func (m *boardModel) newDayPicker(p domain.Project) *huh.Form {
	opts := make([]huh.Option[domain.Weekday], 0, len(m.schedule.Week.Days))
	for _, d := range m.schedule.Week.Days {
		label := fmt.Sprintf("%s %s", d.Name, d.Label)
		if p.IsScheduledOn(d.Name) {
			label += "  (scheduled, select to remove)"
		}
		opts = append(opts, huh.NewOption(label, d.Name))
	}
	m.pickDay = domain.Monday
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[domain.Weekday]().
				Title("Schedule " + p.Customer).
				Options(opts...).
				Value(&m.pickDay),
		),
	).WithTheme(boardHuhTheme()).WithShowHelp(false)
}

func (m *boardModel) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, boardKeys.Back) {
		m.closePicker()
		m.status = formatter.Dim("Cancelled.")
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.closePicker()
		if p, ok := m.current(); ok {
			return m, tea.Batch(cmd, m.toggleDay(p, m.pickDay))
		}
	case huh.StateAborted:
		m.closePicker()
	}
	return m, cmd
}

func (m *boardModel) closePicker() {
	m.form = nil
	m.mode = modeSchedule
}

func (m *boardModel) bindings() []key.Binding {
	switch m.mode {
	case modeDetail:
		return []key.Binding{boardKeys.Back, boardKeys.Quit}
	case modePicker:
		return []key.Binding{boardKeys.Enter, boardKeys.Back}
	case modeSchedule:
		return []key.Binding{boardKeys.Up, boardKeys.Down, boardKeys.Days, boardKeys.Pick, boardKeys.Tab, boardKeys.Quit}
	default:
		return []key.Binding{boardKeys.Up, boardKeys.Down, boardKeys.Sort, boardKeys.Enter, boardKeys.Tab, boardKeys.Quit}
	}
}

func (m *boardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.tabs() + "\n\n")

	switch {
	case m.err != nil:
		b.WriteString(formatter.StyleRed.Render("Error: "+m.err.Error()) + "\n")
	case m.list == nil:
		b.WriteString(formatter.Dim("Loading projects...") + "\n")
	case m.mode == modeDetail && m.detail != nil:
		b.WriteString(formatter.FormatProjectDetail(m.detail) + "\n")
	case m.mode == modePicker && m.form != nil:
		b.WriteString(m.form.View() + "\n")
	case m.mode == modeSchedule:
		b.WriteString(m.scheduleView())
	default:
		b.WriteString(m.projectsView())
	}

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}
	b.WriteString("\n" + m.help.ShortHelpView(m.bindings()))
	return b.String()
}

func (m *boardModel) tabs() string {
	projects, schedule := formatter.Dim("Projects"), formatter.Dim("Schedule")
	if m.mode == modeSchedule || m.mode == modePicker {
		schedule = formatter.StyleHeader.Render("Schedule")
	} else {
		projects = formatter.StyleHeader.Render("Projects")
	}
	return projects + formatter.Dim(" | ") + schedule
}

func (m *boardModel) projectsView() string {
	if len(m.list.Rows) == 0 {
		return formatter.Dim("No projects loaded.") + "\n"
	}

	s := m.sort
	var b strings.Builder
	b.WriteString(formatter.Dim(fmt.Sprintf("  %-8s %-22s %-14s %-14s %12s %12s %8s  %s",
		"ID",
		formatter.SortArrow(s, sorter.KeyCustomer, "CUSTOMER"),
		formatter.SortArrow(s, sorter.KeyJobType, "TYPE"),
		formatter.SortArrow(s, sorter.KeyStatus, "STATUS"),
		formatter.SortArrow(s, sorter.KeyRevenue, "REVENUE"),
		formatter.SortArrow(s, sorter.KeyBalanceDue, "BALANCE"),
		formatter.SortArrow(s, sorter.KeyActualMargin, "MARGIN"),
		formatter.SortArrow(s, sorter.KeyPriority, "PRIORITY"),
	)) + "\n")

	for i, r := range m.list.Rows {
		p := r.Project
		cursor := "  "
		name := padRight(p.Customer, 22)
		if i == m.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			name = formatter.Bold(name)
		}
		balance := fmt.Sprintf("%12s", formatter.FormatCurrency(p.BalanceDue))
		if r.HighBalance {
			balance = formatter.StyleRed.Render(balance)
		}
		b.WriteString(fmt.Sprintf("%s%s %s %s %s %12s %s %8s  %s\n",
			cursor,
			padRight(p.ID, 8),
			name,
			lipgloss.NewStyle().Width(14).Render(formatter.JobTypeBadge(p.JobType)),
			lipgloss.NewStyle().Width(14).Render(formatter.StatusPill(p.Status)),
			formatter.FormatCurrency(p.Revenue),
			balance,
			formatter.FormatPercent(r.Margin.ActualMarginPct),
			formatter.PriorityBadge(p.Priority),
		))
	}
	return b.String()
}

func (m *boardModel) scheduleView() string {
	var b strings.Builder
	b.WriteString(formatter.FormatSchedule(m.schedule) + "\n\n")
	if p, ok := m.current(); ok {
		b.WriteString(fmt.Sprintf("Selected: %s %s  %s\n",
			formatter.Bold(p.Customer),
			formatter.Dim("("+p.ID+")"),
			formatter.Dim("days: "+formatter.FormatDays(p.ScheduledDays)),
		))
	}
	return b.String()
}

// padRight pads a string to a minimum width, truncating if needed.
func padRight(s string, width int) string {
	r := []rune(s)
	if len(r) > width {
		return string(r[:width-1]) + "…"
	}
	return s + strings.Repeat(" ", width-len(r))
}

func boardHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// runBoard starts the interactive board on the command's terminal.
func runBoard(ctx context.Context, a *App, sort sorter.Config, in io.Reader, out io.Writer) error {
	p := tea.NewProgram(newBoardModel(ctx, a, sort),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
