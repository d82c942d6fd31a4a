package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/disasterops/internal/domain"
	"github.com/alexanderramin/disasterops/internal/metrics"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// ConfigureColor switches every style to plain text when colour is disabled
// or output is not a terminal.
func ConfigureColor(noColor, isTerminal bool) {
	if noColor || !isTerminal {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// PriorityColor returns the style for a job priority.
func PriorityColor(p domain.Priority) lipgloss.Style {
	switch p {
	case domain.PriorityCritical:
		return StyleRed
	case domain.PriorityHigh:
		return StyleYellow
	case domain.PriorityMedium:
		return StyleBlue
	default:
		return StyleDim
	}
}

// PriorityBadge returns a colored priority label such as "▲ Critical".
func PriorityBadge(p domain.Priority) string {
	switch p {
	case domain.PriorityCritical:
		return StyleRed.Render("▲ Critical")
	case domain.PriorityHigh:
		return StyleYellow.Render("● High")
	case domain.PriorityMedium:
		return StyleBlue.Render("● Medium")
	case domain.PriorityLow:
		return StyleDim.Render("○ Low")
	default:
		return StyleDim.Render(string(p))
	}
}

// StatusPill returns a colored indicator for project status.
func StatusPill(status domain.ProjectStatus) string {
	switch status {
	case domain.StatusActive:
		return StyleGreen.Render("● Active")
	case domain.StatusNotStarted:
		return StyleYellow.Render("○ Not Started")
	case domain.StatusComplete:
		return StyleDim.Render("✔ Complete")
	default:
		return StyleDim.Render(string(status))
	}
}

// JobTypeBadge renders the job type in the accent color.
func JobTypeBadge(t domain.JobType) string {
	if t == "" {
		return StyleDim.Render("--")
	}
	return StylePurple.Render(string(t))
}

// SeverityStyle maps a dashboard priority severity to a style.
func SeverityStyle(s metrics.Severity) lipgloss.Style {
	switch s {
	case metrics.SeverityCritical:
		return StyleRed
	case metrics.SeverityHigh:
		return StyleYellow
	default:
		return StyleFg
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
