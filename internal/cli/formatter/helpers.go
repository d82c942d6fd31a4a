package formatter

import (
	"strings"
	"time"

	"github.com/alexanderramin/disasterops/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// FormatCurrency renders whole US dollars with thousands separators: "$18,500", "-$300".
func FormatCurrency(amount decimal.Decimal) string {
	whole := amount.Round(0).IntPart()
	if whole < 0 {
		return "-$" + humanize.Comma(-whole)
	}
	return "$" + humanize.Comma(whole)
}

// FormatPercent renders a fraction as a whole percentage: 0.35 -> "35%".
func FormatPercent(fraction decimal.Decimal) string {
	return fraction.Mul(hundred).Round(0).String() + "%"
}

// FormatVariance renders the magnitude of a cost variance followed by
// "over" or "under". A zero variance reads "on budget".
func FormatVariance(v decimal.Decimal) string {
	switch {
	case v.IsPositive():
		return StyleRed.Render(FormatCurrency(v) + " over")
	case v.IsNegative():
		return StyleGreen.Render(FormatCurrency(v.Neg()) + " under")
	default:
		return Dim("on budget")
	}
}

// FormatMarginVariance renders a margin variance as a gain or a loss.
func FormatMarginVariance(v decimal.Decimal) string {
	if v.IsNegative() {
		return StyleRed.Render(FormatCurrency(v.Neg()) + " loss")
	}
	return StyleGreen.Render(FormatCurrency(v) + " gain")
}

// FormatDays renders scheduled days as abbreviations: "Mon, Tue".
func FormatDays(days []domain.Weekday) string {
	if len(days) == 0 {
		return Dim("--")
	}
	parts := make([]string, len(days))
	for i, d := range days {
		parts[i] = d.Short()
	}
	return strings.Join(parts, ", ")
}

// FormatDueDate renders a due date as "Nov 21", red when the job is overdue.
func FormatDueDate(due time.Time, overdue bool) string {
	if due.IsZero() {
		if overdue {
			return StyleRed.Render("overdue")
		}
		return Dim("--")
	}
	s := due.Format("Jan 2")
	if overdue {
		return StyleRed.Render(s + " (overdue)")
	}
	return s
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}
