package formatter

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderPerformance draws a margin performance ratio (already clamped to 0-1).
// A full bar means the job met or beat its budgeted margin.
func RenderPerformance(ratio decimal.Decimal, width int) string {
	pct := clampUnit(ratio.InexactFloat64())
	style := StyleRed
	if pct >= 1 {
		style = StyleGreen
	} else if pct >= 0.75 {
		style = StyleYellow
	}
	return fmt.Sprintf("[%s] %3.0f%%", style.Render(bar(pct, width)), pct*100)
}

func bar(pct float64, width int) string {
	if width < 2 {
		width = 2
	}
	filled := min(int(pct*float64(width)), width)
	return strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
}

func clampUnit(pct float64) float64 {
	if pct < 0 {
		return 0
	}
	if pct > 1 {
		return 1
	}
	return pct
}
