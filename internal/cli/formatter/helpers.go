package formatter

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		Padding(0, 1)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// Currency renders whole currency units with thousands separators,
// e.g. $1,950,000 or -$75,000.
func Currency(v float64) string {
	n := int64(math.Round(v))
	if n < 0 {
		return "-$" + humanize.Comma(-n)
	}
	return "$" + humanize.Comma(n)
}

// SignedCurrency is Currency with an explicit plus sign for increases.
func SignedCurrency(v float64) string {
	if math.Round(v) > 0 {
		return "+" + Currency(v)
	}
	return Currency(v)
}

// Hours renders an hour amount rounded to a whole number, e.g. "27h".
func Hours(h float64) string {
	return strconv.FormatFloat(math.Round(h), 'f', 0, 64) + "h"
}

// Number prints a float in its shortest form, e.g. 40 or 26.5.
func Number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Weeks renders a week count with the right plural.
func Weeks(n int) string {
	if n == 1 {
		return "1 week"
	}
	return fmt.Sprintf("%d weeks", n)
}

// Truncate shortens s to at most n visible runes, ending in "…".
func Truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 || len(r) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(r[:n-1]) + "…"
}
