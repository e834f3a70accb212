package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const colGap = 2

// TableOption adjusts how RenderTable lays out columns.
type TableOption func(*tableLayout)

type tableLayout struct {
	right map[int]bool
}

// AlignRight right-aligns the given column indexes, for numeric columns.
func AlignRight(cols ...int) TableOption {
	return func(l *tableLayout) {
		for _, c := range cols {
			l.right[c] = true
		}
	}
}

// RenderTable renders an aligned table with a header separator line.
// Widths are measured on visible text so styled cells line up.
// Trailing padding is never written.
func RenderTable(headers []string, rows [][]string, opts ...TableOption) string {
	if len(headers) == 0 {
		return ""
	}
	layout := tableLayout{right: make(map[int]bool)}
	for _, opt := range opts {
		opt(&layout)
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := 0; i < len(headers) && i < len(row); i++ {
			widths[i] = max(widths[i], lipgloss.Width(row[i]))
		}
	}

	var b strings.Builder

	styled := make([]string, len(headers))
	for i, h := range headers {
		styled[i] = StyleHeader.Render(h)
	}
	writeRow(&b, styled, widths, layout)

	seps := make([]string, len(widths))
	for i, w := range widths {
		seps[i] = StyleDim.Render(strings.Repeat("─", w))
	}
	writeRow(&b, seps, widths, layout)

	for _, row := range rows {
		cells := make([]string, len(headers))
		copy(cells, row)
		writeRow(&b, cells, widths, layout)
	}
	return b.String()
}

func writeRow(b *strings.Builder, cells []string, widths []int, layout tableLayout) {
	last := len(cells) - 1
	for i, cell := range cells {
		pad := max(widths[i]-lipgloss.Width(cell), 0)
		if layout.right[i] {
			b.WriteString(strings.Repeat(" ", pad))
			b.WriteString(cell)
			pad = 0
		} else {
			b.WriteString(cell)
		}
		if i < last {
			b.WriteString(strings.Repeat(" ", pad+colGap))
		}
	}
	b.WriteString("\n")
}
