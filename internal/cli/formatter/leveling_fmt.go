package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/telos/internal/app"
	"github.com/alexanderramin/telos/internal/domain"
)

// emptyCell marks a week with no allocated hours.
const emptyCell = "·"

// CapacityLabel renders a resource name with its weekly capacity,
// e.g. "Alice (40h)".
func CapacityLabel(name string, capacity float64) string {
	return fmt.Sprintf("%s (%sh)", name, Number(capacity))
}

// GridCell renders one resource-week as round(hours)h in its load color.
func GridCell(c app.GridCell) string {
	if c.Empty {
		return Dim(emptyCell)
	}
	return LoadStyle(c.Load, false).Render(Hours(c.Hours))
}

// FormatLevelingGrid renders the resource-by-week allocation grid, a
// legend and the list of over-allocated weeks per resource.
func FormatLevelingGrid(grid *app.LevelingGrid) string {
	var b strings.Builder
	b.WriteString(Header("Resource Leveling"))
	b.WriteString("\n")

	if grid.Weeks == 0 || len(grid.Rows) == 0 {
		b.WriteString(Dim("No scheduled work."))
		b.WriteString("\n")
		return b.String()
	}

	headers := make([]string, 0, grid.Weeks+1)
	headers = append(headers, "Resource")
	right := make([]int, 0, grid.Weeks)
	for w := 1; w <= grid.Weeks; w++ {
		headers = append(headers, "W"+strconv.Itoa(w))
		right = append(right, w)
	}

	rows := make([][]string, 0, len(grid.Rows))
	for _, r := range grid.Rows {
		row := make([]string, 0, len(r.Cells)+1)
		row = append(row, CapacityLabel(r.Name, r.Capacity))
		for _, c := range r.Cells {
			row = append(row, GridCell(c))
		}
		rows = append(rows, row)
	}
	b.WriteString(RenderTable(headers, rows, AlignRight(right...)))
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("%s  %s  %s  %s\n",
		LoadIndicator(domain.LoadOver),
		LoadIndicator(domain.LoadOptimal),
		LoadIndicator(domain.LoadUnder),
		Dim(emptyCell+" empty"),
	))

	var over []string
	for i := range grid.Rows {
		weeks := grid.Rows[i].OverAllocated()
		if len(weeks) == 0 {
			continue
		}
		labels := make([]string, len(weeks))
		for j, w := range weeks {
			labels[j] = "W" + strconv.Itoa(w)
		}
		over = append(over, fmt.Sprintf("  %s: %s", grid.Rows[i].Name, strings.Join(labels, ", ")))
	}
	if len(over) == 0 {
		b.WriteString(StyleGreen.Render("No over-allocated weeks."))
		b.WriteString("\n")
		return b.String()
	}
	b.WriteString(StyleRed.Render("Over-allocated:"))
	b.WriteString("\n")
	b.WriteString(strings.Join(over, "\n"))
	b.WriteString("\n")
	return b.String()
}

// FormatSuggestions renders the corrective actions offered for one cell,
// numbered by the index used to apply them.
func FormatSuggestions(resp *app.SuggestionsResponse, resourceName string) string {
	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("Suggestions: %s, week %d", resourceName, resp.Week)))
	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("Load %s of %s capacity", Hours(resp.Hours), Hours(resp.Capacity))))
	b.WriteString("\n")

	if resp.Hours <= resp.Capacity {
		b.WriteString(StyleGreen.Render("Within capacity; nothing to level."))
		b.WriteString("\n")
		return b.String()
	}
	if len(resp.Suggestions) == 0 {
		b.WriteString(StyleYellow.Render("No suggestions available for this cell."))
		b.WriteString("\n")
		return b.String()
	}
	for _, s := range resp.Suggestions {
		b.WriteString(fmt.Sprintf("  %s %s\n", StyleBlue.Render(fmt.Sprintf("[%d]", s.Index)), s.Message))
	}
	return b.String()
}
