package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/telos/internal/app"
)

// FormatAlignment renders the driver weights followed by the ranked
// project list with two-decimal alignment scores.
func FormatAlignment(resp *app.AlignmentResponse) string {
	var b strings.Builder

	b.WriteString(Header("Strategic Drivers"))
	b.WriteString("\n")
	drivers := make([][]string, 0, len(resp.Drivers))
	for _, d := range resp.Drivers {
		drivers = append(drivers, []string{d.DriverID, d.Name, strconv.Itoa(d.Weight)})
	}
	b.WriteString(RenderTable([]string{"ID", "Driver", "Weight"}, drivers, AlignRight(2)))
	b.WriteString(Dim(fmt.Sprintf("Total weight: %d", resp.TotalWeight)))
	b.WriteString("\n\n")

	b.WriteString(Header("Project Ranking"))
	b.WriteString("\n")
	if len(resp.Projects) == 0 {
		b.WriteString(Dim("No projects yet."))
		b.WriteString("\n")
		return b.String()
	}
	projects := make([][]string, 0, len(resp.Projects))
	for _, p := range resp.Projects {
		projects = append(projects, []string{
			strconv.Itoa(p.Rank),
			p.Name,
			fmt.Sprintf("%.2f", p.Score),
			Dim(p.Description),
		})
	}
	b.WriteString(RenderTable([]string{"#", "Project", "Score", "Description"}, projects, AlignRight(0, 2)))
	return b.String()
}
