package formatter

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/telos/internal/domain"
)

func FormatDrivers(drivers []domain.Driver) string {
	if len(drivers) == 0 {
		return Dim("No drivers.") + "\n"
	}
	rows := make([][]string, 0, len(drivers))
	for _, d := range drivers {
		rows = append(rows, []string{d.ID, d.Name, strconv.Itoa(d.Weight)})
	}
	return RenderTable([]string{"ID", "Driver", "Weight"}, rows, AlignRight(2))
}

func FormatProjects(projects []domain.Project) string {
	if len(projects) == 0 {
		return Dim("No projects.") + "\n"
	}
	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		rows = append(rows, []string{
			p.ID,
			p.Name,
			Currency(p.Budget),
			RiskStyle(p.Risk).Render(Number(p.Risk)),
			weekSpan(p.StartWeek, p.Duration),
		})
	}
	return RenderTable([]string{"ID", "Project", "Budget", "Risk", "Weeks"}, rows, AlignRight(2, 3))
}

func FormatResources(resources []domain.Resource) string {
	if len(resources) == 0 {
		return Dim("No resources.") + "\n"
	}
	rows := make([][]string, 0, len(resources))
	for _, r := range resources {
		rows = append(rows, []string{r.ID, r.Name, Hours(r.Capacity) + "/wk"})
	}
	return RenderTable([]string{"ID", "Resource", "Capacity"}, rows, AlignRight(2))
}

// FormatTasks lists tasks with their owner resolved to a name where known.
func FormatTasks(tasks []domain.Task, resources []domain.Resource) string {
	if len(tasks) == 0 {
		return Dim("No tasks.") + "\n"
	}
	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		owner := Dim("unassigned")
		if t.IsAssigned() {
			owner = t.ResourceID
			if r := domain.FindResource(resources, t.ResourceID); r != nil {
				owner = r.Name
			}
		}
		rows = append(rows, []string{
			t.ID,
			t.ProjectID,
			t.Name,
			owner,
			weekSpan(t.StartWeek, t.Duration),
			Number(t.EstimatedHours),
		})
	}
	return RenderTable([]string{"ID", "Project", "Task", "Resource", "Weeks", "Hours"}, rows, AlignRight(5))
}

// weekSpan renders an inclusive week range such as "W3-W18".
func weekSpan(start, duration int) string {
	end := start + duration - 1
	if end <= start {
		return fmt.Sprintf("W%d", start)
	}
	return fmt.Sprintf("W%d-W%d", start, end)
}
