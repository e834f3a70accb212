package export

import (
	"io"
	"strconv"
	"strings"

	"github.com/alexanderramin/telos/internal/domain"
	"github.com/alexanderramin/telos/internal/scheduler"
)

// FileName is the default download name for the export.
const FileName = "portfolio_export.csv"

var (
	DriverHeaders   = []string{"id", "name", "weight"}
	ProjectHeaders  = []string{"id", "name", "description", "budget", "risk", "startWeek", "duration", "alignmentScore"}
	ResourceHeaders = []string{"id", "name", "capacity"}
	TaskHeaders     = []string{"id", "projectId", "name", "estimatedHours", "resourceId", "startWeek", "duration"}
)

// Portfolio renders the DRIVERS, PROJECTS, RESOURCES and TASKS blocks. Each
// block is a label line followed by its table; blocks are separated by an
// empty line. Project rows carry their alignment score against drivers,
// formatted with two decimals.
func Portfolio(drivers []domain.Driver, projects []domain.Project, resources []domain.Resource, tasks []domain.Task) string {
	driverRows := make([]Record, len(drivers))
	for i, d := range drivers {
		driverRows[i] = Record{"id": d.ID, "name": d.Name, "weight": d.Weight}
	}

	projectRows := make([]Record, len(projects))
	for i, p := range projects {
		projectRows[i] = Record{
			"id":             p.ID,
			"name":           p.Name,
			"description":    p.Description,
			"budget":         p.Budget,
			"risk":           p.Risk,
			"startWeek":      p.StartWeek,
			"duration":       p.Duration,
			"alignmentScore": strconv.FormatFloat(scheduler.AlignmentScore(p, drivers), 'f', 2, 64),
		}
	}

	resourceRows := make([]Record, len(resources))
	for i, r := range resources {
		resourceRows[i] = Record{"id": r.ID, "name": r.Name, "capacity": r.Capacity}
	}

	taskRows := make([]Record, len(tasks))
	for i, t := range tasks {
		taskRows[i] = Record{
			"id":             t.ID,
			"projectId":      t.ProjectID,
			"name":           t.Name,
			"estimatedHours": t.EstimatedHours,
			"resourceId":     t.ResourceID,
			"startWeek":      t.StartWeek,
			"duration":       t.Duration,
		}
	}

	return strings.Join([]string{
		"DRIVERS",
		ArrayToCSV(driverRows, DriverHeaders),
		"",
		"PROJECTS",
		ArrayToCSV(projectRows, ProjectHeaders),
		"",
		"RESOURCES",
		ArrayToCSV(resourceRows, ResourceHeaders),
		"",
		"TASKS",
		ArrayToCSV(taskRows, TaskHeaders),
	}, "\n")
}

// WritePortfolio writes the rendered document to w.
func WritePortfolio(w io.Writer, drivers []domain.Driver, projects []domain.Project, resources []domain.Resource, tasks []domain.Task) error {
	_, err := io.WriteString(w, Portfolio(drivers, projects, resources, tasks))
	return err
}
