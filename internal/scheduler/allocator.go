package scheduler

import (
	"github.com/alexanderramin/telos/internal/domain"
)

// Cell is the committed load of one resource in one week.
type Cell struct {
	TotalHours float64
	Tasks      []domain.Task
}

// Matrix maps resource ID -> week -> cell. Every known resource has a row,
// even when nothing is assigned to it. Missing weeks mean zero hours.
type Matrix map[string]map[int]*Cell

// BuildMatrix aggregates per-week hours for every resource. It is a pure
// function of its inputs and is recomputed whenever resources or tasks change.
//
// Unassigned tasks contribute nothing. Tasks with a non-positive duration or
// a resource ID that is not in resources are skipped.
func BuildMatrix(resources []domain.Resource, tasks []domain.Task) Matrix {
	matrix := make(Matrix, len(resources))
	for _, r := range resources {
		matrix[r.ID] = make(map[int]*Cell)
	}

	for _, task := range tasks {
		if !task.IsAssigned() || task.Duration <= 0 {
			continue
		}
		row, ok := matrix[task.ResourceID]
		if !ok {
			continue
		}
		perWeek := task.HoursPerWeek()
		for i := 0; i < task.Duration; i++ {
			week := task.StartWeek + i
			cell := row[week]
			if cell == nil {
				cell = &Cell{}
				row[week] = cell
			}
			cell.TotalHours += perWeek
			cell.Tasks = append(cell.Tasks, task)
		}
	}
	return matrix
}

// Cell returns the cell at (resourceID, week), or nil when nothing is
// allocated there.
func (m Matrix) Cell(resourceID string, week int) *Cell {
	row, ok := m[resourceID]
	if !ok {
		return nil
	}
	return row[week]
}

// Hours returns the committed hours at (resourceID, week), 0 when empty.
func (m Matrix) Hours(resourceID string, week int) float64 {
	if c := m.Cell(resourceID, week); c != nil {
		return c.TotalHours
	}
	return 0
}

// TaskHours returns how many hours a single task contributes to a resource's
// row in the given week.
func (m Matrix) TaskHours(resourceID string, week int, taskID string) float64 {
	c := m.Cell(resourceID, week)
	if c == nil {
		return 0
	}
	for _, t := range c.Tasks {
		if t.ID == taskID {
			return t.HoursPerWeek()
		}
	}
	return 0
}

// TotalWeeks returns the planning horizon: the largest StartWeek+Duration
// across projects and tasks. Empty inputs yield 0.
func TotalWeeks(projects []domain.Project, tasks []domain.Task) int {
	total := 0
	for _, p := range projects {
		if end := p.EndWeek(); end > total {
			total = end
		}
	}
	for _, t := range tasks {
		if end := t.EndWeek(); end > total {
			total = end
		}
	}
	return total
}
