package scheduler

import (
	"fmt"

	"github.com/alexanderramin/telos/internal/domain"
)

// MaxSuggestions caps how many corrective actions are offered for one cell.
const MaxSuggestions = 5

// Suggestion is a corrective action for an over-allocated cell. It carries
// exactly the mutation Apply performs.
type Suggestion struct {
	Kind               domain.SuggestionKind
	TaskID             string
	TaskName           string
	TargetResourceID   string // REASSIGN only
	TargetResourceName string // REASSIGN only
	Message            string
}

// Suggest proposes up to MaxSuggestions actions for the cell at
// (resourceID, week). The result is empty unless the cell exists and its
// total strictly exceeds the resource's capacity.
//
// Delays come first, one per task in cell order. Reassignments follow for
// every task (outer loop, cell order) and every other resource (inner loop,
// input order) that is below capacity that week and can absorb the task's
// weekly hours without exceeding it.
func Suggest(resources []domain.Resource, matrix Matrix, resourceID string, week int) []Suggestion {
	cell := matrix.Cell(resourceID, week)
	resource := domain.FindResource(resources, resourceID)
	if cell == nil || resource == nil || cell.TotalHours <= resource.Capacity {
		return nil
	}

	var suggestions []Suggestion
	for _, task := range cell.Tasks {
		suggestions = append(suggestions, Suggestion{
			Kind:     domain.SuggestDelay,
			TaskID:   task.ID,
			TaskName: task.Name,
			Message:  fmt.Sprintf(`Delay "%s" by 1 week.`, task.Name),
		})
	}

	var underAllocated []domain.Resource
	for _, r := range resources {
		if r.ID == resourceID {
			continue
		}
		if matrix.Hours(r.ID, week) < r.Capacity {
			underAllocated = append(underAllocated, r)
		}
	}

	for _, task := range cell.Tasks {
		perWeek := task.HoursPerWeek()
		for _, r := range underAllocated {
			if matrix.Hours(r.ID, week)+perWeek > r.Capacity {
				continue
			}
			suggestions = append(suggestions, Suggestion{
				Kind:               domain.SuggestReassign,
				TaskID:             task.ID,
				TaskName:           task.Name,
				TargetResourceID:   r.ID,
				TargetResourceName: r.Name,
				Message:            fmt.Sprintf(`Reassign "%s" to %s.`, task.Name, r.Name),
			})
		}
	}

	if len(suggestions) > MaxSuggestions {
		suggestions = suggestions[:MaxSuggestions]
	}
	return suggestions
}

// Apply returns a copy of tasks with the suggestion's mutation applied to
// its target task: StartWeek+1 for a delay, ResourceID for a reassignment.
// No other task or field changes. Unknown task IDs leave the copy untouched.
func (s Suggestion) Apply(tasks []domain.Task) []domain.Task {
	out := make([]domain.Task, len(tasks))
	copy(out, tasks)
	for i := range out {
		if s.ApplyTo(&out[i]) {
			break
		}
	}
	return out
}

// ApplyTo mutates a single task in place. It returns false when the task is
// not the suggestion's target.
func (s Suggestion) ApplyTo(task *domain.Task) bool {
	if task == nil || task.ID != s.TaskID {
		return false
	}
	switch s.Kind {
	case domain.SuggestDelay:
		task.StartWeek++
	case domain.SuggestReassign:
		task.ResourceID = s.TargetResourceID
	default:
		return false
	}
	return true
}
