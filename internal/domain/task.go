package domain

// Task is a unit of project work spread evenly over Duration weeks starting
// at StartWeek. An empty ResourceID means the task is unassigned.
type Task struct {
	ID             string  `json:"id"`
	ProjectID      string  `json:"projectId"`
	Name           string  `json:"name"`
	EstimatedHours float64 `json:"estimatedHours"`
	ResourceID     string  `json:"resourceId"`
	StartWeek      int     `json:"startWeek"`
	Duration       int     `json:"duration"`
}

// IsAssigned reports whether the task has a resource.
func (t *Task) IsAssigned() bool {
	return t.ResourceID != ""
}

// HoursPerWeek spreads the estimate evenly across the task's weeks.
// Returns 0 for a non-positive duration rather than dividing by it.
func (t *Task) HoursPerWeek() float64 {
	if t.Duration <= 0 {
		return 0
	}
	return t.EstimatedHours / float64(t.Duration)
}

// EndWeek returns the first week after the task finishes.
func (t *Task) EndWeek() int {
	return t.StartWeek + t.Duration
}

// LastWeek returns the final week the task occupies.
func (t *Task) LastWeek() int {
	return t.StartWeek + t.Duration - 1
}

// Covers reports whether the task is active in the given week.
func (t *Task) Covers(week int) bool {
	return t.Duration > 0 && week >= t.StartWeek && week <= t.LastWeek()
}

func (t *Task) Validate() error {
	var errs ValidationErrors
	if t.ID == "" {
		errs = append(errs, ValidationError{Field: "task.id", Value: t.ID, Message: "is required"})
	}
	if t.ProjectID == "" {
		errs = append(errs, ValidationError{Field: "task.project_id", Value: t.ProjectID, Message: "is required"})
	}
	if t.Name == "" {
		errs = append(errs, ValidationError{Field: "task.name", Value: t.Name, Message: "is required"})
	}
	if t.EstimatedHours < 0 {
		errs = append(errs, ValidationError{Field: "task.estimated_hours", Value: t.EstimatedHours, Message: "must not be negative"})
	}
	if t.StartWeek < 1 {
		errs = append(errs, ValidationError{Field: "task.start_week", Value: t.StartWeek, Message: "must be at least 1"})
	}
	if t.Duration < 1 {
		errs = append(errs, ValidationError{Field: "task.duration", Value: t.Duration, Message: "must be at least 1 week"})
	}
	return errs.OrNil()
}

// FindTask returns the task with the given ID, or nil.
func FindTask(tasks []Task, id string) *Task {
	for i := range tasks {
		if tasks[i].ID == id {
			return &tasks[i]
		}
	}
	return nil
}
