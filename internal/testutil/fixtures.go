package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/alexanderramin/telos/internal/domain"
	"github.com/google/uuid"
)

func NewTestDriver(name string, weight int) *domain.Driver {
	return &domain.Driver{
		ID:     uuid.New().String(),
		Name:   name,
		Weight: weight,
	}
}

// Project options
type ProjectOption func(*domain.Project)

func WithBudget(b float64) ProjectOption {
	return func(p *domain.Project) {
		p.Budget = b
	}
}

func WithRisk(r float64) ProjectOption {
	return func(p *domain.Project) {
		p.Risk = r
	}
}

func WithSchedule(startWeek, duration int) ProjectOption {
	return func(p *domain.Project) {
		p.StartWeek = startWeek
		p.Duration = duration
	}
}

func WithScore(driverID string, score int) ProjectOption {
	return func(p *domain.Project) {
		p.Scores = append(p.Scores, domain.ProjectScore{DriverID: driverID, Score: score})
	}
}

func NewTestProject(name string, opts ...ProjectOption) *domain.Project {
	p := &domain.Project{
		ID:          uuid.New().String(),
		Name:        name,
		Description: name + " description",
		Budget:      100000,
		Risk:        5,
		StartWeek:   1,
		Duration:    8,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func NewTestResource(name string, capacity float64) *domain.Resource {
	return &domain.Resource{
		ID:       uuid.New().String(),
		Name:     name,
		Capacity: capacity,
	}
}

// Task options
type TaskOption func(*domain.Task)

func WithResource(resourceID string) TaskOption {
	return func(t *domain.Task) {
		t.ResourceID = resourceID
	}
}

func WithWeeks(startWeek, duration int) TaskOption {
	return func(t *domain.Task) {
		t.StartWeek = startWeek
		t.Duration = duration
	}
}

func WithHours(h float64) TaskOption {
	return func(t *domain.Task) {
		t.EstimatedHours = h
	}
}

func NewTestTask(projectID, name string, opts ...TaskOption) *domain.Task {
	t := &domain.Task{
		ID:             uuid.New().String(),
		ProjectID:      projectID,
		Name:           name,
		EstimatedHours: 40,
		StartWeek:      1,
		Duration:       2,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Portfolio is a small fixture set: two drivers, one project scored on both,
// two resources (40h and 30h) and two tasks that collide on the first
// resource in week 1.
type Portfolio struct {
	Drivers   []*domain.Driver
	Project   *domain.Project
	Resources []*domain.Resource
	Tasks     []*domain.Task
}

// InsertPortfolio writes a fresh Portfolio fixture through raw SQL so
// repository and service tests can share it without import cycles.
func InsertPortfolio(t *testing.T, database *sql.DB) *Portfolio {
	t.Helper()
	ctx := context.Background()

	roi := NewTestDriver("Increase ROI", 8)
	market := NewTestDriver("Market Impact", 2)
	project := NewTestProject("Apollo", WithScore(roi.ID, 9), WithScore(market.ID, 4))
	alice := NewTestResource("Alice", 40)
	bob := NewTestResource("Bob", 30)
	design := NewTestTask(project.ID, "Design", WithResource(alice.ID), WithWeeks(1, 2), WithHours(60))
	build := NewTestTask(project.ID, "Build", WithResource(alice.ID), WithWeeks(1, 1), WithHours(20))

	exec := func(q string, args ...any) {
		t.Helper()
		if _, err := database.ExecContext(ctx, q, args...); err != nil {
			t.Fatalf("inserting fixture: %v", err)
		}
	}
	for i, d := range []*domain.Driver{roi, market} {
		exec(`INSERT INTO drivers (id, name, weight, position) VALUES (?, ?, ?, ?)`, d.ID, d.Name, d.Weight, i+1)
	}
	exec(`INSERT INTO projects (id, name, description, budget, risk, start_week, duration, position) VALUES (?, ?, ?, ?, ?, ?, ?, 1)`,
		project.ID, project.Name, project.Description, project.Budget, project.Risk, project.StartWeek, project.Duration)
	for _, s := range project.Scores {
		exec(`INSERT INTO project_scores (project_id, driver_id, score) VALUES (?, ?, ?)`, project.ID, s.DriverID, s.Score)
	}
	for i, r := range []*domain.Resource{alice, bob} {
		exec(`INSERT INTO resources (id, name, capacity, position) VALUES (?, ?, ?, ?)`, r.ID, r.Name, r.Capacity, i+1)
	}
	for i, tk := range []*domain.Task{design, build} {
		exec(`INSERT INTO tasks (id, project_id, name, estimated_hours, resource_id, start_week, duration, position) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			tk.ID, tk.ProjectID, tk.Name, tk.EstimatedHours, tk.ResourceID, tk.StartWeek, tk.Duration, i+1)
	}

	return &Portfolio{
		Drivers:   []*domain.Driver{roi, market},
		Project:   project,
		Resources: []*domain.Resource{alice, bob},
		Tasks:     []*domain.Task{design, build},
	}
}
