package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/telos/internal/db"
	"github.com/alexanderramin/telos/internal/domain"
)

type SQLiteTaskRepo struct {
	db db.DBTX
}

func NewSQLiteTaskRepo(conn db.DBTX) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: conn}
}

const taskColumns = `id, project_id, name, estimated_hours, resource_id, start_week, duration`

type taskScanner interface {
	Scan(dest ...any) error
}

func scanTask(s taskScanner) (domain.Task, error) {
	var t domain.Task
	var resourceID sql.NullString
	err := s.Scan(&t.ID, &t.ProjectID, &t.Name, &t.EstimatedHours, &resourceID, &t.StartWeek, &t.Duration)
	t.ResourceID = stringFromNull(resourceID)
	return t, err
}

func (r *SQLiteTaskRepo) Create(ctx context.Context, t *domain.Task) error {
	query := `INSERT INTO tasks (` + taskColumns + `, position)
		VALUES (?, ?, ?, ?, ?, ?, ?, ` + nextPosition("tasks") + `)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID, t.ProjectID, t.Name, t.EstimatedHours, nullableString(t.ResourceID), t.StartWeek, t.Duration,
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	t, err := scanTask(r.db.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("task", id)
	}
	if err != nil {
		return nil, fmt.Errorf("scanning task: %w", err)
	}
	return &t, nil
}

func (r *SQLiteTaskRepo) List(ctx context.Context) ([]domain.Task, error) {
	return r.query(ctx, `SELECT `+taskColumns+` FROM tasks ORDER BY position, id`)
}

func (r *SQLiteTaskRepo) ListByProject(ctx context.Context, projectID string) ([]domain.Task, error) {
	return r.query(ctx, `SELECT `+taskColumns+` FROM tasks WHERE project_id = ? ORDER BY position, id`, projectID)
}

func (r *SQLiteTaskRepo) ListByResource(ctx context.Context, resourceID string) ([]domain.Task, error) {
	return r.query(ctx, `SELECT `+taskColumns+` FROM tasks WHERE resource_id = ? ORDER BY position, id`, resourceID)
}

func (r *SQLiteTaskRepo) Update(ctx context.Context, t *domain.Task) error {
	query := `UPDATE tasks SET project_id = ?, name = ?, estimated_hours = ?, resource_id = ?, start_week = ?, duration = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		t.ProjectID, t.Name, t.EstimatedHours, nullableString(t.ResourceID), t.StartWeek, t.Duration, t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	return requireAffected(res, "task", t.ID)
}

func (r *SQLiteTaskRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	return requireAffected(res, "task", id)
}

func (r *SQLiteTaskRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM tasks`); err != nil {
		return fmt.Errorf("deleting tasks: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) Count(ctx context.Context) (int, error) {
	return countRows(ctx, r.db, "tasks")
}

func (r *SQLiteTaskRepo) query(ctx context.Context, query string, args ...any) ([]domain.Task, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning task row: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return tasks, nil
}
