package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/telos/internal/db"
	"github.com/alexanderramin/telos/internal/domain"
)

// SQLiteProjectRepo stores projects and their project_scores rows. Writes
// that touch both tables should run inside a UnitOfWork.
type SQLiteProjectRepo struct {
	db db.DBTX
}

func NewSQLiteProjectRepo(conn db.DBTX) *SQLiteProjectRepo {
	return &SQLiteProjectRepo{db: conn}
}

const projectColumns = `id, name, description, budget, risk, start_week, duration`

func (r *SQLiteProjectRepo) Create(ctx context.Context, p *domain.Project) error {
	query := `INSERT INTO projects (` + projectColumns + `, position)
		VALUES (?, ?, ?, ?, ?, ?, ?, ` + nextPosition("projects") + `)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID, p.Name, p.Description, p.Budget, p.Risk, p.StartWeek, p.Duration,
	)
	if err != nil {
		return fmt.Errorf("inserting project: %w", err)
	}
	return r.insertScores(ctx, p.ID, p.Scores)
}

func (r *SQLiteProjectRepo) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = ?`, id)
	var p domain.Project
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Budget, &p.Risk, &p.StartWeek, &p.Duration)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("project", id)
	}
	if err != nil {
		return nil, fmt.Errorf("scanning project: %w", err)
	}

	scores, err := r.listScores(ctx, `WHERE s.project_id = ?`, id)
	if err != nil {
		return nil, err
	}
	p.Scores = scores[id]
	return &p, nil
}

func (r *SQLiteProjectRepo) List(ctx context.Context) ([]domain.Project, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+projectColumns+` FROM projects ORDER BY position, id`)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	defer rows.Close()

	var projects []domain.Project
	for rows.Next() {
		var p domain.Project
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Budget, &p.Risk, &p.StartWeek, &p.Duration); err != nil {
			return nil, fmt.Errorf("scanning project row: %w", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating projects: %w", err)
	}
	rows.Close()

	scores, err := r.listScores(ctx, "")
	if err != nil {
		return nil, err
	}
	for i := range projects {
		projects[i].Scores = scores[projects[i].ID]
	}
	return projects, nil
}

// Update rewrites the project row and replaces its scores.
func (r *SQLiteProjectRepo) Update(ctx context.Context, p *domain.Project) error {
	query := `UPDATE projects SET name = ?, description = ?, budget = ?, risk = ?, start_week = ?, duration = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		p.Name, p.Description, p.Budget, p.Risk, p.StartWeek, p.Duration, p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating project: %w", err)
	}
	if err := requireAffected(res, "project", p.ID); err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM project_scores WHERE project_id = ?`, p.ID); err != nil {
		return fmt.Errorf("clearing project scores: %w", err)
	}
	return r.insertScores(ctx, p.ID, p.Scores)
}

func (r *SQLiteProjectRepo) SetScore(ctx context.Context, projectID, driverID string, score int) error {
	query := `INSERT INTO project_scores (project_id, driver_id, score) VALUES (?, ?, ?)
		ON CONFLICT(project_id, driver_id) DO UPDATE SET score = excluded.score`
	if _, err := r.db.ExecContext(ctx, query, projectID, driverID, score); err != nil {
		return fmt.Errorf("setting project score: %w", err)
	}
	return nil
}

// Delete removes the project with its scores, tasks and scenario override.
func (r *SQLiteProjectRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}
	return requireAffected(res, "project", id)
}

func (r *SQLiteProjectRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM projects`); err != nil {
		return fmt.Errorf("deleting projects: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) Count(ctx context.Context) (int, error) {
	return countRows(ctx, r.db, "projects")
}

func (r *SQLiteProjectRepo) insertScores(ctx context.Context, projectID string, scores []domain.ProjectScore) error {
	for _, s := range scores {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO project_scores (project_id, driver_id, score) VALUES (?, ?, ?)`,
			projectID, s.DriverID, s.Score,
		)
		if err != nil {
			return fmt.Errorf("inserting score for driver %s: %w", s.DriverID, err)
		}
	}
	return nil
}

// listScores loads scores grouped by project, each group in driver order.
func (r *SQLiteProjectRepo) listScores(ctx context.Context, where string, args ...any) (map[string][]domain.ProjectScore, error) {
	query := `SELECT s.project_id, s.driver_id, s.score
		FROM project_scores s JOIN drivers d ON d.id = s.driver_id
		` + where + `
		ORDER BY s.project_id, d.position, d.id`
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing project scores: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]domain.ProjectScore)
	for rows.Next() {
		var projectID string
		var s domain.ProjectScore
		if err := rows.Scan(&projectID, &s.DriverID, &s.Score); err != nil {
			return nil, fmt.Errorf("scanning project score: %w", err)
		}
		out[projectID] = append(out[projectID], s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating project scores: %w", err)
	}
	return out, nil
}
