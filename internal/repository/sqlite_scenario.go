package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/telos/internal/db"
	"github.com/alexanderramin/telos/internal/domain"
)

type SQLiteScenarioRepo struct {
	db db.DBTX
}

func NewSQLiteScenarioRepo(conn db.DBTX) *SQLiteScenarioRepo {
	return &SQLiteScenarioRepo{db: conn}
}

// Upsert stores the adjustment. A zero adjustment deletes the row so the
// table only ever holds projects that differ from baseline.
func (r *SQLiteScenarioRepo) Upsert(ctx context.Context, a domain.ScenarioAdjustment) error {
	if a.IsZero() {
		if _, err := r.db.ExecContext(ctx, `DELETE FROM scenario_adjustments WHERE project_id = ?`, a.ProjectID); err != nil {
			return fmt.Errorf("clearing scenario adjustment: %w", err)
		}
		return nil
	}
	query := `INSERT INTO scenario_adjustments (project_id, delay_weeks, budget_change) VALUES (?, ?, ?)
		ON CONFLICT(project_id) DO UPDATE SET delay_weeks = excluded.delay_weeks, budget_change = excluded.budget_change`
	if _, err := r.db.ExecContext(ctx, query, a.ProjectID, a.Delay, a.BudgetChange); err != nil {
		return fmt.Errorf("upserting scenario adjustment: %w", err)
	}
	return nil
}

func (r *SQLiteScenarioRepo) Get(ctx context.Context, projectID string) (*domain.ScenarioAdjustment, error) {
	var a domain.ScenarioAdjustment
	err := r.db.QueryRowContext(ctx,
		`SELECT project_id, delay_weeks, budget_change FROM scenario_adjustments WHERE project_id = ?`, projectID,
	).Scan(&a.ProjectID, &a.Delay, &a.BudgetChange)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("scenario adjustment", projectID)
	}
	if err != nil {
		return nil, fmt.Errorf("scanning scenario adjustment: %w", err)
	}
	return &a, nil
}

func (r *SQLiteScenarioRepo) List(ctx context.Context) ([]domain.ScenarioAdjustment, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT s.project_id, s.delay_weeks, s.budget_change
		FROM scenario_adjustments s JOIN projects p ON p.id = s.project_id
		ORDER BY p.position, p.id`)
	if err != nil {
		return nil, fmt.Errorf("listing scenario adjustments: %w", err)
	}
	defer rows.Close()

	var out []domain.ScenarioAdjustment
	for rows.Next() {
		var a domain.ScenarioAdjustment
		if err := rows.Scan(&a.ProjectID, &a.Delay, &a.BudgetChange); err != nil {
			return nil, fmt.Errorf("scanning scenario adjustment row: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating scenario adjustments: %w", err)
	}
	return out, nil
}

func (r *SQLiteScenarioRepo) Delete(ctx context.Context, projectID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM scenario_adjustments WHERE project_id = ?`, projectID); err != nil {
		return fmt.Errorf("deleting scenario adjustment: %w", err)
	}
	return nil
}

func (r *SQLiteScenarioRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM scenario_adjustments`); err != nil {
		return fmt.Errorf("resetting scenario: %w", err)
	}
	return nil
}
