package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/telos/internal/db"
	"github.com/alexanderramin/telos/internal/domain"
)

type SQLiteResourceRepo struct {
	db db.DBTX
}

func NewSQLiteResourceRepo(conn db.DBTX) *SQLiteResourceRepo {
	return &SQLiteResourceRepo{db: conn}
}

func (r *SQLiteResourceRepo) Create(ctx context.Context, res *domain.Resource) error {
	query := `INSERT INTO resources (id, name, capacity, position) VALUES (?, ?, ?, ` + nextPosition("resources") + `)`
	if _, err := r.db.ExecContext(ctx, query, res.ID, res.Name, res.Capacity); err != nil {
		return fmt.Errorf("inserting resource: %w", err)
	}
	return nil
}

func (r *SQLiteResourceRepo) GetByID(ctx context.Context, id string) (*domain.Resource, error) {
	var res domain.Resource
	err := r.db.QueryRowContext(ctx, `SELECT id, name, capacity FROM resources WHERE id = ?`, id).
		Scan(&res.ID, &res.Name, &res.Capacity)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("resource", id)
	}
	if err != nil {
		return nil, fmt.Errorf("scanning resource: %w", err)
	}
	return &res, nil
}

func (r *SQLiteResourceRepo) List(ctx context.Context) ([]domain.Resource, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, capacity FROM resources ORDER BY position, id`)
	if err != nil {
		return nil, fmt.Errorf("listing resources: %w", err)
	}
	defer rows.Close()

	var resources []domain.Resource
	for rows.Next() {
		var res domain.Resource
		if err := rows.Scan(&res.ID, &res.Name, &res.Capacity); err != nil {
			return nil, fmt.Errorf("scanning resource row: %w", err)
		}
		resources = append(resources, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating resources: %w", err)
	}
	return resources, nil
}

func (r *SQLiteResourceRepo) Update(ctx context.Context, res *domain.Resource) error {
	result, err := r.db.ExecContext(ctx, `UPDATE resources SET name = ?, capacity = ? WHERE id = ?`, res.Name, res.Capacity, res.ID)
	if err != nil {
		return fmt.Errorf("updating resource: %w", err)
	}
	return requireAffected(result, "resource", res.ID)
}

// Delete removes the resource. Its tasks become unassigned.
func (r *SQLiteResourceRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM resources WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting resource: %w", err)
	}
	return requireAffected(result, "resource", id)
}

func (r *SQLiteResourceRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM resources`); err != nil {
		return fmt.Errorf("deleting resources: %w", err)
	}
	return nil
}

func (r *SQLiteResourceRepo) Count(ctx context.Context) (int, error) {
	return countRows(ctx, r.db, "resources")
}
