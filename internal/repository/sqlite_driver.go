package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/telos/internal/db"
	"github.com/alexanderramin/telos/internal/domain"
)

type SQLiteDriverRepo struct {
	db db.DBTX
}

func NewSQLiteDriverRepo(conn db.DBTX) *SQLiteDriverRepo {
	return &SQLiteDriverRepo{db: conn}
}

func (r *SQLiteDriverRepo) Create(ctx context.Context, d *domain.Driver) error {
	query := `INSERT INTO drivers (id, name, weight, position) VALUES (?, ?, ?, ` + nextPosition("drivers") + `)`
	if _, err := r.db.ExecContext(ctx, query, d.ID, d.Name, d.Weight); err != nil {
		return fmt.Errorf("inserting driver: %w", err)
	}
	return nil
}

func (r *SQLiteDriverRepo) GetByID(ctx context.Context, id string) (*domain.Driver, error) {
	var d domain.Driver
	err := r.db.QueryRowContext(ctx, `SELECT id, name, weight FROM drivers WHERE id = ?`, id).
		Scan(&d.ID, &d.Name, &d.Weight)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("driver", id)
	}
	if err != nil {
		return nil, fmt.Errorf("scanning driver: %w", err)
	}
	return &d, nil
}

func (r *SQLiteDriverRepo) List(ctx context.Context) ([]domain.Driver, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, weight FROM drivers ORDER BY position, id`)
	if err != nil {
		return nil, fmt.Errorf("listing drivers: %w", err)
	}
	defer rows.Close()

	var drivers []domain.Driver
	for rows.Next() {
		var d domain.Driver
		if err := rows.Scan(&d.ID, &d.Name, &d.Weight); err != nil {
			return nil, fmt.Errorf("scanning driver row: %w", err)
		}
		drivers = append(drivers, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating drivers: %w", err)
	}
	return drivers, nil
}

func (r *SQLiteDriverRepo) Update(ctx context.Context, d *domain.Driver) error {
	res, err := r.db.ExecContext(ctx, `UPDATE drivers SET name = ?, weight = ? WHERE id = ?`, d.Name, d.Weight, d.ID)
	if err != nil {
		return fmt.Errorf("updating driver: %w", err)
	}
	return requireAffected(res, "driver", d.ID)
}

func (r *SQLiteDriverRepo) UpdateWeight(ctx context.Context, id string, weight int) error {
	res, err := r.db.ExecContext(ctx, `UPDATE drivers SET weight = ? WHERE id = ?`, weight, id)
	if err != nil {
		return fmt.Errorf("updating driver weight: %w", err)
	}
	return requireAffected(res, "driver", id)
}

func (r *SQLiteDriverRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM drivers WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting driver: %w", err)
	}
	return requireAffected(res, "driver", id)
}

func (r *SQLiteDriverRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM drivers`); err != nil {
		return fmt.Errorf("deleting drivers: %w", err)
	}
	return nil
}

func (r *SQLiteDriverRepo) Count(ctx context.Context) (int, error) {
	return countRows(ctx, r.db, "drivers")
}
