package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/telos/internal/db"
	"github.com/alexanderramin/telos/internal/domain"
)

// nullableString stores an empty string as SQL NULL.
func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// stringFromNull maps SQL NULL back to the empty string.
func stringFromNull(s sql.NullString) string {
	if !s.Valid {
		return ""
	}
	return s.String
}

// nextPosition is a subquery yielding the next display position in table.
func nextPosition(table string) string {
	return `(SELECT COALESCE(MAX(position), 0) + 1 FROM ` + table + `)`
}

// requireAffected turns a zero-row update or delete into ErrNotFound.
func requireAffected(res sql.Result, entity, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking %s rows affected: %w", entity, err)
	}
	if n == 0 {
		return notFound(entity, id)
	}
	return nil
}

func notFound(entity, id string) error {
	return fmt.Errorf("%s %q: %w", entity, id, domain.ErrNotFound)
}

func countRows(ctx context.Context, conn db.DBTX, table string) (int, error) {
	var n int
	if err := conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM `+table).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting %s: %w", table, err)
	}
	return n, nil
}
