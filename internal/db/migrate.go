package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// positionTables carry an explicit display order, which is the order rows
// were first inserted (seed or import order).
var positionTables = []string{"drivers", "projects", "resources", "tasks"}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE ADD COLUMN is re-run on every start; databases
			// created with the current schema already have the column.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	if err := migrateBackfillPositions(db); err != nil {
		return fmt.Errorf("backfilling positions: %w", err)
	}
	return nil
}

// migrateBackfillPositions assigns rowid order to rows written before the
// position column existed.
func migrateBackfillPositions(db *sql.DB) error {
	ctx := context.Background()
	for _, table := range positionTables {
		var count int
		if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM `+table+` WHERE position = 0`).Scan(&count); err != nil {
			return fmt.Errorf("checking %s positions: %w", table, err)
		}
		if count == 0 {
			continue
		}
		if _, err := db.ExecContext(ctx, `UPDATE `+table+` SET position = rowid WHERE position = 0`); err != nil {
			return fmt.Errorf("backfilling %s positions: %w", table, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS drivers (
		id       TEXT PRIMARY KEY,
		name     TEXT NOT NULL,
		weight   INTEGER NOT NULL DEFAULT 0 CHECK(weight BETWEEN 0 AND 10),
		position INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE TABLE IF NOT EXISTS projects (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		budget      REAL NOT NULL DEFAULT 0 CHECK(budget >= 0),
		risk        REAL NOT NULL CHECK(risk BETWEEN 1 AND 10),
		start_week  INTEGER NOT NULL CHECK(start_week >= 1),
		duration    INTEGER NOT NULL CHECK(duration >= 1),
		position    INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE TABLE IF NOT EXISTS project_scores (
		project_id TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		driver_id  TEXT NOT NULL REFERENCES drivers(id) ON DELETE CASCADE,
		score      INTEGER NOT NULL CHECK(score BETWEEN 1 AND 10),
		PRIMARY KEY (project_id, driver_id)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_project_scores_driver ON project_scores(driver_id)`,

	`CREATE TABLE IF NOT EXISTS resources (
		id       TEXT PRIMARY KEY,
		name     TEXT NOT NULL,
		capacity REAL NOT NULL CHECK(capacity > 0),
		position INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id              TEXT PRIMARY KEY,
		project_id      TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		name            TEXT NOT NULL,
		estimated_hours REAL NOT NULL DEFAULT 0 CHECK(estimated_hours >= 0),
		resource_id     TEXT REFERENCES resources(id) ON DELETE SET NULL,
		start_week      INTEGER NOT NULL CHECK(start_week >= 1),
		duration        INTEGER NOT NULL CHECK(duration >= 1),
		position        INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE INDEX IF NOT EXISTS idx_tasks_project ON tasks(project_id)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_resource ON tasks(resource_id)`,

	`CREATE TABLE IF NOT EXISTS scenario_adjustments (
		project_id    TEXT PRIMARY KEY REFERENCES projects(id) ON DELETE CASCADE,
		delay_weeks   INTEGER NOT NULL DEFAULT 0 CHECK(delay_weeks BETWEEN 0 AND 26),
		budget_change REAL NOT NULL DEFAULT 0
	)`,

	// Display order, added after the first schema shipped.
	`ALTER TABLE drivers ADD COLUMN position INTEGER NOT NULL DEFAULT 0`,
	`ALTER TABLE projects ADD COLUMN position INTEGER NOT NULL DEFAULT 0`,
	`ALTER TABLE resources ADD COLUMN position INTEGER NOT NULL DEFAULT 0`,
	`ALTER TABLE tasks ADD COLUMN position INTEGER NOT NULL DEFAULT 0`,
}
