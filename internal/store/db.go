// store/db.go - SQLite persistence layer
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Compile-time check that DB implements Store
var _ Store = (*DB)(nil)

type DB struct {
	*sql.DB
}

// New creates/opens the database and runs migrations
func New(dbPath string) (*DB, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create dir: %w", err)
	}

	sqlDB, err := sql.Open("sqlite", dbPath+"?_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{sqlDB}
	if err := db.migrate(); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS service_types (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE
	);

	CREATE TABLE IF NOT EXISTS demands (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		block TEXT NOT NULL,
		apartment TEXT NOT NULL,
		service_type_id INTEGER NOT NULL REFERENCES service_types(id),
		description TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'Pending' CHECK(status IN ('Pending', 'Resolved')),
		photo_path TEXT NOT NULL DEFAULT '',
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		resolved_at DATETIME
	);

	CREATE TABLE IF NOT EXISTS schedules (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		deadline DATETIME NOT NULL,
		created_by TEXT NOT NULL DEFAULT '',
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS schedule_items (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		schedule_id INTEGER NOT NULL REFERENCES schedules(id) ON DELETE CASCADE,
		block TEXT NOT NULL,
		floor INTEGER,
		apartment TEXT,
		service_type_id INTEGER
	);

	CREATE TABLE IF NOT EXISTS openings (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		kind TEXT NOT NULL CHECK(kind IN ('door', 'window')),
		block TEXT NOT NULL,
		apartment TEXT NOT NULL,
		label TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'Pending' CHECK(status IN ('Pending', 'Installed')),
		installed_at DATETIME
	);

	CREATE TABLE IF NOT EXISTS paintings (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		block TEXT NOT NULL,
		floor INTEGER NOT NULL,
		stage TEXT NOT NULL DEFAULT 'NotStarted' CHECK(stage IN ('NotStarted', 'FirstCoat', 'Finished')),
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		UNIQUE(block, floor)
	);

	CREATE TABLE IF NOT EXISTS measurements (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		block TEXT NOT NULL,
		apartment TEXT NOT NULL,
		service_type_id INTEGER NOT NULL REFERENCES service_types(id),
		label TEXT NOT NULL,
		expected TEXT NOT NULL,
		actual TEXT NOT NULL,
		tolerance TEXT NOT NULL,
		measured_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS material_lots (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		code TEXT NOT NULL UNIQUE,
		description TEXT NOT NULL DEFAULT '',
		quantity INTEGER NOT NULL DEFAULT 0,
		block TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'Ordered' CHECK(status IN ('Ordered', 'Received', 'Applied')),
		received_at DATETIME,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS employees (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT '',
		active INTEGER NOT NULL DEFAULT 1,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS assignments (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		employee_id INTEGER NOT NULL REFERENCES employees(id) ON DELETE CASCADE,
		block TEXT NOT NULL,
		service_type_id INTEGER NOT NULL REFERENCES service_types(id),
		assigned_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS ratings (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		employee_id INTEGER NOT NULL REFERENCES employees(id) ON DELETE CASCADE,
		score INTEGER NOT NULL CHECK(score BETWEEN 1 AND 5),
		note TEXT NOT NULL DEFAULT '',
		rated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS demand_drafts (
		id TEXT PRIMARY KEY,
		block TEXT NOT NULL,
		apartment TEXT NOT NULL,
		service_type_id INTEGER NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		applied INTEGER NOT NULL DEFAULT 0
	);

	CREATE INDEX IF NOT EXISTS idx_demands_status ON demands(status);
	CREATE INDEX IF NOT EXISTS idx_demands_block ON demands(block);
	CREATE INDEX IF NOT EXISTS idx_schedule_items_schedule ON schedule_items(schedule_id);
	CREATE INDEX IF NOT EXISTS idx_openings_block ON openings(block);
	CREATE INDEX IF NOT EXISTS idx_assignments_employee ON assignments(employee_id);
	CREATE INDEX IF NOT EXISTS idx_ratings_employee ON ratings(employee_id);
	`
	_, err := db.Exec(schema)
	return err
}

// Generic scanner interface
type scanner interface {
	Scan(rows *sql.Rows) error
}

// Generic scanAll helper - DRY for scanning rows into slices
func scanAll[T any](rows *sql.Rows, newFn func() *T, scannerFn func(*T) scanner) ([]T, error) {
	var results []T
	for rows.Next() {
		item := newFn()
		if err := scannerFn(item).Scan(rows); err != nil {
			return nil, err
		}
		results = append(results, *item)
	}
	return results, rows.Err()
}
