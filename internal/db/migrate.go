package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent; ALTER
// TABLE duplicates from re-runs are tolerated.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS property_types (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL UNIQUE,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS service_types (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL UNIQUE,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS talents (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL UNIQUE,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS shifts (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		start_time TEXT NOT NULL DEFAULT '',
		end_time   TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS frequencies (
		id         TEXT PRIMARY KEY,
		label      TEXT NOT NULL UNIQUE,
		code       TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS employees (
		id            TEXT PRIMARY KEY,
		name          TEXT NOT NULL,
		mobile_number TEXT NOT NULL DEFAULT '',
		email         TEXT NOT NULL DEFAULT '',
		address       TEXT NOT NULL DEFAULT '',
		role          TEXT NOT NULL DEFAULT '',
		gender        TEXT NOT NULL DEFAULT '',
		joining_date  TEXT NOT NULL DEFAULT '',
		talents       TEXT NOT NULL DEFAULT '',
		created_at    TEXT NOT NULL,
		updated_at    TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS companies (
		id               TEXT PRIMARY KEY,
		name             TEXT NOT NULL,
		mobile_number    TEXT NOT NULL DEFAULT '',
		email            TEXT NOT NULL DEFAULT '',
		address          TEXT NOT NULL DEFAULT '',
		contract_start   TEXT,
		contract_end     TEXT,
		property_type_id TEXT,
		property_type    TEXT NOT NULL DEFAULT '',
		latitude         REAL NOT NULL DEFAULT 0,
		longitude        REAL NOT NULL DEFAULT 0,
		shift_start      TEXT NOT NULL DEFAULT '',
		shift_end        TEXT NOT NULL DEFAULT '',
		created_at       TEXT NOT NULL,
		updated_at       TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS areas (
		id         TEXT PRIMARY KEY,
		company_id TEXT NOT NULL REFERENCES companies(id) ON DELETE CASCADE,
		name       TEXT NOT NULL,
		position   INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE TABLE IF NOT EXISTS service_objects (
		id                 TEXT PRIMARY KEY,
		area_id            TEXT NOT NULL REFERENCES areas(id) ON DELETE CASCADE,
		name               TEXT NOT NULL,
		frequency_id       TEXT,
		frequency_label    TEXT NOT NULL DEFAULT '',
		employee_id        TEXT NOT NULL DEFAULT '',
		service_type_id    TEXT,
		service_type       TEXT NOT NULL DEFAULT '',
		shift_id           TEXT,
		shift_label        TEXT NOT NULL DEFAULT '',
		talent_id          TEXT,
		service_start_date TEXT,
		position           INTEGER NOT NULL DEFAULT 0,
		created_at         TEXT NOT NULL,
		updated_at         TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS job_logs (
		id           TEXT PRIMARY KEY,
		employee_id  TEXT NOT NULL,
		company_id   TEXT NOT NULL,
		object_id    TEXT NOT NULL,
		start_time   TEXT NOT NULL,
		is_stopped   INTEGER NOT NULL DEFAULT 0,
		end_time     TEXT,
		hours_worked TEXT NOT NULL DEFAULT '0h 0m',
		created_at   TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS completed_jobs (
		id           TEXT PRIMARY KEY,
		employee_id  TEXT NOT NULL,
		company_id   TEXT NOT NULL,
		object_id    TEXT NOT NULL,
		area_name    TEXT NOT NULL DEFAULT '',
		object_name  TEXT NOT NULL DEFAULT '',
		shift_id     TEXT,
		shift_label  TEXT NOT NULL DEFAULT '',
		start_time   TEXT NOT NULL,
		end_time     TEXT NOT NULL,
		hours_worked TEXT NOT NULL DEFAULT '',
		created_at   TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_areas_company ON areas(company_id)`,
	`CREATE INDEX IF NOT EXISTS idx_objects_area ON service_objects(area_id)`,
	`CREATE INDEX IF NOT EXISTS idx_objects_employee ON service_objects(employee_id)`,
	`CREATE INDEX IF NOT EXISTS idx_job_logs_open ON job_logs(employee_id, is_stopped)`,
	`CREATE INDEX IF NOT EXISTS idx_job_logs_object ON job_logs(object_id, is_stopped)`,
	`CREATE INDEX IF NOT EXISTS idx_completed_employee_end ON completed_jobs(employee_id, end_time)`,
	`CREATE INDEX IF NOT EXISTS idx_completed_object_end ON completed_jobs(object_id, end_time)`,
}
