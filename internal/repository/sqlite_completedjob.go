package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/andrisyafri/facilops/internal/db"
	"github.com/andrisyafri/facilops/internal/domain"
)

type SQLiteCompletedJobRepo struct {
	db db.DBTX
}

func NewSQLiteCompletedJobRepo(conn db.DBTX) *SQLiteCompletedJobRepo {
	return &SQLiteCompletedJobRepo{db: conn}
}

const completedJobColumns = `id, employee_id, company_id, object_id, area_name, object_name,
	shift_id, shift_label, start_time, end_time, hours_worked, created_at`

func (r *SQLiteCompletedJobRepo) Create(ctx context.Context, c *domain.CompletedJob) error {
	query := `INSERT INTO completed_jobs (` + completedJobColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		c.ID, c.EmployeeID, c.CompanyID, c.ObjectID, c.AreaName, c.ObjectName,
		c.ShiftID, c.ShiftLabel,
		c.StartTime.UTC().Format(time.RFC3339),
		c.EndTime.UTC().Format(time.RFC3339),
		c.HoursWorked,
		c.CreatedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("inserting completed job: %w", err)
	}
	return nil
}

func (r *SQLiteCompletedJobRepo) ListByEmployee(ctx context.Context, employeeID string) ([]*domain.CompletedJob, error) {
	query := `SELECT ` + completedJobColumns + ` FROM completed_jobs
		WHERE employee_id = ? ORDER BY end_time`
	return r.list(ctx, query, employeeID)
}

func (r *SQLiteCompletedJobRepo) ListByEmployeeBetween(ctx context.Context, employeeID string, from, to time.Time) ([]*domain.CompletedJob, error) {
	query := `SELECT ` + completedJobColumns + ` FROM completed_jobs
		WHERE employee_id = ? AND end_time >= ? AND end_time <= ?
		ORDER BY end_time`
	return r.list(ctx, query, employeeID,
		from.UTC().Format(time.RFC3339), to.UTC().Format(time.RFC3339))
}

func (r *SQLiteCompletedJobRepo) LatestByObject(ctx context.Context, employeeID string) (map[string]time.Time, error) {
	query := `SELECT object_id, MAX(end_time) FROM completed_jobs
		WHERE employee_id = ? GROUP BY object_id`
	rows, err := r.db.QueryContext(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("loading latest completions: %w", err)
	}
	defer rows.Close()

	latest := map[string]time.Time{}
	for rows.Next() {
		var objectID, endTime string
		if err := rows.Scan(&objectID, &endTime); err != nil {
			return nil, fmt.Errorf("scanning latest completion: %w", err)
		}
		latest[objectID] = mustParseTime(endTime, time.RFC3339)
	}
	return latest, rows.Err()
}

func (r *SQLiteCompletedJobRepo) list(ctx context.Context, query string, args ...any) ([]*domain.CompletedJob, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing completed jobs: %w", err)
	}
	defer rows.Close()

	var jobs []*domain.CompletedJob
	for rows.Next() {
		var (
			c                               domain.CompletedJob
			shiftID                         sql.NullString
			startTime, endTime, createdAt   string
		)
		if err := rows.Scan(&c.ID, &c.EmployeeID, &c.CompanyID, &c.ObjectID,
			&c.AreaName, &c.ObjectName, &shiftID, &c.ShiftLabel,
			&startTime, &endTime, &c.HoursWorked, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning completed job: %w", err)
		}
		c.ShiftID = shiftID.String
		c.StartTime = mustParseTime(startTime, time.RFC3339)
		c.EndTime = mustParseTime(endTime, time.RFC3339)
		c.CreatedAt = mustParseTime(createdAt, time.RFC3339)
		jobs = append(jobs, &c)
	}
	return jobs, rows.Err()
}
