package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/andrisyafri/facilops/internal/db"
	"github.com/andrisyafri/facilops/internal/domain"
)

type SQLiteJobLogRepo struct {
	db db.DBTX
}

func NewSQLiteJobLogRepo(conn db.DBTX) *SQLiteJobLogRepo {
	return &SQLiteJobLogRepo{db: conn}
}

const jobLogColumns = `id, employee_id, company_id, object_id, start_time, is_stopped, end_time, hours_worked, created_at`

func (r *SQLiteJobLogRepo) Create(ctx context.Context, j *domain.JobLog) error {
	query := `INSERT INTO job_logs (` + jobLogColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		j.ID, j.EmployeeID, j.CompanyID, j.ObjectID,
		j.StartTime.UTC().Format(time.RFC3339),
		boolToInt(j.Stopped),
		nullableTimeToString(j.EndTime, time.RFC3339),
		j.HoursWorked,
		j.CreatedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("inserting job log: %w", err)
	}
	return nil
}

func (r *SQLiteJobLogRepo) FindOpen(ctx context.Context, employeeID, objectID string) (*domain.JobLog, error) {
	query := `SELECT ` + jobLogColumns + ` FROM job_logs
		WHERE employee_id = ? AND object_id = ? AND is_stopped = 0
		ORDER BY start_time DESC LIMIT 1`
	row := r.db.QueryRowContext(ctx, query, employeeID, objectID)
	j, err := scanJobLog(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("open job log for object %s: %w", objectID, ErrNotFound)
		}
		return nil, err
	}
	return j, nil
}

func (r *SQLiteJobLogRepo) ListOpenByEmployee(ctx context.Context, employeeID string) ([]*domain.JobLog, error) {
	query := `SELECT ` + jobLogColumns + ` FROM job_logs
		WHERE employee_id = ? AND is_stopped = 0
		ORDER BY start_time`
	rows, err := r.db.QueryContext(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("listing open job logs: %w", err)
	}
	defer rows.Close()

	var logs []*domain.JobLog
	for rows.Next() {
		j, err := scanJobLog(rows)
		if err != nil {
			return nil, err
		}
		logs = append(logs, j)
	}
	return logs, rows.Err()
}

func (r *SQLiteJobLogRepo) MarkStopped(ctx context.Context, id string, endTime time.Time, hoursWorked string) error {
	query := `UPDATE job_logs SET is_stopped = 1, end_time = ?, hours_worked = ? WHERE id = ? AND is_stopped = 0`
	res, err := r.db.ExecContext(ctx, query,
		endTime.UTC().Format(time.RFC3339), hoursWorked, id)
	if err != nil {
		return fmt.Errorf("stopping job log: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("open job log %s: %w", id, ErrNotFound)
	}
	return nil
}

func scanJobLog(row rowScanner) (*domain.JobLog, error) {
	var (
		j                    domain.JobLog
		startTime, createdAt string
		stopped              int
		endTime              sql.NullString
	)
	err := row.Scan(&j.ID, &j.EmployeeID, &j.CompanyID, &j.ObjectID,
		&startTime, &stopped, &endTime, &j.HoursWorked, &createdAt)
	if err != nil {
		return nil, err
	}
	j.StartTime = mustParseTime(startTime, time.RFC3339)
	j.Stopped = stopped != 0
	j.EndTime = parseNullableTime(endTime, time.RFC3339)
	j.CreatedAt = mustParseTime(createdAt, time.RFC3339)
	return &j, nil
}
