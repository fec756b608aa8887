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

type SQLiteEmployeeRepo struct {
	db db.DBTX
}

func NewSQLiteEmployeeRepo(conn db.DBTX) *SQLiteEmployeeRepo {
	return &SQLiteEmployeeRepo{db: conn}
}

const employeeColumns = `id, name, mobile_number, email, address, role, gender, joining_date, talents, created_at, updated_at`

func (r *SQLiteEmployeeRepo) Create(ctx context.Context, e *domain.Employee) error {
	query := `INSERT INTO employees (` + employeeColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID, e.Name, e.MobileNumber, e.Email, e.Address, e.Role, e.Gender,
		e.JoiningDate, joinList(e.Talents),
		e.CreatedAt.UTC().Format(time.RFC3339), e.UpdatedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("inserting employee: %w", err)
	}
	return nil
}

func (r *SQLiteEmployeeRepo) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+employeeColumns+` FROM employees WHERE id = ?`, id)
	e, err := scanEmployee(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("employee %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return e, nil
}

func (r *SQLiteEmployeeRepo) List(ctx context.Context) ([]*domain.Employee, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+employeeColumns+` FROM employees ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("listing employees: %w", err)
	}
	defer rows.Close()

	var employees []*domain.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating employees: %w", err)
	}
	return employees, nil
}

func (r *SQLiteEmployeeRepo) Update(ctx context.Context, e *domain.Employee) error {
	query := `UPDATE employees SET name = ?, mobile_number = ?, email = ?, address = ?,
		role = ?, gender = ?, joining_date = ?, talents = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		e.Name, e.MobileNumber, e.Email, e.Address, e.Role, e.Gender,
		e.JoiningDate, joinList(e.Talents),
		e.UpdatedAt.UTC().Format(time.RFC3339), e.ID)
	if err != nil {
		return fmt.Errorf("updating employee: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("employee %s: %w", e.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteEmployeeRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM employees WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting employee: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("employee %s: %w", id, ErrNotFound)
	}
	return nil
}

func scanEmployee(row rowScanner) (*domain.Employee, error) {
	var (
		e                    domain.Employee
		talents              string
		createdAt, updatedAt string
	)
	err := row.Scan(&e.ID, &e.Name, &e.MobileNumber, &e.Email, &e.Address,
		&e.Role, &e.Gender, &e.JoiningDate, &talents, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	e.Talents = splitList(talents)
	e.CreatedAt = mustParseTime(createdAt, time.RFC3339)
	e.UpdatedAt = mustParseTime(updatedAt, time.RFC3339)
	return &e, nil
}
