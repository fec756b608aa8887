package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/andrisyafri/facilops/internal/db"
	"github.com/andrisyafri/facilops/internal/domain"
)

// SQLiteCatalogRepo backs the five lookup tables. They share the same
// tiny shape so the implementations lean on a couple of generic helpers.
type SQLiteCatalogRepo struct {
	db db.DBTX
}

func NewSQLiteCatalogRepo(conn db.DBTX) *SQLiteCatalogRepo {
	return &SQLiteCatalogRepo{db: conn}
}

func (r *SQLiteCatalogRepo) CreateFrequency(ctx context.Context, f *domain.FrequencyType) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO frequencies (id, label, code, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		f.ID, f.Label, f.Code,
		f.CreatedAt.UTC().Format(time.RFC3339), f.UpdatedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("inserting frequency: %w", err)
	}
	return nil
}

func (r *SQLiteCatalogRepo) ListFrequencies(ctx context.Context) ([]*domain.FrequencyType, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, label, code, created_at, updated_at FROM frequencies ORDER BY label`)
	if err != nil {
		return nil, fmt.Errorf("listing frequencies: %w", err)
	}
	defer rows.Close()

	var out []*domain.FrequencyType
	for rows.Next() {
		var (
			f                    domain.FrequencyType
			createdAt, updatedAt string
		)
		if err := rows.Scan(&f.ID, &f.Label, &f.Code, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scanning frequency: %w", err)
		}
		f.CreatedAt = mustParseTime(createdAt, time.RFC3339)
		f.UpdatedAt = mustParseTime(updatedAt, time.RFC3339)
		out = append(out, &f)
	}
	return out, rows.Err()
}

func (r *SQLiteCatalogRepo) CreateShift(ctx context.Context, s *domain.Shift) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO shifts (id, name, start_time, end_time, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`,
		s.ID, s.Name, s.StartTime, s.EndTime,
		s.CreatedAt.UTC().Format(time.RFC3339), s.UpdatedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("inserting shift: %w", err)
	}
	return nil
}

func (r *SQLiteCatalogRepo) ListShifts(ctx context.Context) ([]*domain.Shift, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, start_time, end_time, created_at, updated_at FROM shifts ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("listing shifts: %w", err)
	}
	defer rows.Close()

	var out []*domain.Shift
	for rows.Next() {
		var (
			s                    domain.Shift
			createdAt, updatedAt string
		)
		if err := rows.Scan(&s.ID, &s.Name, &s.StartTime, &s.EndTime, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scanning shift: %w", err)
		}
		s.CreatedAt = mustParseTime(createdAt, time.RFC3339)
		s.UpdatedAt = mustParseTime(updatedAt, time.RFC3339)
		out = append(out, &s)
	}
	return out, rows.Err()
}

func (r *SQLiteCatalogRepo) CreateTalent(ctx context.Context, t *domain.Talent) error {
	return r.createNamed(ctx, "talents", t.ID, t.Name, t.CreatedAt, t.UpdatedAt)
}

func (r *SQLiteCatalogRepo) ListTalents(ctx context.Context) ([]*domain.Talent, error) {
	rows, err := r.listNamed(ctx, "talents")
	if err != nil {
		return nil, err
	}
	out := make([]*domain.Talent, len(rows))
	for i, n := range rows {
		out[i] = &domain.Talent{ID: n.id, Name: n.name, CreatedAt: n.createdAt, UpdatedAt: n.updatedAt}
	}
	return out, nil
}

func (r *SQLiteCatalogRepo) CreatePropertyType(ctx context.Context, p *domain.PropertyType) error {
	return r.createNamed(ctx, "property_types", p.ID, p.Name, p.CreatedAt, p.UpdatedAt)
}

func (r *SQLiteCatalogRepo) ListPropertyTypes(ctx context.Context) ([]*domain.PropertyType, error) {
	rows, err := r.listNamed(ctx, "property_types")
	if err != nil {
		return nil, err
	}
	out := make([]*domain.PropertyType, len(rows))
	for i, n := range rows {
		out[i] = &domain.PropertyType{ID: n.id, Name: n.name, CreatedAt: n.createdAt, UpdatedAt: n.updatedAt}
	}
	return out, nil
}

func (r *SQLiteCatalogRepo) CreateServiceType(ctx context.Context, s *domain.ServiceType) error {
	return r.createNamed(ctx, "service_types", s.ID, s.Name, s.CreatedAt, s.UpdatedAt)
}

func (r *SQLiteCatalogRepo) ListServiceTypes(ctx context.Context) ([]*domain.ServiceType, error) {
	rows, err := r.listNamed(ctx, "service_types")
	if err != nil {
		return nil, err
	}
	out := make([]*domain.ServiceType, len(rows))
	for i, n := range rows {
		out[i] = &domain.ServiceType{ID: n.id, Name: n.name, CreatedAt: n.createdAt, UpdatedAt: n.updatedAt}
	}
	return out, nil
}

type namedRow struct {
	id, name             string
	createdAt, updatedAt time.Time
}

func (r *SQLiteCatalogRepo) createNamed(ctx context.Context, table, id, name string, createdAt, updatedAt time.Time) error {
	query := fmt.Sprintf(`INSERT INTO %s (id, name, created_at, updated_at) VALUES (?, ?, ?, ?)`, table)
	_, err := r.db.ExecContext(ctx, query, id, name,
		createdAt.UTC().Format(time.RFC3339), updatedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("inserting into %s: %w", table, err)
	}
	return nil
}

func (r *SQLiteCatalogRepo) listNamed(ctx context.Context, table string) ([]namedRow, error) {
	query := fmt.Sprintf(`SELECT id, name, created_at, updated_at FROM %s ORDER BY name`, table)
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", table, err)
	}
	defer rows.Close()

	var out []namedRow
	for rows.Next() {
		var (
			n                    namedRow
			createdAt, updatedAt string
		)
		if err := rows.Scan(&n.id, &n.name, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scanning %s row: %w", table, err)
		}
		n.createdAt = mustParseTime(createdAt, time.RFC3339)
		n.updatedAt = mustParseTime(updatedAt, time.RFC3339)
		out = append(out, n)
	}
	return out, rows.Err()
}
