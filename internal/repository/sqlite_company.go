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

// SQLiteCompanyRepo implements CompanyRepo over SQLite. Companies are
// stored relationally (companies, areas, service_objects) and loaded as
// full nested snapshots.
type SQLiteCompanyRepo struct {
	db db.DBTX
}

func NewSQLiteCompanyRepo(conn db.DBTX) *SQLiteCompanyRepo {
	return &SQLiteCompanyRepo{db: conn}
}

const companyColumns = `id, name, mobile_number, email, address, contract_start, contract_end,
	property_type_id, property_type, latitude, longitude, shift_start, shift_end, created_at, updated_at`

func (r *SQLiteCompanyRepo) Create(ctx context.Context, c *domain.Company) error {
	query := `INSERT INTO companies (` + companyColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		c.ID,
		c.Name,
		c.MobileNumber,
		c.Email,
		c.Address,
		nullableTimeToString(c.ContractStartDate, dateLayout),
		nullableTimeToString(c.ContractEndDate, dateLayout),
		c.PropertyTypeID,
		c.PropertyTypeName,
		c.Latitude,
		c.Longitude,
		c.ShiftStart,
		c.ShiftEnd,
		c.CreatedAt.UTC().Format(time.RFC3339),
		c.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting company: %w", err)
	}
	return r.insertHierarchy(ctx, c)
}

func (r *SQLiteCompanyRepo) insertHierarchy(ctx context.Context, c *domain.Company) error {
	for ai := range c.Areas {
		area := &c.Areas[ai]
		area.CompanyID = c.ID
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO areas (id, company_id, name, position) VALUES (?, ?, ?, ?)`,
			area.ID, c.ID, area.Name, ai)
		if err != nil {
			return fmt.Errorf("inserting area %q: %w", area.Name, err)
		}
		for oi := range area.Objects {
			obj := &area.Objects[oi]
			obj.AreaID = area.ID
			_, err := r.db.ExecContext(ctx,
				`INSERT INTO service_objects (id, area_id, name, frequency_id, frequency_label,
					employee_id, service_type_id, service_type, shift_id, shift_label, talent_id,
					service_start_date, position, created_at, updated_at)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				obj.ID, area.ID, obj.Name, obj.FrequencyID, obj.FrequencyLabel,
				obj.EmployeeID, obj.ServiceTypeID, obj.ServiceTypeName, obj.ShiftID, obj.ShiftLabel,
				obj.TalentID, nullableTimeToString(obj.ServiceStartDate, dateLayout), oi,
				obj.CreatedAt.UTC().Format(time.RFC3339), obj.UpdatedAt.UTC().Format(time.RFC3339))
			if err != nil {
				return fmt.Errorf("inserting service object %q: %w", obj.Name, err)
			}
		}
	}
	return nil
}

func (r *SQLiteCompanyRepo) GetByID(ctx context.Context, id string) (*domain.Company, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+companyColumns+` FROM companies WHERE id = ?`, id)
	c, err := scanCompany(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("company %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	if err := r.loadHierarchy(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *SQLiteCompanyRepo) List(ctx context.Context) ([]*domain.Company, error) {
	return r.list(ctx, `SELECT `+companyColumns+` FROM companies ORDER BY created_at`)
}

func (r *SQLiteCompanyRepo) ListWithLiveContracts(ctx context.Context, now time.Time) ([]*domain.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies
		WHERE contract_end IS NULL OR contract_end = '' OR contract_end >= ?
		ORDER BY created_at`
	return r.list(ctx, query, now.UTC().Format(dateLayout))
}

func (r *SQLiteCompanyRepo) list(ctx context.Context, query string, args ...any) ([]*domain.Company, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing companies: %w", err)
	}
	defer rows.Close()

	var companies []*domain.Company
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, err
		}
		companies = append(companies, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating companies: %w", err)
	}
	for _, c := range companies {
		if err := r.loadHierarchy(ctx, c); err != nil {
			return nil, err
		}
	}
	return companies, nil
}

func (r *SQLiteCompanyRepo) loadHierarchy(ctx context.Context, c *domain.Company) error {
	areaRows, err := r.db.QueryContext(ctx,
		`SELECT id, company_id, name FROM areas WHERE company_id = ? ORDER BY position`, c.ID)
	if err != nil {
		return fmt.Errorf("loading areas: %w", err)
	}
	defer areaRows.Close()

	areaIndex := map[string]int{}
	for areaRows.Next() {
		var a domain.Area
		if err := areaRows.Scan(&a.ID, &a.CompanyID, &a.Name); err != nil {
			return fmt.Errorf("scanning area: %w", err)
		}
		areaIndex[a.ID] = len(c.Areas)
		c.Areas = append(c.Areas, a)
	}
	if err := areaRows.Err(); err != nil {
		return fmt.Errorf("iterating areas: %w", err)
	}

	objRows, err := r.db.QueryContext(ctx,
		`SELECT o.id, o.area_id, o.name, o.frequency_id, o.frequency_label, o.employee_id,
			o.service_type_id, o.service_type, o.shift_id, o.shift_label, o.talent_id,
			o.service_start_date, o.created_at, o.updated_at
		FROM service_objects o
		JOIN areas a ON a.id = o.area_id
		WHERE a.company_id = ?
		ORDER BY o.position`, c.ID)
	if err != nil {
		return fmt.Errorf("loading service objects: %w", err)
	}
	defer objRows.Close()

	for objRows.Next() {
		var (
			o                                     domain.ServiceObject
			freqID, svcTypeID, shiftID, talentID  sql.NullString
			serviceStart                          sql.NullString
			createdAt, updatedAt                  string
		)
		if err := objRows.Scan(&o.ID, &o.AreaID, &o.Name, &freqID, &o.FrequencyLabel,
			&o.EmployeeID, &svcTypeID, &o.ServiceTypeName, &shiftID, &o.ShiftLabel,
			&talentID, &serviceStart, &createdAt, &updatedAt); err != nil {
			return fmt.Errorf("scanning service object: %w", err)
		}
		o.FrequencyID = freqID.String
		o.ServiceTypeID = svcTypeID.String
		o.ShiftID = shiftID.String
		o.TalentID = talentID.String
		o.ServiceStartDate = parseNullableTime(serviceStart, dateLayout)
		o.CreatedAt = mustParseTime(createdAt, time.RFC3339)
		o.UpdatedAt = mustParseTime(updatedAt, time.RFC3339)

		if idx, ok := areaIndex[o.AreaID]; ok {
			c.Areas[idx].Objects = append(c.Areas[idx].Objects, o)
		}
	}
	return objRows.Err()
}

func (r *SQLiteCompanyRepo) Update(ctx context.Context, c *domain.Company) error {
	query := `UPDATE companies SET name = ?, mobile_number = ?, email = ?, address = ?,
		contract_start = ?, contract_end = ?, property_type_id = ?, property_type = ?,
		latitude = ?, longitude = ?, shift_start = ?, shift_end = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		c.Name, c.MobileNumber, c.Email, c.Address,
		nullableTimeToString(c.ContractStartDate, dateLayout),
		nullableTimeToString(c.ContractEndDate, dateLayout),
		c.PropertyTypeID, c.PropertyTypeName,
		c.Latitude, c.Longitude, c.ShiftStart, c.ShiftEnd,
		c.UpdatedAt.UTC().Format(time.RFC3339),
		c.ID,
	)
	if err != nil {
		return fmt.Errorf("updating company: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("company %s: %w", c.ID, ErrNotFound)
	}

	// The area hierarchy is replaced wholesale, keeping caller-supplied
	// object IDs stable so completion history still matches.
	if _, err := r.db.ExecContext(ctx, `DELETE FROM areas WHERE company_id = ?`, c.ID); err != nil {
		return fmt.Errorf("clearing areas: %w", err)
	}
	return r.insertHierarchy(ctx, c)
}

func (r *SQLiteCompanyRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM companies WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting company: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("company %s: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteCompanyRepo) AssignObjectEmployee(ctx context.Context, objectID, employeeID string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE service_objects SET employee_id = ?, updated_at = ? WHERE id = ?`,
		employeeID, time.Now().UTC().Format(time.RFC3339), objectID)
	if err != nil {
		return fmt.Errorf("assigning object employee: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("service object %s: %w", objectID, ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCompany(row rowScanner) (*domain.Company, error) {
	var (
		c                          domain.Company
		contractStart, contractEnd sql.NullString
		propertyTypeID             sql.NullString
		createdAt, updatedAt       string
	)
	err := row.Scan(&c.ID, &c.Name, &c.MobileNumber, &c.Email, &c.Address,
		&contractStart, &contractEnd, &propertyTypeID, &c.PropertyTypeName,
		&c.Latitude, &c.Longitude, &c.ShiftStart, &c.ShiftEnd, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	c.ContractStartDate = parseNullableTime(contractStart, dateLayout)
	c.ContractEndDate = parseNullableTime(contractEnd, dateLayout)
	c.PropertyTypeID = propertyTypeID.String
	c.CreatedAt = mustParseTime(createdAt, time.RFC3339)
	c.UpdatedAt = mustParseTime(updatedAt, time.RFC3339)
	return &c, nil
}
