package repository

import (
	"context"
	"errors"
	"time"

	"github.com/andrisyafri/facilops/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

type CompanyRepo interface {
	Create(ctx context.Context, c *domain.Company) error
	GetByID(ctx context.Context, id string) (*domain.Company, error)
	List(ctx context.Context) ([]*domain.Company, error)
	// ListWithLiveContracts returns companies whose contract end date is
	// absent or not yet past, the population the active-jobs view scans.
	ListWithLiveContracts(ctx context.Context, now time.Time) ([]*domain.Company, error)
	Update(ctx context.Context, c *domain.Company) error
	Delete(ctx context.Context, id string) error
	// AssignObjectEmployee records the employee who actually serviced the
	// object, written when a job is stopped.
	AssignObjectEmployee(ctx context.Context, objectID, employeeID string) error
}

type EmployeeRepo interface {
	Create(ctx context.Context, e *domain.Employee) error
	GetByID(ctx context.Context, id string) (*domain.Employee, error)
	List(ctx context.Context) ([]*domain.Employee, error)
	Update(ctx context.Context, e *domain.Employee) error
	Delete(ctx context.Context, id string) error
}

// CatalogRepo manages the small admin-authored lookup tables.
type CatalogRepo interface {
	CreateFrequency(ctx context.Context, f *domain.FrequencyType) error
	ListFrequencies(ctx context.Context) ([]*domain.FrequencyType, error)
	CreateShift(ctx context.Context, s *domain.Shift) error
	ListShifts(ctx context.Context) ([]*domain.Shift, error)
	CreateTalent(ctx context.Context, t *domain.Talent) error
	ListTalents(ctx context.Context) ([]*domain.Talent, error)
	CreatePropertyType(ctx context.Context, p *domain.PropertyType) error
	ListPropertyTypes(ctx context.Context) ([]*domain.PropertyType, error)
	CreateServiceType(ctx context.Context, s *domain.ServiceType) error
	ListServiceTypes(ctx context.Context) ([]*domain.ServiceType, error)
}

type JobLogRepo interface {
	Create(ctx context.Context, j *domain.JobLog) error
	// FindOpen returns the running log for an employee/object pair, or
	// ErrNotFound when none is open.
	FindOpen(ctx context.Context, employeeID, objectID string) (*domain.JobLog, error)
	ListOpenByEmployee(ctx context.Context, employeeID string) ([]*domain.JobLog, error)
	MarkStopped(ctx context.Context, id string, endTime time.Time, hoursWorked string) error
}

type CompletedJobRepo interface {
	Create(ctx context.Context, c *domain.CompletedJob) error
	ListByEmployee(ctx context.Context, employeeID string) ([]*domain.CompletedJob, error)
	ListByEmployeeBetween(ctx context.Context, employeeID string, from, to time.Time) ([]*domain.CompletedJob, error)
	// LatestByObject returns the most recent completion instant per object
	// for one employee.
	LatestByObject(ctx context.Context, employeeID string) (map[string]time.Time, error)
}
