package service

import (
	"context"
	"time"

	"github.com/andrisyafri/facilops/internal/contract"
	"github.com/andrisyafri/facilops/internal/domain"
)

type CompanyService interface {
	Create(ctx context.Context, c *domain.Company) error
	GetByID(ctx context.Context, id string) (*domain.Company, error)
	List(ctx context.Context) ([]*domain.Company, error)
	Update(ctx context.Context, c *domain.Company) error
	Delete(ctx context.Context, id string) error
}

type EmployeeService interface {
	Create(ctx context.Context, e *domain.Employee) error
	GetByID(ctx context.Context, id string) (*domain.Employee, error)
	List(ctx context.Context) ([]*domain.Employee, error)
	Update(ctx context.Context, e *domain.Employee) error
	Delete(ctx context.Context, id string) error
}

type CatalogService interface {
	CreateFrequency(ctx context.Context, label, code string) (*domain.FrequencyType, error)
	ListFrequencies(ctx context.Context) ([]*domain.FrequencyType, error)
	CreateShift(ctx context.Context, name, startTime, endTime string) (*domain.Shift, error)
	ListShifts(ctx context.Context) ([]*domain.Shift, error)
	CreateTalent(ctx context.Context, name string) (*domain.Talent, error)
	ListTalents(ctx context.Context) ([]*domain.Talent, error)
	CreatePropertyType(ctx context.Context, name string) (*domain.PropertyType, error)
	ListPropertyTypes(ctx context.Context) ([]*domain.PropertyType, error)
	CreateServiceType(ctx context.Context, name string) (*domain.ServiceType, error)
	ListServiceTypes(ctx context.Context) ([]*domain.ServiceType, error)
}

// JobService drives the work session lifecycle: a start opens a job log,
// a stop closes it and writes the durable completion record the
// scheduling core keys off.
type JobService interface {
	StartJob(ctx context.Context, employeeID, companyID, objectID string, now time.Time) (*domain.JobLog, error)
	StopJob(ctx context.Context, employeeID, companyID, objectID string, now time.Time) (*domain.CompletedJob, error)
	ListOpen(ctx context.Context, employeeID string) ([]*domain.JobLog, error)
}

type CalendarService interface {
	MonthCalendar(ctx context.Context, employeeID string, year int, month time.Month, now time.Time) (*contract.CalendarResponse, error)
}

type ActiveJobsService interface {
	ActiveJobs(ctx context.Context, employeeID string, now time.Time) (*contract.ActiveJobsResponse, error)
}
