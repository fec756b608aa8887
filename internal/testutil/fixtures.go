package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/andrisyafri/facilops/internal/domain"
)

// Company options
type CompanyOption func(*domain.Company)

func WithContract(start, end time.Time) CompanyOption {
	return func(c *domain.Company) {
		c.ContractStartDate = &start
		c.ContractEndDate = &end
	}
}

func WithNoContract() CompanyOption {
	return func(c *domain.Company) {
		c.ContractStartDate = nil
		c.ContractEndDate = nil
	}
}

func WithAreas(areas ...domain.Area) CompanyOption {
	return func(c *domain.Company) {
		c.Areas = areas
	}
}

func WithPropertyType(id, name string) CompanyOption {
	return func(c *domain.Company) {
		c.PropertyTypeID = id
		c.PropertyTypeName = name
	}
}

func WithCompanyCreatedAt(t time.Time) CompanyOption {
	return func(c *domain.Company) {
		c.CreatedAt = t
		c.UpdatedAt = t
	}
}

func NewTestCompany(name string, opts ...CompanyOption) *domain.Company {
	now := time.Now().UTC()
	start := now.AddDate(0, -6, 0)
	end := now.AddDate(0, 6, 0)
	c := &domain.Company{
		ID:                uuid.New().String(),
		Name:              name,
		MobileNumber:      "0800000000",
		Email:             name + "@example.com",
		Address:           "Jl. Test 1",
		ContractStartDate: &start,
		ContractEndDate:   &end,
		ShiftStart:        "08:00",
		ShiftEnd:          "17:00",
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Area fixtures hold their objects inline; CompanyID is filled in when
// the parent company is persisted.
func NewTestArea(name string, objects ...domain.ServiceObject) domain.Area {
	return domain.Area{
		ID:      uuid.New().String(),
		Name:    name,
		Objects: objects,
	}
}

// ServiceObject options
type ObjectOption func(*domain.ServiceObject)

func WithFrequency(label string) ObjectOption {
	return func(o *domain.ServiceObject) {
		o.FrequencyLabel = label
	}
}

func WithAssignedEmployee(id string) ObjectOption {
	return func(o *domain.ServiceObject) {
		o.EmployeeID = id
	}
}

func WithServiceStart(d time.Time) ObjectOption {
	return func(o *domain.ServiceObject) {
		o.ServiceStartDate = &d
	}
}

func WithServiceType(id, name string) ObjectOption {
	return func(o *domain.ServiceObject) {
		o.ServiceTypeID = id
		o.ServiceTypeName = name
	}
}

func WithShift(id, label string) ObjectOption {
	return func(o *domain.ServiceObject) {
		o.ShiftID = id
		o.ShiftLabel = label
	}
}

func WithObjectCreatedAt(t time.Time) ObjectOption {
	return func(o *domain.ServiceObject) {
		o.CreatedAt = t
		o.UpdatedAt = t
	}
}

func NewTestObject(name string, opts ...ObjectOption) domain.ServiceObject {
	now := time.Now().UTC()
	o := domain.ServiceObject{
		ID:             uuid.New().String(),
		Name:           name,
		FrequencyLabel: "Daily",
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Employee options
type EmployeeOption func(*domain.Employee)

func WithTalents(talents ...string) EmployeeOption {
	return func(e *domain.Employee) {
		e.Talents = talents
	}
}

func WithRole(role string) EmployeeOption {
	return func(e *domain.Employee) {
		e.Role = role
	}
}

func NewTestEmployee(name string, opts ...EmployeeOption) *domain.Employee {
	now := time.Now().UTC()
	e := &domain.Employee{
		ID:           uuid.New().String(),
		Name:         name,
		MobileNumber: "0811111111",
		Email:        name + "@example.com",
		Role:         "cleaner",
		Gender:       "male",
		JoiningDate:  now.AddDate(-1, 0, 0).Format("2006-01-02"),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func NewTestJobLog(employeeID, companyID, objectID string, start time.Time) *domain.JobLog {
	return &domain.JobLog{
		ID:          uuid.New().String(),
		EmployeeID:  employeeID,
		CompanyID:   companyID,
		ObjectID:    objectID,
		StartTime:   start,
		HoursWorked: "0h 0m",
		CreatedAt:   start,
	}
}

func NewTestCompletedJob(employeeID, companyID, objectID string, end time.Time) *domain.CompletedJob {
	start := end.Add(-45 * time.Minute)
	return &domain.CompletedJob{
		ID:          uuid.New().String(),
		EmployeeID:  employeeID,
		CompanyID:   companyID,
		ObjectID:    objectID,
		StartTime:   start,
		EndTime:     end,
		HoursWorked: domain.FormatWorkedDuration(start, end),
		CreatedAt:   end,
	}
}
