package domain

import "time"

// Company is a customer site with a contract window and a nested
// area -> service-object hierarchy. Loaded as a read-only snapshot;
// the scheduling core never mutates it.
type Company struct {
	ID           string
	Name         string
	MobileNumber string
	Email        string
	Address      string

	ContractStartDate *time.Time
	ContractEndDate   *time.Time

	PropertyTypeID   string
	PropertyTypeName string

	Latitude  float64
	Longitude float64

	ShiftStart string
	ShiftEnd   string

	Areas []Area

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Area is a named zone within a company holding schedulable objects.
type Area struct {
	ID        string
	CompanyID string
	Name      string
	Objects   []ServiceObject
}

// ServiceObject is the smallest unit of recurring work: one line item
// within an area, assigned to an employee with a service frequency.
type ServiceObject struct {
	ID     string
	AreaID string
	Name   string

	FrequencyID    string
	FrequencyLabel string

	EmployeeID string

	ServiceTypeID   string
	ServiceTypeName string

	ShiftID    string
	ShiftLabel string

	TalentID string

	// ServiceStartDate, when set, overrides the contract start as the
	// recurrence anchor for this object.
	ServiceStartDate *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasHourlyObject reports whether any object in the company uses an
// hourly frequency label. Hourly schedules extend the effective contract
// end to the end of its calendar day.
func (c *Company) HasHourlyObject() bool {
	for _, a := range c.Areas {
		for _, o := range a.Objects {
			if containsFold(o.FrequencyLabel, "hour") {
				return true
			}
		}
	}
	return false
}

// ContractStatusAt classifies the contract window relative to now.
func (c *Company) ContractStatusAt(now time.Time) ContractStatus {
	if c.ContractStartDate == nil || c.ContractEndDate == nil {
		return ContractNone
	}
	if now.Before(*c.ContractStartDate) {
		return ContractUpcoming
	}
	if now.After(*c.ContractEndDate) {
		return ContractExpired
	}
	return ContractActive
}
