package domain

import "time"

// FrequencyType is an admin-authored frequency label ("Every 2 weeks",
// "Monthly", "Once"). The label stays free text; the scheduling core
// resolves it into a structured descriptor at read time.
type FrequencyType struct {
	ID        string
	Label     string
	Code      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Shift is a named working window (e.g. "Morning", 06:00-14:00).
type Shift struct {
	ID        string
	Name      string
	StartTime string
	EndTime   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Talent is a special skill tag assignable to employees and objects.
type Talent struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PropertyType classifies a company's site (factory, office, ...).
type PropertyType struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ServiceType names the kind of work a service object needs.
type ServiceType struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
