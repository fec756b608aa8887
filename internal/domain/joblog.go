package domain

import (
	"fmt"
	"time"
)

// JobLog records one work session on a service object. A log with
// Stopped == false marks the object as in progress.
type JobLog struct {
	ID          string
	EmployeeID  string
	CompanyID   string
	ObjectID    string
	StartTime   time.Time
	Stopped     bool
	EndTime     *time.Time
	HoursWorked string
	CreatedAt   time.Time
}

// CompletedJob is the durable completion record written when a job log
// is stopped. EndTime is the completion instant the scheduling core
// keys off.
type CompletedJob struct {
	ID          string
	EmployeeID  string
	CompanyID   string
	ObjectID    string
	AreaName    string
	ObjectName  string
	ShiftID     string
	ShiftLabel  string
	StartTime   time.Time
	EndTime     time.Time
	HoursWorked string
	CreatedAt   time.Time
}

// FormatWorkedDuration renders the elapsed time between start and end
// as "2h 15m", matching the stored hours_worked format.
func FormatWorkedDuration(start, end time.Time) string {
	total := int(end.Sub(start).Minutes())
	if total < 0 {
		total = 0
	}
	return fmt.Sprintf("%dh %dm", total/60, total%60)
}
