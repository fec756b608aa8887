package domain

// DueStatus classifies a service object's scheduling state at a point in time.
type DueStatus string

const (
	StatusPending        DueStatus = "pending"
	StatusProcessing     DueStatus = "processing"
	StatusCompleted      DueStatus = "completed"
	StatusOverdue        DueStatus = "overdue"
	StatusDueToday       DueStatus = "due-today"
	StatusUpcoming       DueStatus = "upcoming"
	StatusOneTimePending DueStatus = "one-time-pending"
)

// CalendarColor is the display color attached to a calendar occurrence.
type CalendarColor string

const (
	ColorGreen  CalendarColor = "green"
	ColorBlue   CalendarColor = "blue"
	ColorRed    CalendarColor = "red"
	ColorOrange CalendarColor = "orange"
	ColorYellow CalendarColor = "yellow"
	ColorGray   CalendarColor = "gray"
)

// ColorFor maps a due status to its calendar color.
func ColorFor(s DueStatus) CalendarColor {
	switch s {
	case StatusCompleted:
		return ColorGreen
	case StatusProcessing:
		return ColorBlue
	case StatusOverdue:
		return ColorRed
	case StatusDueToday:
		return ColorOrange
	case StatusUpcoming:
		return ColorYellow
	default:
		return ColorGray
	}
}

type ContractStatus string

const (
	ContractActive   ContractStatus = "active"
	ContractExpired  ContractStatus = "expired"
	ContractUpcoming ContractStatus = "upcoming"
	ContractNone     ContractStatus = "no-contract"
)

// AreaJobsStatus reports whether every qualifying object in an area is completed.
type AreaJobsStatus string

const (
	AreaJobsCompleted AreaJobsStatus = "Completed"
	AreaJobsPending   AreaJobsStatus = "Pending"
)
