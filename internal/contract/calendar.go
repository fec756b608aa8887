package contract

import (
	"time"

	"github.com/andrisyafri/facilops/internal/domain"
)

// CalendarJob is one occurrence of a service object on a calendar day.
type CalendarJob struct {
	ObjectName  string               `json:"objectName"`
	Frequency   string               `json:"frequency"`
	Status      domain.DueStatus     `json:"status"`
	Color       domain.CalendarColor `json:"color"`
	AreaName    string               `json:"areaName"`
	ServiceType string               `json:"serviceType,omitempty"`
}

// CalendarDay groups the occurrences due on one day. Days with no
// occurrences are omitted from the month view.
type CalendarDay struct {
	Date      string        `json:"date"`
	DayNumber int           `json:"dayNumber"`
	IsToday   bool          `json:"isToday"`
	Jobs      []CalendarJob `json:"jobs"`
}

// CompanyInfo summarizes the company's contract alongside a calendar view.
type CompanyInfo struct {
	CompanyID             string                `json:"companyId"`
	CompanyName           string                `json:"companyName"`
	ContractStart         *time.Time            `json:"contractStart"`
	ContractEnd           *time.Time            `json:"contractEnd"`
	ContractStatus        domain.ContractStatus `json:"contractStatus"`
	ContractDaysRemaining *int                  `json:"contractDaysRemaining"`
	Address               string                `json:"address"`
	MobileNumber          string                `json:"mobileNumber"`
	Email                 string                `json:"email"`
	TotalJobsThisMonth    int                   `json:"totalJobsThisMonth"`
}

// CalendarResponse is the month view for one employee at one company.
type CalendarResponse struct {
	Month       int                             `json:"month"`
	Year        int                             `json:"year"`
	MonthName   string                          `json:"monthName"`
	Days        []CalendarDay                   `json:"days"`
	Company     CompanyInfo                     `json:"company"`
	ColorLegend map[domain.CalendarColor]string `json:"colorLegend"`
}

// ColorLegend is the fixed color-to-meaning mapping shown with every
// calendar response.
func ColorLegend() map[domain.CalendarColor]string {
	return map[domain.CalendarColor]string{
		domain.ColorGreen:  "Completed",
		domain.ColorRed:    "Overdue",
		domain.ColorOrange: "Due Today",
		domain.ColorYellow: "Upcoming",
		domain.ColorBlue:   "Processing",
		domain.ColorGray:   "No Jobs",
	}
}
