package contract

import (
	"time"

	"github.com/andrisyafri/facilops/internal/domain"
)

// CycleInfo is the anchor-relative audit metadata attached to a due object.
type CycleInfo struct {
	CurrentCycle       int        `json:"currentCycle"`
	LastCompletedCycle int        `json:"lastCompletedCycle"`
	FrequencyType      string     `json:"frequencyType"`
	ContractStartDate  *time.Time `json:"contractStartDate"`
	ContractEndDate    *time.Time `json:"contractEndDate"`
}

// ActiveObject is a service object that is currently due or in progress.
type ActiveObject struct {
	ObjectID      string           `json:"objectId"`
	ObjectName    string           `json:"objectName"`
	ServiceType   string           `json:"serviceType,omitempty"`
	ShiftLabel    string           `json:"shiftLabel,omitempty"`
	JobStatus     domain.DueStatus `json:"jobStatus"`
	IsCompleted   bool             `json:"isCompleted"`
	IsProcessing  bool             `json:"isProcessing"`
	IsDue         bool             `json:"isDueForService"`
	DueReason     string           `json:"dueReason"`
	LastCompleted *time.Time       `json:"lastCompleted"`
	FrequencyInfo CycleInfo        `json:"frequencyInfo"`
}

// ActiveArea is an area with at least one due or in-progress object.
type ActiveArea struct {
	AreaID        string                `json:"areaId"`
	AreaName      string                `json:"areaName"`
	Objects       []ActiveObject        `json:"objects"`
	AllJobsStatus domain.AreaJobsStatus `json:"allJobsStatus"`
	AllCompleted  bool                  `json:"allCompleted"`
}

// CompanyActiveJobs is one company's slice of the active-jobs view.
type CompanyActiveJobs struct {
	CompanyID       string                `json:"companyId"`
	CompanyName     string                `json:"companyName"`
	Address         string                `json:"address"`
	ContractStatus  domain.ContractStatus `json:"contractStatus"`
	DaysUntilExpiry *int                  `json:"daysUntilExpiry"`
	Areas           []ActiveArea          `json:"area"`
}

// ActiveJobsResponse aggregates the active work for one employee across
// all companies with live contracts.
type ActiveJobsResponse struct {
	ActiveJobs      []CompanyActiveJobs `json:"activeJobs"`
	CurrentDate     time.Time           `json:"currentDate"`
	TotalActiveJobs int                 `json:"totalActiveJobs"`
}
