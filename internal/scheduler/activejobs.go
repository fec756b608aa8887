package scheduler

import (
	"math"
	"time"

	"github.com/andrisyafri/facilops/internal/contract"
	"github.com/andrisyafri/facilops/internal/domain"
)

// ActiveJobsParams is the snapshot the active-jobs view is built from.
// LastCompleted maps object ID to the latest completion instant;
// Processing maps object ID to the start time of its open job log.
type ActiveJobsParams struct {
	Companies     []*domain.Company
	EmployeeID    string
	LastCompleted map[string]time.Time
	Processing    map[string]time.Time
	Now           time.Time
}

// SelectActiveJobs walks every company's area/object hierarchy, runs the
// due engine on each object assigned to the employee, and keeps only what
// is due or in progress. Areas without qualifying objects are dropped, as
// are companies with no qualifying areas or an expired (hourly-adjusted)
// contract.
func SelectActiveJobs(p ActiveJobsParams) []contract.CompanyActiveJobs {
	var out []contract.CompanyActiveJobs
	for _, comp := range p.Companies {
		adjustedEnd := EffectiveContractEnd(comp)
		if adjustedEnd != nil && adjustedEnd.Before(p.Now) {
			continue
		}

		areas := selectAreas(comp, adjustedEnd, p)
		if len(areas) == 0 {
			continue
		}

		out = append(out, contract.CompanyActiveJobs{
			CompanyID:       comp.ID,
			CompanyName:     comp.Name,
			Address:         comp.Address,
			ContractStatus:  contractStatus(comp, adjustedEnd, p.Now),
			DaysUntilExpiry: daysUntil(adjustedEnd, p.Now),
			Areas:           areas,
		})
	}
	return out
}

func selectAreas(comp *domain.Company, adjustedEnd *time.Time, p ActiveJobsParams) []contract.ActiveArea {
	var areas []contract.ActiveArea
	for _, area := range comp.Areas {
		var objects []contract.ActiveObject
		for _, obj := range area.Objects {
			if obj.EmployeeID != p.EmployeeID {
				continue
			}
			if ao, ok := evaluateObject(obj, comp, adjustedEnd, p); ok {
				objects = append(objects, ao)
			}
		}
		if len(objects) == 0 {
			continue
		}

		allCompleted := true
		for _, o := range objects {
			if o.JobStatus != domain.StatusCompleted {
				allCompleted = false
				break
			}
		}
		status := domain.AreaJobsPending
		if allCompleted {
			status = domain.AreaJobsCompleted
		}

		areas = append(areas, contract.ActiveArea{
			AreaID:        area.ID,
			AreaName:      area.Name,
			Objects:       objects,
			AllJobsStatus: status,
			AllCompleted:  allCompleted,
		})
	}
	return areas
}

func evaluateObject(obj domain.ServiceObject, comp *domain.Company, adjustedEnd *time.Time, p ActiveJobsParams) (contract.ActiveObject, bool) {
	var freq *Frequency
	if f, ok := ResolveFrequency(obj.FrequencyLabel); ok {
		freq = &f
	}

	anchor := ResolveAnchor(obj, comp, p.Now)
	var lastCompleted *time.Time
	if t, ok := p.LastCompleted[obj.ID]; ok {
		lastCompleted = &t
	}
	_, processing := p.Processing[obj.ID]

	// An object finished earlier today stays off the worklist for the rest
	// of the day, even when its interval has already elapsed, unless a new
	// session is running on it.
	if lastCompleted != nil && !processing && DateUTC(*lastCompleted) == DateUTC(p.Now) {
		return contract.ActiveObject{}, false
	}

	d := Decide(DueInput{
		FrequencyLabel:  obj.FrequencyLabel,
		Frequency:       freq,
		Anchor:          &anchor,
		ContractEnd:     adjustedEnd,
		LastCompletedAt: lastCompleted,
		Processing:      processing,
		Now:             p.Now,
	})

	if !d.Due && d.Status != domain.StatusProcessing {
		return contract.ActiveObject{}, false
	}

	jobStatus := domain.StatusPending
	switch {
	case processing:
		jobStatus = domain.StatusProcessing
	case lastCompleted != nil:
		jobStatus = domain.StatusCompleted
	}

	return contract.ActiveObject{
		ObjectID:      obj.ID,
		ObjectName:    obj.Name,
		ServiceType:   obj.ServiceTypeName,
		ShiftLabel:    obj.ShiftLabel,
		JobStatus:     jobStatus,
		IsCompleted:   lastCompleted != nil,
		IsProcessing:  processing,
		IsDue:         d.Due,
		DueReason:     d.Reason,
		LastCompleted: lastCompleted,
		FrequencyInfo: contract.CycleInfo{
			CurrentCycle:       d.CurrentCycle,
			LastCompletedCycle: d.LastCompletedCycle,
			FrequencyType:      domain.CoalesceStr(obj.FrequencyLabel, "Unknown"),
			ContractStartDate:  comp.ContractStartDate,
			ContractEndDate:    adjustedEnd,
		},
	}, true
}

func contractStatus(comp *domain.Company, adjustedEnd *time.Time, now time.Time) domain.ContractStatus {
	if adjustedEnd == nil {
		return domain.ContractNone
	}
	if adjustedEnd.Before(now) {
		return domain.ContractExpired
	}
	return domain.ContractActive
}

func daysUntil(end *time.Time, now time.Time) *int {
	if end == nil {
		return nil
	}
	d := int(math.Ceil(end.Sub(now).Hours() / 24))
	return &d
}
