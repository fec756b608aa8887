package scheduler

import (
	"math"
	"time"

	"github.com/andrisyafri/facilops/internal/contract"
	"github.com/andrisyafri/facilops/internal/domain"
)

// CalendarParams is the snapshot a month view is generated from.
// Completions is keyed by CompletionKey (object + UTC day); Processing
// holds the IDs of objects with an open job log.
type CalendarParams struct {
	Company     *domain.Company
	EmployeeID  string
	MonthStart  time.Time
	MonthEnd    time.Time
	Completions map[string]bool
	Processing  map[string]bool
	Now         time.Time
}

// BuildMonthCalendar expands every schedulable object assigned to the
// employee into its occurrences within the month, then classifies each
// occurrence per day. Unlike the live due engine, the calendar is a
// full-month audit trail: occurrences are shown even when the
// completion-relative gate would currently hide the object.
func BuildMonthCalendar(p CalendarParams) []contract.CalendarDay {
	jobsByDate := make(map[string][]calendarSlot)

	if contractOverlapsMonth(p.Company, p.MonthStart, p.MonthEnd) {
		for ai := range p.Company.Areas {
			area := &p.Company.Areas[ai]
			for oi := range area.Objects {
				obj := &area.Objects[oi]
				if obj.EmployeeID != p.EmployeeID {
					continue
				}
				collectOccurrences(jobsByDate, obj, area.Name, p)
			}
		}
	}

	today := DateUTC(p.Now)
	todayStart := DayStart(p.Now)

	var days []contract.CalendarDay
	for day := DayStart(p.MonthStart); !day.After(p.MonthEnd); day = day.AddDate(0, 0, 1) {
		dateStr := DateUTC(day)
		slots := jobsByDate[dateStr]
		if len(slots) == 0 {
			continue
		}

		jobs := make([]contract.CalendarJob, 0, len(slots))
		for _, s := range slots {
			status := classifySlot(s.objectID, dateStr, day, todayStart, today, p)
			jobs = append(jobs, contract.CalendarJob{
				ObjectName:  s.objectName,
				Frequency:   s.frequency,
				Status:      status,
				Color:       domain.ColorFor(status),
				AreaName:    s.areaName,
				ServiceType: s.serviceType,
			})
		}

		days = append(days, contract.CalendarDay{
			Date:      dateStr,
			DayNumber: day.Day(),
			IsToday:   dateStr == today,
			Jobs:      jobs,
		})
	}
	return days
}

type calendarSlot struct {
	objectID    string
	objectName  string
	frequency   string
	areaName    string
	serviceType string
}

func contractOverlapsMonth(c *domain.Company, monthStart, monthEnd time.Time) bool {
	if c.ContractEndDate != nil && c.ContractEndDate.Before(monthStart) {
		return false
	}
	if c.ContractStartDate != nil && c.ContractStartDate.After(monthEnd) {
		return false
	}
	return true
}

func collectOccurrences(jobsByDate map[string][]calendarSlot, obj *domain.ServiceObject, areaName string, p CalendarParams) {
	freq, ok := ResolveFrequency(obj.FrequencyLabel)
	if !ok {
		return
	}

	anchor := DayStart(ResolveAnchor(*obj, p.Company, p.Now))
	slot := calendarSlot{
		objectID:    obj.ID,
		objectName:  obj.Name,
		frequency:   obj.FrequencyLabel,
		areaName:    areaName,
		serviceType: obj.ServiceTypeName,
	}

	if freq.IsOneTime() {
		if !anchor.Before(p.MonthStart) && !anchor.After(p.MonthEnd) {
			key := DateUTC(anchor)
			jobsByDate[key] = append(jobsByDate[key], slot)
		}
		return
	}

	// Skip whole cycles to reach the first occurrence on or after the
	// month start.
	cur := anchor
	if cur.Before(p.MonthStart) {
		elapsed := UnitsBetween(cur, p.MonthStart, freq.Unit)
		skip := int(math.Ceil(elapsed / float64(freq.Interval)))
		cur = AddUnits(cur, skip*freq.Interval, freq.Unit)
	}

	end := p.MonthEnd
	if p.Company.ContractEndDate != nil && p.Company.ContractEndDate.Before(end) {
		end = *p.Company.ContractEndDate
	}

	for !cur.After(end) {
		key := DateUTC(cur)
		jobsByDate[key] = append(jobsByDate[key], slot)
		cur = AddUnits(cur, freq.Interval, freq.Unit)
	}
}

// classifySlot tags one occurrence for one day. Precedence matches the due
// engine's classification: completed, processing, overdue, due today,
// upcoming.
func classifySlot(objectID, dateStr string, day, todayStart time.Time, today string, p CalendarParams) domain.DueStatus {
	switch {
	case p.Completions[objectID+"_"+dateStr]:
		return domain.StatusCompleted
	case p.Processing[objectID]:
		return domain.StatusProcessing
	case day.Before(todayStart):
		return domain.StatusOverdue
	case dateStr == today:
		return domain.StatusDueToday
	default:
		return domain.StatusUpcoming
	}
}
