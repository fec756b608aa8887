package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/andrisyafri/facilops/internal/contract"
	"github.com/andrisyafri/facilops/internal/domain"
	"github.com/andrisyafri/facilops/internal/repository"
	"github.com/andrisyafri/facilops/internal/scheduler"
)

type calendarService struct {
	companies repository.CompanyRepo
	completed repository.CompletedJobRepo
	jobLogs   repository.JobLogRepo
	observer  UseCaseObserver
}

func NewCalendarService(companies repository.CompanyRepo, completed repository.CompletedJobRepo, jobLogs repository.JobLogRepo, observers ...UseCaseObserver) CalendarService {
	return &calendarService{
		companies: companies,
		completed: completed,
		jobLogs:   jobLogs,
		observer:  useCaseObserverOrNoop(observers),
	}
}

// MonthCalendar builds the month view for the company the employee is
// assigned to. The company is discovered through object assignments; an
// employee with no assigned objects has no calendar.
func (s *calendarService) MonthCalendar(ctx context.Context, employeeID string, year int, month time.Month, now time.Time) (resp *contract.CalendarResponse, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "month-calendar",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"employee": employeeID, "year": year, "month": int(month)},
		})
	}()

	comp, err := s.findAssignedCompany(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := scheduler.DayEnd(monthStart.AddDate(0, 1, -1))

	completions, err := s.completionsByDay(ctx, employeeID, monthStart, monthEnd)
	if err != nil {
		return nil, err
	}

	openLogs, err := s.jobLogs.ListOpenByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	processing := make(map[string]bool, len(openLogs))
	for _, l := range openLogs {
		processing[l.ObjectID] = true
	}

	days := scheduler.BuildMonthCalendar(scheduler.CalendarParams{
		Company:     comp,
		EmployeeID:  employeeID,
		MonthStart:  monthStart,
		MonthEnd:    monthEnd,
		Completions: completions,
		Processing:  processing,
		Now:         now,
	})

	totalJobs := 0
	for _, d := range days {
		totalJobs += len(d.Jobs)
	}

	return &contract.CalendarResponse{
		Month:       int(month),
		Year:        year,
		MonthName:   month.String(),
		Days:        days,
		Company:     companyInfo(comp, totalJobs, now),
		ColorLegend: contract.ColorLegend(),
	}, nil
}

func (s *calendarService) findAssignedCompany(ctx context.Context, employeeID string) (*domain.Company, error) {
	companies, err := s.companies.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range companies {
		for _, a := range c.Areas {
			for _, o := range a.Objects {
				if o.EmployeeID == employeeID {
					return c, nil
				}
			}
		}
	}
	return nil, fmt.Errorf("no company assignment for employee %s: %w", employeeID, repository.ErrNotFound)
}

func (s *calendarService) completionsByDay(ctx context.Context, employeeID string, from, to time.Time) (map[string]bool, error) {
	jobs, err := s.completed.ListByEmployeeBetween(ctx, employeeID, from, to)
	if err != nil {
		return nil, err
	}
	out := make(map[string]bool, len(jobs))
	for _, j := range jobs {
		out[scheduler.CompletionKey(j.ObjectID, j.EndTime)] = true
	}
	return out, nil
}

func companyInfo(c *domain.Company, totalJobs int, now time.Time) contract.CompanyInfo {
	info := contract.CompanyInfo{
		CompanyID:          c.ID,
		CompanyName:        c.Name,
		ContractStart:      c.ContractStartDate,
		ContractEnd:        c.ContractEndDate,
		ContractStatus:     c.ContractStatusAt(now),
		Address:            c.Address,
		MobileNumber:       c.MobileNumber,
		Email:              c.Email,
		TotalJobsThisMonth: totalJobs,
	}
	// Negative once the contract end has passed; the view shows expiry age.
	if c.ContractEndDate != nil {
		d := int(math.Ceil(c.ContractEndDate.Sub(now).Hours() / 24))
		info.ContractDaysRemaining = &d
	}
	return info
}
