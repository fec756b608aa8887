package service

import (
	"context"
	"time"

	"github.com/andrisyafri/facilops/internal/contract"
	"github.com/andrisyafri/facilops/internal/repository"
	"github.com/andrisyafri/facilops/internal/scheduler"
)

type activeJobsService struct {
	companies repository.CompanyRepo
	completed repository.CompletedJobRepo
	jobLogs   repository.JobLogRepo
	observer  UseCaseObserver
}

func NewActiveJobsService(companies repository.CompanyRepo, completed repository.CompletedJobRepo, jobLogs repository.JobLogRepo, observers ...UseCaseObserver) ActiveJobsService {
	return &activeJobsService{
		companies: companies,
		completed: completed,
		jobLogs:   jobLogs,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *activeJobsService) ActiveJobs(ctx context.Context, employeeID string, now time.Time) (resp *contract.ActiveJobsResponse, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "active-jobs",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"employee": employeeID},
		})
	}()

	companies, err := s.companies.ListWithLiveContracts(ctx, now)
	if err != nil {
		return nil, err
	}

	lastCompleted, err := s.completed.LatestByObject(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	openLogs, err := s.jobLogs.ListOpenByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	processing := make(map[string]time.Time, len(openLogs))
	for _, l := range openLogs {
		processing[l.ObjectID] = l.StartTime
	}

	active := scheduler.SelectActiveJobs(scheduler.ActiveJobsParams{
		Companies:     companies,
		EmployeeID:    employeeID,
		LastCompleted: lastCompleted,
		Processing:    processing,
		Now:           now,
	})

	total := 0
	for _, comp := range active {
		for _, area := range comp.Areas {
			total += len(area.Objects)
		}
	}

	return &contract.ActiveJobsResponse{
		ActiveJobs:      active,
		CurrentDate:     now,
		TotalActiveJobs: total,
	}, nil
}
