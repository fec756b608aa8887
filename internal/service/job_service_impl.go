package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/andrisyafri/facilops/internal/db"
	"github.com/andrisyafri/facilops/internal/domain"
	"github.com/andrisyafri/facilops/internal/repository"
)

// ErrJobAlreadyRunning is returned when a start is attempted while an
// open log exists for the same employee and object.
var ErrJobAlreadyRunning = errors.New("job already running for this object")

type jobService struct {
	companies repository.CompanyRepo
	jobLogs   repository.JobLogRepo
	uow       db.UnitOfWork
	observer  UseCaseObserver
}

func NewJobService(companies repository.CompanyRepo, jobLogs repository.JobLogRepo, uow db.UnitOfWork, observers ...UseCaseObserver) JobService {
	return &jobService{
		companies: companies,
		jobLogs:   jobLogs,
		uow:       uow,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *jobService) StartJob(ctx context.Context, employeeID, companyID, objectID string, now time.Time) (log *domain.JobLog, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "start-job",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"employee": employeeID, "object": objectID},
		})
	}()

	if _, err := s.jobLogs.FindOpen(ctx, employeeID, objectID); err == nil {
		return nil, ErrJobAlreadyRunning
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	log = &domain.JobLog{
		ID:          uuid.New().String(),
		EmployeeID:  employeeID,
		CompanyID:   companyID,
		ObjectID:    objectID,
		StartTime:   now.UTC(),
		HoursWorked: "0h 0m",
		CreatedAt:   now.UTC(),
	}
	if err = s.jobLogs.Create(ctx, log); err != nil {
		return nil, err
	}
	return log, nil
}

func (s *jobService) StopJob(ctx context.Context, employeeID, companyID, objectID string, now time.Time) (completed *domain.CompletedJob, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "stop-job",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"employee": employeeID, "object": objectID},
		})
	}()

	open, err := s.jobLogs.FindOpen(ctx, employeeID, objectID)
	if err != nil {
		return nil, err
	}

	comp, err := s.companies.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	areaName, obj := findObject(comp, objectID)
	if obj == nil {
		return nil, fmt.Errorf("service object %s not in company %s: %w", objectID, companyID, repository.ErrNotFound)
	}

	end := now.UTC()
	completed = &domain.CompletedJob{
		ID:          uuid.New().String(),
		EmployeeID:  employeeID,
		CompanyID:   companyID,
		ObjectID:    objectID,
		AreaName:    areaName,
		ObjectName:  obj.Name,
		ShiftID:     obj.ShiftID,
		ShiftLabel:  obj.ShiftLabel,
		StartTime:   open.StartTime,
		EndTime:     end,
		HoursWorked: domain.FormatWorkedDuration(open.StartTime, end),
		CreatedAt:   end,
	}

	// Close the log, record the completion, and stamp the object with the
	// employee who serviced it as one atomic write.
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txLogs := repository.NewSQLiteJobLogRepo(tx)
		txCompleted := repository.NewSQLiteCompletedJobRepo(tx)
		txCompanies := repository.NewSQLiteCompanyRepo(tx)

		if err := txLogs.MarkStopped(ctx, open.ID, end, completed.HoursWorked); err != nil {
			return err
		}
		if err := txCompleted.Create(ctx, completed); err != nil {
			return err
		}
		return txCompanies.AssignObjectEmployee(ctx, objectID, employeeID)
	})
	if err != nil {
		return nil, err
	}
	return completed, nil
}

func (s *jobService) ListOpen(ctx context.Context, employeeID string) ([]*domain.JobLog, error) {
	return s.jobLogs.ListOpenByEmployee(ctx, employeeID)
}

func findObject(c *domain.Company, objectID string) (string, *domain.ServiceObject) {
	for ai := range c.Areas {
		for oi := range c.Areas[ai].Objects {
			if c.Areas[ai].Objects[oi].ID == objectID {
				return c.Areas[ai].Name, &c.Areas[ai].Objects[oi]
			}
		}
	}
	return "", nil
}
