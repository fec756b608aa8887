package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/andrisyafri/facilops/internal/domain"
	"github.com/andrisyafri/facilops/internal/repository"
)

type employeeService struct {
	employees repository.EmployeeRepo
}

func NewEmployeeService(employees repository.EmployeeRepo) EmployeeService {
	return &employeeService{employees: employees}
}

func (s *employeeService) Create(ctx context.Context, e *domain.Employee) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	e.CreatedAt = now
	e.UpdatedAt = now
	return s.employees.Create(ctx, e)
}

func (s *employeeService) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	return s.employees.GetByID(ctx, id)
}

func (s *employeeService) List(ctx context.Context) ([]*domain.Employee, error) {
	return s.employees.List(ctx)
}

func (s *employeeService) Update(ctx context.Context, e *domain.Employee) error {
	e.UpdatedAt = time.Now().UTC()
	return s.employees.Update(ctx, e)
}

func (s *employeeService) Delete(ctx context.Context, id string) error {
	return s.employees.Delete(ctx, id)
}
