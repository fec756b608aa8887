package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/andrisyafri/facilops/internal/domain"
	"github.com/andrisyafri/facilops/internal/repository"
)

type catalogService struct {
	catalog repository.CatalogRepo
}

func NewCatalogService(catalog repository.CatalogRepo) CatalogService {
	return &catalogService{catalog: catalog}
}

func (s *catalogService) CreateFrequency(ctx context.Context, label, code string) (*domain.FrequencyType, error) {
	now := time.Now().UTC()
	f := &domain.FrequencyType{ID: uuid.New().String(), Label: label, Code: code, CreatedAt: now, UpdatedAt: now}
	if err := s.catalog.CreateFrequency(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *catalogService) ListFrequencies(ctx context.Context) ([]*domain.FrequencyType, error) {
	return s.catalog.ListFrequencies(ctx)
}

func (s *catalogService) CreateShift(ctx context.Context, name, startTime, endTime string) (*domain.Shift, error) {
	now := time.Now().UTC()
	sh := &domain.Shift{ID: uuid.New().String(), Name: name, StartTime: startTime, EndTime: endTime, CreatedAt: now, UpdatedAt: now}
	if err := s.catalog.CreateShift(ctx, sh); err != nil {
		return nil, err
	}
	return sh, nil
}

func (s *catalogService) ListShifts(ctx context.Context) ([]*domain.Shift, error) {
	return s.catalog.ListShifts(ctx)
}

func (s *catalogService) CreateTalent(ctx context.Context, name string) (*domain.Talent, error) {
	now := time.Now().UTC()
	t := &domain.Talent{ID: uuid.New().String(), Name: name, CreatedAt: now, UpdatedAt: now}
	if err := s.catalog.CreateTalent(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *catalogService) ListTalents(ctx context.Context) ([]*domain.Talent, error) {
	return s.catalog.ListTalents(ctx)
}

func (s *catalogService) CreatePropertyType(ctx context.Context, name string) (*domain.PropertyType, error) {
	now := time.Now().UTC()
	p := &domain.PropertyType{ID: uuid.New().String(), Name: name, CreatedAt: now, UpdatedAt: now}
	if err := s.catalog.CreatePropertyType(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *catalogService) ListPropertyTypes(ctx context.Context) ([]*domain.PropertyType, error) {
	return s.catalog.ListPropertyTypes(ctx)
}

func (s *catalogService) CreateServiceType(ctx context.Context, name string) (*domain.ServiceType, error) {
	now := time.Now().UTC()
	st := &domain.ServiceType{ID: uuid.New().String(), Name: name, CreatedAt: now, UpdatedAt: now}
	if err := s.catalog.CreateServiceType(ctx, st); err != nil {
		return nil, err
	}
	return st, nil
}

func (s *catalogService) ListServiceTypes(ctx context.Context) ([]*domain.ServiceType, error) {
	return s.catalog.ListServiceTypes(ctx)
}
