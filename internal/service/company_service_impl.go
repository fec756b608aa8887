package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/andrisyafri/facilops/internal/domain"
	"github.com/andrisyafri/facilops/internal/repository"
)

type companyService struct {
	companies repository.CompanyRepo
	catalog   repository.CatalogRepo
}

func NewCompanyService(companies repository.CompanyRepo, catalog repository.CatalogRepo) CompanyService {
	return &companyService{companies: companies, catalog: catalog}
}

func (s *companyService) Create(ctx context.Context, c *domain.Company) error {
	now := time.Now().UTC()
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	c.CreatedAt = now
	c.UpdatedAt = now
	s.fillIDs(c, now)
	if err := s.denormalize(ctx, c); err != nil {
		return err
	}
	return s.companies.Create(ctx, c)
}

func (s *companyService) GetByID(ctx context.Context, id string) (*domain.Company, error) {
	return s.companies.GetByID(ctx, id)
}

func (s *companyService) List(ctx context.Context) ([]*domain.Company, error) {
	return s.companies.List(ctx)
}

func (s *companyService) Update(ctx context.Context, c *domain.Company) error {
	now := time.Now().UTC()
	c.UpdatedAt = now
	s.fillIDs(c, now)
	if err := s.denormalize(ctx, c); err != nil {
		return err
	}
	return s.companies.Update(ctx, c)
}

func (s *companyService) Delete(ctx context.Context, id string) error {
	return s.companies.Delete(ctx, id)
}

// fillIDs assigns UUIDs and timestamps to areas and objects that were
// authored without them (e.g. loaded from a YAML definition).
func (s *companyService) fillIDs(c *domain.Company, now time.Time) {
	for ai := range c.Areas {
		area := &c.Areas[ai]
		if area.ID == "" {
			area.ID = uuid.New().String()
		}
		for oi := range area.Objects {
			obj := &area.Objects[oi]
			if obj.ID == "" {
				obj.ID = uuid.New().String()
			}
			if obj.CreatedAt.IsZero() {
				obj.CreatedAt = now
			}
			obj.UpdatedAt = now
		}
	}
}

// denormalize resolves catalog references into the label columns stored
// alongside each object, so scheduling reads never need catalog joins.
// Unknown references keep whatever label the caller supplied.
func (s *companyService) denormalize(ctx context.Context, c *domain.Company) error {
	if c.PropertyTypeID != "" && c.PropertyTypeName == "" {
		props, err := s.catalog.ListPropertyTypes(ctx)
		if err != nil {
			return err
		}
		for _, p := range props {
			if p.ID == c.PropertyTypeID {
				c.PropertyTypeName = p.Name
				break
			}
		}
	}

	var (
		freqByID map[string]string
		svcByID  map[string]string
		shifts   map[string]string
	)
	for ai := range c.Areas {
		for oi := range c.Areas[ai].Objects {
			obj := &c.Areas[ai].Objects[oi]
			if obj.FrequencyID != "" && obj.FrequencyLabel == "" {
				if freqByID == nil {
					list, err := s.catalog.ListFrequencies(ctx)
					if err != nil {
						return err
					}
					freqByID = map[string]string{}
					for _, f := range list {
						freqByID[f.ID] = f.Label
					}
				}
				obj.FrequencyLabel = freqByID[obj.FrequencyID]
			}
			if obj.ServiceTypeID != "" && obj.ServiceTypeName == "" {
				if svcByID == nil {
					list, err := s.catalog.ListServiceTypes(ctx)
					if err != nil {
						return err
					}
					svcByID = map[string]string{}
					for _, t := range list {
						svcByID[t.ID] = t.Name
					}
				}
				obj.ServiceTypeName = svcByID[obj.ServiceTypeID]
			}
			if obj.ShiftID != "" && obj.ShiftLabel == "" {
				if shifts == nil {
					list, err := s.catalog.ListShifts(ctx)
					if err != nil {
						return err
					}
					shifts = map[string]string{}
					for _, sh := range list {
						shifts[sh.ID] = sh.Name
					}
				}
				obj.ShiftLabel = shifts[obj.ShiftID]
			}
		}
	}
	return nil
}
