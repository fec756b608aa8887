package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrisyafri/facilops/internal/domain"
	"github.com/andrisyafri/facilops/internal/repository"
	"github.com/andrisyafri/facilops/internal/testutil"
)

func TestCompanyService_Create_FillsIDsAndLabels(t *testing.T) {
	db := testutil.NewTestDB(t)
	companies := repository.NewSQLiteCompanyRepo(db)
	catalogRepo := repository.NewSQLiteCatalogRepo(db)
	catalog := NewCatalogService(catalogRepo)
	svc := NewCompanyService(companies, catalogRepo)
	ctx := context.Background()

	freq, err := catalog.CreateFrequency(ctx, "Every 2 weeks", "2w")
	require.NoError(t, err)
	prop, err := catalog.CreatePropertyType(ctx, "Office")
	require.NoError(t, err)
	shift, err := catalog.CreateShift(ctx, "Morning", "06:00", "14:00")
	require.NoError(t, err)

	comp := &domain.Company{
		Name:           "Fresh",
		PropertyTypeID: prop.ID,
		Areas: []domain.Area{{
			Name: "Wing",
			Objects: []domain.ServiceObject{{
				Name:        "Desk",
				FrequencyID: freq.ID,
				ShiftID:     shift.ID,
			}},
		}},
	}
	require.NoError(t, svc.Create(ctx, comp))
	assert.NotEmpty(t, comp.ID)

	fetched, err := svc.GetByID(ctx, comp.ID)
	require.NoError(t, err)
	assert.Equal(t, "Office", fetched.PropertyTypeName)
	require.Len(t, fetched.Areas, 1)
	require.Len(t, fetched.Areas[0].Objects, 1)
	obj := fetched.Areas[0].Objects[0]
	assert.NotEmpty(t, obj.ID)
	assert.Equal(t, "Every 2 weeks", obj.FrequencyLabel)
	assert.Equal(t, "Morning", obj.ShiftLabel)
	assert.False(t, obj.CreatedAt.IsZero())
}

func TestCompanyService_Create_KeepsExplicitLabels(t *testing.T) {
	db := testutil.NewTestDB(t)
	companies := repository.NewSQLiteCompanyRepo(db)
	catalogRepo := repository.NewSQLiteCatalogRepo(db)
	svc := NewCompanyService(companies, catalogRepo)
	ctx := context.Background()

	// No catalog rows exist; a free-text label still round-trips.
	comp := &domain.Company{
		Name: "Freetext",
		Areas: []domain.Area{{
			Name: "Wing",
			Objects: []domain.ServiceObject{{
				Name:           "Desk",
				FrequencyLabel: "Every 3 days",
			}},
		}},
	}
	require.NoError(t, svc.Create(ctx, comp))

	fetched, err := svc.GetByID(ctx, comp.ID)
	require.NoError(t, err)
	assert.Equal(t, "Every 3 days", fetched.Areas[0].Objects[0].FrequencyLabel)
}
