package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrisyafri/facilops/internal/domain"
	"github.com/andrisyafri/facilops/internal/testutil"
)

func TestCatalogRepo_Frequencies(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteCatalogRepo(db)
	ctx := context.Background()
	now := time.Now().UTC()

	f := &domain.FrequencyType{ID: uuid.New().String(), Label: "Every 2 weeks", Code: "2w", CreatedAt: now, UpdatedAt: now}
	require.NoError(t, repo.CreateFrequency(ctx, f))

	// Duplicate labels are rejected.
	dup := &domain.FrequencyType{ID: uuid.New().String(), Label: "Every 2 weeks", CreatedAt: now, UpdatedAt: now}
	assert.Error(t, repo.CreateFrequency(ctx, dup))

	list, err := repo.ListFrequencies(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Every 2 weeks", list[0].Label)
	assert.Equal(t, "2w", list[0].Code)
}

func TestCatalogRepo_Shifts(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteCatalogRepo(db)
	ctx := context.Background()
	now := time.Now().UTC()

	s := &domain.Shift{ID: uuid.New().String(), Name: "Morning", StartTime: "06:00", EndTime: "14:00", CreatedAt: now, UpdatedAt: now}
	require.NoError(t, repo.CreateShift(ctx, s))

	list, err := repo.ListShifts(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "06:00", list[0].StartTime)
}

func TestCatalogRepo_NamedTables(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteCatalogRepo(db)
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, repo.CreateTalent(ctx, &domain.Talent{ID: uuid.New().String(), Name: "glass", CreatedAt: now, UpdatedAt: now}))
	require.NoError(t, repo.CreatePropertyType(ctx, &domain.PropertyType{ID: uuid.New().String(), Name: "Office", CreatedAt: now, UpdatedAt: now}))
	require.NoError(t, repo.CreateServiceType(ctx, &domain.ServiceType{ID: uuid.New().String(), Name: "Deep clean", CreatedAt: now, UpdatedAt: now}))

	talents, err := repo.ListTalents(ctx)
	require.NoError(t, err)
	require.Len(t, talents, 1)
	assert.Equal(t, "glass", talents[0].Name)

	props, err := repo.ListPropertyTypes(ctx)
	require.NoError(t, err)
	require.Len(t, props, 1)
	assert.Equal(t, "Office", props[0].Name)

	svc, err := repo.ListServiceTypes(ctx)
	require.NoError(t, err)
	require.Len(t, svc, 1)
	assert.Equal(t, "Deep clean", svc[0].Name)
}
