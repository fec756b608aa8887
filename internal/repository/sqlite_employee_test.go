package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrisyafri/facilops/internal/testutil"
)

func TestEmployeeRepo_CreateAndGetByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteEmployeeRepo(db)
	ctx := context.Background()

	emp := testutil.NewTestEmployee("Budi", testutil.WithTalents("glass", "carpet"))
	require.NoError(t, repo.Create(ctx, emp))

	fetched, err := repo.GetByID(ctx, emp.ID)
	require.NoError(t, err)
	assert.Equal(t, "Budi", fetched.Name)
	assert.Equal(t, []string{"glass", "carpet"}, fetched.Talents)
	assert.Equal(t, "cleaner", fetched.Role)
}

func TestEmployeeRepo_UpdateAndDelete(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteEmployeeRepo(db)
	ctx := context.Background()

	emp := testutil.NewTestEmployee("Sari")
	require.NoError(t, repo.Create(ctx, emp))

	emp.Role = "supervisor"
	emp.Talents = []string{"inspection"}
	require.NoError(t, repo.Update(ctx, emp))

	fetched, err := repo.GetByID(ctx, emp.ID)
	require.NoError(t, err)
	assert.Equal(t, "supervisor", fetched.Role)
	assert.Equal(t, []string{"inspection"}, fetched.Talents)

	require.NoError(t, repo.Delete(ctx, emp.ID))
	_, err = repo.GetByID(ctx, emp.ID)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestEmployeeRepo_List_SortedByName(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteEmployeeRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestEmployee("Zainal")))
	require.NoError(t, repo.Create(ctx, testutil.NewTestEmployee("Agus")))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Agus", list[0].Name)
	assert.Equal(t, "Zainal", list[1].Name)
}
