package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrisyafri/facilops/internal/testutil"
)

func TestCompletedJobRepo_CreateAndListByEmployee(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteCompletedJobRepo(db)
	ctx := context.Background()
	end := time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)

	job := testutil.NewTestCompletedJob("emp-1", "comp-1", "obj-1", end)
	job.AreaName = "Ground Floor"
	job.ObjectName = "Lobby"
	require.NoError(t, repo.Create(ctx, job))
	require.NoError(t, repo.Create(ctx, testutil.NewTestCompletedJob("emp-2", "comp-1", "obj-2", end)))

	list, err := repo.ListByEmployee(ctx, "emp-1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Ground Floor", list[0].AreaName)
	assert.Equal(t, "Lobby", list[0].ObjectName)
	assert.True(t, list[0].EndTime.Equal(end))
	assert.Equal(t, "0h 45m", list[0].HoursWorked)
}

func TestCompletedJobRepo_ListByEmployeeBetween(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteCompletedJobRepo(db)
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create(ctx, testutil.NewTestCompletedJob("emp-1", "comp-1", "obj-1", base)))
	require.NoError(t, repo.Create(ctx, testutil.NewTestCompletedJob("emp-1", "comp-1", "obj-1", base.AddDate(0, 0, 10))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestCompletedJob("emp-1", "comp-1", "obj-1", base.AddDate(0, 1, 5))))

	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 30, 23, 59, 59, 0, time.UTC)
	list, err := repo.ListByEmployeeBetween(ctx, "emp-1", from, to)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestCompletedJobRepo_LatestByObject(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteCompletedJobRepo(db)
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create(ctx, testutil.NewTestCompletedJob("emp-1", "comp-1", "obj-a", base)))
	require.NoError(t, repo.Create(ctx, testutil.NewTestCompletedJob("emp-1", "comp-1", "obj-a", base.AddDate(0, 0, 7))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestCompletedJob("emp-1", "comp-1", "obj-b", base)))
	require.NoError(t, repo.Create(ctx, testutil.NewTestCompletedJob("emp-2", "comp-1", "obj-a", base.AddDate(0, 0, 20))))

	latest, err := repo.LatestByObject(ctx, "emp-1")
	require.NoError(t, err)
	require.Len(t, latest, 2)
	assert.True(t, latest["obj-a"].Equal(base.AddDate(0, 0, 7)))
	assert.True(t, latest["obj-b"].Equal(base))
}
