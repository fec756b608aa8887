package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrisyafri/facilops/internal/domain"
	"github.com/andrisyafri/facilops/internal/repository"
	"github.com/andrisyafri/facilops/internal/testutil"
)

func setupActiveJobsTest(t *testing.T) (*testFixture, ActiveJobsService) {
	t.Helper()
	db := testutil.NewTestDB(t)
	f := &testFixture{
		db:        db,
		companies: repository.NewSQLiteCompanyRepo(db),
		jobLogs:   repository.NewSQLiteJobLogRepo(db),
		completed: repository.NewSQLiteCompletedJobRepo(db),
	}
	svc := NewActiveJobsService(f.companies, f.completed, f.jobLogs)
	return f, svc
}

func TestActiveJobsService_DueObjectSurfaces(t *testing.T) {
	f, svc := setupActiveJobsTest(t)
	ctx := context.Background()
	now := time.Date(2025, 6, 16, 10, 0, 0, 0, time.UTC)

	obj := testutil.NewTestObject("Lobby",
		testutil.WithFrequency("Daily"),
		testutil.WithAssignedEmployee("emp-1"),
		testutil.WithServiceStart(now.AddDate(0, 0, -30)))
	comp := testutil.NewTestCompany("Acme",
		testutil.WithContract(now.AddDate(0, -6, 0), now.AddDate(0, 6, 0)),
		testutil.WithAreas(testutil.NewTestArea("Ground Floor", obj)))
	require.NoError(t, f.companies.Create(ctx, comp))

	resp, err := svc.ActiveJobs(ctx, "emp-1", now)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.TotalActiveJobs)
	require.Len(t, resp.ActiveJobs, 1)
	require.Len(t, resp.ActiveJobs[0].Areas, 1)
	got := resp.ActiveJobs[0].Areas[0].Objects[0]
	assert.True(t, got.IsDue)
	assert.Equal(t, domain.StatusPending, got.JobStatus)
	assert.Contains(t, got.DueReason, "never completed")
	assert.Equal(t, domain.ContractActive, resp.ActiveJobs[0].ContractStatus)
}

func TestActiveJobsService_RecentCompletionHides(t *testing.T) {
	f, svc := setupActiveJobsTest(t)
	ctx := context.Background()
	now := time.Date(2025, 6, 16, 10, 0, 0, 0, time.UTC)

	obj := testutil.NewTestObject("Lobby",
		testutil.WithFrequency("Daily"),
		testutil.WithAssignedEmployee("emp-1"),
		testutil.WithServiceStart(now.AddDate(0, 0, -30)))
	comp := testutil.NewTestCompany("Acme",
		testutil.WithAreas(testutil.NewTestArea("Ground Floor", obj)))
	require.NoError(t, f.companies.Create(ctx, comp))
	require.NoError(t, f.completed.Create(ctx,
		testutil.NewTestCompletedJob("emp-1", comp.ID, obj.ID, now.Add(-6*time.Hour))))

	resp, err := svc.ActiveJobs(ctx, "emp-1", now)
	require.NoError(t, err)
	assert.Zero(t, resp.TotalActiveJobs)
	assert.Empty(t, resp.ActiveJobs)
}

func TestActiveJobsService_ProcessingSurfaces(t *testing.T) {
	f, svc := setupActiveJobsTest(t)
	ctx := context.Background()
	now := time.Date(2025, 6, 16, 10, 0, 0, 0, time.UTC)

	obj := testutil.NewTestObject("Lobby",
		testutil.WithFrequency("Weekly"),
		testutil.WithAssignedEmployee("emp-1"),
		testutil.WithServiceStart(now.AddDate(0, 0, -14)))
	comp := testutil.NewTestCompany("Acme",
		testutil.WithAreas(testutil.NewTestArea("Ground Floor", obj)))
	require.NoError(t, f.companies.Create(ctx, comp))
	require.NoError(t, f.jobLogs.Create(ctx,
		testutil.NewTestJobLog("emp-1", comp.ID, obj.ID, now.Add(-time.Hour))))

	resp, err := svc.ActiveJobs(ctx, "emp-1", now)
	require.NoError(t, err)
	require.Equal(t, 1, resp.TotalActiveJobs)
	got := resp.ActiveJobs[0].Areas[0].Objects[0]
	assert.True(t, got.IsProcessing)
	assert.Equal(t, domain.StatusProcessing, got.JobStatus)
}

func TestActiveJobsService_ExpiredContractExcluded(t *testing.T) {
	f, svc := setupActiveJobsTest(t)
	ctx := context.Background()
	now := time.Date(2025, 6, 16, 10, 0, 0, 0, time.UTC)

	obj := testutil.NewTestObject("Lobby",
		testutil.WithFrequency("Daily"),
		testutil.WithAssignedEmployee("emp-1"))
	comp := testutil.NewTestCompany("Gone",
		testutil.WithContract(now.AddDate(-1, 0, 0), now.AddDate(0, -1, 0)),
		testutil.WithAreas(testutil.NewTestArea("Ground Floor", obj)))
	require.NoError(t, f.companies.Create(ctx, comp))

	resp, err := svc.ActiveJobs(ctx, "emp-1", now)
	require.NoError(t, err)
	assert.Empty(t, resp.ActiveJobs)
}
