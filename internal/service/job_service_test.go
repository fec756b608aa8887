package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrisyafri/facilops/internal/domain"
	"github.com/andrisyafri/facilops/internal/repository"
	"github.com/andrisyafri/facilops/internal/testutil"
)

func setupJobTest(t *testing.T) (*testFixture, JobService) {
	t.Helper()
	db := testutil.NewTestDB(t)
	f := &testFixture{
		db:        db,
		companies: repository.NewSQLiteCompanyRepo(db),
		jobLogs:   repository.NewSQLiteJobLogRepo(db),
		completed: repository.NewSQLiteCompletedJobRepo(db),
	}
	svc := NewJobService(f.companies, f.jobLogs, testutil.NewTestUoW(db), NoopUseCaseObserver{})
	return f, svc
}

func (f *testFixture) seedCompany(t *testing.T, employeeID string) (*domain.Company, domain.ServiceObject) {
	t.Helper()
	obj := testutil.NewTestObject("Lobby",
		testutil.WithAssignedEmployee(employeeID),
		testutil.WithShift("sh-1", "Morning"))
	comp := testutil.NewTestCompany("Acme",
		testutil.WithAreas(testutil.NewTestArea("Ground Floor", obj)))
	require.NoError(t, f.companies.Create(context.Background(), comp))
	return comp, obj
}

func TestJobService_StartStopLifecycle(t *testing.T) {
	f, svc := setupJobTest(t)
	ctx := context.Background()
	comp, obj := f.seedCompany(t, "emp-1")
	start := time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)

	log, err := svc.StartJob(ctx, "emp-1", comp.ID, obj.ID, start)
	require.NoError(t, err)
	assert.False(t, log.Stopped)

	open, err := svc.ListOpen(ctx, "emp-1")
	require.NoError(t, err)
	require.Len(t, open, 1)

	end := start.Add(2*time.Hour + 15*time.Minute)
	completed, err := svc.StopJob(ctx, "emp-1", comp.ID, obj.ID, end)
	require.NoError(t, err)
	assert.Equal(t, "2h 15m", completed.HoursWorked)
	assert.Equal(t, "Ground Floor", completed.AreaName)
	assert.Equal(t, "Lobby", completed.ObjectName)
	assert.Equal(t, "Morning", completed.ShiftLabel)
	assert.True(t, completed.EndTime.Equal(end))

	open, err = svc.ListOpen(ctx, "emp-1")
	require.NoError(t, err)
	assert.Empty(t, open)

	// The object now records who serviced it.
	fetched, err := f.companies.GetByID(ctx, comp.ID)
	require.NoError(t, err)
	assert.Equal(t, "emp-1", fetched.Areas[0].Objects[0].EmployeeID)

	latest, err := f.completed.LatestByObject(ctx, "emp-1")
	require.NoError(t, err)
	assert.True(t, latest[obj.ID].Equal(end))
}

func TestJobService_StartJob_RejectsDuplicate(t *testing.T) {
	f, svc := setupJobTest(t)
	ctx := context.Background()
	comp, obj := f.seedCompany(t, "emp-1")
	now := time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)

	_, err := svc.StartJob(ctx, "emp-1", comp.ID, obj.ID, now)
	require.NoError(t, err)

	_, err = svc.StartJob(ctx, "emp-1", comp.ID, obj.ID, now.Add(time.Minute))
	assert.True(t, errors.Is(err, ErrJobAlreadyRunning))
}

func TestJobService_StopJob_NoOpenLog(t *testing.T) {
	f, svc := setupJobTest(t)
	ctx := context.Background()
	comp, obj := f.seedCompany(t, "emp-1")

	_, err := svc.StopJob(ctx, "emp-1", comp.ID, obj.ID, time.Now().UTC())
	assert.True(t, errors.Is(err, repository.ErrNotFound))
}

func TestJobService_StopJob_RollsBackOnFailure(t *testing.T) {
	f, _ := setupJobTest(t)
	ctx := context.Background()
	comp, obj := f.seedCompany(t, "emp-1")
	start := time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)

	// Fail on the completed-job insert (second ExecContext in the tx).
	failing := &testutil.FailOnNthExecUoW{DB: f.db, FailOn: 2, Err: errors.New("disk full")}
	svc := NewJobService(f.companies, f.jobLogs, failing)

	_, err := svc.StartJob(ctx, "emp-1", comp.ID, obj.ID, start)
	require.NoError(t, err)

	_, err = svc.StopJob(ctx, "emp-1", comp.ID, obj.ID, start.Add(time.Hour))
	require.Error(t, err)

	// The job log must still be open and no completion recorded.
	open, err := f.jobLogs.ListOpenByEmployee(ctx, "emp-1")
	require.NoError(t, err)
	assert.Len(t, open, 1)

	latest, err := f.completed.LatestByObject(ctx, "emp-1")
	require.NoError(t, err)
	assert.Empty(t, latest)
}
