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

func setupCalendarTest(t *testing.T) (*testFixture, CalendarService) {
	t.Helper()
	db := testutil.NewTestDB(t)
	f := &testFixture{
		db:        db,
		companies: repository.NewSQLiteCompanyRepo(db),
		jobLogs:   repository.NewSQLiteJobLogRepo(db),
		completed: repository.NewSQLiteCompletedJobRepo(db),
	}
	svc := NewCalendarService(f.companies, f.completed, f.jobLogs)
	return f, svc
}

func TestCalendarService_MonthCalendar_WeeklyObject(t *testing.T) {
	f, svc := setupCalendarTest(t)
	ctx := context.Background()
	now := time.Date(2025, 6, 16, 10, 0, 0, 0, time.UTC)

	serviceStart := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	obj := testutil.NewTestObject("Lobby",
		testutil.WithFrequency("Weekly"),
		testutil.WithAssignedEmployee("emp-1"),
		testutil.WithServiceStart(serviceStart))
	comp := testutil.NewTestCompany("Acme",
		testutil.WithContract(
			time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)),
		testutil.WithAreas(testutil.NewTestArea("Ground Floor", obj)))
	require.NoError(t, f.companies.Create(ctx, comp))

	resp, err := svc.MonthCalendar(ctx, "emp-1", 2025, time.June, now)
	require.NoError(t, err)
	assert.Equal(t, 6, resp.Month)
	assert.Equal(t, "June", resp.MonthName)
	assert.Equal(t, comp.ID, resp.Company.CompanyID)
	assert.Equal(t, domain.ContractActive, resp.Company.ContractStatus)

	// Weekly from June 1: occurrences on 1, 8, 15, 22, 29.
	require.Len(t, resp.Days, 5)
	assert.Equal(t, 1, resp.Days[0].DayNumber)
	assert.Equal(t, 29, resp.Days[4].DayNumber)
	assert.Equal(t, 5, resp.Company.TotalJobsThisMonth)

	// Past occurrences read overdue, future ones upcoming.
	assert.Equal(t, domain.StatusOverdue, resp.Days[0].Jobs[0].Status)
	assert.Equal(t, domain.StatusUpcoming, resp.Days[3].Jobs[0].Status)
}

func TestCalendarService_MonthCalendar_CompletionMarksDay(t *testing.T) {
	f, svc := setupCalendarTest(t)
	ctx := context.Background()
	now := time.Date(2025, 6, 16, 10, 0, 0, 0, time.UTC)

	serviceStart := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	obj := testutil.NewTestObject("Windows",
		testutil.WithFrequency("Weekly"),
		testutil.WithAssignedEmployee("emp-1"),
		testutil.WithServiceStart(serviceStart))
	comp := testutil.NewTestCompany("Acme",
		testutil.WithAreas(testutil.NewTestArea("Tower", obj)))
	require.NoError(t, f.companies.Create(ctx, comp))

	// Completed on June 9, the second occurrence.
	done := testutil.NewTestCompletedJob("emp-1", comp.ID, obj.ID,
		time.Date(2025, 6, 9, 14, 0, 0, 0, time.UTC))
	require.NoError(t, f.completed.Create(ctx, done))

	resp, err := svc.MonthCalendar(ctx, "emp-1", 2025, time.June, now)
	require.NoError(t, err)

	byDay := map[int]domain.DueStatus{}
	for _, d := range resp.Days {
		byDay[d.DayNumber] = d.Jobs[0].Status
	}
	assert.Equal(t, domain.StatusOverdue, byDay[2])
	assert.Equal(t, domain.StatusCompleted, byDay[9])
	assert.Equal(t, domain.StatusDueToday, byDay[16])
}

func TestCalendarService_MonthCalendar_ProcessingObject(t *testing.T) {
	f, svc := setupCalendarTest(t)
	ctx := context.Background()
	now := time.Date(2025, 6, 16, 10, 0, 0, 0, time.UTC)

	obj := testutil.NewTestObject("Carpet",
		testutil.WithFrequency("Monthly"),
		testutil.WithAssignedEmployee("emp-1"),
		testutil.WithServiceStart(time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC)))
	comp := testutil.NewTestCompany("Acme",
		testutil.WithAreas(testutil.NewTestArea("Hall", obj)))
	require.NoError(t, f.companies.Create(ctx, comp))
	require.NoError(t, f.jobLogs.Create(ctx,
		testutil.NewTestJobLog("emp-1", comp.ID, obj.ID, now.Add(-time.Hour))))

	resp, err := svc.MonthCalendar(ctx, "emp-1", 2025, time.June, now)
	require.NoError(t, err)
	require.Len(t, resp.Days, 1)
	assert.Equal(t, domain.StatusProcessing, resp.Days[0].Jobs[0].Status)
	assert.Equal(t, domain.ColorBlue, resp.Days[0].Jobs[0].Color)
}

func TestCalendarService_MonthCalendar_ExpiredContractDaysGoNegative(t *testing.T) {
	f, svc := setupCalendarTest(t)
	ctx := context.Background()
	now := time.Date(2025, 6, 16, 10, 0, 0, 0, time.UTC)

	obj := testutil.NewTestObject("Lobby",
		testutil.WithFrequency("Weekly"),
		testutil.WithAssignedEmployee("emp-1"),
		testutil.WithServiceStart(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)))
	comp := testutil.NewTestCompany("Acme",
		testutil.WithContract(
			time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 6, 6, 0, 0, 0, 0, time.UTC)),
		testutil.WithAreas(testutil.NewTestArea("Ground Floor", obj)))
	require.NoError(t, f.companies.Create(ctx, comp))

	resp, err := svc.MonthCalendar(ctx, "emp-1", 2025, time.June, now)
	require.NoError(t, err)
	assert.Equal(t, domain.ContractExpired, resp.Company.ContractStatus)
	// Ten days past the contract end; the counter keeps running negative.
	require.NotNil(t, resp.Company.ContractDaysRemaining)
	assert.Equal(t, -10, *resp.Company.ContractDaysRemaining)
}

func TestCalendarService_MonthCalendar_NoAssignment(t *testing.T) {
	_, svc := setupCalendarTest(t)

	_, err := svc.MonthCalendar(context.Background(), "emp-x", 2025, time.June, time.Now().UTC())
	assert.True(t, errors.Is(err, repository.ErrNotFound))
}
