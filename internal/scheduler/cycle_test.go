package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCycleIndex_Day(t *testing.T) {
	anchor := date(2025, 3, 1)
	f := Frequency{1, UnitDay}

	assert.Equal(t, 0, CycleIndex(anchor, anchor, f))
	assert.Equal(t, 0, CycleIndex(anchor, anchor.Add(23*time.Hour), f))
	assert.Equal(t, 1, CycleIndex(anchor, anchor.Add(36*time.Hour), f))
	assert.Equal(t, 6, CycleIndex(anchor, anchor.AddDate(0, 0, 6), f))
}

func TestCycleIndex_WeekWithInterval(t *testing.T) {
	anchor := date(2025, 3, 1)
	f := Frequency{2, UnitWeek}

	assert.Equal(t, 0, CycleIndex(anchor, anchor.AddDate(0, 0, 13), f))
	assert.Equal(t, 1, CycleIndex(anchor, anchor.AddDate(0, 0, 14), f))
	assert.Equal(t, 2, CycleIndex(anchor, anchor.AddDate(0, 0, 30), f))
}

func TestCycleIndex_OneTimeAlwaysZero(t *testing.T) {
	anchor := date(2024, 1, 1)
	f := Frequency{0, UnitOnce}
	assert.Equal(t, 0, CycleIndex(anchor, anchor.AddDate(5, 0, 0), f))
}

func TestCycleIndex_MonthPartialProgress(t *testing.T) {
	// Anchor on the 31st: by Feb 28 only ~0.9 months have elapsed, so the
	// cycle index stays 0 until the fractional correction crosses 1.
	anchor := date(2025, 1, 31)
	f := Frequency{1, UnitMonth}

	assert.Equal(t, 0, CycleIndex(anchor, date(2025, 2, 28), f))
	// Day-of-month matches the anchor again: exactly 2 whole months.
	assert.Equal(t, 2, CycleIndex(anchor, date(2025, 3, 31), f))
}

func TestCycleIndex_NonDecreasing(t *testing.T) {
	anchor := date(2025, 1, 15)
	for _, f := range []Frequency{{1, UnitDay}, {2, UnitWeek}, {3, UnitMonth}, {2, UnitHour}} {
		prev := 0
		for h := 0; h < 24*90; h += 7 {
			now := anchor.Add(time.Duration(h) * time.Hour)
			got := CycleIndex(anchor, now, f)
			assert.GreaterOrEqual(t, got, prev, "unit %s at +%dh", f.Unit, h)
			prev = got
		}
	}
}

func TestDueTimeForCycle_RoundTrip(t *testing.T) {
	anchor := time.Date(2025, 2, 3, 8, 0, 0, 0, time.UTC)
	for _, f := range []Frequency{{1, UnitHour}, {3, UnitDay}, {2, UnitWeek}, {1, UnitMonth}} {
		for k := 0; k <= 6; k++ {
			due := DueTimeForCycle(anchor, k, f)
			assert.Equal(t, k, CycleIndex(anchor, due, f), "unit %s cycle %d", f.Unit, k)
		}
	}
}

func TestDueTimeForCycle_MonthEndClamp(t *testing.T) {
	anchor := date(2025, 1, 31)
	f := Frequency{1, UnitMonth}

	// Non-leap year: Jan 31 -> Feb 28, and the clamp compounds: the next
	// cycle lands on Mar 28, not Mar 31.
	assert.Equal(t, date(2025, 2, 28), DueTimeForCycle(anchor, 1, f))
	assert.Equal(t, date(2025, 3, 28), DueTimeForCycle(anchor, 2, f))
}

func TestDueTimeForCycle_MonthEndClampLeapYear(t *testing.T) {
	anchor := date(2024, 1, 31)
	f := Frequency{1, UnitMonth}

	assert.Equal(t, date(2024, 2, 29), DueTimeForCycle(anchor, 1, f))
	assert.Equal(t, date(2024, 3, 29), DueTimeForCycle(anchor, 2, f))
}

func TestAddUnits_MonthOverflowClamps(t *testing.T) {
	assert.Equal(t, date(2025, 4, 30), AddUnits(date(2025, 3, 31), 1, UnitMonth))
	assert.Equal(t, date(2025, 2, 28), AddUnits(date(2024, 2, 29), 12, UnitMonth))
	// No clamp needed when the day exists in the target month.
	assert.Equal(t, date(2025, 5, 15), AddUnits(date(2025, 4, 15), 1, UnitMonth))
}

func TestNextDueFromAnchor_AlignedToAnchorPhase(t *testing.T) {
	anchor := date(2025, 3, 1)
	f := Frequency{1, UnitWeek}

	// Mid-cycle: next due snaps to the anchor grid, not to now.
	now := date(2025, 3, 10)
	assert.Equal(t, date(2025, 3, 15), NextDueFromAnchor(anchor, now, f))
}

func TestNextDueAfterCompletion_AlignedToCompletion(t *testing.T) {
	done := time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)

	assert.Equal(t, done.AddDate(0, 0, 1), NextDueAfterCompletion(done, Frequency{1, UnitDay}))
	assert.Equal(t, done.Add(2*time.Hour), NextDueAfterCompletion(done, Frequency{2, UnitHour}))
	assert.Equal(t, done.AddDate(0, 0, 14), NextDueAfterCompletion(done, Frequency{2, UnitWeek}))
}

func TestFormatElapsed(t *testing.T) {
	from := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, "45 minutes", FormatElapsed(from, from.Add(45*time.Minute), UnitHour))
	assert.Equal(t, "1 minute", FormatElapsed(from, from.Add(time.Minute), UnitHour))
	assert.Equal(t, "3 hours", FormatElapsed(from, from.Add(3*time.Hour+10*time.Minute), UnitHour))
	assert.Equal(t, "1 day", FormatElapsed(from, from.Add(25*time.Hour), UnitDay))
	assert.Equal(t, "2 weeks", FormatElapsed(from, from.AddDate(0, 0, 15), UnitWeek))
	assert.Equal(t, "1 month", FormatElapsed(from, from.AddDate(0, 0, 31), UnitMonth))
}

func TestDayBoundsAndKeys(t *testing.T) {
	ts := time.Date(2025, 6, 7, 18, 45, 12, 0, time.UTC)

	assert.Equal(t, time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC), DayStart(ts))
	assert.Equal(t, time.Date(2025, 6, 7, 23, 59, 59, 999000000, time.UTC), DayEnd(ts))
	assert.Equal(t, "2025-06-07", DateUTC(ts))
	assert.Equal(t, "obj1_2025-06-07", CompletionKey("obj1", ts))
}
