package scheduler

import (
	"fmt"
	"math"
	"time"
)

// CycleIndex returns the zero-based count of full recurrence intervals
// elapsed between anchor and now. One-time frequencies are always cycle 0.
// For month units the elapsed value is a continuous "months elapsed"
// approximation: whole calendar months, minus one plus a fractional
// correction when now's day-of-month precedes the anchor's.
func CycleIndex(anchor, now time.Time, f Frequency) int {
	if f.IsOneTime() {
		return 0
	}

	var elapsed float64
	switch f.Unit {
	case UnitHour:
		elapsed = now.Sub(anchor).Hours()
	case UnitDay:
		elapsed = now.Sub(anchor).Hours() / 24
	case UnitWeek:
		elapsed = now.Sub(anchor).Hours() / (24 * 7)
	case UnitMonth:
		elapsed = monthsBetween(anchor, now)
	default:
		elapsed = 0
	}

	return int(math.Floor(elapsed / float64(f.Interval)))
}

// monthsBetween returns the continuous month difference from start to t.
func monthsBetween(start, t time.Time) float64 {
	diff := float64((t.Year()-start.Year())*12 + int(t.Month()) - int(start.Month()))

	dayDiff := t.Day() - start.Day()
	if dayDiff < 0 {
		diff--
		prevDays := daysInMonth(t.Year(), t.Month()-1)
		diff += float64(prevDays+dayDiff) / float64(prevDays)
	}
	return diff
}

// daysInMonth returns the number of days in the given month. The month may
// be out of the 1..12 range; time.Date normalizes it.
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// AddUnits advances t by n units. Month addition clamps to the last valid
// day of the target month: the 31st rolls to the 28th/29th/30th of a
// shorter month, never into the following month.
func AddUnits(t time.Time, n int, u Unit) time.Time {
	switch u {
	case UnitHour:
		return t.Add(time.Duration(n) * time.Hour)
	case UnitDay:
		return t.AddDate(0, 0, n)
	case UnitWeek:
		return t.AddDate(0, 0, n*7)
	case UnitMonth:
		return addMonthsClamped(t, n)
	}
	return t
}

func addMonthsClamped(t time.Time, n int) time.Time {
	year, month, day := t.Date()
	month += time.Month(n)
	if last := daysInMonth(year, month); day > last {
		day = last
	}
	return time.Date(year, month, day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// DueTimeForCycle is the inverse of CycleIndex: the instant at which the
// given cycle begins. Month cycles are advanced one interval at a time so
// that day-of-month clamping compounds (Jan 31 -> Feb 28 -> Mar 28); a
// clamped anchor does not recover lost days in later cycles.
func DueTimeForCycle(anchor time.Time, cycle int, f Frequency) time.Time {
	if f.IsOneTime() || cycle <= 0 {
		return anchor
	}
	if f.Unit == UnitMonth {
		t := anchor
		for i := 0; i < cycle; i++ {
			t = addMonthsClamped(t, f.Interval)
		}
		return t
	}
	return AddUnits(anchor, cycle*f.Interval, f.Unit)
}

// NextDueFromAnchor returns the start of the cycle after the one containing
// now, aligned to the original anchor's phase.
func NextDueFromAnchor(anchor, now time.Time, f Frequency) time.Time {
	return DueTimeForCycle(anchor, CycleIndex(anchor, now, f)+1, f)
}

// NextDueAfterCompletion returns lastCompleted plus one interval, aligned
// to whenever the task was actually finished rather than the anchor.
func NextDueAfterCompletion(lastCompleted time.Time, f Frequency) time.Time {
	return AddUnits(lastCompleted, f.Interval, f.Unit)
}

// UnitsBetween returns the elapsed distance from a to b expressed in the
// given unit. Hour, day and week use exact subtraction; month counts whole
// calendar months only.
func UnitsBetween(a, b time.Time, u Unit) float64 {
	switch u {
	case UnitHour:
		return b.Sub(a).Hours()
	case UnitDay:
		return b.Sub(a).Hours() / 24
	case UnitWeek:
		return b.Sub(a).Hours() / (24 * 7)
	case UnitMonth:
		return float64((b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month()))
	}
	return 0
}

// FormatElapsed renders the gap between from and to in the frequency's own
// unit: minutes when an hourly gap is under one hour, otherwise whole
// units, pluralized. Months are approximated at 30.44 days.
func FormatElapsed(from, to time.Time, u Unit) string {
	d := to.Sub(from)
	switch u {
	case UnitHour:
		if d < time.Hour {
			return plural(int(d.Minutes()), "minute")
		}
		return plural(int(d.Hours()), "hour")
	case UnitDay:
		return plural(int(d.Hours()/24), "day")
	case UnitWeek:
		return plural(int(d.Hours()/(24*7)), "week")
	case UnitMonth:
		return plural(int(d.Hours()/(24*30.44)), "month")
	}
	return ""
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

// DayStart truncates t to midnight UTC.
func DayStart(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DayEnd returns the last representable instant of t's UTC calendar day.
func DayEnd(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 23, 59, 59, 999000000, time.UTC)
}

// DateUTC formats t as a YYYY-MM-DD UTC calendar date, the key format used
// for day bucketing throughout the scheduling views.
func DateUTC(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// CompletionKey builds the lookup key for "object completed on day" sets.
func CompletionKey(objectID string, t time.Time) string {
	return objectID + "_" + DateUTC(t)
}
