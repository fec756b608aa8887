package scheduler

import (
	"regexp"
	"strconv"
	"strings"
)

// Unit is the recurrence unit of a service frequency.
type Unit string

const (
	UnitHour  Unit = "hour"
	UnitDay   Unit = "day"
	UnitWeek  Unit = "week"
	UnitMonth Unit = "month"
	UnitOnce  Unit = "once"
)

// Frequency is the structured form of an admin-authored frequency label.
// Interval == 0 if and only if Unit == UnitOnce; one-time schedules never
// recur.
type Frequency struct {
	Interval int
	Unit     Unit
}

// IsOneTime reports whether the frequency describes a non-recurring schedule.
func (f Frequency) IsOneTime() bool {
	return f.Interval == 0 || f.Unit == UnitOnce
}

var intervalPattern = regexp.MustCompile(`\d+`)

// ResolveFrequency parses a free-text frequency label ("Every 2 weeks",
// "Monthly", "Once", "Per 3 months") into a Frequency. The second return
// value is false only for an absent or blank label; any other text resolves,
// falling back to daily when nothing matches.
func ResolveFrequency(label string) (Frequency, bool) {
	text := strings.ToLower(strings.TrimSpace(label))
	if text == "" {
		return Frequency{}, false
	}

	if strings.Contains(text, "once") ||
		strings.Contains(text, "one-time") ||
		strings.Contains(text, "one time") {
		return Frequency{Interval: 0, Unit: UnitOnce}, true
	}

	interval := 1
	if m := intervalPattern.FindString(text); m != "" {
		if n, err := strconv.Atoi(m); err == nil {
			interval = n
		}
	}

	// "Per 2 monthly", "Per 3 months"
	if strings.Contains(text, "per") && strings.Contains(text, "month") {
		return Frequency{Interval: interval, Unit: UnitMonth}, true
	}

	// "Every 2 hours", "Every 3 days", "Every 2 weeks", "Every 2 months"
	if strings.Contains(text, "every") {
		switch {
		case strings.Contains(text, "hour"):
			return Frequency{Interval: interval, Unit: UnitHour}, true
		case strings.Contains(text, "day"):
			return Frequency{Interval: interval, Unit: UnitDay}, true
		case strings.Contains(text, "week"):
			return Frequency{Interval: interval, Unit: UnitWeek}, true
		case strings.Contains(text, "month"):
			return Frequency{Interval: interval, Unit: UnitMonth}, true
		}
	}

	// Standard labels without a number.
	switch {
	case strings.Contains(text, "hour"):
		return Frequency{Interval: 1, Unit: UnitHour}, true
	case strings.Contains(text, "daily"):
		return Frequency{Interval: 1, Unit: UnitDay}, true
	case strings.Contains(text, "weekly"):
		return Frequency{Interval: 1, Unit: UnitWeek}, true
	case strings.Contains(text, "monthly"):
		return Frequency{Interval: 1, Unit: UnitMonth}, true
	}

	return Frequency{Interval: 1, Unit: UnitDay}, true
}
