// Package period models the planner's bucket granularities and the
// calendar math that anchors an arbitrary instant to its bucket.
package period

import (
	"fmt"
	"time"
)

// Period is the granularity of a task bucket.
type Period string

const (
	Days   Period = "days"
	Weeks  Period = "weeks"
	Months Period = "months"
	Year   Period = "year"
)

// All lists the valid periods in display order.
var All = []Period{Days, Weeks, Months, Year}

// Parse converts a user-supplied string into a Period.
func Parse(s string) (Period, error) {
	switch Period(s) {
	case Days, Weeks, Months, Year:
		return Period(s), nil
	}
	return "", fmt.Errorf("invalid period %q (want days, weeks, months or year)", s)
}

// Valid reports whether p is one of the known periods.
func (p Period) Valid() bool {
	switch p {
	case Days, Weeks, Months, Year:
		return true
	}
	return false
}

func (p Period) String() string {
	return string(p)
}

// Calendar holds the per-variant bucket math for every period. All
// results are normalized to UTC midnight so that stored ISO-8601
// strings compare correctly as text.
type Calendar struct {
	// WeekStart is the weekday a "weeks" bucket begins on.
	WeekStart time.Weekday
}

// Default is the calendar used when no configuration overrides it.
var Default = Calendar{WeekStart: time.Monday}

// StartOfDay truncates t to UTC midnight.
func StartOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DayWindow returns the half-open interval [start of day, start of next
// day) that bucket queries use to match a normalized anchor date.
func DayWindow(t time.Time) (from, to time.Time) {
	from = StartOfDay(t)
	return from, from.AddDate(0, 0, 1)
}

// Start returns the bucket-anchor date for t under period p: start of
// day, week, month or year. Every task in one logical bucket carries
// this exact timestamp.
func (c Calendar) Start(p Period, t time.Time) time.Time {
	day := StartOfDay(t)
	switch p {
	case Weeks:
		diff := (int(day.Weekday()) - int(c.WeekStart) + 7) % 7
		return day.AddDate(0, 0, -diff)
	case Months:
		return time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)
	case Year:
		return time.Date(day.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
	default:
		return day
	}
}

// Previous returns the representative day of the bucket immediately
// before the one t falls in. Unrecognized periods step back one year;
// that fallback is deliberate, not an error path.
func (c Calendar) Previous(p Period, t time.Time) time.Time {
	day := StartOfDay(t)
	switch p {
	case Days:
		return day.AddDate(0, 0, -1)
	case Weeks:
		return day.AddDate(0, 0, -7)
	case Months:
		return day.AddDate(0, -1, 0)
	default:
		return day.AddDate(-1, 0, 0)
	}
}
