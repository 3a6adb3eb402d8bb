// Package models holds the data structures shared across the store and
// its consumers.
package models

import (
	"time"

	"github.com/elermun/daybook/internal/period"
)

// Task is a single checklist item belonging to one period bucket. The
// bucket is identified by the normalized (Date, Period) pair: Date is
// always the start-of-period anchor, never the day the user picked.
type Task struct {
	ID        string
	Name      string
	Complete  bool
	SortOrder int
	Period    period.Period
	Date      time.Time
}

// Bucket returns the (date, period) pair the task belongs to for its
// whole lifetime.
func (t Task) Bucket() (time.Time, period.Period) {
	return t.Date, t.Period
}
