package budget

import (
	"errors"
	"time"
)

var (
	ErrInvalidLimit   = errors.New("budget limit must be positive")
	ErrBudgetNotFound = errors.New("no budget for this month")
)

// Budget is a per-user monthly spending limit. Month is always the first
// calendar day of the target month; together with the user it forms the
// identity of the row, so setting a budget twice for the same month replaces
// the limit.
type Budget struct {
	UserId     int
	Month      time.Time
	LimitCents int64
}

func (b Budget) Validate() error {
	if b.LimitCents <= 0 {
		return ErrInvalidLimit
	}
	return nil
}

// NormalizeMonth truncates a date to the first day of its month at midnight UTC.
func NormalizeMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
