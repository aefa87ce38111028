package expense

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidAmount      = errors.New("amount must be positive")
	ErrEmptyDescription   = errors.New("description is required")
	ErrDescriptionTooLong = errors.New("description too long (max 200 characters)")
	ErrMissingDate        = errors.New("date is required")
	ErrExpenseNotFound    = errors.New("expense does not exist")
)

// DateFormat is the canonical calendar-date representation used on the wire
// and for day bucketing. Expenses carry no time component.
const DateFormat = "2006-01-02"

type Expense struct {
	Id          int
	AmountCents int64
	Description string
	// Date is the calendar day of the expense, stored at midnight UTC.
	Date       time.Time
	CategoryId *int
	// CategoryName and CategoryColor are resolved by the list query's join
	// and are display-only; they are empty when the expense has no category.
	CategoryName  string
	CategoryColor string
}

func (e Expense) Validate() error {
	if e.AmountCents <= 0 {
		return ErrInvalidAmount
	}
	if strings.TrimSpace(e.Description) == "" {
		return ErrEmptyDescription
	}
	if len(e.Description) > 200 {
		return ErrDescriptionTooLong
	}
	if e.Date.IsZero() {
		return ErrMissingDate
	}
	return nil
}

// Day returns the expense's canonical YYYY-MM-DD representation.
func (e Expense) Day() string {
	return e.Date.Format(DateFormat)
}
