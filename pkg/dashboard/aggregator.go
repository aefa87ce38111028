package dashboard

import (
	"time"

	"github.com/spendwell/spendwell/pkg/category"
	"github.com/spendwell/spendwell/pkg/expense"
)

const trendDays = 7

// Aggregate reduces a user's expenses to the dashboard summary. It is a pure
// function of its inputs: no I/O, deterministic for a fixed "now".
//
// The month boundary and the trend days are taken from now's calendar date,
// so the caller decides the timezone by passing now in the right location.
func Aggregate(expenses []expense.Expense, now time.Time) Summary {
	summary := Summary{
		Categories: make([]CategoryTotal, 0),
		Trend:      make([]DailyTotal, 0, trendDays),
	}

	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	trendIdx := make(map[string]int, trendDays)
	for i := trendDays - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i).Format(expense.DateFormat)
		trendIdx[day] = len(summary.Trend)
		summary.Trend = append(summary.Trend, DailyTotal{Date: day})
	}

	categoryIdx := make(map[string]int)
	for _, e := range expenses {
		summary.TotalCents += e.AmountCents

		if !e.Date.Before(firstOfMonth) {
			summary.MonthCents += e.AmountCents
		}

		name := e.CategoryName
		color := e.CategoryColor
		if name == "" {
			name = category.FallbackName
			color = category.FallbackColor
		}
		idx, seen := categoryIdx[name]
		if !seen {
			idx = len(summary.Categories)
			categoryIdx[name] = idx
			summary.Categories = append(summary.Categories, CategoryTotal{Name: name, Color: color})
		}
		summary.Categories[idx].TotalCents += e.AmountCents

		if idx, ok := trendIdx[e.Day()]; ok {
			summary.Trend[idx].TotalCents += e.AmountCents
		}
	}

	return summary
}
