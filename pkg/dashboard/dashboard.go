package dashboard

import "time"

// CategoryTotal is the spend accumulated for one category bucket. Buckets
// appear in first-seen order of the input expenses; expenses without a
// category land in the shared "Other" bucket.
type CategoryTotal struct {
	Name       string
	Color      string
	TotalCents int64
}

// DailyTotal is the spend for one calendar day of the trend window.
type DailyTotal struct {
	// Date is the canonical YYYY-MM-DD day key.
	Date       string
	TotalCents int64
}

// Summary is the aggregate view of a user's expenses at a reference instant.
type Summary struct {
	TotalCents int64
	// MonthCents is the spend since the first calendar day of the month
	// containing the reference instant.
	MonthCents int64
	Categories []CategoryTotal
	// Trend always holds exactly 7 entries in chronological order, covering
	// the 6 days before the reference instant through that day inclusive.
	Trend []DailyTotal
}

// Overview combines the expense summary with the budget evaluation for the
// current month.
type Overview struct {
	Date    time.Time
	Summary Summary
	Budget  Evaluation
}
