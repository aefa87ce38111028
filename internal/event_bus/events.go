package event_bus

import "time"

const (
	ExpenseCreated EventType = "expense.created"
	ExpenseUpdated EventType = "expense.updated"
	ExpenseDeleted EventType = "expense.deleted"
	BudgetUpserted EventType = "budget.upserted"
)

// ExpenseChanged is published after an expense row was created, updated or
// deleted. Subscribers treat it as an invalidation signal and re-fetch; the
// payload carries no row data beyond the identifiers.
type ExpenseChanged struct {
	ExpenseId int
	UserId    int
}

// BudgetChanged is published after a monthly budget was set or replaced.
type BudgetChanged struct {
	UserId int
	Month  time.Time
}
