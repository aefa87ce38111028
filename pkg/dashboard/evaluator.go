package dashboard

import (
	"github.com/spendwell/spendwell/pkg/budget"
)

type BudgetState string

const (
	// BudgetUnset means no budget exists for the month.
	BudgetUnset BudgetState = "unset"
	// BudgetNormal covers everything up to and including 80% of the limit.
	BudgetNormal BudgetState = "normal"
	// BudgetNear means more than 80% and at most 100% of the limit is spent.
	BudgetNear BudgetState = "near"
	// BudgetOver means the limit is exceeded.
	BudgetOver BudgetState = "over"
)

// Evaluation classifies the current month's spend against the monthly limit.
type Evaluation struct {
	State      BudgetState
	SpentCents int64
	LimitCents int64
	// Percentage is 100 * spend / limit, unclamped.
	Percentage float64
	// Progress is the percentage clamped to [0, 100] for display gauges.
	Progress float64
	// RemainingCents is limit - spend when the limit is not exceeded.
	RemainingCents int64
	// OverageCents is spend - limit when the limit is exceeded.
	OverageCents int64
}

// Evaluate is a pure function: it performs no I/O and is deterministic.
// A nil budget reports the unset state. Classification boundaries use exact
// integer arithmetic: spend/limit == 0.80 is still normal, spend == limit is
// still near, only spend > limit is over.
func Evaluate(spentCents int64, b *budget.Budget) Evaluation {
	if b == nil {
		return Evaluation{State: BudgetUnset, SpentCents: spentCents}
	}

	eval := Evaluation{
		SpentCents: spentCents,
		LimitCents: b.LimitCents,
		Percentage: float64(spentCents) / float64(b.LimitCents) * 100,
	}

	switch {
	case spentCents > b.LimitCents:
		eval.State = BudgetOver
		eval.OverageCents = spentCents - b.LimitCents
	case spentCents*5 > b.LimitCents*4: // spend/limit > 0.80
		eval.State = BudgetNear
		eval.RemainingCents = b.LimitCents - spentCents
	default:
		eval.State = BudgetNormal
		eval.RemainingCents = b.LimitCents - spentCents
	}

	eval.Progress = eval.Percentage
	if eval.Progress > 100 {
		eval.Progress = 100
	}
	if eval.Progress < 0 {
		eval.Progress = 0
	}
	return eval
}
