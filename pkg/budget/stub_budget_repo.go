package budget

import (
	"context"
	"time"
)

type budgetKey struct {
	userId int
	month  string
}

type StubBudgetRepo struct {
	data map[budgetKey]Budget
}

func NewStubBudgetRepo() *StubBudgetRepo {
	return &StubBudgetRepo{data: map[budgetKey]Budget{}}
}

func (s *StubBudgetRepo) Upsert(ctx context.Context, userId int, budget Budget) error {
	s.data[budgetKey{userId, budget.Month.Format(monthFormat)}] = budget
	return nil
}

func (s *StubBudgetRepo) Get(ctx context.Context, userId int, month time.Time) (Budget, error) {
	b, ok := s.data[budgetKey{userId, month.Format(monthFormat)}]
	if !ok {
		return Budget{}, ErrBudgetNotFound
	}
	return b, nil
}

func (s *StubBudgetRepo) Count() int {
	return len(s.data)
}

func (s *StubBudgetRepo) Cleanup() {
	s.data = map[budgetKey]Budget{}
}
