package expense

import (
	"context"
	"sort"
)

type StubExpenseRepo struct {
	nextId int
	data   map[int]Expense
	owners map[int]int
}

func NewStubExpenseRepo() *StubExpenseRepo {
	return &StubExpenseRepo{
		data:   map[int]Expense{},
		owners: map[int]int{},
	}
}

func (s *StubExpenseRepo) Store(ctx context.Context, userId int, expense Expense) (int, error) {
	s.nextId++
	expense.Id = s.nextId
	s.data[expense.Id] = expense
	s.owners[expense.Id] = userId
	return expense.Id, nil
}

func (s *StubExpenseRepo) GetAll(ctx context.Context, userId int, limit int) ([]Expense, error) {
	var expenses []Expense
	for id, e := range s.data {
		if s.owners[id] == userId {
			expenses = append(expenses, e)
		}
	}
	sort.Slice(expenses, func(i, j int) bool {
		if !expenses[i].Date.Equal(expenses[j].Date) {
			return expenses[i].Date.After(expenses[j].Date)
		}
		return expenses[i].Id > expenses[j].Id
	})
	if limit > 0 && len(expenses) > limit {
		expenses = expenses[:limit]
	}
	return expenses, nil
}

func (s *StubExpenseRepo) Update(ctx context.Context, userId int, expense Expense) (bool, error) {
	if s.owners[expense.Id] != userId {
		return false, nil
	}
	if _, ok := s.data[expense.Id]; !ok {
		return false, nil
	}
	s.data[expense.Id] = expense
	return true, nil
}

func (s *StubExpenseRepo) Delete(ctx context.Context, userId int, expenseId int) (bool, error) {
	if s.owners[expenseId] != userId {
		return false, nil
	}
	if _, ok := s.data[expenseId]; !ok {
		return false, nil
	}
	delete(s.data, expenseId)
	delete(s.owners, expenseId)
	return true, nil
}

func (s *StubExpenseRepo) Cleanup() {
	s.data = map[int]Expense{}
	s.owners = map[int]int{}
}
