package expense

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spendwell/spendwell/internal/event_bus"
	"github.com/spendwell/spendwell/pkg/user"
)

type Service interface {
	GetAll(ctx context.Context, limit int) ([]Expense, error)
	Create(ctx context.Context, expense Expense) (Expense, error)
	Update(ctx context.Context, expense Expense) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type ServiceImpl struct {
	repo Repo
	bus  *event_bus.EventBus
}

func NewExpenseService(repo Repo, bus *event_bus.EventBus) *ServiceImpl {
	return &ServiceImpl{repo: repo, bus: bus}
}

func (s *ServiceImpl) GetAll(ctx context.Context, limit int) ([]Expense, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.GetAll(ctx, userId, limit)
}

func (s *ServiceImpl) Create(ctx context.Context, expense Expense) (Expense, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return Expense{}, fmt.Errorf("failed to get current user: %w", err)
	}
	if err := expense.Validate(); err != nil {
		return Expense{}, err
	}

	id, err := s.repo.Store(ctx, userId, expense)
	if err != nil {
		return Expense{}, err
	}
	expense.Id = id

	s.publish(ctx, event_bus.ExpenseCreated, id, userId)
	return expense, nil
}

func (s *ServiceImpl) Update(ctx context.Context, expense Expense) (bool, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to get current user: %w", err)
	}
	if err := expense.Validate(); err != nil {
		return false, err
	}

	updated, err := s.repo.Update(ctx, userId, expense)
	if err != nil {
		return false, err
	}
	if !updated {
		log.Warnf("expense not updated, probably because it does not exist (%d) or the user (%d) is not the owner", expense.Id, userId)
		return false, ErrExpenseNotFound
	}

	s.publish(ctx, event_bus.ExpenseUpdated, expense.Id, userId)
	return true, nil
}

func (s *ServiceImpl) Delete(ctx context.Context, id int) (bool, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to get current user: %w", err)
	}

	deleted, err := s.repo.Delete(ctx, userId, id)
	if err != nil {
		return false, err
	}
	if !deleted {
		log.Warnf("expense not deleted, probably because it does not exist (%d) or the user (%d) is not the owner", id, userId)
		return false, ErrExpenseNotFound
	}

	s.publish(ctx, event_bus.ExpenseDeleted, id, userId)
	return true, nil
}

// publish notifies subscribers after a successful mutation. Delivery failures
// are logged and swallowed: the mutation already happened and subscribers only
// use the event as a re-fetch trigger.
func (s *ServiceImpl) publish(ctx context.Context, eventType event_bus.EventType, expenseId, userId int) {
	event := event_bus.NewEvent(ctx, eventType, event_bus.ExpenseChanged{
		ExpenseId: expenseId,
		UserId:    userId,
	})
	if err := s.bus.Publish(event); err != nil {
		log.Warnf("failed to publish %s event: %v", eventType, err)
	}
}
