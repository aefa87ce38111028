package budget

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spendwell/spendwell/internal/event_bus"
	"github.com/spendwell/spendwell/pkg/user"
)

type Service interface {
	// Set creates or replaces the budget for the month of budget.Month.
	Set(ctx context.Context, budget Budget) (Budget, error)
	// Get returns the budget for the month containing the given date.
	// Returns ErrBudgetNotFound when the user has no budget for that month.
	Get(ctx context.Context, month time.Time) (Budget, error)
}

type ServiceImpl struct {
	repo Repo
	bus  *event_bus.EventBus
}

func NewBudgetService(repo Repo, bus *event_bus.EventBus) *ServiceImpl {
	return &ServiceImpl{repo: repo, bus: bus}
}

func (s *ServiceImpl) Set(ctx context.Context, budget Budget) (Budget, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return Budget{}, fmt.Errorf("failed to get current user: %w", err)
	}
	if err := budget.Validate(); err != nil {
		return Budget{}, err
	}
	budget.UserId = userId
	budget.Month = NormalizeMonth(budget.Month)

	if err := s.repo.Upsert(ctx, userId, budget); err != nil {
		return Budget{}, err
	}

	event := event_bus.NewEvent(ctx, event_bus.BudgetUpserted, event_bus.BudgetChanged{
		UserId: userId,
		Month:  budget.Month,
	})
	if err := s.bus.Publish(event); err != nil {
		log.Warnf("failed to publish budget.upserted event: %v", err)
	}
	return budget, nil
}

func (s *ServiceImpl) Get(ctx context.Context, month time.Time) (Budget, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return Budget{}, fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.Get(ctx, userId, NormalizeMonth(month))
}
