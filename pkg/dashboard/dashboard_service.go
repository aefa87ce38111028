package dashboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spendwell/spendwell/internal/utils"
	"github.com/spendwell/spendwell/pkg/budget"
	"github.com/spendwell/spendwell/pkg/expense"
	"github.com/spendwell/spendwell/pkg/user"
)

type Service interface {
	GetOverview(ctx context.Context) (Overview, error)
}

type ServiceImpl struct {
	expenseRepo expense.Repo
	budgetRepo  budget.Repo
	clock       utils.Clock
}

func NewDashboardService(expenseRepo expense.Repo, budgetRepo budget.Repo, clock utils.Clock) *ServiceImpl {
	return &ServiceImpl{
		expenseRepo: expenseRepo,
		budgetRepo:  budgetRepo,
		clock:       clock,
	}
}

// GetOverview fetches the user's expenses and monthly budget and runs the
// pure aggregation and evaluation over them. All time arithmetic happens in
// the user's configured timezone.
func (s *ServiceImpl) GetOverview(ctx context.Context) (Overview, error) {
	currentUser, err := user.CurrentUser(ctx)
	if err != nil {
		return Overview{}, fmt.Errorf("failed to get current user: %w", err)
	}

	loc, err := time.LoadLocation(currentUser.Settings.Timezone)
	if err != nil {
		log.Warnf("invalid timezone %q for user %d, falling back to UTC", currentUser.Settings.Timezone, currentUser.Id)
		loc = time.UTC
	}
	now := s.clock.Now().In(loc)

	expenses, err := s.expenseRepo.GetAll(ctx, currentUser.Id, 0)
	if err != nil {
		return Overview{}, err
	}
	summary := Aggregate(expenses, now)

	var monthBudget *budget.Budget
	b, err := s.budgetRepo.Get(ctx, currentUser.Id, budget.NormalizeMonth(now))
	if err != nil && !errors.Is(err, budget.ErrBudgetNotFound) {
		return Overview{}, err
	}
	if err == nil {
		monthBudget = &b
	}

	return Overview{
		Date:    now,
		Summary: summary,
		Budget:  Evaluate(summary.MonthCents, monthBudget),
	}, nil
}
