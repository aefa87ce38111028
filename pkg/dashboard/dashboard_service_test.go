package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/spendwell/spendwell/internal/utils"
	"github.com/spendwell/spendwell/pkg/budget"
	"github.com/spendwell/spendwell/pkg/expense"
	"github.com/spendwell/spendwell/pkg/user"
	"github.com/stretchr/testify/assert"
)

func setupService(now time.Time) (*ServiceImpl, *expense.StubExpenseRepo, *budget.StubBudgetRepo, context.Context) {
	expenseRepo := expense.NewStubExpenseRepo()
	budgetRepo := budget.NewStubBudgetRepo()
	clock := &utils.MockClock{FixedNow: now}
	service := NewDashboardService(expenseRepo, budgetRepo, clock)
	ctx := user.WithUser(context.Background(), user.User{
		Id:       1,
		Username: "test-user-1",
		Settings: user.Settings{Timezone: "UTC", Currency: "EUR"},
	})
	return service, expenseRepo, budgetRepo, ctx
}

func storeExpense(t *testing.T, repo *expense.StubExpenseRepo, ctx context.Context, cents int64, day time.Time) {
	t.Helper()
	_, err := repo.Store(ctx, 1, expense.Expense{
		AmountCents: cents,
		Description: "test",
		Date:        day,
	})
	assert.NoError(t, err)
}

func TestServiceImpl_GetOverview(t *testing.T) {
	now := time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC)
	service, expenseRepo, budgetRepo, ctx := setupService(now)

	storeExpense(t, expenseRepo, ctx, 1500, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	storeExpense(t, expenseRepo, ctx, 2000, time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC))
	err := budgetRepo.Upsert(ctx, 1, budget.Budget{
		UserId:     1,
		Month:      time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		LimitCents: 10000,
	})
	assert.NoError(t, err)

	overview, err := service.GetOverview(ctx)

	assert.NoError(t, err)
	assert.Equal(t, int64(3500), overview.Summary.TotalCents)
	assert.Equal(t, int64(3500), overview.Summary.MonthCents)
	assert.Equal(t, BudgetNormal, overview.Budget.State)
	assert.Equal(t, int64(6500), overview.Budget.RemainingCents)
	assert.InDelta(t, 35.0, overview.Budget.Percentage, 1e-9)
}

func TestServiceImpl_GetOverview_NoBudget(t *testing.T) {
	now := time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC)
	service, expenseRepo, _, ctx := setupService(now)
	storeExpense(t, expenseRepo, ctx, 1500, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))

	overview, err := service.GetOverview(ctx)

	assert.NoError(t, err)
	assert.Equal(t, BudgetUnset, overview.Budget.State)
	assert.Equal(t, int64(1500), overview.Budget.SpentCents)
}

func TestServiceImpl_GetOverview_UsesUserTimezone(t *testing.T) {
	// 23:30 on March 31st in UTC is already April 1st in Warsaw, so the
	// monthly total must cover April, not March.
	now := time.Date(2024, 3, 31, 23, 30, 0, 0, time.UTC)
	service, expenseRepo, _, _ := setupService(now)
	ctx := user.WithUser(context.Background(), user.User{
		Id:       1,
		Settings: user.Settings{Timezone: "Europe/Warsaw", Currency: "PLN"},
	})
	storeExpense(t, expenseRepo, ctx, 1000, time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC))
	storeExpense(t, expenseRepo, ctx, 300, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC))

	overview, err := service.GetOverview(ctx)

	assert.NoError(t, err)
	assert.Equal(t, int64(1300), overview.Summary.TotalCents)
	assert.Equal(t, int64(300), overview.Summary.MonthCents)
	assert.Equal(t, "2024-04-01", overview.Summary.Trend[6].Date)
}

func TestServiceImpl_GetOverview_RequiresUser(t *testing.T) {
	service, _, _, _ := setupService(time.Now())

	_, err := service.GetOverview(context.Background())

	assert.ErrorIs(t, err, user.ErrNoUser)
}

func TestServiceImpl_GetOverview_IgnoresOtherUsersBudget(t *testing.T) {
	now := time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC)
	service, _, budgetRepo, ctx := setupService(now)
	err := budgetRepo.Upsert(ctx, 2, budget.Budget{
		UserId:     2,
		Month:      time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		LimitCents: 10000,
	})
	assert.NoError(t, err)

	overview, err := service.GetOverview(ctx)

	assert.NoError(t, err)
	assert.Equal(t, BudgetUnset, overview.Budget.State)
}
