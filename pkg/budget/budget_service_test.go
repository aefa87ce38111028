package budget

import (
	"context"
	"testing"
	"time"

	"github.com/spendwell/spendwell/internal/event_bus"
	"github.com/spendwell/spendwell/pkg/user"
	"github.com/stretchr/testify/assert"
)

func setup() (*ServiceImpl, *StubBudgetRepo, *event_bus.EventBus, context.Context) {
	repo := NewStubBudgetRepo()
	bus := event_bus.NewEventBus()
	service := NewBudgetService(repo, bus)
	ctx := user.WithUser(context.Background(), user.User{Id: 1, Username: "test-user-1"})
	return service, repo, bus, ctx
}

func TestServiceImpl_Set_NormalizesMonth(t *testing.T) {
	service, _, _, ctx := setup()

	stored, err := service.Set(ctx, Budget{
		Month:      time.Date(2024, 3, 17, 13, 0, 0, 0, time.UTC),
		LimitCents: 50000,
	})

	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), stored.Month)
	assert.Equal(t, 1, stored.UserId)
}

func TestServiceImpl_Set_ReplacesExistingBudget(t *testing.T) {
	service, repo, _, ctx := setup()
	month := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	_, err := service.Set(ctx, Budget{Month: month, LimitCents: 50000})
	assert.NoError(t, err)
	_, err = service.Set(ctx, Budget{Month: month.AddDate(0, 0, 10), LimitCents: 70000})
	assert.NoError(t, err)

	assert.Equal(t, 1, repo.Count(), "upserting twice for the same month must leave one row")
	stored, err := service.Get(ctx, month)
	assert.NoError(t, err)
	assert.Equal(t, int64(70000), stored.LimitCents)
}

func TestServiceImpl_Set_RejectsNonPositiveLimit(t *testing.T) {
	service, repo, _, ctx := setup()

	_, err := service.Set(ctx, Budget{Month: time.Now(), LimitCents: 0})

	assert.ErrorIs(t, err, ErrInvalidLimit)
	assert.Zero(t, repo.Count(), "nothing should be persisted for an invalid limit")
}

func TestServiceImpl_Set_PublishesEvent(t *testing.T) {
	service, _, bus, ctx := setup()

	var published []event_bus.BudgetChanged
	unsubscribe := event_bus.SubscribeTyped(bus, event_bus.BudgetUpserted,
		func(e event_bus.EventT[event_bus.BudgetChanged]) error {
			published = append(published, e.Data)
			return nil
		})
	defer unsubscribe()

	_, err := service.Set(ctx, Budget{
		Month:      time.Date(2024, 3, 17, 0, 0, 0, 0, time.UTC),
		LimitCents: 50000,
	})

	assert.NoError(t, err)
	assert.Len(t, published, 1)
	assert.Equal(t, 1, published[0].UserId)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), published[0].Month)
}

func TestServiceImpl_Set_RequiresUser(t *testing.T) {
	service, _, _, _ := setup()

	_, err := service.Set(context.Background(), Budget{Month: time.Now(), LimitCents: 100})

	assert.ErrorIs(t, err, user.ErrNoUser)
}

func TestServiceImpl_Get_NoBudget(t *testing.T) {
	service, _, _, ctx := setup()

	_, err := service.Get(ctx, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))

	assert.ErrorIs(t, err, ErrBudgetNotFound)
}

func TestServiceImpl_Get_ScopedToUser(t *testing.T) {
	service, _, _, ctx := setup()
	month := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	_, err := service.Set(ctx, Budget{Month: month, LimitCents: 50000})
	assert.NoError(t, err)

	otherCtx := user.WithUser(context.Background(), user.User{Id: 2})
	_, err = service.Get(otherCtx, month)

	assert.ErrorIs(t, err, ErrBudgetNotFound)
}
