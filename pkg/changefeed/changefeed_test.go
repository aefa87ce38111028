package changefeed

import (
	"testing"
	"time"

	"github.com/spendwell/spendwell/internal/event_bus"
	"github.com/stretchr/testify/assert"
)

func receiveSignal(t *testing.T, ch <-chan Signal) Signal {
	t.Helper()
	select {
	case signal := <-ch:
		return signal
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for signal")
		return Signal{}
	}
}

func TestBroadcasterForwardsExpenseEvents(t *testing.T) {
	bus := event_bus.NewEventBus()
	broadcaster := NewBroadcaster(bus)
	defer broadcaster.Close()

	signals, unsubscribe := broadcaster.Subscribe(1)
	defer unsubscribe()

	bus.Publish(event_bus.Event{
		Type: event_bus.ExpenseCreated,
		Data: event_bus.ExpenseChanged{ExpenseId: 10, UserId: 1},
	})

	signal := receiveSignal(t, signals)
	assert.Equal(t, "expense", signal.Entity)
}

func TestBroadcasterForwardsBudgetEvents(t *testing.T) {
	bus := event_bus.NewEventBus()
	broadcaster := NewBroadcaster(bus)
	defer broadcaster.Close()

	signals, unsubscribe := broadcaster.Subscribe(1)
	defer unsubscribe()

	bus.Publish(event_bus.Event{
		Type: event_bus.BudgetUpserted,
		Data: event_bus.BudgetChanged{UserId: 1, Month: time.Now()},
	})

	signal := receiveSignal(t, signals)
	assert.Equal(t, "budget", signal.Entity)
}

func TestBroadcasterScopesSignalsToUser(t *testing.T) {
	bus := event_bus.NewEventBus()
	broadcaster := NewBroadcaster(bus)
	defer broadcaster.Close()

	mine, unsubMine := broadcaster.Subscribe(1)
	defer unsubMine()
	other, unsubOther := broadcaster.Subscribe(2)
	defer unsubOther()

	bus.Publish(event_bus.Event{
		Type: event_bus.ExpenseDeleted,
		Data: event_bus.ExpenseChanged{ExpenseId: 5, UserId: 2},
	})

	receiveSignal(t, other)
	select {
	case signal := <-mine:
		t.Fatalf("unexpected signal for user 1: %+v", signal)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	bus := event_bus.NewEventBus()
	broadcaster := NewBroadcaster(bus)
	defer broadcaster.Close()

	signals, unsubscribe := broadcaster.Subscribe(1)
	unsubscribe()

	bus.Publish(event_bus.Event{
		Type: event_bus.ExpenseUpdated,
		Data: event_bus.ExpenseChanged{ExpenseId: 3, UserId: 1},
	})

	select {
	case signal := <-signals:
		t.Fatalf("unexpected signal after unsubscribe: %+v", signal)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestSlowSubscriberDoesNotBlockPublish(t *testing.T) {
	bus := event_bus.NewEventBus()
	broadcaster := NewBroadcaster(bus)
	defer broadcaster.Close()

	_, unsubscribe := broadcaster.Subscribe(1)
	defer unsubscribe()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			bus.Publish(event_bus.Event{
				Type: event_bus.ExpenseCreated,
				Data: event_bus.ExpenseChanged{ExpenseId: i, UserId: 1},
			})
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publishing blocked on a full subscriber channel")
	}
}
