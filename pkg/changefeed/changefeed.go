package changefeed

import (
	"sync"

	log "github.com/sirupsen/logrus"
	"github.com/spendwell/spendwell/internal/event_bus"
)

// Signal tells a subscriber that some of its data changed and a re-fetch is
// due. It deliberately carries no row data: the feed is an invalidation
// channel, not an incremental diff stream.
type Signal struct {
	// Entity is "expense" or "budget".
	Entity string
}

// Broadcaster listens for expense and budget change events on the bus and
// fans them out to per-user subscriber channels.
type Broadcaster struct {
	mu          sync.Mutex
	subscribers map[int]map[uint64]chan Signal
	nextID      uint64
	unsubscribe []func()
}

func NewBroadcaster(bus *event_bus.EventBus) *Broadcaster {
	b := &Broadcaster{
		subscribers: make(map[int]map[uint64]chan Signal),
	}

	for _, eventType := range []event_bus.EventType{
		event_bus.ExpenseCreated,
		event_bus.ExpenseUpdated,
		event_bus.ExpenseDeleted,
	} {
		unsub := event_bus.SubscribeTyped(bus, eventType,
			func(e event_bus.EventT[event_bus.ExpenseChanged]) error {
				b.notify(e.Data.UserId, Signal{Entity: "expense"})
				return nil
			})
		b.unsubscribe = append(b.unsubscribe, unsub)
	}

	unsub := event_bus.SubscribeTyped(bus, event_bus.BudgetUpserted,
		func(e event_bus.EventT[event_bus.BudgetChanged]) error {
			b.notify(e.Data.UserId, Signal{Entity: "budget"})
			return nil
		})
	b.unsubscribe = append(b.unsubscribe, unsub)

	return b
}

// Subscribe registers a channel receiving signals for the given user and
// returns an unsubscribe function. The channel is buffered; a subscriber
// that falls behind loses signals, which is harmless since every signal
// only means "re-fetch everything".
func (b *Broadcaster) Subscribe(userId int) (<-chan Signal, func()) {
	ch := make(chan Signal, 8)

	b.mu.Lock()
	b.nextID++
	id := b.nextID
	if b.subscribers[userId] == nil {
		b.subscribers[userId] = make(map[uint64]chan Signal)
	}
	b.subscribers[userId][id] = ch
	b.mu.Unlock()

	return ch, func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if channels := b.subscribers[userId]; channels != nil {
			delete(channels, id)
			if len(channels) == 0 {
				delete(b.subscribers, userId)
			}
		}
	}
}

// Close detaches the broadcaster from the event bus.
func (b *Broadcaster) Close() {
	for _, unsub := range b.unsubscribe {
		unsub()
	}
}

func (b *Broadcaster) notify(userId int, signal Signal) {
	b.mu.Lock()
	channels := make([]chan Signal, 0, len(b.subscribers[userId]))
	for _, ch := range b.subscribers[userId] {
		channels = append(channels, ch)
	}
	b.mu.Unlock()

	for _, ch := range channels {
		select {
		case ch <- signal:
		default:
			log.Debugf("changefeed: dropping signal for slow subscriber of user %d", userId)
		}
	}
}
