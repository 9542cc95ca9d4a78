// Package bus fans game and ledger events out to downstream consumers.
// Publish never blocks the engines: each sink has a bounded buffer and
// drops on overflow, counting the drop.
package bus

import (
	"sync"

	"fairwager/internal/core/domain"
	"fairwager/internal/observability"
)

const subscriberBuffer = 256

// MemoryBus is the in-process event bus. Engines publish into it; HTTP
// streaming handlers and the optional NATS relay subscribe.
type MemoryBus struct {
	mu      sync.RWMutex
	subs    map[int]chan domain.Event
	nextID  int
	metrics *observability.Metrics
}

// NewMemoryBus creates an in-process bus.
func NewMemoryBus(metrics *observability.Metrics) *MemoryBus {
	return &MemoryBus{
		subs:    make(map[int]chan domain.Event),
		metrics: metrics,
	}
}

// Publish fans the event out to all subscribers. A subscriber that cannot
// keep up loses the event rather than stalling the publisher.
func (b *MemoryBus) Publish(evt domain.Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, ch := range b.subs {
		select {
		case ch <- evt:
		default:
			if b.metrics != nil {
				b.metrics.PublishDrops.Inc()
			}
		}
	}
}

// Subscribe registers a new consumer. The returned cancel func must be
// called when the consumer is done; the channel is closed by cancel.
func (b *MemoryBus) Subscribe() (<-chan domain.Event, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	ch := make(chan domain.Event, subscriberBuffer)
	b.subs[id] = ch

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if _, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(ch)
		}
	}
	return ch, cancel
}
