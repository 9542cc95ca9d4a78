package bus

import (
	"testing"

	"fairwager/internal/core/domain"
	"fairwager/internal/observability"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBus_FanOut(t *testing.T) {
	b := NewMemoryBus(nil)

	ch1, cancel1 := b.Subscribe()
	ch2, cancel2 := b.Subscribe()
	defer cancel1()
	defer cancel2()

	roundID := uuid.New()
	b.Publish(domain.Event{Type: domain.EventCrashStarted, RoundID: &roundID})

	for _, ch := range []<-chan domain.Event{ch1, ch2} {
		select {
		case evt := <-ch:
			assert.Equal(t, domain.EventCrashStarted, evt.Type)
			require.NotNil(t, evt.RoundID)
			assert.Equal(t, roundID, *evt.RoundID)
		default:
			t.Fatal("subscriber did not receive event")
		}
	}
}

func TestMemoryBus_DropOnFullBuffer(t *testing.T) {
	metrics := observability.NewMetrics(prometheus.NewRegistry())
	b := NewMemoryBus(metrics)

	_, cancel := b.Subscribe()
	defer cancel()

	// Nobody drains, so everything past the buffer is dropped.
	for i := 0; i < subscriberBuffer+10; i++ {
		b.Publish(domain.Event{Type: domain.EventCrashTick})
	}

	assert.Equal(t, float64(10), testutil.ToFloat64(metrics.PublishDrops))
}

func TestMemoryBus_CancelRemovesSubscriber(t *testing.T) {
	b := NewMemoryBus(nil)

	ch, cancel := b.Subscribe()
	cancel()
	// Double cancel is safe.
	cancel()

	_, open := <-ch
	assert.False(t, open, "channel should be closed after cancel")

	// Publish after cancel must not panic.
	b.Publish(domain.Event{Type: domain.EventCrashTick})
}
