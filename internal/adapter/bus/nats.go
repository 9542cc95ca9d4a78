package bus

import (
	"context"
	"encoding/json"
	"fmt"

	"fairwager/internal/core/domain"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog"
)

// NATSRelay forwards bus events to NATS for out-of-process consumers.
// Subjects follow the pattern fairwager.events.{event_type}.
type NATSRelay struct {
	conn *nats.Conn
	bus  *MemoryBus
	log  zerolog.Logger
}

// Connect dials the NATS server and returns a relay reading from the bus.
func Connect(url string, memBus *MemoryBus, log zerolog.Logger) (*NATSRelay, error) {
	conn, err := nats.Connect(url,
		nats.Name("fairwager-api"),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		return nil, fmt.Errorf("connecting to nats: %w", err)
	}

	log.Info().Str("url", url).Msg("NATS connection established")
	return &NATSRelay{conn: conn, bus: memBus, log: log}, nil
}

// Run subscribes to the in-process bus and republishes every event until the
// context is cancelled. Publish failures are logged and skipped; consumers
// that need a complete record read the ledger, not the bus.
func (r *NATSRelay) Run(ctx context.Context) error {
	events, cancel := r.bus.Subscribe()
	defer cancel()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case evt, ok := <-events:
			if !ok {
				return nil
			}
			if err := r.publish(evt); err != nil {
				r.log.Warn().Err(err).Str("type", string(evt.Type)).Msg("nats publish failed")
			}
		}
	}
}

func (r *NATSRelay) publish(evt domain.Event) error {
	data, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	subject := "fairwager.events." + string(evt.Type)
	return r.conn.Publish(subject, data)
}

// Close drains and closes the NATS connection.
func (r *NATSRelay) Close() {
	if err := r.conn.Drain(); err != nil {
		r.log.Warn().Err(err).Msg("nats drain failed")
	}
}
