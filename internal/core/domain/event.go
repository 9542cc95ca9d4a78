package domain

import "github.com/google/uuid"

// EventType identifies a fan-out event on the bus.
type EventType string

const (
	EventCrashBettingOpen EventType = "crash.betting_open"
	EventCrashBetPlaced   EventType = "crash.bet_placed"
	EventCrashStarted     EventType = "crash.started"
	EventCrashTick        EventType = "crash.tick"
	EventCrashCashOut     EventType = "crash.cash_out"
	EventCrashCrashed     EventType = "crash.crashed"

	EventShootoutCreated   EventType = "shootout.created"
	EventShootoutJoined    EventType = "shootout.joined"
	EventShootoutResolved  EventType = "shootout.resolved"
	EventShootoutSettled   EventType = "shootout.settled"
	EventShootoutCancelled EventType = "shootout.cancelled"

	EventLedgerDeposit     EventType = "ledger.deposit"
	EventSettlementSettled EventType = "settlement.settled"
	EventSettlementFailed  EventType = "settlement.failed"
)

// Event is the unit of fan-out to the presentation layer. Publishing is
// fire-and-forget and must never block game logic.
type Event struct {
	Type      EventType   `json:"type"`
	RoundID   *uuid.UUID  `json:"round_id,omitempty"`
	AccountID *uuid.UUID  `json:"account_id,omitempty"`
	Payload   interface{} `json:"payload,omitempty"`
}
