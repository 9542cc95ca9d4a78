package domain

import (
	"time"

	"github.com/google/uuid"
)

// Amounts are int64 in ten-thousandths of the currency unit, so a payout
// floored to 4 decimal places is plain integer math.
const AmountScale = 10_000

// Account is one player's custodial balance. Spendable is what the player
// owns inside the platform; LockedInGame is reserved against active rounds;
// LockedForSettlement shadows an in-flight external transfer.
type Account struct {
	ID                  uuid.UUID `json:"id"`
	Address             string    `json:"address"` // external settlement address
	Spendable           int64     `json:"spendable"`
	LockedInGame        int64     `json:"locked_in_game"`
	LockedForSettlement int64     `json:"locked_for_settlement"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// Withdrawable is the amount the player could move out right now. The ledger
// rejects any mutation that would make it negative.
func (a *Account) Withdrawable() int64 {
	return a.Spendable - a.LockedInGame - a.LockedForSettlement
}

// Snapshot captures the balance triple for audit records.
func (a *Account) Snapshot() BalanceSnapshot {
	return BalanceSnapshot{
		Spendable:           a.Spendable,
		LockedInGame:        a.LockedInGame,
		LockedForSettlement: a.LockedForSettlement,
	}
}

// BalanceSnapshot is an immutable point-in-time copy of the balance triple.
type BalanceSnapshot struct {
	Spendable           int64 `json:"spendable"`
	LockedInGame        int64 `json:"locked_in_game"`
	LockedForSettlement int64 `json:"locked_for_settlement"`
}

// Valid reports whether the snapshot satisfies the ledger invariant.
func (s BalanceSnapshot) Valid() bool {
	return s.Spendable >= 0 &&
		s.LockedInGame >= 0 &&
		s.LockedForSettlement >= 0 &&
		s.Spendable-s.LockedInGame-s.LockedForSettlement >= 0
}
