package domain

import (
	"time"

	"fairwager/internal/fair"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CrashPhase is the lifecycle of a crash round.
type CrashPhase string

const (
	CrashBetting CrashPhase = "BETTING"
	CrashRunning CrashPhase = "RUNNING"
	CrashCrashed CrashPhase = "CRASHED"
)

// Position is one player's stake in a crash round.
type Position struct {
	PlayerID    uuid.UUID        `json:"player_id"`
	Wager       int64            `json:"wager"`
	CashedOutAt *decimal.Decimal `json:"cashed_out_at,omitempty"` // multiplier, 2dp
	Payout      *int64           `json:"payout,omitempty"`
	PlacedAt    time.Time        `json:"placed_at"`
}

// Settled reports whether the position has been paid out.
func (p *Position) Settled() bool {
	return p.CashedOutAt != nil
}

// CrashSnapshot is the serializable state of a crash round. The crash point
// and server seed are zeroed until the round has crashed.
type CrashSnapshot struct {
	ID         uuid.UUID        `json:"id"`
	Phase      CrashPhase       `json:"phase"`
	Seed       fair.SeedPair    `json:"seed"`
	CrashPoint *decimal.Decimal `json:"crash_point,omitempty"`
	StartTime  *time.Time       `json:"start_time,omitempty"`
	Positions  []Position       `json:"positions"`
	CreatedAt  time.Time        `json:"created_at"`
}
