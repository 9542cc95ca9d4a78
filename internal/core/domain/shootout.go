package domain

import (
	"time"

	"fairwager/internal/fair"

	"github.com/google/uuid"
)

// ShootoutPhase is the lifecycle of a shootout round.
type ShootoutPhase string

const (
	ShootoutLobby     ShootoutPhase = "LOBBY"
	ShootoutCountdown ShootoutPhase = "COUNTDOWN"
	ShootoutResolving ShootoutPhase = "RESOLVING"
	ShootoutSettled   ShootoutPhase = "SETTLED"
	ShootoutCancelled ShootoutPhase = "CANCELLED"
)

// ShootoutMode distinguishes head-to-head games from games against the house.
type ShootoutMode string

const (
	ModePvP   ShootoutMode = "PVP"
	ModeHouse ShootoutMode = "HOUSE"
)

// Side identifies the winner of a shootout round.
type Side string

const (
	SideCreator  Side = "CREATOR"
	SideOpponent Side = "OPPONENT" // the house, in house mode
)

// ShootoutSnapshot is the serializable state of a shootout round. Opponent is
// nil in house mode; the server seed is zeroed until settlement.
type ShootoutSnapshot struct {
	ID         uuid.UUID     `json:"id"`
	Phase      ShootoutPhase `json:"phase"`
	Mode       ShootoutMode  `json:"mode"`
	Seed       fair.SeedPair `json:"seed"`
	Wager      int64         `json:"wager"`
	Creator    uuid.UUID     `json:"creator"`
	Opponent   *uuid.UUID    `json:"opponent,omitempty"`
	WinnerSide *Side         `json:"winner_side,omitempty"`
	Pot        int64         `json:"pot,omitempty"`
	Rake       int64         `json:"rake,omitempty"`
	CreatedAt  time.Time     `json:"created_at"`
	SettledAt  *time.Time    `json:"settled_at,omitempty"`
}
