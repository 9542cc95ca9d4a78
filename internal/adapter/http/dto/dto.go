package dto

import (
	"time"

	"fairwager/internal/core/domain"
)

// SessionRequest is the request body for opening a player session. The
// address is the player's external settlement address; it doubles as the
// account identity.
type SessionRequest struct {
	Address string `json:"address" binding:"required,min=4,max=128,safe_id"`
}

// SessionResponse is the response body for a new session.
type SessionResponse struct {
	PlayerID string `json:"player_id"`
	Address  string `json:"address"`
	Token    string `json:"token"`
	Expiry   int64  `json:"expiry"` // Unix timestamp
}

// DepositRequest is the request body for crediting a deposit.
type DepositRequest struct {
	Amount int64 `json:"amount" binding:"required,gt=0"`
}

// WithdrawRequest is the request body for requesting a withdrawal.
type WithdrawRequest struct {
	Amount int64 `json:"amount" binding:"required,gt=0"`
}

// BalanceResponse is the response body for the balance endpoint.
type BalanceResponse struct {
	PlayerID            string `json:"player_id"`
	Address             string `json:"address"`
	Spendable           int64  `json:"spendable"`
	LockedInGame        int64  `json:"locked_in_game"`
	LockedForSettlement int64  `json:"locked_for_settlement"`
	Withdrawable        int64  `json:"withdrawable"`
}

// OperationResponse is the response body for a single ledger operation.
type OperationResponse struct {
	ID          string                 `json:"id"`
	Kind        string                 `json:"kind"`
	AmountDelta int64                  `json:"amount_delta"`
	Status      string                 `json:"status"`
	After       domain.BalanceSnapshot `json:"balance_after"`
	RoundID     *string                `json:"round_id,omitempty"`
	CreatedAt   string                 `json:"created_at"`
	SettledAt   *string                `json:"settled_at,omitempty"`
	LastError   *string                `json:"last_error,omitempty"`
}

// CrashBetRequest is the request body for placing a crash bet.
type CrashBetRequest struct {
	Wager int64 `json:"wager" binding:"required,gt=0"`
}

// ShootoutCreateRequest is the request body for opening a shootout game.
type ShootoutCreateRequest struct {
	Wager int64  `json:"wager" binding:"required,gt=0"`
	Mode  string `json:"mode" binding:"required,oneof=PVP HOUSE"`
}

// ClientSeedRequest is the request body for pinning a client seed to the
// player's next rounds.
type ClientSeedRequest struct {
	Seed string `json:"seed" binding:"required,min=8,max=64,safe_id"`
}

// VerifyRequest is the request body for the public fairness check. Every
// field comes from values the platform published for a settled round.
type VerifyRequest struct {
	ServerSeed     string  `json:"server_seed" binding:"required,len=64,hexadecimal"`
	ServerSeedHash string  `json:"server_seed_hash" binding:"required,len=64,hexadecimal"`
	ClientSeed     string  `json:"client_seed" binding:"required,max=64"`
	Nonce          uint64  `json:"nonce"`
	CrashPoint     string  `json:"crash_point" binding:"required"`
	HouseEdge      float64 `json:"house_edge" binding:"gte=0,lt=1"`
}

// ToOperationResponse maps a ledger operation to its API shape.
func ToOperationResponse(op *domain.LedgerOperation) OperationResponse {
	resp := OperationResponse{
		ID:          op.ID.String(),
		Kind:        string(op.Kind),
		AmountDelta: op.AmountDelta,
		Status:      string(op.Status),
		After:       op.BalanceAfter,
		CreatedAt:   op.CreatedAt.UTC().Format(time.RFC3339),
		LastError:   op.LastError,
	}
	if op.RelatedRoundID != nil {
		s := op.RelatedRoundID.String()
		resp.RoundID = &s
	}
	if op.SettledAt != nil {
		s := op.SettledAt.UTC().Format(time.RFC3339)
		resp.SettledAt = &s
	}
	return resp
}

// ToBalanceResponse maps an account to its API shape.
func ToBalanceResponse(a *domain.Account) BalanceResponse {
	return BalanceResponse{
		PlayerID:            a.ID.String(),
		Address:             a.Address,
		Spendable:           a.Spendable,
		LockedInGame:        a.LockedInGame,
		LockedForSettlement: a.LockedForSettlement,
		Withdrawable:        a.Withdrawable(),
	}
}
