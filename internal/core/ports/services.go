package ports

import (
	"context"
	"time"

	"fairwager/internal/core/domain"

	"github.com/google/uuid"
)

// LedgerService is the balance state machine for player accounts. Every
// method is a single atomic unit: the invariant check and the mutation commit
// together or not at all.
type LedgerService interface {
	CreateAccount(ctx context.Context, address string) (*domain.Account, error)
	GetAccount(ctx context.Context, accountID uuid.UUID) (*domain.Account, error)
	History(ctx context.Context, accountID uuid.UUID, limit int) ([]domain.LedgerOperation, error)

	// Game-facing operations.
	Lock(ctx context.Context, accountID uuid.UUID, amount int64, roundID uuid.UUID) error
	Release(ctx context.Context, accountID uuid.UUID, amount int64, roundID uuid.UUID) error
	SettleWin(ctx context.Context, accountID uuid.UUID, wager, payout int64, roundID uuid.UUID) error
	SettleLoss(ctx context.Context, accountID uuid.UUID, amount int64, roundID uuid.UUID) error

	// Settlement-facing operations.
	CreditDeposit(ctx context.Context, accountID uuid.UUID, amount int64) (*domain.LedgerOperation, error)
	LockForWithdrawal(ctx context.Context, accountID uuid.UUID, amount int64) (*domain.LedgerOperation, error)
	ConfirmWithdrawal(ctx context.Context, op *domain.LedgerOperation) error
	RefundFailedWithdrawal(ctx context.Context, op *domain.LedgerOperation, reason string) error
}

// CrashService is the API surface of the shared crash round.
type CrashService interface {
	PlaceBet(ctx context.Context, playerID uuid.UUID, wager int64) (*domain.CrashSnapshot, error)
	CashOut(ctx context.Context, playerID uuid.UUID) (*domain.Position, error)
	CurrentRound() *domain.CrashSnapshot
	RoundResult(ctx context.Context, roundID uuid.UUID) (*domain.CrashSnapshot, error)
}

// ShootoutService manages pairwise and player-vs-house rounds.
type ShootoutService interface {
	CreateGame(ctx context.Context, creator uuid.UUID, wager int64, mode domain.ShootoutMode) (*domain.ShootoutSnapshot, error)
	JoinGame(ctx context.Context, gameID, opponent uuid.UUID) (*domain.ShootoutSnapshot, error)
	CancelGame(ctx context.Context, gameID, requester uuid.UUID) error
	GetGame(ctx context.Context, gameID uuid.UUID) (*domain.ShootoutSnapshot, error)
	Lobby() []domain.ShootoutSnapshot
}

// EventBus fans out typed events to subscribers. Publish is fire-and-forget
// and must never block: implementations drop on a full buffer.
type EventBus interface {
	Publish(evt domain.Event)
}

// SettlementService is the opaque external settlement layer. Transfer may
// take seconds and may fail; callers never invoke it while holding an
// account lock.
type SettlementService interface {
	Transfer(ctx context.Context, from, to string, amount int64) error
}

// ResultCache caches finished round results for grace-window queries.
type ResultCache interface {
	Get(ctx context.Context, key string) ([]byte, error) // nil, nil on miss
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// SeedStore keeps player-chosen client seeds for upcoming rounds.
type SeedStore interface {
	SetClientSeed(ctx context.Context, playerID uuid.UUID, seed string) error
	GetClientSeed(ctx context.Context, playerID uuid.UUID) (string, error) // "" when unset
}

// TokenService handles player session tokens.
type TokenService interface {
	Generate(playerID uuid.UUID) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed session claims.
type TokenClaims struct {
	PlayerID uuid.UUID
}
