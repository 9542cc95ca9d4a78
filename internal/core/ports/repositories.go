package ports

import (
	"context"

	"fairwager/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// AccountRepository defines persistence operations for player accounts.
// Methods accepting pgx.Tx are used inside transaction blocks for pessimistic
// locking; this is what serializes ledger mutations per account.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Account, error)
	UpdateBalances(ctx context.Context, tx pgx.Tx, id uuid.UUID, balances domain.BalanceSnapshot) error
}

// OperationRepository defines persistence for the append-only ledger
// operation log. Rows are immutable except for settlement status, which only
// moves forward.
type OperationRepository interface {
	Create(ctx context.Context, tx pgx.Tx, op *domain.LedgerOperation) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.LedgerOperation, error)
	ListPending(ctx context.Context, limit int) ([]domain.LedgerOperation, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID, limit int) ([]domain.LedgerOperation, error)
	MarkSettled(ctx context.Context, tx pgx.Tx, id uuid.UUID, attempts int) error
	MarkFailed(ctx context.Context, tx pgx.Tx, id uuid.UUID, attempts int, reason string) error
}

// RoundRepository persists round snapshots for audit and late queries.
type RoundRepository interface {
	SaveCrash(ctx context.Context, snap *domain.CrashSnapshot) error
	SaveShootout(ctx context.Context, snap *domain.ShootoutSnapshot) error
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
