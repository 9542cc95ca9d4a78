package postgres

import (
	"context"
	"errors"
	"fmt"

	"fairwager/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// OperationRepo implements ports.OperationRepository. The balance snapshots
// are stored column-per-field so SQL can assert over them directly.
type OperationRepo struct {
	pool Pool
}

// NewOperationRepo creates a new OperationRepo.
func NewOperationRepo(pool Pool) *OperationRepo {
	return &OperationRepo{pool: pool}
}

const operationColumns = `id, account_id, kind, amount_delta,
		spendable_before, locked_in_game_before, locked_for_settlement_before,
		spendable_after, locked_in_game_after, locked_for_settlement_after,
		related_round_id, status, attempts, last_error, created_at, settled_at`

// Create appends an operation record within the same transaction that
// mutated the account balances.
func (r *OperationRepo) Create(ctx context.Context, tx pgx.Tx, op *domain.LedgerOperation) error {
	query := `INSERT INTO ledger_operations (` + operationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

	_, err := tx.Exec(ctx, query,
		op.ID, op.AccountID, op.Kind, op.AmountDelta,
		op.BalanceBefore.Spendable, op.BalanceBefore.LockedInGame, op.BalanceBefore.LockedForSettlement,
		op.BalanceAfter.Spendable, op.BalanceAfter.LockedInGame, op.BalanceAfter.LockedForSettlement,
		op.RelatedRoundID, op.Status, op.Attempts, op.LastError, op.CreatedAt, op.SettledAt,
	)
	if err != nil {
		return fmt.Errorf("insert ledger operation: %w", err)
	}
	return nil
}

// GetByID fetches a single operation record.
func (r *OperationRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.LedgerOperation, error) {
	query := `SELECT ` + operationColumns + ` FROM ledger_operations WHERE id = $1`

	op := &domain.LedgerOperation{}
	err := scanOperation(r.pool.QueryRow(ctx, query, id), op)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get operation by id: %w", err)
	}
	return op, nil
}

// ListPending returns operations still awaiting external settlement, oldest
// first so the reconciler drains in arrival order.
func (r *OperationRepo) ListPending(ctx context.Context, limit int) ([]domain.LedgerOperation, error) {
	query := `SELECT ` + operationColumns + ` FROM ledger_operations
		WHERE status = $1 ORDER BY created_at ASC LIMIT $2`

	rows, err := r.pool.Query(ctx, query, domain.OpStatusPending, limit)
	if err != nil {
		return nil, fmt.Errorf("list pending operations: %w", err)
	}
	defer rows.Close()
	return collectOperations(rows)
}

// ListByAccount returns an account's operation history, newest first.
func (r *OperationRepo) ListByAccount(ctx context.Context, accountID uuid.UUID, limit int) ([]domain.LedgerOperation, error) {
	query := `SELECT ` + operationColumns + ` FROM ledger_operations
		WHERE account_id = $1 ORDER BY created_at DESC LIMIT $2`

	rows, err := r.pool.Query(ctx, query, accountID, limit)
	if err != nil {
		return nil, fmt.Errorf("list operations by account: %w", err)
	}
	defer rows.Close()
	return collectOperations(rows)
}

// MarkSettled moves a pending operation to SETTLED.
func (r *OperationRepo) MarkSettled(ctx context.Context, tx pgx.Tx, id uuid.UUID, attempts int) error {
	query := `UPDATE ledger_operations SET status = $1, attempts = $2, settled_at = NOW()
		WHERE id = $3 AND status = $4`

	return r.setStatus(ctx, tx, query, domain.OpStatusSettled, attempts, id)
}

// MarkFailed moves a pending operation to FAILED with the final error.
func (r *OperationRepo) MarkFailed(ctx context.Context, tx pgx.Tx, id uuid.UUID, attempts int, reason string) error {
	query := `UPDATE ledger_operations SET status = $1, attempts = $2, last_error = $3, settled_at = NOW()
		WHERE id = $4 AND status = $5`

	tag, err := tx.Exec(ctx, query, domain.OpStatusFailed, attempts, reason, id, domain.OpStatusPending)
	if err != nil {
		return fmt.Errorf("mark operation failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("pending operation not found: %s", id)
	}
	return nil
}

func (r *OperationRepo) setStatus(ctx context.Context, tx pgx.Tx, query string, status domain.OperationStatus, attempts int, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, query, status, attempts, id, domain.OpStatusPending)
	if err != nil {
		return fmt.Errorf("update operation status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("pending operation not found: %s", id)
	}
	return nil
}

func scanOperation(row pgx.Row, op *domain.LedgerOperation) error {
	return row.Scan(
		&op.ID, &op.AccountID, &op.Kind, &op.AmountDelta,
		&op.BalanceBefore.Spendable, &op.BalanceBefore.LockedInGame, &op.BalanceBefore.LockedForSettlement,
		&op.BalanceAfter.Spendable, &op.BalanceAfter.LockedInGame, &op.BalanceAfter.LockedForSettlement,
		&op.RelatedRoundID, &op.Status, &op.Attempts, &op.LastError, &op.CreatedAt, &op.SettledAt,
	)
}

func collectOperations(rows pgx.Rows) ([]domain.LedgerOperation, error) {
	var ops []domain.LedgerOperation
	for rows.Next() {
		var op domain.LedgerOperation
		if err := scanOperation(rows, &op); err != nil {
			return nil, fmt.Errorf("scan operation row: %w", err)
		}
		ops = append(ops, op)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate operation rows: %w", err)
	}
	return ops, nil
}
