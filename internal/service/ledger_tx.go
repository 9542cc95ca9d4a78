package service

import (
	"context"
	"fmt"
	"time"

	"fairwager/internal/core/domain"
	"fairwager/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// txStep is an extra persistence step executed inside the same transaction
// as a balance mutation (e.g. advancing an operation's settlement status).
type txStep func(ctx context.Context, tx pgx.Tx) error

// mutate is the single transaction boundary for all ledger operations:
// lock the account row, apply the mutation, check the invariant against the
// result, persist balances plus an append-only operation record, commit.
// A failed invariant check aborts the whole transaction, so a violating
// balance is never observable, even transiently.
func (s *LedgerServiceImpl) mutate(
	ctx context.Context,
	accountID uuid.UUID,
	kind domain.OperationKind,
	amountDelta int64,
	roundID *uuid.UUID,
	status domain.OperationStatus,
	apply func(*domain.Account) error,
	extra ...txStep,
) (*domain.LedgerOperation, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	acct, err := s.accountRepo.GetByIDForUpdate(ctx, dbTx, accountID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock account: %w", err))
	}
	if acct == nil {
		return nil, apperror.ErrAccountNotFound()
	}

	before := acct.Snapshot()
	if err := apply(acct); err != nil {
		return nil, err
	}
	after := acct.Snapshot()

	if !after.Valid() {
		return nil, apperror.ErrNegativeBalance(
			fmt.Errorf("%s of %d on account %s: %+v", kind, amountDelta, accountID, after))
	}

	if err := s.accountRepo.UpdateBalances(ctx, dbTx, accountID, after); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update balances: %w", err))
	}

	op := &domain.LedgerOperation{
		ID:             uuid.New(),
		AccountID:      accountID,
		Kind:           kind,
		AmountDelta:    amountDelta,
		BalanceBefore:  before,
		BalanceAfter:   after,
		RelatedRoundID: roundID,
		Status:         status,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.opRepo.Create(ctx, dbTx, op); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("append operation: %w", err))
	}

	for _, step := range extra {
		if err := step(ctx, dbTx); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("tx step: %w", err))
		}
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Debug().
		Str("account_id", accountID.String()).
		Str("kind", string(kind)).
		Int64("delta", amountDelta).
		Int64("spendable", after.Spendable).
		Int64("locked_in_game", after.LockedInGame).
		Int64("locked_for_settlement", after.LockedForSettlement).
		Msg("ledger operation applied")

	return op, nil
}
