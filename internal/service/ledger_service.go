package service

import (
	"context"
	"fmt"
	"time"

	"fairwager/internal/core/domain"
	"fairwager/internal/core/ports"
	"fairwager/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// LedgerServiceImpl implements ports.LedgerService with pessimistic locking.
// Each operation runs inside one database transaction: the account row is
// locked FOR UPDATE, the invariant is checked against the mutated balance,
// and an immutable operation record is appended before commit. Concurrent
// operations on the same account serialize on the row lock; operations on
// different accounts proceed in parallel.
type LedgerServiceImpl struct {
	accountRepo ports.AccountRepository
	opRepo      ports.OperationRepository
	transactor  ports.DBTransactor
	bus         ports.EventBus
	log         zerolog.Logger
}

// NewLedgerService creates a new LedgerServiceImpl.
func NewLedgerService(
	accountRepo ports.AccountRepository,
	opRepo ports.OperationRepository,
	transactor ports.DBTransactor,
	bus ports.EventBus,
	log zerolog.Logger,
) *LedgerServiceImpl {
	return &LedgerServiceImpl{
		accountRepo: accountRepo,
		opRepo:      opRepo,
		transactor:  transactor,
		bus:         bus,
		log:         log,
	}
}

// CreateAccount registers a new custodial account bound to an external
// settlement address.
func (s *LedgerServiceImpl) CreateAccount(ctx context.Context, address string) (*domain.Account, error) {
	now := time.Now().UTC()
	acct := &domain.Account{
		ID:        uuid.New(),
		Address:   address,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.accountRepo.Create(ctx, acct); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create account: %w", err))
	}
	return acct, nil
}

// GetAccount returns the current balance triple.
func (s *LedgerServiceImpl) GetAccount(ctx context.Context, accountID uuid.UUID) (*domain.Account, error) {
	acct, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get account: %w", err))
	}
	if acct == nil {
		return nil, apperror.ErrAccountNotFound()
	}
	return acct, nil
}

// History lists the most recent ledger operations for an account.
func (s *LedgerServiceImpl) History(ctx context.Context, accountID uuid.UUID, limit int) ([]domain.LedgerOperation, error) {
	ops, err := s.opRepo.ListByAccount(ctx, accountID, limit)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list operations: %w", err))
	}
	return ops, nil
}

// Lock reserves wager funds against an active round. Fails with
// InsufficientFunds when the amount exceeds the withdrawable balance.
func (s *LedgerServiceImpl) Lock(ctx context.Context, accountID uuid.UUID, amount int64, roundID uuid.UUID) error {
	if amount <= 0 {
		return apperror.ErrInvalidAmount()
	}
	_, err := s.mutate(ctx, accountID, domain.OpBetLock, -amount, &roundID, domain.OpStatusCompleted, func(a *domain.Account) error {
		if amount > a.Withdrawable() {
			return apperror.ErrInsufficientFunds()
		}
		a.LockedInGame += amount
		return nil
	})
	return err
}

// Release returns a game lock without moving funds. Clamped, so releasing
// more than is locked is a no-op rather than an error: the call is idempotent
// against over-release.
func (s *LedgerServiceImpl) Release(ctx context.Context, accountID uuid.UUID, amount int64, roundID uuid.UUID) error {
	if amount <= 0 {
		return apperror.ErrInvalidAmount()
	}
	_, err := s.mutate(ctx, accountID, domain.OpBetRelease, amount, &roundID, domain.OpStatusCompleted, func(a *domain.Account) error {
		a.LockedInGame = max(0, a.LockedInGame-amount)
		return nil
	})
	return err
}

// SettleWin credits the net win and releases the wager lock in one unit.
func (s *LedgerServiceImpl) SettleWin(ctx context.Context, accountID uuid.UUID, wager, payout int64, roundID uuid.UUID) error {
	if wager <= 0 || payout < wager {
		return apperror.ErrInvalidAmount()
	}
	_, err := s.mutate(ctx, accountID, domain.OpWin, payout-wager, &roundID, domain.OpStatusCompleted, func(a *domain.Account) error {
		a.LockedInGame = max(0, a.LockedInGame-wager)
		a.Spendable += payout - wager
		return nil
	})
	return err
}

// SettleLoss realizes a lost wager: the lock is released and the amount
// leaves spendable for house custody.
func (s *LedgerServiceImpl) SettleLoss(ctx context.Context, accountID uuid.UUID, amount int64, roundID uuid.UUID) error {
	if amount <= 0 {
		return apperror.ErrInvalidAmount()
	}
	_, err := s.mutate(ctx, accountID, domain.OpLoss, -amount, &roundID, domain.OpStatusCompleted, func(a *domain.Account) error {
		a.LockedInGame = max(0, a.LockedInGame-amount)
		a.Spendable -= amount
		return nil
	})
	return err
}

// CreditDeposit credits funds already confirmed on the external ledger.
func (s *LedgerServiceImpl) CreditDeposit(ctx context.Context, accountID uuid.UUID, amount int64) (*domain.LedgerOperation, error) {
	if amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	op, err := s.mutate(ctx, accountID, domain.OpDeposit, amount, nil, domain.OpStatusCompleted, func(a *domain.Account) error {
		a.Spendable += amount
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.bus.Publish(domain.Event{
		Type:      domain.EventLedgerDeposit,
		AccountID: &accountID,
		Payload:   op,
	})
	return op, nil
}

// LockForWithdrawal shadows an outbound external transfer. The spendable
// balance is untouched until the transfer succeeds; the shadow lock only
// excludes the amount from the withdrawable view.
func (s *LedgerServiceImpl) LockForWithdrawal(ctx context.Context, accountID uuid.UUID, amount int64) (*domain.LedgerOperation, error) {
	if amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	return s.mutate(ctx, accountID, domain.OpWithdrawalLock, -amount, nil, domain.OpStatusPending, func(a *domain.Account) error {
		if amount > a.Withdrawable() {
			return apperror.ErrInsufficientFunds()
		}
		a.LockedForSettlement += amount
		return nil
	})
}

// ConfirmWithdrawal realizes a withdrawal whose external transfer succeeded:
// the shadow lock is consumed and spendable drops by the same amount.
func (s *LedgerServiceImpl) ConfirmWithdrawal(ctx context.Context, op *domain.LedgerOperation) error {
	if op == nil || op.Kind != domain.OpWithdrawalLock {
		return apperror.ErrOperationNotFound()
	}
	amount := -op.AmountDelta

	_, err := s.mutate(ctx, op.AccountID, domain.OpWithdrawalSettle, -amount, op.RelatedRoundID, domain.OpStatusCompleted, func(a *domain.Account) error {
		a.LockedForSettlement = max(0, a.LockedForSettlement-amount)
		a.Spendable -= amount
		return nil
	}, func(ctx context.Context, tx pgx.Tx) error {
		return s.opRepo.MarkSettled(ctx, tx, op.ID, op.Attempts)
	})
	return err
}

// RefundFailedWithdrawal reverses the shadow lock of a failed withdrawal.
// Spendable never changed, so dropping the lock restores the pre-request
// balance exactly.
func (s *LedgerServiceImpl) RefundFailedWithdrawal(ctx context.Context, op *domain.LedgerOperation, reason string) error {
	if op == nil || op.Kind != domain.OpWithdrawalLock {
		return apperror.ErrOperationNotFound()
	}
	amount := -op.AmountDelta

	_, err := s.mutate(ctx, op.AccountID, domain.OpWithdrawalRefund, amount, op.RelatedRoundID, domain.OpStatusCompleted, func(a *domain.Account) error {
		a.LockedForSettlement = max(0, a.LockedForSettlement-amount)
		return nil
	}, func(ctx context.Context, tx pgx.Tx) error {
		return s.opRepo.MarkFailed(ctx, tx, op.ID, op.Attempts, reason)
	})
	if err != nil {
		return err
	}

	s.log.Warn().
		Str("op_id", op.ID.String()).
		Str("account_id", op.AccountID.String()).
		Int64("amount", amount).
		Str("reason", reason).
		Msg("withdrawal reversed after settlement failure")
	return nil
}
