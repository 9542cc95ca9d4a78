package domain

import (
	"time"

	"github.com/google/uuid"
)

// OperationKind classifies a ledger mutation.
type OperationKind string

const (
	OpBetLock          OperationKind = "BET_LOCK"
	OpBetRelease       OperationKind = "BET_RELEASE"
	OpWin              OperationKind = "WIN"
	OpLoss             OperationKind = "LOSS"
	OpDeposit          OperationKind = "DEPOSIT"
	OpWithdrawalLock   OperationKind = "WITHDRAWAL_LOCK"
	OpWithdrawalSettle OperationKind = "WITHDRAWAL_SETTLE"
	OpWithdrawalRefund OperationKind = "WITHDRAWAL_REFUND"
)

// OperationStatus is the settlement lifecycle of an operation. Purely
// internal mutations are COMPLETED at creation; operations with an external
// leg start PENDING and end SETTLED or FAILED.
type OperationStatus string

const (
	OpStatusCompleted OperationStatus = "COMPLETED"
	OpStatusPending   OperationStatus = "PENDING"
	OpStatusSettled   OperationStatus = "SETTLED"
	OpStatusFailed    OperationStatus = "FAILED"
)

// LedgerOperation is an immutable append-only audit record of one balance
// mutation. Rows are never updated except for the settlement status fields,
// which only move forward.
type LedgerOperation struct {
	ID             uuid.UUID       `json:"id"`
	AccountID      uuid.UUID       `json:"account_id"`
	Kind           OperationKind   `json:"kind"`
	AmountDelta    int64           `json:"amount_delta"`
	BalanceBefore  BalanceSnapshot `json:"balance_before"`
	BalanceAfter   BalanceSnapshot `json:"balance_after"`
	RelatedRoundID *uuid.UUID      `json:"related_round_id,omitempty"`
	Status         OperationStatus `json:"status"`
	Attempts       int             `json:"attempts"`
	LastError      *string         `json:"last_error,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	SettledAt      *time.Time      `json:"settled_at,omitempty"`
}

// NeedsSettlement reports whether the reconciler still owes this operation an
// external transfer.
func (op *LedgerOperation) NeedsSettlement() bool {
	return op.Status == OpStatusPending
}

// IsTerminal reports whether the operation reached a final settlement state.
func (op *LedgerOperation) IsTerminal() bool {
	return op.Status == OpStatusCompleted ||
		op.Status == OpStatusSettled ||
		op.Status == OpStatusFailed
}
