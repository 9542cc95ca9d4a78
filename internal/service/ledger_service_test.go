package service

import (
	"context"
	"sync"
	"testing"

	"fairwager/internal/core/domain"
	"fairwager/internal/testutil"
	"fairwager/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ledgerTestDeps struct {
	svc      *LedgerServiceImpl
	accounts *testutil.MemAccountRepo
	ops      *testutil.MemOpRepo
	bus      *testutil.MemBus
}

func setupLedger(t *testing.T) *ledgerTestDeps {
	t.Helper()
	d := &ledgerTestDeps{
		accounts: testutil.NewMemAccountRepo(),
		ops:      testutil.NewMemOpRepo(),
		bus:      testutil.NewMemBus(),
	}
	d.svc = NewLedgerService(d.accounts, d.ops, testutil.NewMemTransactor(), d.bus, zerolog.Nop())
	return d
}

func assertAppError(t *testing.T, err error, code string) {
	t.Helper()
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.Code)
}

func TestLedger_Lock_Success(t *testing.T) {
	d := setupLedger(t)
	acct := d.accounts.Seed(100_0000)
	roundID := uuid.New()

	require.NoError(t, d.svc.Lock(context.Background(), acct.ID, 40_0000, roundID))

	got, err := d.svc.GetAccount(context.Background(), acct.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(100_0000), got.Spendable)
	assert.Equal(t, int64(40_0000), got.LockedInGame)
	assert.Equal(t, int64(60_0000), got.Withdrawable())

	ops := d.ops.Ops()
	require.Len(t, ops, 1)
	assert.Equal(t, domain.OpBetLock, ops[0].Kind)
	assert.Equal(t, int64(-40_0000), ops[0].AmountDelta)
	require.NotNil(t, ops[0].RelatedRoundID)
	assert.Equal(t, roundID, *ops[0].RelatedRoundID)
	assert.Equal(t, int64(0), ops[0].BalanceBefore.LockedInGame)
	assert.Equal(t, int64(40_0000), ops[0].BalanceAfter.LockedInGame)
}

func TestLedger_Lock_InsufficientFunds(t *testing.T) {
	d := setupLedger(t)
	acct := d.accounts.Seed(10_0000)

	err := d.svc.Lock(context.Background(), acct.ID, 10_0001, uuid.New())
	assertAppError(t, err, "BAL_001")

	// Nothing applied, nothing appended.
	got, _ := d.svc.GetAccount(context.Background(), acct.ID)
	assert.Equal(t, int64(0), got.LockedInGame)
	assert.Empty(t, d.ops.Ops())
}

func TestLedger_Lock_RespectsExistingLocks(t *testing.T) {
	d := setupLedger(t)
	acct := d.accounts.Seed(100_0000)
	ctx := context.Background()

	require.NoError(t, d.svc.Lock(ctx, acct.ID, 60_0000, uuid.New()))
	err := d.svc.Lock(ctx, acct.ID, 50_0000, uuid.New())
	assertAppError(t, err, "BAL_001")
}

func TestLedger_Lock_InvalidAmount(t *testing.T) {
	d := setupLedger(t)
	acct := d.accounts.Seed(100_0000)

	assertAppError(t, d.svc.Lock(context.Background(), acct.ID, 0, uuid.New()), "BAL_002")
	assertAppError(t, d.svc.Lock(context.Background(), acct.ID, -5, uuid.New()), "BAL_002")
}

func TestLedger_Lock_AccountNotFound(t *testing.T) {
	d := setupLedger(t)
	err := d.svc.Lock(context.Background(), uuid.New(), 1_0000, uuid.New())
	assertAppError(t, err, "BAL_003")
}

func TestLedger_Release_ClampsOverRelease(t *testing.T) {
	d := setupLedger(t)
	acct := d.accounts.Seed(100_0000)
	ctx := context.Background()
	roundID := uuid.New()

	require.NoError(t, d.svc.Lock(ctx, acct.ID, 30_0000, roundID))
	require.NoError(t, d.svc.Release(ctx, acct.ID, 30_0000, roundID))
	// Second release of the same lock is a no-op, not an error.
	require.NoError(t, d.svc.Release(ctx, acct.ID, 30_0000, roundID))

	got, _ := d.svc.GetAccount(ctx, acct.ID)
	assert.Equal(t, int64(0), got.LockedInGame)
	assert.Equal(t, int64(100_0000), got.Spendable)
}

func TestLedger_SettleWin(t *testing.T) {
	d := setupLedger(t)
	acct := d.accounts.Seed(100_0000)
	ctx := context.Background()
	roundID := uuid.New()

	require.NoError(t, d.svc.Lock(ctx, acct.ID, 20_0000, roundID))
	// Cash out at 2.50x: payout 50.0000 on a 20.0000 wager.
	require.NoError(t, d.svc.SettleWin(ctx, acct.ID, 20_0000, 50_0000, roundID))

	got, _ := d.svc.GetAccount(ctx, acct.ID)
	assert.Equal(t, int64(130_0000), got.Spendable)
	assert.Equal(t, int64(0), got.LockedInGame)
}

func TestLedger_SettleWin_RejectsPayoutBelowWager(t *testing.T) {
	d := setupLedger(t)
	acct := d.accounts.Seed(100_0000)
	err := d.svc.SettleWin(context.Background(), acct.ID, 20_0000, 19_0000, uuid.New())
	assertAppError(t, err, "BAL_002")
}

func TestLedger_SettleLoss(t *testing.T) {
	d := setupLedger(t)
	acct := d.accounts.Seed(100_0000)
	ctx := context.Background()
	roundID := uuid.New()

	require.NoError(t, d.svc.Lock(ctx, acct.ID, 25_0000, roundID))
	require.NoError(t, d.svc.SettleLoss(ctx, acct.ID, 25_0000, roundID))

	got, _ := d.svc.GetAccount(ctx, acct.ID)
	assert.Equal(t, int64(75_0000), got.Spendable)
	assert.Equal(t, int64(0), got.LockedInGame)
	assert.Equal(t, int64(75_0000), got.Withdrawable())
}

func TestLedger_CreditDeposit_PublishesEvent(t *testing.T) {
	d := setupLedger(t)
	acct := d.accounts.Seed(0)

	op, err := d.svc.CreditDeposit(context.Background(), acct.ID, 500_0000)
	require.NoError(t, err)
	assert.Equal(t, domain.OpDeposit, op.Kind)
	assert.Equal(t, domain.OpStatusCompleted, op.Status)

	got, _ := d.svc.GetAccount(context.Background(), acct.ID)
	assert.Equal(t, int64(500_0000), got.Spendable)

	require.Len(t, d.bus.ByType(domain.EventLedgerDeposit), 1)
}

func TestLedger_WithdrawalLifecycle_Confirmed(t *testing.T) {
	d := setupLedger(t)
	acct := d.accounts.Seed(100_0000)
	ctx := context.Background()

	op, err := d.svc.LockForWithdrawal(ctx, acct.ID, 40_0000)
	require.NoError(t, err)
	assert.Equal(t, domain.OpStatusPending, op.Status)

	// Shadow lock excludes the amount from withdrawable; spendable untouched.
	got, _ := d.svc.GetAccount(ctx, acct.ID)
	assert.Equal(t, int64(100_0000), got.Spendable)
	assert.Equal(t, int64(40_0000), got.LockedForSettlement)
	assert.Equal(t, int64(60_0000), got.Withdrawable())

	require.NoError(t, d.svc.ConfirmWithdrawal(ctx, op))

	got, _ = d.svc.GetAccount(ctx, acct.ID)
	assert.Equal(t, int64(60_0000), got.Spendable)
	assert.Equal(t, int64(0), got.LockedForSettlement)

	stored, err := d.ops.GetByID(ctx, op.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OpStatusSettled, stored.Status)
}

func TestLedger_WithdrawalLifecycle_Refunded(t *testing.T) {
	d := setupLedger(t)
	acct := d.accounts.Seed(100_0000)
	ctx := context.Background()

	op, err := d.svc.LockForWithdrawal(ctx, acct.ID, 40_0000)
	require.NoError(t, err)

	require.NoError(t, d.svc.RefundFailedWithdrawal(ctx, op, "transfer timed out"))

	// Spendable is exactly its pre-request value.
	got, _ := d.svc.GetAccount(ctx, acct.ID)
	assert.Equal(t, int64(100_0000), got.Spendable)
	assert.Equal(t, int64(0), got.LockedForSettlement)
	assert.Equal(t, int64(100_0000), got.Withdrawable())

	stored, err := d.ops.GetByID(ctx, op.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OpStatusFailed, stored.Status)
	require.NotNil(t, stored.LastError)
	assert.Equal(t, "transfer timed out", *stored.LastError)
}

func TestLedger_ConfirmWithdrawal_RejectsWrongKind(t *testing.T) {
	d := setupLedger(t)
	op := &domain.LedgerOperation{ID: uuid.New(), Kind: domain.OpDeposit}
	assertAppError(t, d.svc.ConfirmWithdrawal(context.Background(), op), "SET_002")
	assertAppError(t, d.svc.RefundFailedWithdrawal(context.Background(), op, "x"), "SET_002")
}

// Non-negativity under concurrency: many goroutines race lock/settle cycles
// on one account; the withdrawable balance must never go negative and total
// outflow must never exceed the starting balance.
func TestLedger_ConcurrentLocks_NeverOverdraw(t *testing.T) {
	d := setupLedger(t)
	acct := d.accounts.Seed(100_0000)
	ctx := context.Background()

	const workers = 50
	var wg sync.WaitGroup
	var mu sync.Mutex
	granted := 0

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := d.svc.Lock(ctx, acct.ID, 10_0000, uuid.New()); err == nil {
				mu.Lock()
				granted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	// 100.0000 balance, 10.0000 per lock: at most 10 locks can be granted.
	assert.Equal(t, 10, granted)

	got, _ := d.svc.GetAccount(ctx, acct.ID)
	assert.Equal(t, int64(0), got.Withdrawable())
	assert.GreaterOrEqual(t, got.Withdrawable(), int64(0))
}

func TestLedger_ConcurrentMixedOps_InvariantHolds(t *testing.T) {
	d := setupLedger(t)
	acct := d.accounts.Seed(50_0000)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			roundID := uuid.New()
			if err := d.svc.Lock(ctx, acct.ID, 5_0000, roundID); err != nil {
				return
			}
			if err := d.svc.SettleLoss(ctx, acct.ID, 5_0000, roundID); err != nil {
				t.Error("settle loss after successful lock:", err)
			}
		}()
	}
	wg.Wait()

	got, _ := d.svc.GetAccount(ctx, acct.ID)
	assert.GreaterOrEqual(t, got.Withdrawable(), int64(0))
	assert.Equal(t, int64(0), got.LockedInGame)

	// Every appended record carries a valid snapshot.
	for _, op := range d.ops.Ops() {
		assert.True(t, op.BalanceAfter.Valid(), "op %s left invalid balance %+v", op.Kind, op.BalanceAfter)
	}
}
