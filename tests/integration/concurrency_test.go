package integration

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConcurrentDeposits verifies that concurrent credits against the same
// account all land: no lost updates under row-lock serialization.
func TestConcurrentDeposits(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	token, _ := app.openSession(t, "concurrent-addr-1")

	const workers = 50
	var wg sync.WaitGroup
	var failures int64

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, _ := app.do(t, http.MethodPost, "/api/v1/wallet/deposit", token, map[string]any{"amount": 1_0000})
			if resp.StatusCode != 201 {
				atomic.AddInt64(&failures, 1)
			}
		}()
	}
	wg.Wait()

	require.Equal(t, int64(0), failures)
	b := app.balance(t, token)
	assert.Equal(t, int64(workers*1_0000), b.Spendable)
}

// TestConcurrentWithdrawalsNeverOverdraw hammers one account with more
// withdrawal requests than it can cover. The ledger must grant at most as
// many as the balance allows and reject the rest, never going negative.
func TestConcurrentWithdrawalsNeverOverdraw(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	token, _ := app.openSession(t, "concurrent-addr-2")
	resp, _ := app.do(t, http.MethodPost, "/api/v1/wallet/deposit", token, map[string]any{"amount": 10_0000})
	require.Equal(t, 201, resp.StatusCode)

	const workers = 20
	var wg sync.WaitGroup
	var granted, rejected int64

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, env := app.do(t, http.MethodPost, "/api/v1/wallet/withdraw", token, map[string]any{"amount": 1_0000})
			switch resp.StatusCode {
			case 201:
				atomic.AddInt64(&granted, 1)
			case 402:
				atomic.AddInt64(&rejected, 1)
				assert.Equal(t, "BAL_001", env.ErrorCode)
			default:
				t.Errorf("unexpected status %d", resp.StatusCode)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(10), granted, "exactly the covered withdrawals are granted")
	assert.Equal(t, int64(workers-10), rejected)

	b := app.balance(t, token)
	assert.Equal(t, int64(10_0000), b.LockedForSettlement)
	assert.Equal(t, int64(0), b.Withdrawable)

	// Settle them all; the balance drains to zero and no further.
	app.reconciler.Drain(context.Background())
	b = app.balance(t, token)
	assert.Equal(t, int64(0), b.Spendable)
	assert.Equal(t, int64(0), b.LockedForSettlement)
}
