package dto

import (
	"testing"
	"time"

	"fairwager/internal/core/domain"

	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- SanitizeStruct tests ---

func TestSanitizeStruct_TrimsWhitespace(t *testing.T) {
	req := SessionRequest{Address: "  addr-0001  "}
	SanitizeStruct(&req)
	assert.Equal(t, "addr-0001", req.Address)
}

func TestSanitizeStruct_EscapesHTML(t *testing.T) {
	req := ClientSeedRequest{Seed: "<script>alert('x')</script>"}
	SanitizeStruct(&req)

	assert.Contains(t, req.Seed, "&lt;script&gt;")
	assert.NotContains(t, req.Seed, "<script>")
}

func TestSanitizeStruct_NonPointerIsNoOp(t *testing.T) {
	req := SessionRequest{Address: "  addr  "}
	SanitizeStruct(req) // value, not pointer
	assert.Equal(t, "  addr  ", req.Address)
}

// --- safe_id validator tests ---

func TestSafeID_Validation(t *testing.T) {
	validate := binding.Validator.Engine()
	require.NotNil(t, validate)

	cases := []struct {
		address string
		wantOK  bool
	}{
		{"player-0001", true},
		{"a.b_c-d", true},
		{"0xDEADbeef0123", true},
		{"has space", false},
		{"semi;colon", false},
		{"quote'", false},
	}
	for _, tc := range cases {
		req := SessionRequest{Address: tc.address}
		err := binding.Validator.ValidateStruct(&req)
		if tc.wantOK {
			assert.NoError(t, err, "address %q", tc.address)
		} else {
			assert.Error(t, err, "address %q", tc.address)
		}
	}
}

func TestVerifyRequest_HexFields(t *testing.T) {
	good := VerifyRequest{
		ServerSeed:     "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
		ServerSeedHash: "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb",
		ClientSeed:     "seed",
		CrashPoint:     "1.52",
		HouseEdge:      0.03,
	}
	assert.NoError(t, binding.Validator.ValidateStruct(&good))

	bad := good
	bad.ServerSeed = "zzzz" // not hex, wrong length
	assert.Error(t, binding.Validator.ValidateStruct(&bad))
}

// --- mapping tests ---

func TestToOperationResponse(t *testing.T) {
	roundID := uuid.New()
	settledAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	op := &domain.LedgerOperation{
		ID:             uuid.New(),
		AccountID:      uuid.New(),
		Kind:           domain.OpWithdrawalLock,
		AmountDelta:    -40_0000,
		BalanceAfter:   domain.BalanceSnapshot{Spendable: 100_0000, LockedForSettlement: 40_0000},
		RelatedRoundID: &roundID,
		Status:         domain.OpStatusSettled,
		CreatedAt:      time.Date(2025, 6, 1, 11, 59, 0, 0, time.UTC),
		SettledAt:      &settledAt,
	}

	resp := ToOperationResponse(op)
	assert.Equal(t, op.ID.String(), resp.ID)
	assert.Equal(t, "WITHDRAWAL_LOCK", resp.Kind)
	assert.Equal(t, int64(-40_0000), resp.AmountDelta)
	assert.Equal(t, "SETTLED", resp.Status)
	require.NotNil(t, resp.RoundID)
	assert.Equal(t, roundID.String(), *resp.RoundID)
	require.NotNil(t, resp.SettledAt)
	assert.Equal(t, "2025-06-01T12:00:00Z", *resp.SettledAt)
}

func TestToBalanceResponse_Withdrawable(t *testing.T) {
	a := &domain.Account{
		ID:                  uuid.New(),
		Address:             "addr-1",
		Spendable:           100_0000,
		LockedInGame:        25_0000,
		LockedForSettlement: 10_0000,
	}
	resp := ToBalanceResponse(a)
	assert.Equal(t, int64(65_0000), resp.Withdrawable)
}
