package fair

import (
	"crypto/subtle"
	"fmt"

	"github.com/shopspring/decimal"
)

// DefaultTolerance bounds the accepted difference between a claimed crash
// point and the recomputed one. It absorbs decimal-formatting differences
// between clients, nothing more.
var DefaultTolerance = decimal.New(1, -2) // 0.01

// VerifyResult is the externally-documented fairness contract. The shape is
// stable: {valid, reason?, recomputed_crash_point?}.
type VerifyResult struct {
	Valid      bool             `json:"valid"`
	Reason     string           `json:"reason,omitempty"`
	Recomputed *decimal.Decimal `json:"recomputed_crash_point,omitempty"`
}

// Verify recomputes a round outcome from published values and checks the
// claimed crash point against it. It depends on nothing but its arguments.
func Verify(serverSeed, serverSeedHash, clientSeed string, nonce uint64, claimed decimal.Decimal, houseEdge float64, tolerance decimal.Decimal) VerifyResult {
	recomputedHash := HashServerSeed(serverSeed)
	if subtle.ConstantTimeCompare([]byte(recomputedHash), []byte(serverSeedHash)) != 1 {
		return VerifyResult{
			Valid:  false,
			Reason: "server seed does not match published hash",
		}
	}

	sp := SeedPair{
		ServerSeed:     serverSeed,
		ServerSeedHash: serverSeedHash,
		ClientSeed:     clientSeed,
		Nonce:          nonce,
	}
	recomputed := CrashPointFrom(Combine(sp), houseEdge)

	if recomputed.Sub(claimed).Abs().GreaterThan(tolerance) {
		return VerifyResult{
			Valid:      false,
			Reason:     fmt.Sprintf("crash point mismatch: claimed %s, recomputed %s", claimed, recomputed),
			Recomputed: &recomputed,
		}
	}

	return VerifyResult{Valid: true, Recomputed: &recomputed}
}
