package fair

import (
	"encoding/binary"

	"github.com/shopspring/decimal"
)

// tailCompression keeps the payout curve off its singularity at x=1; the
// resulting maximum crash point is 100.00.
const tailCompression = 0.99

// drawBits is the size of the uniform draw taken from the digest.
const drawBits = 52

var one = decimal.New(100, -2) // 1.00

// CrashPointFrom maps a round digest to its crash multiplier.
//
// The leading 52 bits of the digest form a uniform draw h over [0, 2^52).
// Draws below houseEdge of the space bust instantly at 1.00; the rest are
// rescaled over the remaining probability mass and pushed through
// 1/(1 - 0.99x), giving a Pareto-like tail with the configured house edge.
// The result is truncated (not rounded) to 2 decimal places and never drops
// below 1.00.
func CrashPointFrom(digest [32]byte, houseEdge float64) decimal.Decimal {
	h := binary.BigEndian.Uint64(digest[:8]) >> (64 - drawBits)
	space := float64(uint64(1) << drawBits)

	if float64(h) < houseEdge*space {
		return one
	}

	x := (float64(h)/space - houseEdge) / (1 - houseEdge)
	cp := decimal.NewFromFloat(1 / (1 - tailCompression*x)).Truncate(2)
	if cp.LessThan(one) {
		return one
	}
	return cp
}

// WinDraw normalizes the leading 32 bits of the digest into [0,1). Shootout
// rounds compare it against the creator's win probability.
func WinDraw(digest [32]byte) float64 {
	v := binary.BigEndian.Uint32(digest[:4])
	return float64(v) / float64(uint64(1)<<32)
}
