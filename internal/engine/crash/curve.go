package crash

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

var (
	one = decimal.New(100, -2)

	// maxMultiplier is the ceiling of the crash-point distribution
	// (1/(1-0.99x) with x < 1). Every round crashes at or below it, so the
	// curve never needs to report a larger value.
	maxMultiplier = decimal.New(10000, -2) // 100.00
)

// MultiplierAt evaluates the multiplier curve m(t) = exp(r * t^a) truncated
// to 2 decimal places. m(0) = 1.00 and the curve is non-decreasing for
// positive r and a. Truncation keeps the displayed value and the settlement
// value identical. The result is clamped to the crash-point ceiling: exp
// overflows to +Inf for large t, which decimal.NewFromFloat rejects, and any
// value past the ceiling is indistinguishable from it for settlement.
func MultiplierAt(elapsed time.Duration, growthRate, acceleration float64) decimal.Decimal {
	if elapsed <= 0 {
		return one
	}
	t := elapsed.Seconds()
	m := math.Exp(growthRate * math.Pow(t, acceleration))
	if m >= 100.0 {
		return maxMultiplier
	}
	return decimal.NewFromFloat(m).Truncate(2)
}

// RunDuration is the closed-form inverse of the curve: the elapsed time at
// which m(t) first reaches the crash point. An instant crash (1.00) runs for
// zero time.
func RunDuration(crashPoint decimal.Decimal, growthRate, acceleration float64) time.Duration {
	cp, _ := crashPoint.Float64()
	if cp <= 1.0 {
		return 0
	}
	t := math.Pow(math.Log(cp)/growthRate, 1.0/acceleration)
	return time.Duration(t * float64(time.Second))
}
