package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the platform.
type Metrics struct {
	// Crash engine
	CrashRoundsStarted prometheus.Counter
	CrashRoundsCrashed prometheus.Counter
	CrashBetsPlaced    prometheus.Counter
	CrashCashouts      prometheus.Counter
	CrashPoint         prometheus.Histogram

	// Shootout engine
	ShootoutCreated   *prometheus.CounterVec
	ShootoutResolved  *prometheus.CounterVec
	ShootoutCancelled prometheus.Counter

	// Ledger
	LedgerOperations *prometheus.CounterVec
	LedgerRejections *prometheus.CounterVec

	// Settlement reconciler
	SettlementAttempts  prometheus.Counter
	SettlementSettled   prometheus.Counter
	SettlementReversals prometheus.Counter

	// Event bus
	PublishDrops prometheus.Counter
}

// NewMetrics creates all metrics registered against the given registerer.
// Tests pass a fresh prometheus.NewRegistry to avoid collisions.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		CrashRoundsStarted: factory.NewCounter(prometheus.CounterOpts{
			Name: "fw_crash_rounds_started_total",
			Help: "Crash rounds that entered the betting phase",
		}),
		CrashRoundsCrashed: factory.NewCounter(prometheus.CounterOpts{
			Name: "fw_crash_rounds_crashed_total",
			Help: "Crash rounds that reached their crash point",
		}),
		CrashBetsPlaced: factory.NewCounter(prometheus.CounterOpts{
			Name: "fw_crash_bets_placed_total",
			Help: "Accepted crash bets",
		}),
		CrashCashouts: factory.NewCounter(prometheus.CounterOpts{
			Name: "fw_crash_cashouts_total",
			Help: "Successful crash cashouts",
		}),
		CrashPoint: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "fw_crash_point",
			Help:    "Distribution of derived crash points",
			Buckets: []float64{1.0, 1.2, 1.5, 2, 3, 5, 10, 25, 50, 100},
		}),

		ShootoutCreated: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "fw_shootout_created_total",
			Help: "Shootout rounds created",
		}, []string{"mode"}),
		ShootoutResolved: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "fw_shootout_resolved_total",
			Help: "Shootout rounds resolved to a winner",
		}, []string{"mode", "winner"}),
		ShootoutCancelled: factory.NewCounter(prometheus.CounterOpts{
			Name: "fw_shootout_cancelled_total",
			Help: "Shootout rounds cancelled before an opponent joined",
		}),

		LedgerOperations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "fw_ledger_operations_total",
			Help: "Committed ledger operations",
		}, []string{"kind"}),
		LedgerRejections: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "fw_ledger_rejections_total",
			Help: "Ledger mutations rejected before commit",
		}, []string{"reason"}),

		SettlementAttempts: factory.NewCounter(prometheus.CounterOpts{
			Name: "fw_settlement_attempts_total",
			Help: "External transfer attempts by the reconciler",
		}),
		SettlementSettled: factory.NewCounter(prometheus.CounterOpts{
			Name: "fw_settlement_settled_total",
			Help: "Withdrawals confirmed settled",
		}),
		SettlementReversals: factory.NewCounter(prometheus.CounterOpts{
			Name: "fw_settlement_reversals_total",
			Help: "Withdrawals reversed after exhausting retries",
		}),

		PublishDrops: factory.NewCounter(prometheus.CounterOpts{
			Name: "fw_publish_drops_total",
			Help: "Events dropped on a full outbound buffer",
		}),
	}
}
