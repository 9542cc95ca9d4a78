// Package settlement drains pending ledger operations through the external
// settlement layer. It is the only component allowed to talk to the external
// transfer service, and it never does so while an account lock is held.
package settlement

import (
	"context"
	"time"

	"fairwager/config"
	"fairwager/internal/core/domain"
	"fairwager/internal/core/ports"
	"fairwager/internal/observability"

	"github.com/rs/zerolog"
)

// Reconciler is the background worker. At-least-once: an operation left
// pending by a crash or cancellation is picked up again on the next poll;
// the status transitions themselves are idempotent.
type Reconciler struct {
	cfg      config.SettlementConfig
	accounts ports.AccountRepository
	ops      ports.OperationRepository
	ledger   ports.LedgerService
	transfer ports.SettlementService
	bus      ports.EventBus
	metrics  *observability.Metrics
	log      zerolog.Logger

	// custody is the house address outbound withdrawals are paid from.
	custody string
}

// NewReconciler creates a settlement reconciler.
func NewReconciler(
	cfg config.SettlementConfig,
	accounts ports.AccountRepository,
	ops ports.OperationRepository,
	ledger ports.LedgerService,
	transfer ports.SettlementService,
	bus ports.EventBus,
	metrics *observability.Metrics,
	log zerolog.Logger,
	custodyAddress string,
) *Reconciler {
	return &Reconciler{
		cfg:      cfg,
		accounts: accounts,
		ops:      ops,
		ledger:   ledger,
		transfer: transfer,
		bus:      bus,
		metrics:  metrics,
		log:      log.With().Str("worker", "settlement").Logger(),
		custody:  custodyAddress,
	}
}

// Run polls for pending operations until the context is cancelled.
func (r *Reconciler) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			r.Drain(ctx)
		}
	}
}

// Drain processes one batch of pending operations. Exposed so callers can
// force a pass without waiting for the poll interval.
func (r *Reconciler) Drain(ctx context.Context) {
	pending, err := r.ops.ListPending(ctx, r.cfg.BatchSize)
	if err != nil {
		r.log.Error().Err(err).Msg("listing pending operations")
		return
	}

	for i := range pending {
		if ctx.Err() != nil {
			return
		}
		r.process(ctx, &pending[i])
	}
}

func (r *Reconciler) process(ctx context.Context, op *domain.LedgerOperation) {
	if op.Kind != domain.OpWithdrawalLock {
		// Nothing else starts PENDING; a different kind here means a bug
		// upstream, and skipping keeps the audit trail intact.
		r.log.Error().
			Str("op_id", op.ID.String()).
			Str("kind", string(op.Kind)).
			Msg("unexpected pending operation kind")
		return
	}

	account, err := r.accounts.GetByID(ctx, op.AccountID)
	if err != nil || account == nil {
		r.log.Error().Err(err).Str("op_id", op.ID.String()).Msg("loading account for settlement")
		return
	}

	amount := -op.AmountDelta
	attempts := op.Attempts
	var lastErr error

	for attempts < r.cfg.MaxAttempts {
		attempts++
		r.metrics.SettlementAttempts.Inc()

		lastErr = r.transfer.Transfer(ctx, r.custody, account.Address, amount)
		if lastErr == nil {
			op.Attempts = attempts
			if err := r.ledger.ConfirmWithdrawal(ctx, op); err != nil {
				r.log.Error().Err(err).Str("op_id", op.ID.String()).Msg("confirming withdrawal")
				return
			}
			r.metrics.SettlementSettled.Inc()
			r.publish(domain.EventSettlementSettled, op)
			r.log.Info().
				Str("op_id", op.ID.String()).
				Int64("amount", amount).
				Int("attempts", attempts).
				Msg("withdrawal settled")
			return
		}

		r.log.Warn().Err(lastErr).
			Str("op_id", op.ID.String()).
			Int("attempt", attempts).
			Msg("transfer failed")

		select {
		case <-ctx.Done():
			// Leave the op pending; the next Run picks it up.
			return
		case <-time.After(r.cfg.RetryBackoff):
		}
	}

	// Retries exhausted: reverse the shadow lock. The player's spendable
	// balance ends exactly where it was before the request.
	op.Attempts = attempts
	if err := r.ledger.RefundFailedWithdrawal(ctx, op, lastErr.Error()); err != nil {
		r.log.Error().Err(err).Str("op_id", op.ID.String()).Msg("reversing failed withdrawal")
		return
	}
	r.metrics.SettlementReversals.Inc()
	r.publish(domain.EventSettlementFailed, op)
}

func (r *Reconciler) publish(t domain.EventType, op *domain.LedgerOperation) {
	accountID := op.AccountID
	r.bus.Publish(domain.Event{Type: t, AccountID: &accountID, Payload: op})
}
