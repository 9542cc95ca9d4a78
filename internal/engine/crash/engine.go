// Package crash runs the shared crash round: a single actor goroutine owns
// the round state and serializes bets, cashouts, ticks, and phase timers.
// Nothing outside the actor ever touches a live round.
package crash

import (
	"context"
	"encoding/json"
	"time"

	"fairwager/config"
	"fairwager/internal/core/domain"
	"fairwager/internal/core/ports"
	"fairwager/internal/fair"
	"fairwager/internal/observability"
	"fairwager/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const commandBuffer = 64

// Engine implements ports.CrashService. All round state lives behind the
// command channel; public methods are thin envelopes around it.
type Engine struct {
	cfg     config.GameConfig
	ledger  ports.LedgerService
	rounds  ports.RoundRepository
	cache   ports.ResultCache
	seeds   ports.SeedStore
	bus     ports.EventBus
	metrics *observability.Metrics
	log     zerolog.Logger

	commands chan any
	done     chan struct{} // closed when Run returns

	// Everything below is owned by the Run goroutine.
	cur            *roundState
	nonce          uint64
	nextClientSeed string
	phaseTimer     *time.Timer
}

type roundState struct {
	id         uuid.UUID
	phase      domain.CrashPhase
	seed       fair.SeedPair
	crashPoint decimal.Decimal
	startTime  time.Time
	positions  map[uuid.UUID]*domain.Position
	createdAt  time.Time
}

// NewEngine creates a crash engine. Run must be started before any of the
// service methods are called.
func NewEngine(
	cfg config.GameConfig,
	ledger ports.LedgerService,
	rounds ports.RoundRepository,
	cache ports.ResultCache,
	seeds ports.SeedStore,
	bus ports.EventBus,
	metrics *observability.Metrics,
	log zerolog.Logger,
) *Engine {
	return &Engine{
		cfg:      cfg,
		ledger:   ledger,
		rounds:   rounds,
		cache:    cache,
		seeds:    seeds,
		bus:      bus,
		metrics:  metrics,
		log:      log.With().Str("engine", "crash").Logger(),
		commands: make(chan any, commandBuffer),
		done:     make(chan struct{}),
	}
}

type placeBetCmd struct {
	ctx      context.Context
	playerID uuid.UUID
	wager    int64
	reply    chan placeBetReply
}

type placeBetReply struct {
	snap *domain.CrashSnapshot
	err  error
}

type cashOutCmd struct {
	ctx      context.Context
	playerID uuid.UUID
	reply    chan cashOutReply
}

type cashOutReply struct {
	pos *domain.Position
	err error
}

type snapshotCmd struct {
	reply chan *domain.CrashSnapshot
}

// Run drives the round loop until the context is cancelled. Exactly one Run
// goroutine may exist per engine.
func (e *Engine) Run(ctx context.Context) error {
	defer close(e.done)
	e.startRound(ctx)
	e.phaseTimer = time.NewTimer(e.cfg.BettingWindow)
	defer e.phaseTimer.Stop()

	ticker := time.NewTicker(e.cfg.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-e.phaseTimer.C:
			e.advance(ctx)
		case <-ticker.C:
			e.tick()
		case cmd := <-e.commands:
			e.handle(cmd)
		}
	}
}

// PlaceBet locks the wager and records a position in the current round.
// Valid only during the betting window, one bet per player per round.
func (e *Engine) PlaceBet(ctx context.Context, playerID uuid.UUID, wager int64) (*domain.CrashSnapshot, error) {
	cmd := placeBetCmd{ctx: ctx, playerID: playerID, wager: wager, reply: make(chan placeBetReply, 1)}
	select {
	case e.commands <- cmd:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	select {
	case r := <-cmd.reply:
		return r.snap, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// CashOut settles the caller's position at the server-recomputed multiplier.
// Exactly-once: a second call fails with AlreadySettled.
func (e *Engine) CashOut(ctx context.Context, playerID uuid.UUID) (*domain.Position, error) {
	cmd := cashOutCmd{ctx: ctx, playerID: playerID, reply: make(chan cashOutReply, 1)}
	select {
	case e.commands <- cmd:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	select {
	case r := <-cmd.reply:
		return r.pos, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// CurrentRound returns the public view of the live round: crash point and
// server seed stay hidden until the round crashes.
func (e *Engine) CurrentRound() *domain.CrashSnapshot {
	cmd := snapshotCmd{reply: make(chan *domain.CrashSnapshot, 1)}
	select {
	case e.commands <- cmd:
	case <-e.done:
		return nil
	}
	select {
	case snap := <-cmd.reply:
		return snap
	case <-e.done:
		return nil
	}
}

// RoundResult returns a finished round from the grace-window cache, or the
// public view of the round if it is still live.
func (e *Engine) RoundResult(ctx context.Context, roundID uuid.UUID) (*domain.CrashSnapshot, error) {
	data, err := e.cache.Get(ctx, resultKey(roundID))
	if err != nil {
		return nil, err
	}
	if data != nil {
		snap := &domain.CrashSnapshot{}
		if err := json.Unmarshal(data, snap); err != nil {
			return nil, err
		}
		return snap, nil
	}

	if cur := e.CurrentRound(); cur != nil && cur.ID == roundID {
		return cur, nil
	}
	return nil, apperror.ErrRoundNotFound()
}

func resultKey(roundID uuid.UUID) string {
	return "crash:" + roundID.String()
}

// --- actor internals ---

func (e *Engine) handle(cmd any) {
	switch c := cmd.(type) {
	case placeBetCmd:
		c.reply <- e.handlePlaceBet(c)
	case cashOutCmd:
		c.reply <- e.handleCashOut(c)
	case snapshotCmd:
		c.reply <- e.snapshot(false)
	}
}

func (e *Engine) startRound(ctx context.Context) {
	e.nonce++
	clientSeed := e.nextClientSeed
	e.nextClientSeed = ""

	seed := fair.NewSeedPair("", clientSeed, e.nonce)
	crashPoint := fair.CrashPointFrom(fair.Combine(seed), e.cfg.HouseEdge)

	e.cur = &roundState{
		id:         uuid.New(),
		phase:      domain.CrashBetting,
		seed:       seed,
		crashPoint: crashPoint,
		positions:  make(map[uuid.UUID]*domain.Position),
		createdAt:  time.Now(),
	}

	e.metrics.CrashRoundsStarted.Inc()
	e.log.Info().
		Str("round_id", e.cur.id.String()).
		Str("seed_hash", seed.ServerSeedHash).
		Msg("betting open")

	e.persist(ctx)
	e.publish(domain.EventCrashBettingOpen, e.snapshot(false))
}

func (e *Engine) advance(ctx context.Context) {
	switch e.cur.phase {
	case domain.CrashBetting:
		e.startRun(ctx)
	case domain.CrashRunning:
		e.crash(ctx)
		e.startRound(ctx)
		e.phaseTimer.Reset(e.cfg.BettingWindow)
	}
}

func (e *Engine) startRun(ctx context.Context) {
	e.cur.phase = domain.CrashRunning
	e.cur.startTime = time.Now()

	runFor := RunDuration(e.cur.crashPoint, e.cfg.GrowthRate, e.cfg.Acceleration)
	e.phaseTimer.Reset(runFor)

	e.log.Info().
		Str("round_id", e.cur.id.String()).
		Int("positions", len(e.cur.positions)).
		Msg("round running")

	e.persist(ctx)
	e.publish(domain.EventCrashStarted, e.snapshot(false))
}

func (e *Engine) crash(ctx context.Context) {
	e.cur.phase = domain.CrashCrashed

	for _, pos := range e.cur.positions {
		if pos.Settled() {
			continue
		}
		if err := e.ledger.SettleLoss(ctx, pos.PlayerID, pos.Wager, e.cur.id); err != nil {
			e.log.Error().Err(err).
				Str("round_id", e.cur.id.String()).
				Str("player_id", pos.PlayerID.String()).
				Msg("loss settlement failed")
		}
	}

	cp, _ := e.cur.crashPoint.Float64()
	e.metrics.CrashRoundsCrashed.Inc()
	e.metrics.CrashPoint.Observe(cp)

	// Reveal the full seed so observers can verify the round.
	final := e.snapshot(true)
	e.log.Info().
		Str("round_id", e.cur.id.String()).
		Str("crash_point", e.cur.crashPoint.String()).
		Msg("round crashed")

	e.persist(ctx)
	e.cacheResult(ctx, final)
	e.publish(domain.EventCrashCrashed, final)
}

func (e *Engine) tick() {
	if e.cur == nil || e.cur.phase != domain.CrashRunning {
		return
	}
	elapsed := time.Since(e.cur.startTime)
	m := MultiplierAt(elapsed, e.cfg.GrowthRate, e.cfg.Acceleration)
	if m.GreaterThan(e.cur.crashPoint) {
		m = e.cur.crashPoint
	}
	e.publish(domain.EventCrashTick, tickPayload{
		Multiplier: m,
		Elapsed:    elapsed.Seconds(),
	})
}

type tickPayload struct {
	Multiplier decimal.Decimal `json:"multiplier"`
	Elapsed    float64         `json:"elapsed_seconds"`
}

func (e *Engine) handlePlaceBet(c placeBetCmd) placeBetReply {
	if e.cur.phase != domain.CrashBetting {
		return placeBetReply{err: apperror.ErrWrongPhase(string(domain.CrashBetting))}
	}
	if c.wager < e.cfg.MinBet || c.wager > e.cfg.MaxBet {
		return placeBetReply{err: apperror.ErrBetLimit()}
	}
	if _, exists := e.cur.positions[c.playerID]; exists {
		return placeBetReply{err: apperror.ErrBetAlreadyPlaced()}
	}

	if err := e.ledger.Lock(c.ctx, c.playerID, c.wager, e.cur.id); err != nil {
		return placeBetReply{err: err}
	}

	e.cur.positions[c.playerID] = &domain.Position{
		PlayerID: c.playerID,
		Wager:    c.wager,
		PlacedAt: time.Now(),
	}

	// First bettor with a stored client seed contributes it to the next
	// round; this round's seed pair is already committed.
	if e.nextClientSeed == "" {
		if seed, err := e.seeds.GetClientSeed(c.ctx, c.playerID); err == nil && seed != "" {
			e.nextClientSeed = seed
		}
	}

	e.metrics.CrashBetsPlaced.Inc()
	snap := e.snapshot(false)
	e.publish(domain.EventCrashBetPlaced, snap)
	return placeBetReply{snap: snap}
}

func (e *Engine) handleCashOut(c cashOutCmd) cashOutReply {
	if e.cur.phase != domain.CrashRunning {
		return cashOutReply{err: apperror.ErrWrongPhase(string(domain.CrashRunning))}
	}
	pos, ok := e.cur.positions[c.playerID]
	if !ok {
		return cashOutReply{err: apperror.ErrRoundNotFound()}
	}
	if pos.Settled() {
		return cashOutReply{err: apperror.ErrAlreadySettled()}
	}

	// Never trust a client multiplier: recompute from the server clock. A
	// request that lands past the crash point loses to the crash timer.
	m := MultiplierAt(time.Since(e.cur.startTime), e.cfg.GrowthRate, e.cfg.Acceleration)
	if m.GreaterThanOrEqual(e.cur.crashPoint) {
		return cashOutReply{err: apperror.ErrWrongPhase(string(domain.CrashRunning))}
	}

	payout := decimal.NewFromInt(pos.Wager).Mul(m).Floor().IntPart()
	if err := e.ledger.SettleWin(c.ctx, c.playerID, pos.Wager, payout, e.cur.id); err != nil {
		return cashOutReply{err: err}
	}

	pos.CashedOutAt = &m
	pos.Payout = &payout

	e.metrics.CrashCashouts.Inc()
	e.publish(domain.EventCrashCashOut, *pos)

	out := *pos
	return cashOutReply{pos: &out}
}

// snapshot copies the live round into its serializable form. reveal controls
// whether the server seed and crash point are included.
func (e *Engine) snapshot(reveal bool) *domain.CrashSnapshot {
	if e.cur == nil {
		return nil
	}
	snap := &domain.CrashSnapshot{
		ID:        e.cur.id,
		Phase:     e.cur.phase,
		Seed:      e.cur.seed.Public(),
		Positions: make([]domain.Position, 0, len(e.cur.positions)),
		CreatedAt: e.cur.createdAt,
	}
	if !e.cur.startTime.IsZero() {
		t := e.cur.startTime
		snap.StartTime = &t
	}
	if reveal {
		snap.Seed = e.cur.seed
		cp := e.cur.crashPoint
		snap.CrashPoint = &cp
	}
	for _, pos := range e.cur.positions {
		snap.Positions = append(snap.Positions, *pos)
	}
	return snap
}

func (e *Engine) persist(ctx context.Context) {
	if err := e.rounds.SaveCrash(ctx, e.snapshot(e.cur.phase == domain.CrashCrashed)); err != nil {
		e.log.Warn().Err(err).Str("round_id", e.cur.id.String()).Msg("round persist failed")
	}
}

func (e *Engine) cacheResult(ctx context.Context, snap *domain.CrashSnapshot) {
	data, err := json.Marshal(snap)
	if err != nil {
		e.log.Warn().Err(err).Msg("round result marshal failed")
		return
	}
	if err := e.cache.Set(ctx, resultKey(snap.ID), data, e.cfg.GraceWindow); err != nil {
		e.log.Warn().Err(err).Msg("round result cache failed")
	}
}

func (e *Engine) publish(t domain.EventType, payload any) {
	roundID := e.cur.id
	e.bus.Publish(domain.Event{Type: t, RoundID: &roundID, Payload: payload})
}
