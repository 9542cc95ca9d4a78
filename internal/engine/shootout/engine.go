// Package shootout runs head-to-head and player-vs-house coin-flip rounds.
// One actor goroutine owns every live game; phase timers post advance
// commands back into the actor instead of mutating state themselves.
package shootout

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

// Engine implements ports.ShootoutService.
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

	// Owned by the Run goroutine.
	games map[uuid.UUID]*gameState
	nonce uint64
}

type gameState struct {
	id        uuid.UUID
	phase     domain.ShootoutPhase
	mode      domain.ShootoutMode
	seed      fair.SeedPair
	wager     int64
	creator   uuid.UUID
	opponent  *uuid.UUID
	winner    *domain.Side
	pot       int64
	rake      int64
	createdAt time.Time
	settledAt *time.Time
}

// NewEngine creates a shootout engine. Run must be started before any of the
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
		log:      log.With().Str("engine", "shootout").Logger(),
		commands: make(chan any, commandBuffer),
		done:     make(chan struct{}),
		games:    make(map[uuid.UUID]*gameState),
	}
}

type createCmd struct {
	ctx     context.Context
	creator uuid.UUID
	wager   int64
	mode    domain.ShootoutMode
	reply   chan gameReply
}

type joinCmd struct {
	ctx      context.Context
	gameID   uuid.UUID
	opponent uuid.UUID
	reply    chan gameReply
}

type cancelCmd struct {
	ctx       context.Context
	gameID    uuid.UUID
	requester uuid.UUID
	reply     chan error
}

type getCmd struct {
	gameID uuid.UUID
	reply  chan *domain.ShootoutSnapshot
}

type lobbyCmd struct {
	reply chan []domain.ShootoutSnapshot
}

type advanceCmd struct {
	gameID uuid.UUID
	to     domain.ShootoutPhase
}

type gameReply struct {
	snap *domain.ShootoutSnapshot
	err  error
}

// Run drives the actor until the context is cancelled.
func (e *Engine) Run(ctx context.Context) error {
	defer close(e.done)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case cmd := <-e.commands:
			e.handle(ctx, cmd)
		}
	}
}

// CreateGame locks the creator's wager and opens a new round. PvP games wait
// in the lobby; house games go straight to the countdown.
func (e *Engine) CreateGame(ctx context.Context, creator uuid.UUID, wager int64, mode domain.ShootoutMode) (*domain.ShootoutSnapshot, error) {
	cmd := createCmd{ctx: ctx, creator: creator, wager: wager, mode: mode, reply: make(chan gameReply, 1)}
	return e.roundTrip(ctx, cmd, cmd.reply)
}

// JoinGame locks the opponent's wager and starts the countdown.
func (e *Engine) JoinGame(ctx context.Context, gameID, opponent uuid.UUID) (*domain.ShootoutSnapshot, error) {
	cmd := joinCmd{ctx: ctx, gameID: gameID, opponent: opponent, reply: make(chan gameReply, 1)}
	return e.roundTrip(ctx, cmd, cmd.reply)
}

// CancelGame releases the creator's lock on a game nobody joined.
func (e *Engine) CancelGame(ctx context.Context, gameID, requester uuid.UUID) error {
	cmd := cancelCmd{ctx: ctx, gameID: gameID, requester: requester, reply: make(chan error, 1)}
	select {
	case e.commands <- cmd:
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case err := <-cmd.reply:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// GetGame returns a live game, or a settled one from the grace-window cache.
func (e *Engine) GetGame(ctx context.Context, gameID uuid.UUID) (*domain.ShootoutSnapshot, error) {
	cmd := getCmd{gameID: gameID, reply: make(chan *domain.ShootoutSnapshot, 1)}
	select {
	case e.commands <- cmd:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	var snap *domain.ShootoutSnapshot
	select {
	case snap = <-cmd.reply:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	if snap != nil {
		return snap, nil
	}

	data, err := e.cache.Get(ctx, resultKey(gameID))
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, apperror.ErrRoundNotFound()
	}
	cached := &domain.ShootoutSnapshot{}
	if err := json.Unmarshal(data, cached); err != nil {
		return nil, err
	}
	return cached, nil
}

// Lobby lists PvP games waiting for an opponent.
func (e *Engine) Lobby() []domain.ShootoutSnapshot {
	cmd := lobbyCmd{reply: make(chan []domain.ShootoutSnapshot, 1)}
	select {
	case e.commands <- cmd:
	case <-e.done:
		return nil
	}
	select {
	case snaps := <-cmd.reply:
		return snaps
	case <-e.done:
		return nil
	}
}

func (e *Engine) roundTrip(ctx context.Context, cmd any, reply chan gameReply) (*domain.ShootoutSnapshot, error) {
	select {
	case e.commands <- cmd:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	select {
	case r := <-reply:
		return r.snap, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func resultKey(gameID uuid.UUID) string {
	return "shootout:" + gameID.String()
}

// --- actor internals ---

func (e *Engine) handle(ctx context.Context, cmd any) {
	switch c := cmd.(type) {
	case createCmd:
		c.reply <- e.handleCreate(ctx, c)
	case joinCmd:
		c.reply <- e.handleJoin(ctx, c)
	case cancelCmd:
		c.reply <- e.handleCancel(c)
	case getCmd:
		if g, ok := e.games[c.gameID]; ok {
			c.reply <- e.snapshot(g, g.phase == domain.ShootoutSettled)
		} else {
			c.reply <- nil
		}
	case lobbyCmd:
		c.reply <- e.lobby()
	case advanceCmd:
		e.handleAdvance(ctx, c)
	}
}

func (e *Engine) handleCreate(ctx context.Context, c createCmd) gameReply {
	if c.wager < e.cfg.MinBet || c.wager > e.cfg.MaxBet {
		return gameReply{err: apperror.ErrBetLimit()}
	}

	e.nonce++
	clientSeed, err := e.seeds.GetClientSeed(c.ctx, c.creator)
	if err != nil {
		clientSeed = ""
	}
	seed := fair.NewSeedPair("", clientSeed, e.nonce)

	g := &gameState{
		id:        uuid.New(),
		phase:     domain.ShootoutLobby,
		mode:      c.mode,
		seed:      seed,
		wager:     c.wager,
		creator:   c.creator,
		createdAt: time.Now(),
	}

	if err := e.ledger.Lock(c.ctx, c.creator, c.wager, g.id); err != nil {
		return gameReply{err: err}
	}
	e.games[g.id] = g

	e.metrics.ShootoutCreated.WithLabelValues(string(c.mode)).Inc()
	e.log.Info().
		Str("game_id", g.id.String()).
		Str("mode", string(c.mode)).
		Msg("game created")

	if c.mode == domain.ModeHouse {
		// Nothing to wait for: the house always accepts.
		g.phase = domain.ShootoutCountdown
		e.schedule(ctx, e.cfg.Countdown, advanceCmd{gameID: g.id, to: domain.ShootoutResolving})
	}

	e.persist(ctx, g)
	snap := e.snapshot(g, false)
	e.publish(domain.EventShootoutCreated, g, snap)
	return gameReply{snap: snap}
}

func (e *Engine) handleJoin(ctx context.Context, c joinCmd) gameReply {
	g, ok := e.games[c.gameID]
	if !ok {
		return gameReply{err: apperror.ErrRoundNotFound()}
	}
	if g.phase != domain.ShootoutLobby {
		return gameReply{err: apperror.ErrWrongPhase(string(domain.ShootoutLobby))}
	}
	if c.opponent == g.creator {
		return gameReply{err: apperror.ErrSelfJoin()}
	}

	if err := e.ledger.Lock(c.ctx, c.opponent, g.wager, g.id); err != nil {
		return gameReply{err: err}
	}

	opponent := c.opponent
	g.opponent = &opponent
	g.phase = domain.ShootoutCountdown
	e.schedule(ctx, e.cfg.Countdown, advanceCmd{gameID: g.id, to: domain.ShootoutResolving})

	e.persist(ctx, g)
	snap := e.snapshot(g, false)
	e.publish(domain.EventShootoutJoined, g, snap)
	return gameReply{snap: snap}
}

func (e *Engine) handleCancel(c cancelCmd) error {
	g, ok := e.games[c.gameID]
	if !ok {
		return apperror.ErrRoundNotFound()
	}
	if g.phase != domain.ShootoutLobby {
		return apperror.ErrWrongPhase(string(domain.ShootoutLobby))
	}
	if c.requester != g.creator {
		return apperror.ErrNotCreator()
	}

	if err := e.ledger.Release(c.ctx, g.creator, g.wager, g.id); err != nil {
		return err
	}
	g.phase = domain.ShootoutCancelled
	delete(e.games, g.id)

	e.metrics.ShootoutCancelled.Inc()
	e.persist(c.ctx, g)
	e.publish(domain.EventShootoutCancelled, g, e.snapshot(g, false))
	return nil
}

func (e *Engine) handleAdvance(ctx context.Context, c advanceCmd) {
	g, ok := e.games[c.gameID]
	if !ok {
		return // cancelled before the timer fired
	}

	switch {
	case c.to == domain.ShootoutResolving && g.phase == domain.ShootoutCountdown:
		e.resolve(ctx, g)
	case c.to == domain.ShootoutSettled && g.phase == domain.ShootoutResolving:
		e.settle(ctx, g)
	default:
		// Stale timer for a phase the game already left.
		e.log.Warn().
			Str("game_id", g.id.String()).
			Str("phase", string(g.phase)).
			Str("target", string(c.to)).
			Msg("dropping stale phase advance")
	}
}

// resolve fixes the outcome. The spin delay that follows is cosmetic; the
// winner cannot change after this point.
func (e *Engine) resolve(ctx context.Context, g *gameState) {
	draw := fair.WinDraw(fair.Combine(g.seed))

	p := 0.5
	if g.mode == domain.ModeHouse {
		// House edge lives in the win probability; the payout is a full
		// double-up.
		p = e.cfg.RTP / 2
	}

	winner := domain.SideOpponent
	if draw < p {
		winner = domain.SideCreator
	}
	g.winner = &winner
	g.phase = domain.ShootoutResolving

	e.schedule(ctx, e.cfg.SpinDelay, advanceCmd{gameID: g.id, to: domain.ShootoutSettled})

	e.persist(ctx, g)
	e.publish(domain.EventShootoutResolved, g, e.snapshot(g, false))
}

func (e *Engine) settle(ctx context.Context, g *gameState) {
	g.pot = 2 * g.wager
	if g.mode == domain.ModePvP {
		// Rake is taken from the pot, not the win probability.
		g.rake = decimal.NewFromInt(g.pot).
			Mul(decimal.NewFromFloat(1 - e.cfg.RTP)).
			Floor().IntPart()
	}
	payout := g.pot - g.rake

	var err error
	switch {
	case *g.winner == domain.SideCreator:
		err = e.ledger.SettleWin(ctx, g.creator, g.wager, payout, g.id)
		if err == nil && g.opponent != nil {
			err = e.ledger.SettleLoss(ctx, *g.opponent, g.wager, g.id)
		}
	case g.opponent != nil:
		err = e.ledger.SettleWin(ctx, *g.opponent, g.wager, payout, g.id)
		if err == nil {
			err = e.ledger.SettleLoss(ctx, g.creator, g.wager, g.id)
		}
	default:
		// House won a house-mode game.
		err = e.ledger.SettleLoss(ctx, g.creator, g.wager, g.id)
	}
	if err != nil {
		e.log.Error().Err(err).Str("game_id", g.id.String()).Msg("settlement failed")
	}

	now := time.Now()
	g.settledAt = &now
	g.phase = domain.ShootoutSettled
	delete(e.games, g.id)

	e.metrics.ShootoutResolved.WithLabelValues(string(g.mode), string(*g.winner)).Inc()
	e.log.Info().
		Str("game_id", g.id.String()).
		Str("winner", string(*g.winner)).
		Int64("payout", payout).
		Int64("rake", g.rake).
		Msg("game settled")

	// Reveal the seed so the result is verifiable.
	final := e.snapshot(g, true)
	e.persist(ctx, g)
	e.cacheResult(ctx, final)
	e.publish(domain.EventShootoutSettled, g, final)
}

func (e *Engine) lobby() []domain.ShootoutSnapshot {
	var waiting []domain.ShootoutSnapshot
	for _, g := range e.games {
		if g.phase == domain.ShootoutLobby {
			waiting = append(waiting, *e.snapshot(g, false))
		}
	}
	return waiting
}

// schedule posts an advance command after d without blocking the actor. The
// send aborts if the engine shuts down first.
func (e *Engine) schedule(ctx context.Context, d time.Duration, cmd advanceCmd) {
	time.AfterFunc(d, func() {
		select {
		case e.commands <- cmd:
		case <-ctx.Done():
		}
	})
}

func (e *Engine) snapshot(g *gameState, reveal bool) *domain.ShootoutSnapshot {
	snap := &domain.ShootoutSnapshot{
		ID:         g.id,
		Phase:      g.phase,
		Mode:       g.mode,
		Seed:       g.seed.Public(),
		Wager:      g.wager,
		Creator:    g.creator,
		WinnerSide: g.winner,
		Pot:        g.pot,
		Rake:       g.rake,
		CreatedAt:  g.createdAt,
		SettledAt:  g.settledAt,
	}
	if g.opponent != nil {
		opp := *g.opponent
		snap.Opponent = &opp
	}
	if reveal {
		snap.Seed = g.seed
	}
	return snap
}

func (e *Engine) persist(ctx context.Context, g *gameState) {
	if err := e.rounds.SaveShootout(ctx, e.snapshot(g, g.phase == domain.ShootoutSettled)); err != nil {
		e.log.Warn().Err(err).Str("game_id", g.id.String()).Msg("round persist failed")
	}
}

func (e *Engine) cacheResult(ctx context.Context, snap *domain.ShootoutSnapshot) {
	data, err := json.Marshal(snap)
	if err != nil {
		e.log.Warn().Err(err).Msg("round result marshal failed")
		return
	}
	if err := e.cache.Set(ctx, resultKey(snap.ID), data, e.cfg.GraceWindow); err != nil {
		e.log.Warn().Err(err).Msg("round result cache failed")
	}
}

func (e *Engine) publish(t domain.EventType, g *gameState, payload any) {
	roundID := g.id
	e.bus.Publish(domain.Event{Type: t, RoundID: &roundID, Payload: payload})
}
