// Package testutil provides in-memory implementations of the persistence and
// infrastructure ports for tests. The transactor serializes transactions with
// a mutex, mirroring the row-lock semantics the postgres adapters get from
// SELECT ... FOR UPDATE.
package testutil

import (
	"context"
	"errors"
	"sync"
	"time"

	"fairwager/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// MemTx implements pgx.Tx by embedding; only Commit and Rollback are used by
// the code under test.
type MemTx struct {
	pgx.Tx
	mu   *sync.Mutex
	once sync.Once
}

func (t *MemTx) Commit(context.Context) error {
	t.once.Do(t.mu.Unlock)
	return nil
}

func (t *MemTx) Rollback(context.Context) error {
	t.once.Do(t.mu.Unlock)
	return nil
}

// MemTransactor hands out transactions that hold one global lock, so
// concurrent ledger operations serialize exactly as they would on a real
// account row lock.
type MemTransactor struct {
	mu sync.Mutex
}

func NewMemTransactor() *MemTransactor { return &MemTransactor{} }

func (f *MemTransactor) Begin(context.Context) (pgx.Tx, error) {
	f.mu.Lock()
	return &MemTx{mu: &f.mu}, nil
}

// MemAccountRepo is an in-memory ports.AccountRepository.
type MemAccountRepo struct {
	mu       sync.RWMutex
	accounts map[uuid.UUID]*domain.Account
}

func NewMemAccountRepo() *MemAccountRepo {
	return &MemAccountRepo{accounts: make(map[uuid.UUID]*domain.Account)}
}

func (r *MemAccountRepo) Create(_ context.Context, a *domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *a
	r.accounts[a.ID] = &cp
	return nil
}

func (r *MemAccountRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.accounts[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (r *MemAccountRepo) GetByIDForUpdate(ctx context.Context, _ pgx.Tx, id uuid.UUID) (*domain.Account, error) {
	return r.GetByID(ctx, id)
}

func (r *MemAccountRepo) UpdateBalances(_ context.Context, _ pgx.Tx, id uuid.UUID, b domain.BalanceSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.accounts[id]
	if !ok {
		return errors.New("account not found")
	}
	a.Spendable = b.Spendable
	a.LockedInGame = b.LockedInGame
	a.LockedForSettlement = b.LockedForSettlement
	a.UpdatedAt = time.Now().UTC()
	return nil
}

// Seed inserts an account with a starting spendable balance and returns it.
func (r *MemAccountRepo) Seed(spendable int64) *domain.Account {
	a := &domain.Account{
		ID:        uuid.New(),
		Address:   "addr-" + uuid.NewString()[:8],
		Spendable: spendable,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.accounts[a.ID] = a
	return a
}

// MemOpRepo is an in-memory ports.OperationRepository.
type MemOpRepo struct {
	mu  sync.RWMutex
	ops []*domain.LedgerOperation
}

func NewMemOpRepo() *MemOpRepo { return &MemOpRepo{} }

func (r *MemOpRepo) Create(_ context.Context, _ pgx.Tx, op *domain.LedgerOperation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *op
	r.ops = append(r.ops, &cp)
	return nil
}

func (r *MemOpRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.LedgerOperation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, op := range r.ops {
		if op.ID == id {
			cp := *op
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *MemOpRepo) ListPending(_ context.Context, limit int) ([]domain.LedgerOperation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.LedgerOperation
	for _, op := range r.ops {
		if op.Status == domain.OpStatusPending {
			out = append(out, *op)
			if len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

func (r *MemOpRepo) ListByAccount(_ context.Context, accountID uuid.UUID, limit int) ([]domain.LedgerOperation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.LedgerOperation
	for i := len(r.ops) - 1; i >= 0 && len(out) < limit; i-- {
		if r.ops[i].AccountID == accountID {
			out = append(out, *r.ops[i])
		}
	}
	return out, nil
}

func (r *MemOpRepo) MarkSettled(_ context.Context, _ pgx.Tx, id uuid.UUID, attempts int) error {
	return r.setStatus(id, domain.OpStatusSettled, attempts, nil)
}

func (r *MemOpRepo) MarkFailed(_ context.Context, _ pgx.Tx, id uuid.UUID, attempts int, reason string) error {
	return r.setStatus(id, domain.OpStatusFailed, attempts, &reason)
}

func (r *MemOpRepo) setStatus(id uuid.UUID, status domain.OperationStatus, attempts int, reason *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, op := range r.ops {
		if op.ID == id {
			op.Status = status
			op.Attempts = attempts
			op.LastError = reason
			now := time.Now().UTC()
			op.SettledAt = &now
			return nil
		}
	}
	return errors.New("operation not found")
}

// Ops returns a copy of all recorded operations.
func (r *MemOpRepo) Ops() []domain.LedgerOperation {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.LedgerOperation, 0, len(r.ops))
	for _, op := range r.ops {
		out = append(out, *op)
	}
	return out
}

// MemRoundRepo is an in-memory ports.RoundRepository.
type MemRoundRepo struct {
	mu        sync.Mutex
	Crash     []domain.CrashSnapshot
	Shootouts []domain.ShootoutSnapshot
}

func NewMemRoundRepo() *MemRoundRepo { return &MemRoundRepo{} }

func (r *MemRoundRepo) SaveCrash(_ context.Context, snap *domain.CrashSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Crash = append(r.Crash, *snap)
	return nil
}

func (r *MemRoundRepo) SaveShootout(_ context.Context, snap *domain.ShootoutSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Shootouts = append(r.Shootouts, *snap)
	return nil
}

// MemBus records published events; Publish never blocks.
type MemBus struct {
	mu     sync.Mutex
	events []domain.Event
}

func NewMemBus() *MemBus { return &MemBus{} }

func (b *MemBus) Publish(evt domain.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, evt)
}

// Events returns a copy of everything published so far.
func (b *MemBus) Events() []domain.Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]domain.Event, len(b.events))
	copy(out, b.events)
	return out
}

// ByType filters recorded events.
func (b *MemBus) ByType(t domain.EventType) []domain.Event {
	var out []domain.Event
	for _, e := range b.Events() {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

// MemSettlement is a scriptable ports.SettlementService.
type MemSettlement struct {
	mu        sync.Mutex
	Err       error // returned by every Transfer when set
	FailFirst int   // fail this many calls, then succeed
	calls     int
}

func (s *MemSettlement) Transfer(_ context.Context, _, _ string, _ int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.Err != nil {
		return s.Err
	}
	if s.calls <= s.FailFirst {
		return errors.New("settlement layer unavailable")
	}
	return nil
}

// Calls returns how many transfers were attempted.
func (s *MemSettlement) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// MemSeedStore is an in-memory ports.SeedStore.
type MemSeedStore struct {
	mu    sync.RWMutex
	seeds map[uuid.UUID]string
}

func NewMemSeedStore() *MemSeedStore {
	return &MemSeedStore{seeds: make(map[uuid.UUID]string)}
}

func (s *MemSeedStore) SetClientSeed(_ context.Context, playerID uuid.UUID, seed string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seeds[playerID] = seed
	return nil
}

func (s *MemSeedStore) GetClientSeed(_ context.Context, playerID uuid.UUID) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.seeds[playerID], nil
}

// MemResultCache is an in-memory ports.ResultCache. TTLs are ignored.
type MemResultCache struct {
	mu    sync.RWMutex
	items map[string][]byte
}

func NewMemResultCache() *MemResultCache {
	return &MemResultCache{items: make(map[string][]byte)}
}

func (c *MemResultCache) Get(_ context.Context, key string) ([]byte, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.items[key], nil
}

func (c *MemResultCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = append([]byte(nil), value...)
	return nil
}
