package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"fairwager/internal/core/domain"
)

// RoundRepo implements ports.RoundRepository. Round snapshots are written as
// JSONB documents: rounds are read back whole for audit and late result
// queries, never queried field-by-field.
type RoundRepo struct {
	pool Pool
}

// NewRoundRepo creates a new RoundRepo.
func NewRoundRepo(pool Pool) *RoundRepo {
	return &RoundRepo{pool: pool}
}

// SaveCrash upserts a crash round snapshot. The engine saves once per phase
// transition, so the last write holds the terminal state.
func (r *RoundRepo) SaveCrash(ctx context.Context, snap *domain.CrashSnapshot) error {
	return r.save(ctx, "crash", snap.ID.String(), string(snap.Phase), snap)
}

// SaveShootout upserts a shootout round snapshot.
func (r *RoundRepo) SaveShootout(ctx context.Context, snap *domain.ShootoutSnapshot) error {
	return r.save(ctx, "shootout", snap.ID.String(), string(snap.Phase), snap)
}

func (r *RoundRepo) save(ctx context.Context, game, id, phase string, snap any) error {
	doc, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal %s round: %w", game, err)
	}

	query := `INSERT INTO rounds (id, game, phase, snapshot, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (id) DO UPDATE SET phase = $3, snapshot = $4, updated_at = NOW()`

	if _, err := r.pool.Exec(ctx, query, id, game, phase, doc); err != nil {
		return fmt.Errorf("upsert %s round: %w", game, err)
	}
	return nil
}
