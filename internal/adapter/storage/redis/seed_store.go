package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// Client seeds outlive the round that picks them up but not a stale session.
const clientSeedTTL = 24 * time.Hour

// SeedStore implements ports.SeedStore using Redis. Players set a client
// seed ahead of time; the next round they enter reads it here.
type SeedStore struct {
	client *goredis.Client
	prefix string
}

// NewSeedStore creates a new Redis-backed client seed store.
func NewSeedStore(client *goredis.Client) *SeedStore {
	return &SeedStore{
		client: client,
		prefix: "clientseed:",
	}
}

// SetClientSeed stores the player's chosen seed for upcoming rounds.
func (s *SeedStore) SetClientSeed(ctx context.Context, playerID uuid.UUID, seed string) error {
	err := s.client.Set(ctx, s.prefix+playerID.String(), seed, clientSeedTTL).Err()
	if err != nil {
		return fmt.Errorf("redis client seed set: %w", err)
	}
	return nil
}

// GetClientSeed returns the player's stored seed, or "" when unset.
func (s *SeedStore) GetClientSeed(ctx context.Context, playerID uuid.UUID) (string, error) {
	val, err := s.client.Get(ctx, s.prefix+playerID.String()).Result()
	if err != nil {
		if err == goredis.Nil {
			return "", nil
		}
		return "", fmt.Errorf("redis client seed get: %w", err)
	}
	return val, nil
}
