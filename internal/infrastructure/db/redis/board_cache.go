package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const boardTTL = 30 * time.Second

// BoardCache caches the rendered task board per user.
// Key format: board:<user_id>
type BoardCache struct {
	client *redis.Client
}

// NewBoardCache creates a BoardCache wrapping the given Redis client.
func NewBoardCache(client *redis.Client) *BoardCache {
	return &BoardCache{client: client}
}

// Get returns the cached board payload for ownerID; ok is false on a miss.
func (c *BoardCache) Get(ctx context.Context, ownerID string) ([]byte, bool, error) {
	payload, err := c.client.Get(ctx, c.key(ownerID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("board cache get: %w", err)
	}
	return payload, true, nil
}

// Set stores the board payload (expires after boardTTL).
func (c *BoardCache) Set(ctx context.Context, ownerID string, payload []byte) error {
	return c.client.Set(ctx, c.key(ownerID), payload, boardTTL).Err()
}

// Invalidate drops the cached board after any task mutation.
func (c *BoardCache) Invalidate(ctx context.Context, ownerID string) error {
	return c.client.Del(ctx, c.key(ownerID)).Err()
}

func (c *BoardCache) key(ownerID string) string {
	return "board:" + ownerID
}
