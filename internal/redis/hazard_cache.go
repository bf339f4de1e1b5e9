package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/DevFrancisLab/saferoute/internal/domain"

	goredis "github.com/redis/go-redis/v9"
)

// HazardCache keeps the active hazard set as one JSON blob so every
// location check does not hit Postgres.
type HazardCache struct {
	client *goredis.Client
	key    string
}

func NewHazardCache(r *Redis) *HazardCache {
	return &HazardCache{
		client: r.Client,
		key:    "hazards:active",
	}
}

// GetActive returns the cached set, or (nil, nil) on a cache miss.
func (c *HazardCache) GetActive(ctx context.Context) ([]domain.Hazard, error) {
	data, err := c.client.Get(ctx, c.key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var hazards []domain.Hazard
	if err := json.Unmarshal(data, &hazards); err != nil {
		return nil, err
	}

	return hazards, nil
}

func (c *HazardCache) SetActive(ctx context.Context, hazards []domain.Hazard, ttl time.Duration) error {
	b, err := json.Marshal(hazards)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key, b, ttl).Err()
}

// Invalidate drops the cached set after admin writes.
func (c *HazardCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, c.key).Err()
}
