package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dkellner85/poi-console-services/api/internal/hours"
	"github.com/dkellner85/poi-console-services/api/internal/public/application"
)

const keyPrefix = "poi_hours_v1"

// HoursCache keeps rendered per-day resolutions in Redis. One key per POI
// and date, so a miss only costs a single resolver run.
type HoursCache struct {
	client *redis.Client
	ttl    time.Duration
}

// New builds an HoursCache around an existing Redis client.
func New(client *redis.Client, ttl time.Duration) *HoursCache {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &HoursCache{client: client, ttl: ttl}
}

func cacheKey(poiID string, date hours.Date) string {
	return fmt.Sprintf("%s:%s:%s", keyPrefix, poiID, date)
}

// Get returns the cached day, or nil on a miss.
func (c *HoursCache) Get(ctx context.Context, poiID string, date hours.Date) (*application.EffectiveDay, error) {
	payload, err := c.client.Get(ctx, cacheKey(poiID, date)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var day application.EffectiveDay
	if err := json.Unmarshal(payload, &day); err != nil {
		return nil, err
	}
	return &day, nil
}

// Set stores a rendered day under the cache TTL.
func (c *HoursCache) Set(ctx context.Context, poiID string, date hours.Date, day *application.EffectiveDay) error {
	if day == nil {
		return nil
	}
	payload, err := json.Marshal(day)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, cacheKey(poiID, date), payload, c.ttl).Err()
}

// Invalidate drops every cached date for a POI. Called after the hours
// document is replaced, so stale resolutions never outlive an edit.
func (c *HoursCache) Invalidate(ctx context.Context, poiID string) error {
	pattern := fmt.Sprintf("%s:%s:*", keyPrefix, poiID)
	iter := c.client.Scan(ctx, 0, pattern, 0).Iterator()
	keys := make([]string, 0)
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}
