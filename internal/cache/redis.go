package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/nickjlamb/HushMap-sub001/internal/types"
)

const redisKeyPrefix = "hushmap:label:"

// Redis is an optional shared cache tier for multi-instance deployments.
// Expiry is delegated to the label's ExpiresAt so all tiers agree on
// lifetime; redis TTLs are set as a secondary cleanup mechanism.
type Redis struct {
	client *redis.Client
	logger *slog.Logger
	now    func() time.Time
}

func NewRedis(client *redis.Client, logger *slog.Logger) *Redis {
	return &Redis{
		client: client,
		logger: logger.With("component", "redis-cache"),
		now:    time.Now,
	}
}

func (r *Redis) Get(key types.LocationKey) (*types.LocationLabel, bool) {
	ctx := context.Background()
	data, err := r.client.Get(ctx, redisKeyPrefix+key.Token()).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.logger.Warn("redis get failed", "error", err)
		}
		return nil, false
	}

	var label types.LocationLabel
	if err := json.Unmarshal(data, &label); err != nil {
		_ = r.client.Del(ctx, redisKeyPrefix+key.Token()).Err()
		return nil, false
	}
	if label.Expired(r.now()) {
		_ = r.client.Del(ctx, redisKeyPrefix+key.Token()).Err()
		return nil, false
	}
	return &label, true
}

func (r *Redis) Set(key types.LocationKey, label types.LocationLabel) {
	data, err := json.Marshal(label)
	if err != nil {
		return
	}
	var ttl time.Duration
	if label.ExpiresAt != nil {
		ttl = label.ExpiresAt.Sub(r.now())
		if ttl <= 0 {
			return
		}
	}
	if err := r.client.Set(context.Background(), redisKeyPrefix+key.Token(), data, ttl).Err(); err != nil {
		r.logger.Warn("redis set failed", "error", err)
	}
}

func (r *Redis) Evict(olderThan *time.Time) error {
	if olderThan == nil {
		return r.scan(func(ctx context.Context, key string) {
			_ = r.client.Del(ctx, key).Err()
		})
	}
	return r.scan(func(ctx context.Context, key string) {
		data, err := r.client.Get(ctx, key).Bytes()
		if err != nil {
			return
		}
		var label types.LocationLabel
		if err := json.Unmarshal(data, &label); err != nil || label.UpdatedAt.Before(*olderThan) {
			_ = r.client.Del(ctx, key).Err()
		}
	})
}

func (r *Redis) Purge(pred func(types.LocationLabel) bool) error {
	return r.scan(func(ctx context.Context, key string) {
		data, err := r.client.Get(ctx, key).Bytes()
		if err != nil {
			return
		}
		var label types.LocationLabel
		if err := json.Unmarshal(data, &label); err != nil || pred(label) {
			_ = r.client.Del(ctx, key).Err()
		}
	})
}

func (r *Redis) scan(visit func(ctx context.Context, key string)) error {
	ctx := context.Background()
	var cursor uint64
	for {
		keys, next, err := r.client.Scan(ctx, cursor, redisKeyPrefix+"*", 200).Result()
		if err != nil {
			return fmt.Errorf("redis scan failed: %w", err)
		}
		for _, key := range keys {
			visit(ctx, key)
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}
