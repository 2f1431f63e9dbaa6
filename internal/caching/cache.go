package caching

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"compliance-portal-backend/internal/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned when the requested key is not present.
var ErrCacheMiss = redis.Nil

// Cache provides read-through caching for dashboard queries. All values are
// JSON-encoded and scoped with a "cportal:" key prefix so the instance can
// share a Redis database with other services.
type Cache interface {
	GetJSON(ctx context.Context, key string, dest interface{}) error
	SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	InvalidateCompany(ctx context.Context, companyID uuid.UUID) error
	Ping(ctx context.Context) error
	Close() error
}

type redisCache struct {
	client *redis.Client
}

// New connects to Redis and verifies connectivity with a ping. A failed ping
// is logged but not fatal so that the API can start without a cache in
// development.
func New(addr, password string, db int) Cache {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.New().WithError(err).Warn("Redis ping failed, caching will be degraded")
	}

	return &redisCache{client: client}
}

// Key builds a namespaced cache key from parts.
func Key(parts ...string) string {
	key := "cportal"
	for _, p := range parts {
		key += ":" + p
	}
	return key
}

// TrendKey is the cache key for a company's compliance trend window.
func TrendKey(companyID uuid.UUID, days int) string {
	return Key("trend", companyID.String(), fmt.Sprintf("%d", days))
}

// DashboardKey is the cache key for a company's dashboard summary.
func DashboardKey(companyID uuid.UUID) string {
	return Key("dashboard", companyID.String())
}

func (c *redisCache) GetJSON(ctx context.Context, key string, dest interface{}) error {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}

func (c *redisCache) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}
	return c.client.Set(ctx, key, data, ttl).Err()
}

func (c *redisCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

// InvalidateCompany drops every cached entry belonging to a company. Used
// after snapshot writes and bulk imports.
func (c *redisCache) InvalidateCompany(ctx context.Context, companyID uuid.UUID) error {
	pattern := fmt.Sprintf("cportal:*:%s*", companyID.String())
	iter := c.client.Scan(ctx, 0, pattern, 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	return c.Delete(ctx, keys...)
}

func (c *redisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *redisCache) Close() error {
	return c.client.Close()
}
