package xcache

import (
	"context"
	"time"

	"github.com/eko/gocache/lib/v4/store"

	cachelib "github.com/eko/gocache/lib/v4/cache"
	gocache_store "github.com/eko/gocache/store/go_cache/v4"
	gocache "github.com/patrickmn/go-cache"
	redis "github.com/redis/go-redis/v9"

	"github.com/looplj/objecthub/internal/log"
	redis_store "github.com/looplj/objecthub/internal/pkg/xcache/redis"
	"github.com/looplj/objecthub/internal/pkg/xredis"
)

// Cache is an alias to the gocache CacheInterface for convenience:
//   - Get(ctx, key) (T, error)
//   - Set(ctx, key, value, options ...Option) error
//   - Delete(ctx, key) error
//   - Invalidate(ctx, options ...store.InvalidateOption) error
//   - Clear(ctx) error
//   - GetType() string
type Cache[T any] = cachelib.CacheInterface[T]

type SetterCache[T any] = cachelib.SetterCacheInterface[T]

type Option = store.Option

// NewMemory creates a pure in-memory cache using patrickmn/go-cache as the backend.
func NewMemory[T any](client *gocache.Cache, options ...Option) SetterCache[T] {
	return cachelib.New[T](gocache_store.NewGoCache(client, options...))
}

// NewRedis creates a pure Redis cache, values are JSON encoded.
func NewRedis[T any](client *redis.Client, options ...Option) SetterCache[T] {
	return cachelib.New[T](redis_store.NewRedisStore[T](client, options...))
}

// NewTwoLevel constructs a 2-level cache: memory first, then Redis.
func NewTwoLevel[T any](memory SetterCache[T], redis SetterCache[T]) Cache[T] {
	return cachelib.NewChain[T](memory, redis)
}

// NewFromConfig builds a typed cache from the given Config.
// Modes:
//   - memory: in-memory only
//   - redis: redis only
//   - two-level: memory + redis chain
//
// An empty or unknown mode returns a noop cache. Redis connection failures are returned.
func NewFromConfig[T any](ctx context.Context, cfg Config) (Cache[T], error) {
	switch cfg.Mode {
	case ModeMemory, ModeRedis, ModeTwoLevel:
	default:
		log.Info(ctx, "Disable cache", log.String("mode", cfg.Mode))
		return NewNoop[T](), nil
	}

	memExpiration := defaultIfZero(cfg.Memory.Expiration, 5*time.Minute)
	memCleanupInterval := defaultIfZero(cfg.Memory.CleanupInterval, 10*time.Minute)
	mem := NewMemory[T](gocache.New(memExpiration, memCleanupInterval), store.WithExpiration(memExpiration))

	if cfg.Mode == ModeMemory {
		log.Info(ctx, "Using memory cache")
		return mem, nil
	}

	client, err := xredis.NewClient(ctx, cfg.Redis)
	if err != nil {
		return nil, err
	}

	rds := NewRedis[T](client, store.WithExpiration(defaultIfZero(cfg.Redis.Expiration, 30*time.Minute)))

	if cfg.Mode == ModeRedis {
		log.Info(ctx, "Using redis cache")
		return rds, nil
	}

	log.Info(ctx, "Using two-level cache")

	return NewTwoLevel[T](mem, rds), nil
}

func defaultIfZero(d, def time.Duration) time.Duration {
	if d == 0 {
		return def
	}

	return d
}
