package cachestore

import (
	"context"
	"time"

	"github.com/go-redis/cache/v9"
	"github.com/redis/go-redis/v9"
)

// RedisCacheStore persists entries in Redis with a TinyLFU local layer
// in front. The process-local layer means two app instances can briefly
// disagree after a Purge; versioned keys make that harmless for schema
// changes, and per-viewer keys make it harmless across users.
type RedisCacheStore struct {
	data *cache.Cache
	ttl  time.Duration
}

var _ CacheStore = (*RedisCacheStore)(nil)

func NewRedisCacheStore(redisURL string, ttl time.Duration) (*RedisCacheStore, error) {
	ctx := context.Background()
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	rdb := redis.NewClient(opt)
	// check redis connection
	_, err = rdb.Ping(ctx).Result()
	if err != nil {
		return nil, err
	}
	data := cache.New(&cache.Options{
		Redis:      rdb,
		LocalCache: cache.NewTinyLFU(10_000, ttl),
	})
	return &RedisCacheStore{
		data: data,
		ttl:  ttl,
	}, nil
}

func (s *RedisCacheStore) Get(ctx context.Context, key string) ([]byte, error) {
	var val []byte
	err := s.data.Get(ctx, key, &val)
	if err == cache.ErrCacheMiss {
		cacheMisses.WithLabelValues("redis").Inc()
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, err
	}
	cacheHits.WithLabelValues("redis").Inc()
	return val, nil
}

func (s *RedisCacheStore) Set(ctx context.Context, key string, val []byte) error {
	cacheWrites.WithLabelValues("redis").Inc()
	return s.data.Set(&cache.Item{
		Ctx:   ctx,
		Key:   key,
		Value: val,
		TTL:   s.ttl,
	})
}

func (s *RedisCacheStore) Purge(ctx context.Context, key string) error {
	err := s.data.Delete(ctx, key)
	if err == cache.ErrCacheMiss {
		return nil
	}
	return err
}
