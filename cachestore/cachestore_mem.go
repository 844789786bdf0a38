package cachestore

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// MemCacheStore is an in-process store backed by an expirable LRU.
// Suitable for tests and single-process use.
type MemCacheStore struct {
	data *expirable.LRU[string, []byte]
}

var _ CacheStore = (*MemCacheStore)(nil)

// Capacity of zero means unlimited size. Similarly, ttl of zero means
// unlimited duration.
func NewMemCacheStore(capacity int, ttl time.Duration) *MemCacheStore {
	return &MemCacheStore{
		data: expirable.NewLRU[string, []byte](capacity, nil, ttl),
	}
}

func (s *MemCacheStore) Get(ctx context.Context, key string) ([]byte, error) {
	val, ok := s.data.Get(key)
	if !ok {
		cacheMisses.WithLabelValues("mem").Inc()
		return nil, ErrCacheMiss
	}
	cacheHits.WithLabelValues("mem").Inc()
	// copy so callers can hold the result past a concurrent overwrite
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (s *MemCacheStore) Set(ctx context.Context, key string, val []byte) error {
	cacheWrites.WithLabelValues("mem").Inc()
	stored := make([]byte, len(val))
	copy(stored, val)
	s.data.Add(key, stored)
	return nil
}

func (s *MemCacheStore) Purge(ctx context.Context, key string) error {
	s.data.Remove(key)
	return nil
}
