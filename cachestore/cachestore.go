package cachestore

import (
	"context"
	"errors"
)

// Indicates that a key has no entry in the store. Distinct from
// transport or storage failures, which surface as their own errors.
var ErrCacheMiss = errors.New("cachestore: key not found")

// CacheStore is the key-to-bytes persistence boundary. Implementations
// own their concurrency discipline (last-writer-wins is fine); callers
// guarantee via versioned keys that writes for different viewers or
// schema versions never target the same key.
type CacheStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, val []byte) error
	Purge(ctx context.Context, key string) error
}
