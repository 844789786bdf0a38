package cachestore

import (
	"errors"
	"fmt"
	"net/url"
)

// Kind is the cache-key namespace discriminator for an entity class.
// Two entity classes with colliding IDs can never collide on keys.
type Kind string

// PerspectiveNone is the shared sentinel for perspective-agnostic
// entries. The perspective argument is required everywhere so that a
// viewer-scoped caller and a viewer-agnostic caller can never collide by
// one of them omitting it.
const PerspectiveNone = "none"

// Indicates a programming error in key construction: an empty ID, an
// empty perspective, or a kind with no registered schema version.
var ErrInvalidArgument = errors.New("invalid cache key argument")

// VersionedCacheable is implemented by entity types that can be stored
// under versioned cache keys.
type VersionedCacheable interface {
	CacheKind() Kind
	CacheID() string
}

// KeyBuilder produces deterministic versioned cache keys from a fixed
// table of per-kind schema versions. A version is bumped by the entity
// type's owner whenever a persisted field is added, removed, or
// reinterpreted; the builder never migrates old entries, it just stops
// generating their keys.
type KeyBuilder struct {
	versions map[Kind]int
}

// NewKeyBuilder copies the version table, so later changes to the
// caller's map cannot silently redirect keys.
func NewKeyBuilder(versions map[Kind]int) *KeyBuilder {
	v := make(map[Kind]int, len(versions))
	for kind, version := range versions {
		v[kind] = version
	}
	return &KeyBuilder{versions: v}
}

// Key returns the versioned cache key for one entity as seen from one
// perspective: "<kind>:v<version>:<perspective>:<id>". The perspective
// and id components are percent-escaped so that a ":" inside either can
// never shift the component boundaries: distinct (kind, id, perspective)
// triples always produce distinct keys. Kinds are owner-declared
// constants and are not escaped.
//
// Pure and total for valid inputs; fails fast with ErrInvalidArgument on
// an empty id or perspective (pass PerspectiveNone explicitly) or an
// unregistered kind.
func (b *KeyBuilder) Key(kind Kind, id string, perspective string) (string, error) {
	if id == "" {
		return "", fmt.Errorf("%w: empty entity ID", ErrInvalidArgument)
	}
	if perspective == "" {
		return "", fmt.Errorf("%w: empty perspective, use PerspectiveNone", ErrInvalidArgument)
	}
	version, ok := b.versions[kind]
	if !ok {
		return "", fmt.Errorf("%w: no schema version registered for kind %q", ErrInvalidArgument, kind)
	}
	return fmt.Sprintf("%s:v%d:%s:%s", kind, version, url.QueryEscape(perspective), url.QueryEscape(id)), nil
}

// KeyFor builds the key for a cacheable entity value.
func (b *KeyBuilder) KeyFor(v VersionedCacheable, perspective string) (string, error) {
	return b.Key(v.CacheKind(), v.CacheID(), perspective)
}
