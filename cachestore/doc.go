// Package cachestore provides the versioned cache-key contract for
// cacheable entities, plus generic key-to-bytes store implementations
// (Redis-backed and in-memory).
//
// Keys carry four components: the entity kind, a per-kind schema
// version, the viewer perspective, and the entity ID. Bumping a kind's
// schema version changes every key produced for that kind, so cache
// entries written under an older persisted shape become unreachable
// instead of being migrated. Scoping keys by perspective lets one store
// hold many users' views of the same entity without cross-contamination,
// and without the store itself knowing anything about viewers.
package cachestore
