// Package tweet implements the immutable client-side data model for a
// Tweet: hydration from Twitter API JSON payloads, a perspective overlay
// binding viewer-dependent state (like/retweet flags) to a specific
// viewing user, and a binary codec plus versioned cache keys so decoded
// values can be stored in a shared cache across app versions and viewers.
//
// Tweet values are immutable after construction. Every "update" (toggling
// like state, attaching a perspective) produces a new value, so decoded
// tweets can be shared between goroutines and cache layers without
// coordination. No operation in this package blocks or performs I/O,
// except the TweetCache front-end which delegates to a cachestore.
package tweet
