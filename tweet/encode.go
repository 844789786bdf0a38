package tweet

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// EncodeTweet serializes a tweet to its cache persistence format. The
// encoding round-trips losslessly through DecodeTweetBytes; this is the
// binding contract with the cache layer. Any change to the persisted
// shape requires bumping the tweet schema version so stale entries
// become unreachable (see DefaultKeyBuilder).
func EncodeTweet(t *Tweet) ([]byte, error) {
	if t == nil {
		return nil, fmt.Errorf("cannot encode nil tweet")
	}
	b, err := msgpack.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("encoding tweet %s: %w", t.ID, err)
	}
	return b, nil
}

// DecodeTweetBytes deserializes a tweet previously encoded with
// EncodeTweet.
func DecodeTweetBytes(b []byte) (*Tweet, error) {
	var t Tweet
	if err := msgpack.Unmarshal(b, &t); err != nil {
		return nil, fmt.Errorf("decoding tweet bytes: %w", err)
	}
	normalizeTimes(&t)
	return &t, nil
}

// normalizeTimes pins decoded timestamps back to UTC; the msgpack
// timestamp extension restores instants in the local zone.
func normalizeTimes(t *Tweet) {
	t.CreatedAt = t.CreatedAt.UTC()
	if t.RetweetedTweet != nil {
		normalizeTimes(t.RetweetedTweet)
	}
	if t.QuotedTweet != nil {
		normalizeTimes(t.QuotedTweet)
	}
}
