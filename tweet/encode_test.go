package tweet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roundTrip(t *testing.T, tw *Tweet) *Tweet {
	t.Helper()
	b, err := EncodeTweet(tw)
	require.NoError(t, err)
	out, err := DecodeTweetBytes(b)
	require.NoError(t, err)
	return out
}

func TestEncodeRoundTripSimple(t *testing.T) {
	tw, err := DecodeTweet(mustParse(t, fixtureSimple))
	require.NoError(t, err)

	assert.Equal(t, tw, roundTrip(t, tw))
}

func TestEncodeRoundTripNested(t *testing.T) {
	for _, fixture := range []string{fixtureRetweet, fixtureQuote, fixtureReply} {
		tw, err := DecodeTweet(mustParse(t, fixture))
		require.NoError(t, err)

		assert.Equal(t, tw, roundTrip(t, tw))
	}
}

func TestEncodeRoundTripPreservesPerspective(t *testing.T) {
	tw, err := DecodeTweet(mustParse(t, fixtureRetweet))
	require.NoError(t, err)
	bound := tw.WithPerspective("42")

	out := roundTrip(t, bound)
	assert.Equal(t, "42", out.PerspectivalUserID)
	assert.Equal(t, "42", out.RetweetedTweet.PerspectivalUserID)
	assert.Equal(t, bound, out)
}

func TestEncodeNil(t *testing.T) {
	_, err := EncodeTweet(nil)
	assert.Error(t, err)
}

func TestDecodeTweetBytesGarbage(t *testing.T) {
	_, err := DecodeTweetBytes([]byte("definitely not msgpack"))
	assert.Error(t, err)
}
