package tweet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithPerspectiveLoggedOut(t *testing.T) {
	assert := assert.New(t)

	tw, err := DecodeTweet(mustParse(t, fixtureSimple))
	require.NoError(t, err)
	require.True(t, tw.Liked, "fixture carries incidental perspectival data")

	out := tw.WithPerspective("")
	assert.Empty(out.PerspectivalUserID)
	assert.False(out.Liked)
	assert.False(out.Retweeted)
	assert.Empty(out.RetweetID)

	// receiver untouched
	assert.True(tw.Liked)
	assert.Empty(tw.PerspectivalUserID)
}

func TestWithPerspectiveBindsViewer(t *testing.T) {
	assert := assert.New(t)

	tw, err := DecodeTweet(mustParse(t, fixtureSimple))
	require.NoError(t, err)

	out := tw.WithPerspective("42")
	assert.Equal("42", out.PerspectivalUserID)
	assert.True(out.Liked, "API-reported state survives when the viewer is known")
}

func TestWithPerspectiveRecurses(t *testing.T) {
	tw, err := DecodeTweet(mustParse(t, fixtureRetweet))
	require.NoError(t, err)

	out := tw.WithPerspective("42")
	require.NotNil(t, out.RetweetedTweet)
	assert.Equal(t, "42", out.RetweetedTweet.PerspectivalUserID)

	loggedOut := out.WithPerspective("")
	assert.Empty(t, loggedOut.RetweetedTweet.PerspectivalUserID)
	assert.False(t, loggedOut.RetweetedTweet.Liked)
}

// Two viewers of the same tweet differ only in perspectival fields.
func TestWithPerspectivePurity(t *testing.T) {
	assert := assert.New(t)

	tw, err := DecodeTweet(mustParse(t, fixtureRetweet))
	require.NoError(t, err)

	a := tw.WithPerspective("1")
	b := tw.WithPerspective("2")

	assert.Equal(a.ID, b.ID)
	assert.Equal(a.Text, b.Text)
	assert.Equal(a.Author, b.Author)
	assert.Equal(a.LikeCount, b.LikeCount)
	assert.Equal(a.RetweetCount, b.RetweetCount)
	assert.Equal(a.RetweetedTweet.ID, b.RetweetedTweet.ID)
	assert.NotEqual(a.PerspectivalUserID, b.PerspectivalUserID)

	// same inputs, structurally equal outputs
	assert.Equal(a, tw.WithPerspective("1"))
}

func TestWithLikeToggled(t *testing.T) {
	assert := assert.New(t)

	tw, err := DecodeTweet(mustParse(t, fixtureSimple))
	require.NoError(t, err)
	bound := tw.WithPerspective("42")
	require.True(t, bound.Liked)

	unliked, err := bound.WithLikeToggled()
	require.NoError(t, err)
	assert.False(unliked.Liked)
	assert.Equal(bound.LikeCount-1, unliked.LikeCount)

	reliked, err := unliked.WithLikeToggled()
	require.NoError(t, err)
	assert.Equal(bound, reliked, "toggling twice restores the original value")

	// receiver untouched
	assert.True(bound.Liked)
}

func TestWithLikeToggledRequiresPerspective(t *testing.T) {
	tw, err := DecodeTweet(mustParse(t, fixtureSimple))
	require.NoError(t, err)

	_, err = tw.WithLikeToggled()
	assert.ErrorIs(t, err, ErrMissingPerspective)

	_, err = tw.WithPerspective("").WithLikeToggled()
	assert.ErrorIs(t, err, ErrMissingPerspective)
}

func TestCloneIsolation(t *testing.T) {
	tw, err := DecodeTweet(mustParse(t, fixtureRetweet))
	require.NoError(t, err)

	out := tw.WithPerspective("42")
	out.Author.ScreenName = "changed"
	out.RetweetedTweet.Text = "changed"

	assert.Equal(t, "retweeter", tw.Author.ScreenName)
	assert.Equal(t, "just setting up my twttr", tw.RetweetedTweet.Text)
}
