package tweet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtureVideo = `{
	"id_str": "300",
	"created_at": "Mon Sep 03 13:24:14 +0000 2012",
	"text": "watch this https://t.co/vid",
	"lang": "en",
	"user": {"id_str": "12", "screen_name": "jack"},
	"entities": {
		"media": [{"id_str": "301", "type": "photo", "media_url_https": "https://pbs.twimg.com/media/lowres.jpg", "indices": [11, 27]}]
	},
	"extended_entities": {
		"media": [{
			"id_str": "301",
			"type": "video",
			"media_url_https": "https://pbs.twimg.com/media/thumb.jpg",
			"indices": [11, 27],
			"video_info": {
				"aspect_ratio": [16, 9],
				"duration_millis": 30500,
				"variants": [
					{"bitrate": 320000, "content_type": "video/mp4", "url": "https://video.twimg.com/low.mp4"},
					{"bitrate": 2176000, "content_type": "video/mp4", "url": "https://video.twimg.com/high.mp4"},
					{"content_type": "application/x-mpegURL", "url": "https://video.twimg.com/pl.m3u8"}
				]
			}
		}]
	}
}`

const fixtureVineCard = `{
	"id_str": "400",
	"created_at": "Mon Sep 03 13:24:14 +0000 2012",
	"text": "loop https://t.co/vine",
	"lang": "en",
	"user": {"id_str": "12", "screen_name": "jack"},
	"card": {
		"name": "player",
		"url": "https://t.co/vine",
		"binding_values": {
			"player_url": {"type": "STRING", "string_value": "https://vine.co/v/abcdef/embed"},
			"player_stream_url": {"type": "STRING", "string_value": "https://v.cdn.vine.co/r/videos/abc.mp4"},
			"player_stream_content_type": {"type": "STRING", "string_value": "video/mp4"}
		}
	}
}`

func TestDecodeVideoMedia(t *testing.T) {
	assert := assert.New(t)

	tw, err := DecodeTweet(mustParse(t, fixtureVideo))
	require.NoError(t, err)

	assert.True(tw.HasMedia())
	require.Len(t, tw.Media, 1)

	m := tw.Media[0]
	assert.Equal("301", m.ID)
	assert.Equal("video", m.Type)
	assert.Equal("https://pbs.twimg.com/media/thumb.jpg", m.MediaURL)

	require.NotNil(t, m.VideoInfo)
	assert.InDelta(16.0/9.0, m.VideoInfo.AspectRatio, 0.001)
	assert.Equal(30500*time.Millisecond, m.VideoInfo.Duration)
	assert.Len(m.VideoInfo.Variants, 3)
}

func TestVideoMetaDataPicksHighestBitrate(t *testing.T) {
	assert := assert.New(t)

	tw, err := DecodeTweet(mustParse(t, fixtureVideo))
	require.NoError(t, err)

	assert.True(tw.HasPlayableVideo())
	require.NotNil(t, tw.VideoMetaData)
	assert.Equal("https://video.twimg.com/high.mp4", tw.VideoMetaData.VideoURL)
	assert.Equal("video/mp4", tw.VideoMetaData.ContentType)
	assert.Equal(30500*time.Millisecond, tw.VideoMetaData.Duration)
}

func TestDecodeVineCard(t *testing.T) {
	assert := assert.New(t)

	tw, err := DecodeTweet(mustParse(t, fixtureVineCard))
	require.NoError(t, err)

	require.NotNil(t, tw.Card)
	assert.Equal("player", tw.Card.Name)
	assert.True(tw.HasVineCard())
	assert.True(tw.HasPlayableVideo())

	require.NotNil(t, tw.VideoMetaData)
	assert.Equal("https://v.cdn.vine.co/r/videos/abc.mp4", tw.VideoMetaData.VideoURL)
	assert.Equal("video/mp4", tw.VideoMetaData.ContentType)
}

func TestNoVideoNoMetaData(t *testing.T) {
	tw, err := DecodeTweet(mustParse(t, fixtureSimple))
	require.NoError(t, err)

	assert.Nil(t, tw.VideoMetaData)
	assert.False(t, tw.HasPlayableVideo())
	assert.False(t, tw.HasVineCard())
}

func TestDecodeEntitiesSkipsMalformed(t *testing.T) {
	obj := mustParse(t, fixtureSimple)
	entities := obj["entities"].(map[string]any)
	entities["hashtags"] = []any{
		"not an object",
		map[string]any{"indices": []any{float64(0), float64(3)}}, // no text
		map[string]any{"text": "ok", "indices": []any{float64(4), float64(7)}},
	}

	tw, err := DecodeTweet(obj)
	require.NoError(t, err)
	require.Len(t, tw.Hashtags, 1)
	assert.Equal(t, "ok", tw.Hashtags[0].Text)
}

func TestPermalinkUnknownAuthorHandle(t *testing.T) {
	tw := &Tweet{ID: "100", Author: &User{ID: "12"}}
	assert.Equal(t, "https://twitter.com/i/status/100", tw.Permalink())
}
