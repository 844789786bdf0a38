package tweet

import (
	"time"
)

// Sentinel language code used by the API when the language of a tweet
// could not be determined.
const LanguageUndefined = "und"

const permalinkHost = "https://twitter.com"

// Tweet is an immutable representation of a single tweet.
//
// Fields are exported for serialization but must be treated as read-only
// after construction: decoded tweets may be shared across goroutines and
// held by cache layers, so every modification goes through a
// copy-producing method (WithPerspective, WithLikeToggled) instead of a
// field write.
type Tweet struct {
	// ID is the id_str field of the source payload. The numeric id field
	// is deliberately ignored: tweet IDs exceed the integer range that
	// survives float64-based JSON parsers intact.
	ID string `json:"id" msgpack:"id"`

	// CreatedAt is the tweet creation time, normalized to UTC.
	CreatedAt time.Time `json:"createdAt" msgpack:"createdAt"`

	// Text is the visible tweet text (full_text when present).
	Text string `json:"text" msgpack:"text"`

	// Author is owned by this Tweet; each hydration creates its own copy
	// rather than sharing a reference.
	Author *User `json:"author" msgpack:"author"`

	// LanguageCode is a BCP-47-ish code, or LanguageUndefined.
	LanguageCode string `json:"languageCode" msgpack:"languageCode"`

	LikeCount    int64 `json:"likeCount" msgpack:"likeCount"`
	RetweetCount int64 `json:"retweetCount" msgpack:"retweetCount"`

	// Reply pointers. All three come from the same source reply, so they
	// are either all empty or all carried through together.
	InReplyToTweetID    string `json:"inReplyToTweetID,omitempty" msgpack:"inReplyToTweetID"`
	InReplyToUserID     string `json:"inReplyToUserID,omitempty" msgpack:"inReplyToUserID"`
	InReplyToScreenName string `json:"inReplyToScreenName,omitempty" msgpack:"inReplyToScreenName"`

	// PerspectivalUserID is the ID of the viewer this tweet was hydrated
	// or overlaid for. Empty means logged-out viewing or an unknown
	// viewer; in that case Liked, Retweeted, and RetweetID are always
	// their zero values.
	PerspectivalUserID string `json:"perspectivalUserID,omitempty" msgpack:"perspectivalUserID"`

	// Liked and Retweeted report whether the perspectival user liked or
	// retweeted this tweet. Their values depend on the viewer.
	Liked     bool `json:"liked" msgpack:"liked"`
	Retweeted bool `json:"retweeted" msgpack:"retweeted"`

	// RetweetID is the ID of the perspectival user's retweet of this
	// tweet, empty when the viewer has not retweeted it.
	RetweetID string `json:"retweetID,omitempty" msgpack:"retweetID"`

	// Parsed entity spans, in source order. Nil means the source payload
	// carried none of that entity type, not "unknown".
	Hashtags     []HashtagEntity `json:"hashtags,omitempty" msgpack:"hashtags"`
	Cashtags     []CashtagEntity `json:"cashtags,omitempty" msgpack:"cashtags"`
	Media        []MediaEntity   `json:"media,omitempty" msgpack:"media"`
	URLs         []URLEntity     `json:"urls,omitempty" msgpack:"urls"`
	UserMentions []MentionEntity `json:"userMentions,omitempty" msgpack:"userMentions"`

	Card *CardEntity `json:"card,omitempty" msgpack:"card"`

	// VideoMetaData is derived at decode time from the media entities or
	// a playable card.
	VideoMetaData *VideoMetaData `json:"videoMetaData,omitempty" msgpack:"videoMetaData"`

	// RetweetedTweet is the fully-hydrated original when this tweet is a
	// retweet (the retweeted_status payload field), nil otherwise.
	RetweetedTweet *Tweet `json:"retweetedTweet,omitempty" msgpack:"retweetedTweet"`

	// QuotedTweet is the fully-hydrated original when this tweet is a
	// quote tweet (the quoted_status payload field), nil otherwise.
	QuotedTweet *Tweet `json:"quotedTweet,omitempty" msgpack:"quotedTweet"`
}

// IsRetweet reports whether this tweet is a retweet of another tweet.
// Derived from the presence of the nested tweet, never stored separately.
func (t *Tweet) IsRetweet() bool {
	return t.RetweetedTweet != nil
}

// IsQuoteTweet reports whether this tweet quotes another tweet.
func (t *Tweet) IsQuoteTweet() bool {
	return t.QuotedTweet != nil
}

// Permalink returns the canonical web URL for this tweet, derived from
// the author's screen name and the tweet ID. Falls back to the
// screen-name-less "/i/status/" form when the author handle is unknown.
func (t *Tweet) Permalink() string {
	screenName := "i"
	if t.Author != nil && t.Author.ScreenName != "" {
		screenName = t.Author.ScreenName
	}
	return permalinkHost + "/" + screenName + "/status/" + t.ID
}

// HasMedia reports whether the tweet carries any media entities.
func (t *Tweet) HasMedia() bool {
	return len(t.Media) > 0
}

// HasPlayableVideo reports whether the tweet has a media entity with
// video content, or a card with a playable stream.
func (t *Tweet) HasPlayableVideo() bool {
	if t.VideoMetaData != nil {
		return true
	}
	for _, m := range t.Media {
		if m.VideoInfo != nil {
			return true
		}
	}
	return t.Card != nil && t.Card.PlayerStreamURL != ""
}

// HasVineCard reports whether the tweet's card attachment is a Vine.
func (t *Tweet) HasVineCard() bool {
	return t.Card != nil && t.Card.IsVine()
}

// clone returns a deep copy. Nested tweets, the author, and all entity
// slices are copied so that the new value can diverge without touching
// the receiver.
func (t *Tweet) clone() *Tweet {
	if t == nil {
		return nil
	}
	out := *t
	out.Author = t.Author.clone()
	out.Hashtags = append([]HashtagEntity(nil), t.Hashtags...)
	out.Cashtags = append([]CashtagEntity(nil), t.Cashtags...)
	out.Media = cloneMedia(t.Media)
	out.URLs = append([]URLEntity(nil), t.URLs...)
	out.UserMentions = append([]MentionEntity(nil), t.UserMentions...)
	out.Card = t.Card.clone()
	out.VideoMetaData = t.VideoMetaData.clone()
	out.RetweetedTweet = t.RetweetedTweet.clone()
	out.QuotedTweet = t.QuotedTweet.clone()
	return &out
}
