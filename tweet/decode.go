package tweet

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
)

// DecodeTweet hydrates a Tweet from a parsed JSON payload object.
//
// Required fields are id_str, created_at, text (or full_text), and user;
// a missing or wrongly-shaped required field fails the decode with an
// error wrapping ErrMalformedEntity. Unknown fields are ignored and
// optional fields are never required, so payloads from newer API
// versions decode cleanly.
//
// Nested retweeted_status and quoted_status payloads are decoded
// recursively; IsRetweet and IsQuoteTweet derive from their presence.
func DecodeTweet(obj map[string]any) (*Tweet, error) {
	if obj == nil {
		return nil, fmt.Errorf("%w: nil payload", ErrMalformedEntity)
	}

	id, ok := getString(obj, "id_str")
	if !ok || id == "" {
		return nil, fmt.Errorf("%w: missing id_str", ErrMalformedEntity)
	}

	rawCreatedAt, ok := getString(obj, "created_at")
	if !ok {
		return nil, fmt.Errorf("%w: tweet %s missing created_at", ErrMalformedEntity, id)
	}
	createdAt, err := ParseCreatedAt(rawCreatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: tweet %s: %v", ErrMalformedEntity, id, err)
	}

	// Extended-mode payloads carry the untruncated text in full_text.
	text, ok := getString(obj, "full_text")
	if !ok {
		text, ok = getString(obj, "text")
	}
	if !ok {
		return nil, fmt.Errorf("%w: tweet %s missing text", ErrMalformedEntity, id)
	}

	userObj, ok := getObject(obj, "user")
	if !ok {
		return nil, fmt.Errorf("%w: tweet %s missing user", ErrMalformedEntity, id)
	}
	author, err := decodeUser(userObj)
	if err != nil {
		return nil, fmt.Errorf("tweet %s: %w", id, err)
	}

	t := &Tweet{
		ID:        id,
		CreatedAt: createdAt,
		Text:      text,
		Author:    author,
	}

	t.LanguageCode, ok = getString(obj, "lang")
	if !ok || t.LanguageCode == "" {
		t.LanguageCode = LanguageUndefined
	}

	// counters are non-negative; clamp whatever the payload claims
	if n, ok := getInt64(obj, "favorite_count"); ok {
		t.LikeCount = max(n, 0)
	}
	if n, ok := getInt64(obj, "retweet_count"); ok {
		t.RetweetCount = max(n, 0)
	}

	t.InReplyToTweetID, _ = getString(obj, "in_reply_to_status_id_str")
	t.InReplyToUserID, _ = getString(obj, "in_reply_to_user_id_str")
	t.InReplyToScreenName, _ = getString(obj, "in_reply_to_screen_name")

	// Viewer-dependent state as reported by the API. Meaningful only once
	// a perspective is bound; WithPerspective strips it for logged-out
	// viewers.
	t.Liked, _ = getBool(obj, "favorited")
	t.Retweeted, _ = getBool(obj, "retweeted")
	if cur, ok := getObject(obj, "current_user_retweet"); ok {
		t.RetweetID, _ = getString(cur, "id_str")
	}

	decodeEntities(obj, t)

	if cardObj, ok := getObject(obj, "card"); ok {
		t.Card = decodeCard(cardObj)
	}

	if rt, ok := getObject(obj, "retweeted_status"); ok {
		inner, err := DecodeTweet(rt)
		if err != nil {
			return nil, fmt.Errorf("tweet %s: retweeted_status: %w", id, err)
		}
		t.RetweetedTweet = inner
	}
	if qt, ok := getObject(obj, "quoted_status"); ok {
		inner, err := DecodeTweet(qt)
		if err != nil {
			return nil, fmt.Errorf("tweet %s: quoted_status: %w", id, err)
		}
		t.QuotedTweet = inner
		synthesizeQuotedPermalink(t)
	}

	t.VideoMetaData = deriveVideoMetaData(t)

	return t, nil
}

// DecodeTweets hydrates a page of tweets, preserving input order. Null
// and malformed elements are dropped rather than failing the page; the
// caller sees a possibly-shorter sequence with no per-element error
// reporting, which matches feed rendering where a silently omitted tweet
// beats a broken page.
func DecodeTweets(arr []any) []*Tweet {
	out := make([]*Tweet, 0, len(arr))
	for i, el := range arr {
		if el == nil {
			continue
		}
		obj, ok := el.(map[string]any)
		if !ok {
			slog.Debug("dropping non-object tweet element", "index", i)
			continue
		}
		t, err := DecodeTweet(obj)
		if err != nil {
			slog.Debug("dropping malformed tweet", "index", i, "err", err)
			continue
		}
		out = append(out, t)
	}
	return out
}

// DecodeTweetJSON parses and hydrates a single tweet from raw JSON.
func DecodeTweetJSON(b []byte) (*Tweet, error) {
	var obj map[string]any
	if err := json.Unmarshal(b, &obj); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedEntity, err)
	}
	return DecodeTweet(obj)
}

// DecodeTweetsJSON parses and hydrates a JSON array of tweets with
// DecodeTweets drop semantics.
func DecodeTweetsJSON(b []byte) ([]*Tweet, error) {
	var arr []any
	if err := json.Unmarshal(b, &arr); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedEntity, err)
	}
	return DecodeTweets(arr), nil
}

// synthesizeQuotedPermalink keeps the visible text of a quote tweet
// consistent with its URL entities. Some payloads omit the trailing
// permalink of the quoted tweet from both text and entities; when no URL
// entity expands to the quoted tweet, append its permalink and a
// matching entity. Runs during construction, before the value is shared.
func synthesizeQuotedPermalink(t *Tweet) {
	quoted := t.QuotedTweet
	statusSuffix := "/status/" + quoted.ID
	for _, u := range t.URLs {
		if strings.HasSuffix(u.ExpandedURL, statusSuffix) {
			return
		}
	}

	permalink := quoted.Permalink()
	start := int64(len([]rune(t.Text)) + 1)
	t.Text = t.Text + " " + permalink
	t.URLs = append(t.URLs, URLEntity{
		Span:        EntitySpan{Start: start, End: start + int64(len([]rune(permalink)))},
		URL:         permalink,
		ExpandedURL: permalink,
		DisplayURL:  strings.TrimPrefix(permalink, "https://"),
	})
}
