package tweet

// EntitySpan locates an entity inside the tweet text, as rune offsets
// into the visible text (the API's "indices" pair).
type EntitySpan struct {
	Start int64 `json:"start" msgpack:"start"`
	End   int64 `json:"end" msgpack:"end"`
}

// HashtagEntity is a "#tag" span. Text carries the tag without the "#".
type HashtagEntity struct {
	Span EntitySpan `json:"span" msgpack:"span"`
	Text string     `json:"text" msgpack:"text"`
}

// CashtagEntity is a "$SYMBOL" span (the API's "symbols" list). Text
// carries the symbol without the "$".
type CashtagEntity struct {
	Span EntitySpan `json:"span" msgpack:"span"`
	Text string     `json:"text" msgpack:"text"`
}

// URLEntity is a t.co-wrapped link span.
type URLEntity struct {
	Span        EntitySpan `json:"span" msgpack:"span"`
	URL         string     `json:"url" msgpack:"url"`
	ExpandedURL string     `json:"expandedURL" msgpack:"expandedURL"`
	DisplayURL  string     `json:"displayURL" msgpack:"displayURL"`
}

// MentionEntity is an "@user" span.
type MentionEntity struct {
	Span       EntitySpan `json:"span" msgpack:"span"`
	UserID     string     `json:"userID" msgpack:"userID"`
	ScreenName string     `json:"screenName" msgpack:"screenName"`
	Name       string     `json:"name" msgpack:"name"`
}

// MediaEntity is an attached photo, GIF, or video.
type MediaEntity struct {
	Span     EntitySpan `json:"span" msgpack:"span"`
	ID       string     `json:"id" msgpack:"id"`
	MediaURL string     `json:"mediaURL" msgpack:"mediaURL"`
	Type     string     `json:"type" msgpack:"type"`

	// VideoInfo is present for "video" and "animated_gif" media.
	VideoInfo *VideoInfo `json:"videoInfo,omitempty" msgpack:"videoInfo"`
}

func cloneMedia(media []MediaEntity) []MediaEntity {
	if media == nil {
		return nil
	}
	out := make([]MediaEntity, len(media))
	for i, m := range media {
		out[i] = m
		out[i].VideoInfo = m.VideoInfo.clone()
	}
	return out
}

// decodeSpan reads the two-element "indices" array. Missing or malformed
// indices yield the zero span rather than failing the entity.
func decodeSpan(obj map[string]any) EntitySpan {
	arr, ok := getArray(obj, "indices")
	if !ok || len(arr) != 2 {
		return EntitySpan{}
	}
	start, okStart := asInt64(arr[0])
	end, okEnd := asInt64(arr[1])
	if !okStart || !okEnd {
		return EntitySpan{}
	}
	return EntitySpan{Start: start, End: end}
}

// decodeEntities fills the entity slices of t from the "entities" and
// "extended_entities" payload sub-objects. Individual malformed entities
// are skipped; entity parsing never fails the whole tweet.
func decodeEntities(obj map[string]any, t *Tweet) {
	entities, ok := getObject(obj, "entities")
	if ok {
		if arr, ok := getArray(entities, "hashtags"); ok {
			for _, el := range arr {
				tag, ok := el.(map[string]any)
				if !ok {
					continue
				}
				text, ok := getString(tag, "text")
				if !ok {
					continue
				}
				t.Hashtags = append(t.Hashtags, HashtagEntity{Span: decodeSpan(tag), Text: text})
			}
		}
		if arr, ok := getArray(entities, "symbols"); ok {
			for _, el := range arr {
				sym, ok := el.(map[string]any)
				if !ok {
					continue
				}
				text, ok := getString(sym, "text")
				if !ok {
					continue
				}
				t.Cashtags = append(t.Cashtags, CashtagEntity{Span: decodeSpan(sym), Text: text})
			}
		}
		if arr, ok := getArray(entities, "urls"); ok {
			for _, el := range arr {
				u, ok := el.(map[string]any)
				if !ok {
					continue
				}
				ent := URLEntity{Span: decodeSpan(u)}
				ent.URL, _ = getString(u, "url")
				ent.ExpandedURL, _ = getString(u, "expanded_url")
				ent.DisplayURL, _ = getString(u, "display_url")
				if ent.URL == "" && ent.ExpandedURL == "" {
					continue
				}
				t.URLs = append(t.URLs, ent)
			}
		}
		if arr, ok := getArray(entities, "user_mentions"); ok {
			for _, el := range arr {
				m, ok := el.(map[string]any)
				if !ok {
					continue
				}
				ent := MentionEntity{Span: decodeSpan(m)}
				ent.UserID, _ = getString(m, "id_str")
				ent.ScreenName, _ = getString(m, "screen_name")
				ent.Name, _ = getString(m, "name")
				if ent.UserID == "" && ent.ScreenName == "" {
					continue
				}
				t.UserMentions = append(t.UserMentions, ent)
			}
		}
	}

	// extended_entities carries the authoritative media list (multi-photo
	// and video payloads only appear there); fall back to entities.media.
	mediaSource, ok := getObject(obj, "extended_entities")
	if !ok {
		mediaSource = entities
	}
	if mediaSource != nil {
		if arr, ok := getArray(mediaSource, "media"); ok {
			for _, el := range arr {
				m, ok := el.(map[string]any)
				if !ok {
					continue
				}
				id, ok := getString(m, "id_str")
				if !ok {
					continue
				}
				ent := MediaEntity{Span: decodeSpan(m), ID: id}
				ent.MediaURL, _ = getString(m, "media_url_https")
				ent.Type, _ = getString(m, "type")
				if vi, ok := getObject(m, "video_info"); ok {
					ent.VideoInfo = decodeVideoInfo(vi)
				}
				t.Media = append(t.Media, ent)
			}
		}
	}
}
