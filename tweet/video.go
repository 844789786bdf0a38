package tweet

import "time"

// VideoVariant is one encoding of a video media entity.
type VideoVariant struct {
	Bitrate     int64  `json:"bitrate" msgpack:"bitrate"`
	ContentType string `json:"contentType" msgpack:"contentType"`
	URL         string `json:"url" msgpack:"url"`
}

// VideoInfo is the raw video payload of a media entity.
type VideoInfo struct {
	// AspectRatio is width/height; zero when the source omitted it.
	AspectRatio float64 `json:"aspectRatio" msgpack:"aspectRatio"`

	Duration time.Duration  `json:"duration" msgpack:"duration"`
	Variants []VideoVariant `json:"variants,omitempty" msgpack:"variants"`
}

func (v *VideoInfo) clone() *VideoInfo {
	if v == nil {
		return nil
	}
	out := *v
	out.Variants = append([]VideoVariant(nil), v.Variants...)
	return &out
}

// VideoMetaData is the playback view of a tweet's video: a single chosen
// stream URL plus display geometry. Derived at decode time from the
// media entities, or from a playable card when no media video exists.
type VideoMetaData struct {
	VideoURL    string        `json:"videoURL" msgpack:"videoURL"`
	ContentType string        `json:"contentType" msgpack:"contentType"`
	AspectRatio float64       `json:"aspectRatio" msgpack:"aspectRatio"`
	Duration    time.Duration `json:"duration" msgpack:"duration"`
}

func (v *VideoMetaData) clone() *VideoMetaData {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}

func decodeVideoInfo(obj map[string]any) *VideoInfo {
	vi := &VideoInfo{}
	if ar, ok := getArray(obj, "aspect_ratio"); ok && len(ar) == 2 {
		w, okW := asInt64(ar[0])
		h, okH := asInt64(ar[1])
		if okW && okH && h != 0 {
			vi.AspectRatio = float64(w) / float64(h)
		}
	}
	if ms, ok := getInt64(obj, "duration_millis"); ok {
		vi.Duration = time.Duration(ms) * time.Millisecond
	}
	if arr, ok := getArray(obj, "variants"); ok {
		for _, el := range arr {
			v, ok := el.(map[string]any)
			if !ok {
				continue
			}
			variant := VideoVariant{}
			variant.Bitrate, _ = getInt64(v, "bitrate")
			variant.ContentType, _ = getString(v, "content_type")
			variant.URL, _ = getString(v, "url")
			if variant.URL == "" {
				continue
			}
			vi.Variants = append(vi.Variants, variant)
		}
	}
	return vi
}

// deriveVideoMetaData picks the playback stream for a tweet: the
// highest-bitrate variant of the first video media entity, else the
// card's stream URL when the card is playable.
func deriveVideoMetaData(t *Tweet) *VideoMetaData {
	for _, m := range t.Media {
		vi := m.VideoInfo
		if vi == nil || len(vi.Variants) == 0 {
			continue
		}
		best := vi.Variants[0]
		for _, v := range vi.Variants[1:] {
			if v.Bitrate > best.Bitrate {
				best = v
			}
		}
		return &VideoMetaData{
			VideoURL:    best.URL,
			ContentType: best.ContentType,
			AspectRatio: vi.AspectRatio,
			Duration:    vi.Duration,
		}
	}
	if t.Card != nil && t.Card.PlayerStreamURL != "" {
		return &VideoMetaData{
			VideoURL:    t.Card.PlayerStreamURL,
			ContentType: t.Card.PlayerStreamContentType,
		}
	}
	return nil
}
