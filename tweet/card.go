package tweet

import "strings"

// CardEntity is a rich-card attachment (player cards, summary cards).
// Only the bindings the model consumes are carried; unknown binding
// values are dropped at decode time.
type CardEntity struct {
	// Name is the card type discriminator, e.g. "player" or "summary".
	Name string `json:"name" msgpack:"name"`

	// URL is the t.co link that bound the card to the tweet text.
	URL string `json:"url" msgpack:"url"`

	PlayerURL               string `json:"playerURL,omitempty" msgpack:"playerURL"`
	PlayerStreamURL         string `json:"playerStreamURL,omitempty" msgpack:"playerStreamURL"`
	PlayerStreamContentType string `json:"playerStreamContentType,omitempty" msgpack:"playerStreamContentType"`

	// AppURL is the card's app deep link, when present.
	AppURL string `json:"appURL,omitempty" msgpack:"appURL"`
}

// IsVine reports whether this card is a Vine player card.
func (c *CardEntity) IsVine() bool {
	if c == nil || c.Name != "player" {
		return false
	}
	return strings.Contains(c.PlayerURL, "vine.co") || strings.Contains(c.AppURL, "vine.co")
}

func (c *CardEntity) clone() *CardEntity {
	if c == nil {
		return nil
	}
	out := *c
	return &out
}

// bindingString reads a STRING-typed binding value from a card's
// binding_values object.
func bindingString(bindings map[string]any, key string) string {
	bv, ok := getObject(bindings, key)
	if !ok {
		return ""
	}
	s, _ := getString(bv, "string_value")
	return s
}

// decodeCard hydrates a CardEntity from the "card" payload sub-object.
// Returns nil when the card has no name (nothing to render from).
func decodeCard(obj map[string]any) *CardEntity {
	name, ok := getString(obj, "name")
	if !ok || name == "" {
		return nil
	}
	c := &CardEntity{Name: name}
	c.URL, _ = getString(obj, "url")
	if bindings, ok := getObject(obj, "binding_values"); ok {
		c.PlayerURL = bindingString(bindings, "player_url")
		c.PlayerStreamURL = bindingString(bindings, "player_stream_url")
		c.PlayerStreamContentType = bindingString(bindings, "player_stream_content_type")
		c.AppURL = bindingString(bindings, "app_url")
	}
	return c
}
