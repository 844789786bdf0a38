package tweet

import "fmt"

// User is an immutable representation of the author of a tweet.
type User struct {
	// ID is the id_str field of the source payload (see Tweet.ID for why
	// the numeric form is not used).
	ID string `json:"id" msgpack:"id"`

	// Name is the display name, e.g. "Jack".
	Name string `json:"name" msgpack:"name"`

	// ScreenName is the handle without the leading "@", e.g. "jack".
	ScreenName string `json:"screenName" msgpack:"screenName"`

	Verified  bool `json:"verified" msgpack:"verified"`
	Protected bool `json:"protected" msgpack:"protected"`

	ProfileImageURL string `json:"profileImageURL,omitempty" msgpack:"profileImageURL"`
}

// FormattedScreenName returns the handle with the leading "@".
func (u *User) FormattedScreenName() string {
	return "@" + u.ScreenName
}

// ProfileURL returns the canonical web URL of the user's profile.
func (u *User) ProfileURL() string {
	return permalinkHost + "/" + u.ScreenName
}

func (u *User) clone() *User {
	if u == nil {
		return nil
	}
	out := *u
	return &out
}

// decodeUser hydrates a User from the "user" sub-object of a tweet
// payload. Only the ID is required; everything else is best-effort.
func decodeUser(obj map[string]any) (*User, error) {
	id, ok := getString(obj, "id_str")
	if !ok || id == "" {
		return nil, fmt.Errorf("%w: user missing id_str", ErrMalformedEntity)
	}
	u := &User{ID: id}
	u.Name, _ = getString(obj, "name")
	u.ScreenName, _ = getString(obj, "screen_name")
	u.Verified, _ = getBool(obj, "verified")
	u.Protected, _ = getBool(obj, "protected")
	u.ProfileImageURL, _ = getString(obj, "profile_image_url_https")
	return u, nil
}
