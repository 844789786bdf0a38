package tweet

// WithPerspective returns a copy of the tweet bound to the given viewing
// user, recursing into the retweeted and quoted tweets so the whole
// nested structure carries the same viewer.
//
// An empty userID denotes logged-out viewing: the copy reports
// Liked=false, Retweeted=false, and no RetweetID regardless of what the
// source payload said, since perspectival data from the API is
// meaningless without a known viewer. A non-empty userID records the
// viewer the payload was fetched for; the REST API does not echo the
// authenticated user back, so the API client binds it here.
//
// Pure: the receiver is never modified, and equal inputs yield
// structurally equal outputs.
func (t *Tweet) WithPerspective(userID string) *Tweet {
	out := t.clone()
	out.applyPerspective(userID)
	return out
}

// applyPerspective walks a freshly-cloned tweet; it must never be called
// on a shared value.
func (t *Tweet) applyPerspective(userID string) {
	t.PerspectivalUserID = userID
	if userID == "" {
		t.Liked = false
		t.Retweeted = false
		t.RetweetID = ""
	}
	if t.RetweetedTweet != nil {
		t.RetweetedTweet.applyPerspective(userID)
	}
	if t.QuotedTweet != nil {
		t.QuotedTweet.applyPerspective(userID)
	}
}

// WithLikeToggled returns a copy with the viewer's like state flipped
// and the like count adjusted to match: +1 when liking, -1 when
// unliking. The count can only decrement from a previously-incremented
// state, so no clamping is needed.
//
// This is the optimistic local representation of a like action pending
// server confirmation; rollback on failure is the API client's concern.
// Fails with ErrMissingPerspective when the tweet has no bound viewer.
func (t *Tweet) WithLikeToggled() (*Tweet, error) {
	if t.PerspectivalUserID == "" {
		return nil, ErrMissingPerspective
	}
	out := t.clone()
	if out.Liked {
		out.Liked = false
		out.LikeCount--
	} else {
		out.Liked = true
		out.LikeCount++
	}
	return out, nil
}
