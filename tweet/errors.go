package tweet

import "errors"

// Indicates that a required field of a tweet or user payload was missing
// or had the wrong shape during single-object decode. Batch decode drops
// the offending element instead of returning this.
var ErrMalformedEntity = errors.New("malformed entity")

// Indicates that a viewer-dependent operation was invoked on a tweet with
// no bound viewer. Optimistic like state is meaningless without knowing
// whose like it is.
var ErrMissingPerspective = errors.New("tweet has no perspectival user")
