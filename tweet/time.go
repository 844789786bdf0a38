package tweet

import (
	"fmt"
	"time"

	"github.com/araddon/dateparse"
)

// CreatedAtLayout is the timestamp syntax of the REST API's created_at
// field, for use with [time.Format].
const CreatedAtLayout = "Mon Jan 02 15:04:05 -0700 2006"

// ParseCreatedAt parses a created_at timestamp, normalized to UTC. The
// canonical REST layout is tried first; other surfaces (search API,
// ISO-8601 from intermediate stores) go through a lenient fallback.
func ParseCreatedAt(s string) (time.Time, error) {
	t, err := time.Parse(CreatedAtLayout, s)
	if err == nil {
		return t.UTC(), nil
	}

	t, err = dateparse.ParseAny(s)
	if err == nil {
		return t.UTC(), nil
	}

	return time.Time{}, fmt.Errorf("failed to parse %q as timestamp", s)
}
