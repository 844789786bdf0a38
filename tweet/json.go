package tweet

// Tolerant accessors over generic parsed JSON. Absent keys, null values,
// and wrong-type values all read as "not ok"; the decoder decides per
// field whether that is fatal.

func getString(obj map[string]any, key string) (string, bool) {
	if obj == nil {
		return "", false
	}
	s, ok := obj[key].(string)
	return s, ok
}

func getBool(obj map[string]any, key string) (bool, bool) {
	if obj == nil {
		return false, false
	}
	b, ok := obj[key].(bool)
	return b, ok
}

func getObject(obj map[string]any, key string) (map[string]any, bool) {
	if obj == nil {
		return nil, false
	}
	m, ok := obj[key].(map[string]any)
	return m, ok
}

func getArray(obj map[string]any, key string) ([]any, bool) {
	if obj == nil {
		return nil, false
	}
	a, ok := obj[key].([]any)
	return a, ok
}

func getInt64(obj map[string]any, key string) (int64, bool) {
	if obj == nil {
		return 0, false
	}
	return asInt64(obj[key])
}

// asInt64 accepts the integer shapes a generic JSON parser can produce.
// Fractional floats read as "not ok" rather than truncating.
func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case float64:
		if n != float64(int64(n)) {
			return 0, false
		}
		return int64(n), true
	default:
		return 0, false
	}
}
