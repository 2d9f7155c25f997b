package filter

// Matches reports whether every key of match is present in attrs with an
// equal value. An empty or nil match map matches vacuously. Values compare
// within their kind only: bools to bools, strings to strings, numbers to
// numbers (int and float variants compare numerically, since rule values and
// compositor values both normally arrive through encoding/json as float64).
func Matches(attrs map[string]any, match map[string]any) bool {
	for key, want := range match {
		got, ok := attrs[key]
		if !ok || !valueEqual(got, want) {
			return false
		}
	}
	return true
}

func valueEqual(a, b any) bool {
	switch av := a.(type) {
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case nil:
		return b == nil
	}
	af, aok := toFloat(a)
	bf, bok := toFloat(b)
	return aok && bok && af == bf
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
