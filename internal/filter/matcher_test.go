package filter

import "testing"

func TestMatches_EmptyRule(t *testing.T) {
	attrs := map[string]any{"app_id": "firefox", "id": float64(3)}
	if !Matches(attrs, nil) {
		t.Error("nil rule should match everything")
	}
	if !Matches(attrs, map[string]any{}) {
		t.Error("empty rule should match everything")
	}
	if !Matches(map[string]any{}, nil) {
		t.Error("nil rule should match an empty entity")
	}
}

func TestMatches_Equality(t *testing.T) {
	attrs := map[string]any{
		"app_id":     "firefox",
		"id":         float64(3),
		"is_focused": true,
		"name":       nil,
	}

	tests := []struct {
		name string
		rule map[string]any
		want bool
	}{
		{"string_equal", map[string]any{"app_id": "firefox"}, true},
		{"string_unequal", map[string]any{"app_id": "foot"}, false},
		{"number_equal", map[string]any{"id": float64(3)}, true},
		{"number_unequal", map[string]any{"id": float64(4)}, false},
		{"number_int_vs_float", map[string]any{"id": int64(3)}, true},
		{"bool_equal", map[string]any{"is_focused": true}, true},
		{"bool_unequal", map[string]any{"is_focused": false}, false},
		{"absent_key", map[string]any{"pid": float64(1)}, false},
		{"null_equal", map[string]any{"name": nil}, true},
		{"multi_key_all_match", map[string]any{"app_id": "firefox", "id": float64(3)}, true},
		{"multi_key_one_fails", map[string]any{"app_id": "firefox", "id": float64(4)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Matches(attrs, tt.rule); got != tt.want {
				t.Errorf("Matches(%v) = %v, want %v", tt.rule, got, tt.want)
			}
		})
	}
}

func TestMatches_NoCoercionAcrossKinds(t *testing.T) {
	attrs := map[string]any{"id": float64(1), "is_focused": true, "app_id": "5"}

	if Matches(attrs, map[string]any{"id": "1"}) {
		t.Error("number should not equal its string form")
	}
	if Matches(attrs, map[string]any{"is_focused": float64(1)}) {
		t.Error("bool should not equal a number")
	}
	if Matches(attrs, map[string]any{"app_id": float64(5)}) {
		t.Error("string should not equal a number")
	}
}
