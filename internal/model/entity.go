package model

// Window represents one window as reported by `niri msg --json windows`.
// Mandatory fields are extracted into typed fields for ranking and
// activation; the full decoded object is kept in Attrs so user-supplied
// rules can match on any key the compositor returns.
type Window struct {
	ID          int64
	Title       string
	AppID       string
	WorkspaceID int64
	IsFocused   bool
	IsFloating  bool
	Attrs       map[string]any
}

// Workspace represents one workspace as reported by `niri msg --json workspaces`.
// Idx is the per-output ordinal; Name may be empty for unnamed workspaces.
type Workspace struct {
	ID             int64
	Idx            int64
	Name           string
	Output         string
	IsActive       bool
	IsFocused      bool
	ActiveWindowID int64
	Attrs          map[string]any
}

// WindowFromAttrs builds a Window from a decoded JSON object, extracting the
// mandatory fields and retaining the object itself.
func WindowFromAttrs(attrs map[string]any) Window {
	return Window{
		ID:          attrInt64(attrs, "id"),
		Title:       attrString(attrs, "title"),
		AppID:       attrString(attrs, "app_id"),
		WorkspaceID: attrInt64(attrs, "workspace_id"),
		IsFocused:   attrBool(attrs, "is_focused"),
		IsFloating:  attrBool(attrs, "is_floating"),
		Attrs:       attrs,
	}
}

// WorkspaceFromAttrs builds a Workspace from a decoded JSON object.
func WorkspaceFromAttrs(attrs map[string]any) Workspace {
	return Workspace{
		ID:             attrInt64(attrs, "id"),
		Idx:            attrInt64(attrs, "idx"),
		Name:           attrString(attrs, "name"),
		Output:         attrString(attrs, "output"),
		IsActive:       attrBool(attrs, "is_active"),
		IsFocused:      attrBool(attrs, "is_focused"),
		ActiveWindowID: attrInt64(attrs, "active_window_id"),
		Attrs:          attrs,
	}
}

// attrInt64 reads a numeric attribute. encoding/json decodes numbers as
// float64; int variants are handled for values built in code.
func attrInt64(attrs map[string]any, key string) int64 {
	switch v := attrs[key].(type) {
	case float64:
		return int64(v)
	case int64:
		return v
	case int:
		return int64(v)
	}
	return 0
}

func attrString(attrs map[string]any, key string) string {
	s, _ := attrs[key].(string)
	return s
}

func attrBool(attrs map[string]any, key string) bool {
	b, _ := attrs[key].(bool)
	return b
}
