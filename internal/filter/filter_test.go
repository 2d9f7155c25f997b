package filter

import (
	"errors"
	"testing"

	"niri-select/internal/model"
)

func win(id, wsID int64, appID string, focused bool) model.Window {
	return model.WindowFromAttrs(map[string]any{
		"id":           float64(id),
		"workspace_id": float64(wsID),
		"app_id":       appID,
		"title":        appID,
		"is_focused":   focused,
	})
}

func filterSnapshot() *model.Snapshot {
	windows := []model.Window{
		win(1, 10, "nvim", true),
		win(2, 11, "firefox", false),
		win(3, 20, "foot", false),
	}
	workspaces := []model.Workspace{
		model.WorkspaceFromAttrs(map[string]any{"id": float64(10), "idx": float64(0), "output": "DP-1", "is_active": true, "is_focused": true}),
		model.WorkspaceFromAttrs(map[string]any{"id": float64(11), "idx": float64(1), "output": "DP-1", "is_active": false, "is_focused": false}),
		model.WorkspaceFromAttrs(map[string]any{"id": float64(20), "idx": float64(0), "output": "HDMI-A-1", "is_active": true, "is_focused": false}),
	}
	return model.NewSnapshot(windows, workspaces)
}

func windowIDs(windows []model.Window) []int64 {
	ids := make([]int64, len(windows))
	for i, w := range windows {
		ids[i] = w.ID
	}
	return ids
}

func TestWindows_NoRules(t *testing.T) {
	snap := filterSnapshot()
	got, err := Windows(snap.Windows, nil, nil, nil, snap)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Errorf("expected all 3 windows, got %d", len(got))
	}
}

func TestWindows_AppID(t *testing.T) {
	snap := filterSnapshot()
	appID, _ := ParseAppID("firefox")

	got, err := Windows(snap.Windows, appID, nil, nil, snap)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].ID != 2 {
		t.Errorf("expected window 2, got %v", windowIDs(got))
	}
}

func TestWindows_AppIDAndMatchingAreANDed(t *testing.T) {
	snap := filterSnapshot()
	appID, _ := ParseAppID("firefox")

	matching, _ := ParseMatching(`{"workspace_id": 11}`)
	got, err := Windows(snap.Windows, appID, matching, nil, snap)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].ID != 2 {
		t.Errorf("agreeing rules: expected window 2, got %v", windowIDs(got))
	}

	// Conflicting values yield an empty result, not an error.
	conflicting, _ := ParseMatching(`{"app_id": "foot"}`)
	got, err = Windows(snap.Windows, appID, conflicting, nil, snap)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("conflicting rules: expected no windows, got %v", windowIDs(got))
	}
}

func TestWindows_WorkspaceActive(t *testing.T) {
	snap := filterSnapshot()
	workspace, _ := ParseWorkspace("@active")

	got, err := Windows(snap.Windows, nil, nil, workspace, snap)
	if err != nil {
		t.Fatal(err)
	}
	ids := windowIDs(got)
	if len(ids) != 2 || ids[0] != 1 || ids[1] != 3 {
		t.Errorf("expected windows on workspaces 10 and 20, got %v", ids)
	}
}

func TestWindows_WorkspaceLiteral(t *testing.T) {
	snap := filterSnapshot()
	workspace, _ := ParseWorkspace(`{"output": "DP-1"}`)

	got, err := Windows(snap.Windows, nil, nil, workspace, snap)
	if err != nil {
		t.Fatal(err)
	}
	ids := windowIDs(got)
	if len(ids) != 2 || ids[0] != 1 || ids[1] != 2 {
		t.Errorf("expected windows 1 and 2, got %v", ids)
	}
}

func TestWindows_ResolutionErrorPropagates(t *testing.T) {
	snap := model.NewSnapshot([]model.Window{win(1, 10, "nvim", false)}, nil)
	appID, _ := ParseAppID("@focused")

	if _, err := Windows(snap.Windows, appID, nil, nil, snap); !errors.Is(err, ErrNoFocusedWindow) {
		t.Errorf("expected ErrNoFocusedWindow, got %v", err)
	}
}

func TestWindows_PreservesInputOrder(t *testing.T) {
	snap := filterSnapshot()
	matching, _ := ParseMatching(`{"is_focused": false}`)

	got, err := Windows(snap.Windows, nil, matching, nil, snap)
	if err != nil {
		t.Fatal(err)
	}
	ids := windowIDs(got)
	if len(ids) != 2 || ids[0] != 2 || ids[1] != 3 {
		t.Errorf("filtering must not reorder: got %v", ids)
	}
}

func TestWorkspaces_Rule(t *testing.T) {
	snap := filterSnapshot()

	rule, _ := ParseWorkspace("@output")
	got, err := Workspaces(snap.Workspaces, rule, snap)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].ID != 10 || got[1].ID != 11 {
		t.Errorf("expected workspaces 10 and 11, got %+v", got)
	}

	got, err = Workspaces(snap.Workspaces, nil, snap)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Errorf("nil rule should keep all workspaces, got %d", len(got))
	}
}
