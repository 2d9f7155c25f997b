package filter

import "niri-select/internal/model"

// Windows reduces the window list by up to three independent rules: an
// app-id rule, an arbitrary attribute-matching rule, and a workspace
// membership rule. The app-id and matching rules are combined with logical
// AND; the workspace rule keeps windows whose workspace matches at least one
// of its resolved match maps. Input order is preserved.
func Windows(windows []model.Window, appID, matching, workspace *Rule, snap *model.Snapshot) ([]model.Window, error) {
	var matchMaps []map[string]any
	for _, r := range []*Rule{appID, matching} {
		if r == nil {
			continue
		}
		resolved, err := r.Resolve(snap)
		if err != nil {
			return nil, err
		}
		matchMaps = append(matchMaps, resolved...)
	}

	var wsIDs map[int64]bool
	if workspace != nil {
		matched, err := Workspaces(snap.Workspaces, workspace, snap)
		if err != nil {
			return nil, err
		}
		wsIDs = make(map[int64]bool, len(matched))
		for _, ws := range matched {
			wsIDs[ws.ID] = true
		}
	}

	var out []model.Window
	for _, w := range windows {
		if !matchesAll(w.Attrs, matchMaps) {
			continue
		}
		if wsIDs != nil && !wsIDs[w.WorkspaceID] {
			continue
		}
		out = append(out, w)
	}
	return out, nil
}

// Workspaces reduces the workspace list by a single rule, keeping workspaces
// that match at least one of the rule's resolved match maps. A nil rule
// keeps everything. Input order is preserved.
func Workspaces(workspaces []model.Workspace, rule *Rule, snap *model.Snapshot) ([]model.Workspace, error) {
	if rule == nil {
		return workspaces, nil
	}
	resolved, err := rule.Resolve(snap)
	if err != nil {
		return nil, err
	}

	var out []model.Workspace
	for _, ws := range workspaces {
		if matchesAny(ws.Attrs, resolved) {
			out = append(out, ws)
		}
	}
	return out, nil
}

func matchesAll(attrs map[string]any, matches []map[string]any) bool {
	for _, m := range matches {
		if !Matches(attrs, m) {
			return false
		}
	}
	return true
}

func matchesAny(attrs map[string]any, matches []map[string]any) bool {
	for _, m := range matches {
		if Matches(attrs, m) {
			return true
		}
	}
	return false
}
