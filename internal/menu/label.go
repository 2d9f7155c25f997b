// Package menu renders ranked entities into the single-line labels shown by
// the picker and resolves a picked label back to its entity.
package menu

import (
	"fmt"
	"strconv"

	"niri-select/internal/model"
	"niri-select/internal/rank"
)

// Kind says what a candidate stands for.
type Kind string

const (
	KindWindow    Kind = "window"
	KindWorkspace Kind = "workspace"
)

// Candidate is one selectable line: the entity id, its ordering tier, and
// the rendered label. Labels within one candidate set are unique.
type Candidate struct {
	ID      int64
	Kind    Kind
	Tier    int
	Label   string
	Focused bool
}

// WindowCandidates renders already-ranked windows into candidates. Workspace
// and output qualifiers are only added when the set actually spans several
// workspaces or outputs, so single-workspace lists stay short.
func WindowCandidates(windows []model.Window, snap *model.Snapshot) []Candidate {
	multiWorkspace, multiOutput := spread(windows, snap)

	cands := make([]Candidate, len(windows))
	for i, w := range windows {
		label := w.Title
		if label == "" {
			label = w.AppID
		}
		if w.AppID != "" {
			label += " (" + w.AppID + ")"
		}
		if w.IsFocused {
			label = "* " + label
		}
		if multiWorkspace {
			if ws, ok := snap.WorkspaceByID(w.WorkspaceID); ok {
				place := workspaceName(ws)
				if multiOutput && ws.Output != "" {
					place += " / " + ws.Output
				}
				label += " (@" + place + ")"
			}
		}
		cands[i] = Candidate{
			ID:      w.ID,
			Kind:    KindWindow,
			Tier:    rank.WindowTier(w, snap),
			Label:   label,
			Focused: w.IsFocused,
		}
	}
	return disambiguate(cands)
}

// WorkspaceCandidates renders already-ranked workspaces into candidates.
// Each label carries the title of the workspace's visible window so similar
// workspaces can be told apart at a glance.
func WorkspaceCandidates(workspaces []model.Workspace, snap *model.Snapshot) []Candidate {
	outputs := make(map[string]bool)
	for _, ws := range workspaces {
		outputs[ws.Output] = true
	}
	multiOutput := len(outputs) > 1

	cands := make([]Candidate, len(workspaces))
	for i, ws := range workspaces {
		label := "@" + workspaceName(ws)
		if ws.IsFocused {
			label = "* " + label
		}
		if multiOutput && ws.Output != "" {
			label += " / " + ws.Output
		}
		title := "(empty)"
		if w, ok := snap.WindowByID(ws.ActiveWindowID); ok {
			title = w.Title
		}
		label += " -- " + title

		cands[i] = Candidate{
			ID:      ws.ID,
			Kind:    KindWorkspace,
			Tier:    rank.WorkspaceTier(ws, snap),
			Label:   label,
			Focused: ws.IsFocused,
		}
	}
	return disambiguate(cands)
}

// Lines returns the labels in candidate order, one picker line each.
func Lines(cands []Candidate) []string {
	lines := make([]string, len(cands))
	for i, c := range cands {
		lines[i] = c.Label
	}
	return lines
}

// FocusedLabel returns the label of the focused candidate, or "".
func FocusedLabel(cands []Candidate) string {
	for _, c := range cands {
		if c.Focused {
			return c.Label
		}
	}
	return ""
}

func workspaceName(ws model.Workspace) string {
	if ws.Name != "" {
		return ws.Name
	}
	return strconv.FormatInt(ws.Idx, 10)
}

func spread(windows []model.Window, snap *model.Snapshot) (multiWorkspace, multiOutput bool) {
	workspaces := make(map[int64]bool)
	outputs := make(map[string]bool)
	for _, w := range windows {
		workspaces[w.WorkspaceID] = true
		if ws, ok := snap.WorkspaceByID(w.WorkspaceID); ok {
			outputs[ws.Output] = true
		}
	}
	return len(workspaces) > 1, len(outputs) > 1
}

// disambiguate appends the entity id to every label that occurs more than
// once, making the label set injective. The suffix goes on every member of a
// colliding group so equal-looking entries stay visually consistent.
func disambiguate(cands []Candidate) []Candidate {
	seen := make(map[string]int, len(cands))
	for _, c := range cands {
		seen[c.Label]++
	}
	for i, c := range cands {
		if seen[c.Label] > 1 {
			cands[i].Label = fmt.Sprintf("%s [%d]", c.Label, c.ID)
		}
	}
	return cands
}
