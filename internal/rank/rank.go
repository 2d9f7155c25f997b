// Package rank orders filtered candidates into the four-tier priority
// scheme: the focused workspace first, then other visible workspaces, then
// the focused output's remaining workspaces by index, then everything else
// by output and index.
package rank

import (
	"sort"

	"niri-select/internal/model"
)

// Tiers, lower sorts earlier.
const (
	TierCurrent    = 1 // on the focused workspace
	TierActive     = 2 // on another visible workspace
	TierSameOutput = 3 // on a non-visible workspace of the focused output
	TierOther      = 4 // everything else
)

// sortKey is the per-entity ordering key. Output and idx only participate
// for tiers 3 and 4; tiers 1 and 2 keep input order.
type sortKey struct {
	tier   int
	output string
	idx    int64
}

// WindowTier computes the tier of a window from its owning workspace.
// Windows on an unknown workspace fall into the last tier.
func WindowTier(w model.Window, snap *model.Snapshot) int {
	ws, ok := snap.WorkspaceByID(w.WorkspaceID)
	if !ok {
		return TierOther
	}
	return WorkspaceTier(ws, snap)
}

// WorkspaceTier computes the tier of a workspace.
func WorkspaceTier(ws model.Workspace, snap *model.Snapshot) int {
	switch {
	case ws.IsFocused:
		return TierCurrent
	case ws.IsActive:
		return TierActive
	case ws.Output == snap.FocusedOutput() && ws.Output != "":
		return TierSameOutput
	}
	return TierOther
}

// Windows orders windows by tier. Within the first tier the focused window
// is placed last, or first when selectFocused is set; everything else keeps
// its relative order except for the explicit idx/output sort of tiers 3-4.
func Windows(windows []model.Window, snap *model.Snapshot, selectFocused bool) []model.Window {
	key := func(w model.Window) sortKey {
		ws, ok := snap.WorkspaceByID(w.WorkspaceID)
		if !ok {
			return sortKey{tier: TierOther}
		}
		return sortKey{tier: WorkspaceTier(ws, snap), output: ws.Output, idx: ws.Idx}
	}
	focused := func(w model.Window) bool { return w.IsFocused }
	return order(windows, key, focused, selectFocused)
}

// Workspaces orders workspaces by tier, with the same focused-placement
// policy applied to the focused workspace itself.
func Workspaces(workspaces []model.Workspace, snap *model.Snapshot, selectFocused bool) []model.Workspace {
	key := func(ws model.Workspace) sortKey {
		return sortKey{tier: WorkspaceTier(ws, snap), output: ws.Output, idx: ws.Idx}
	}
	focused := func(ws model.Workspace) bool { return ws.IsFocused }
	return order(workspaces, key, focused, selectFocused)
}

func order[T any](items []T, key func(T) sortKey, focused func(T) bool, selectFocused bool) []T {
	out := make([]T, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		return keyLess(key(out[i]), key(out[j]))
	})
	return placeFocused(out, key, focused, selectFocused)
}

func keyLess(a, b sortKey) bool {
	if a.tier != b.tier {
		return a.tier < b.tier
	}
	switch a.tier {
	case TierSameOutput:
		return a.idx < b.idx
	case TierOther:
		if a.output != b.output {
			return a.output < b.output
		}
		return a.idx < b.idx
	}
	return false
}

// placeFocused moves the focused first-tier entity to the head or tail of
// its tier by remove-and-reinsert, so no other relative order changes.
func placeFocused[T any](items []T, key func(T) sortKey, focused func(T) bool, selectFocused bool) []T {
	from := -1
	for i, it := range items {
		if focused(it) && key(it).tier == TierCurrent {
			from = i
			break
		}
	}
	if from < 0 {
		return items
	}

	item := items[from]
	rest := make([]T, 0, len(items)-1)
	rest = append(rest, items[:from]...)
	rest = append(rest, items[from+1:]...)

	at := 0
	if !selectFocused {
		// After the stable sort the first tier is a prefix of the slice.
		for at < len(rest) && key(rest[at]).tier == TierCurrent {
			at++
		}
	}

	out := make([]T, 0, len(items))
	out = append(out, rest[:at]...)
	out = append(out, item)
	out = append(out, rest[at:]...)
	return out
}
