package menu

import (
	"errors"
	"testing"

	"niri-select/internal/model"
)

func TestRoundTrip(t *testing.T) {
	windows := []model.Window{
		win(1, 10, "shell", "foot", false),
		win(2, 10, "shell", "foot", false),
		win(3, 10, "editor", "nvim", true),
	}
	snap := model.NewSnapshot(windows, []model.Workspace{
		model.WorkspaceFromAttrs(map[string]any{"id": float64(10), "idx": float64(0), "is_active": true, "is_focused": true}),
	})

	cands := WindowCandidates(windows, snap)
	index := BuildIndex(cands)

	if len(index) != len(cands) {
		t.Fatalf("index not injective: %d labels for %d candidates", len(index), len(cands))
	}
	for _, c := range cands {
		got, err := ResolveChoice(c.Label, index)
		if err != nil {
			t.Fatalf("ResolveChoice(%q): %v", c.Label, err)
		}
		if got.ID != c.ID {
			t.Errorf("ResolveChoice(%q) = id %d, want %d", c.Label, got.ID, c.ID)
		}
	}
}

func TestResolveChoice_Unknown(t *testing.T) {
	index := BuildIndex([]Candidate{{ID: 1, Kind: KindWindow, Label: "editor (nvim)"}})

	for _, label := range []string{"", "no such line", "editor (nvim) "} {
		if _, err := ResolveChoice(label, index); !errors.Is(err, ErrUnknownSelection) {
			t.Errorf("ResolveChoice(%q): expected ErrUnknownSelection, got %v", label, err)
		}
	}
}

func TestNarrow(t *testing.T) {
	cands := []Candidate{
		{ID: 1, Label: "editor (nvim)"},
		{ID: 2, Label: "browser (firefox)"},
		{ID: 3, Label: "terminal (foot)"},
	}

	got := Narrow(cands, "fire")
	if len(got) != 1 || got[0].ID != 2 {
		t.Errorf("Narrow(fire) = %v", got)
	}

	if got := Narrow(cands, ""); len(got) != 3 {
		t.Errorf("empty query should keep all candidates, got %d", len(got))
	}

	if got := Narrow(cands, "zzzz"); len(got) != 0 {
		t.Errorf("unmatched query should drop everything, got %v", got)
	}
}
