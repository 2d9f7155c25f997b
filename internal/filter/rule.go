package filter

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"niri-select/internal/model"
)

var (
	// ErrInvalidSyntax is returned when a user-supplied rule string is
	// neither a known symbolic token nor a JSON object.
	ErrInvalidSyntax = errors.New("invalid filter syntax")
	// ErrNoFocusedWindow is returned when @focused needs a focused window
	// and the snapshot has none.
	ErrNoFocusedWindow = errors.New("no focused window")
	// ErrNoFocusedWorkspace is returned when a symbolic rule needs the
	// focused workspace or its output and the snapshot has neither.
	ErrNoFocusedWorkspace = errors.New("no focused workspace")
)

type ruleKind int

const (
	ruleLiteral ruleKind = iota
	ruleFocusedApp
	ruleFocusedWorkspace
	ruleActiveWorkspaces
	ruleFocusedOutput
)

// Rule is a single filter rule: either a literal attribute-match map, or a
// symbolic token that Resolve expands against a snapshot. Keeping the
// symbolic cases in one type means Matches and the filter functions never
// see tokens, only concrete match maps.
type Rule struct {
	kind  ruleKind
	match map[string]any
}

// Literal wraps a concrete attribute-match map as a Rule.
func Literal(match map[string]any) *Rule {
	return &Rule{kind: ruleLiteral, match: match}
}

// ParseAppID parses the --app-id argument. "@focused" selects the focused
// window's app id; anything else is a literal app_id match. An empty
// argument means no rule.
func ParseAppID(arg string) (*Rule, error) {
	switch arg {
	case "":
		return nil, nil
	case "@focused":
		return &Rule{kind: ruleFocusedApp}, nil
	}
	return Literal(map[string]any{"app_id": arg}), nil
}

// ParseMatching parses the --window-matching argument, which must be a JSON
// object of attribute/value pairs. An empty argument means no rule.
func ParseMatching(arg string) (*Rule, error) {
	if arg == "" {
		return nil, nil
	}
	match, err := parseJSONObject(arg)
	if err != nil {
		return nil, fmt.Errorf("%w: window matching rule %q", ErrInvalidSyntax, arg)
	}
	return Literal(match), nil
}

// ParseWorkspace parses the --workspace argument: one of the symbolic tokens
// @focused, @active, @output, or a JSON object matched against workspace
// attributes. An empty argument means no rule.
func ParseWorkspace(arg string) (*Rule, error) {
	switch arg {
	case "":
		return nil, nil
	case "@focused":
		return &Rule{kind: ruleFocusedWorkspace}, nil
	case "@active":
		return &Rule{kind: ruleActiveWorkspaces}, nil
	case "@output":
		return &Rule{kind: ruleFocusedOutput}, nil
	}
	if strings.HasPrefix(arg, "@") {
		return nil, fmt.Errorf("%w: unknown token %q", ErrInvalidSyntax, arg)
	}
	match, err := parseJSONObject(arg)
	if err != nil {
		return nil, fmt.Errorf("%w: workspace rule %q", ErrInvalidSyntax, arg)
	}
	return Literal(match), nil
}

// Resolve expands the rule into one or more concrete match maps using the
// snapshot's focus and output state. Literal rules pass through unchanged.
// Callers OR across the returned maps.
func (r *Rule) Resolve(snap *model.Snapshot) ([]map[string]any, error) {
	switch r.kind {
	case ruleLiteral:
		return []map[string]any{r.match}, nil
	case ruleFocusedApp:
		fw := snap.FocusedWindow()
		if fw == nil {
			return nil, ErrNoFocusedWindow
		}
		return []map[string]any{{"app_id": fw.AppID}}, nil
	case ruleFocusedWorkspace:
		fws := snap.FocusedWorkspace()
		if fws == nil {
			return nil, ErrNoFocusedWorkspace
		}
		return []map[string]any{{"id": fws.ID}}, nil
	case ruleActiveWorkspaces:
		var matches []map[string]any
		for _, ws := range snap.ActiveWorkspaces() {
			matches = append(matches, map[string]any{"id": ws.ID})
		}
		return matches, nil
	case ruleFocusedOutput:
		output := snap.FocusedOutput()
		if output == "" {
			return nil, ErrNoFocusedWorkspace
		}
		return []map[string]any{{"output": output}}, nil
	}
	return nil, fmt.Errorf("unhandled rule kind %d", r.kind)
}

func parseJSONObject(arg string) (map[string]any, error) {
	var match map[string]any
	if err := json.Unmarshal([]byte(arg), &match); err != nil {
		return nil, err
	}
	if match == nil {
		return nil, fmt.Errorf("rule is JSON null")
	}
	return match, nil
}
