package cmd

import (
	"github.com/spf13/cobra"

	"niri-select/internal/filter"
	"niri-select/internal/menu"
	"niri-select/internal/model"
	"niri-select/internal/rank"
)

// ruleSet carries the parsed filter rules of one invocation.
type ruleSet struct {
	appID     *filter.Rule
	matching  *filter.Rule
	workspace *filter.Rule
}

func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().String("app-id", "", "Filter windows by app id; @focused uses the focused window's app id")
	cmd.Flags().String("window-matching", "", "Filter windows by a JSON object of attribute/value pairs")
	cmd.Flags().String("workspace", "", `Filter by workspace: a JSON object (e.g. '{"name": "web"}') or one of @focused, @active, @output`)
}

func parseRuleFlags(cmd *cobra.Command) (ruleSet, error) {
	appID, _ := cmd.Flags().GetString("app-id")
	matching, _ := cmd.Flags().GetString("window-matching")
	workspace, _ := cmd.Flags().GetString("workspace")
	return parseRules(appID, matching, workspace)
}

func parseRules(appID, matching, workspace string) (ruleSet, error) {
	var rules ruleSet
	var err error
	if rules.appID, err = filter.ParseAppID(appID); err != nil {
		return ruleSet{}, err
	}
	if rules.matching, err = filter.ParseMatching(matching); err != nil {
		return ruleSet{}, err
	}
	if rules.workspace, err = filter.ParseWorkspace(workspace); err != nil {
		return ruleSet{}, err
	}
	return rules, nil
}

// windowCandidates runs the window pipeline: filter, rank, render.
func windowCandidates(snap *model.Snapshot, rules ruleSet, selectFocused bool) ([]menu.Candidate, error) {
	filtered, err := filter.Windows(snap.Windows, rules.appID, rules.matching, rules.workspace, snap)
	if err != nil {
		return nil, err
	}
	ranked := rank.Windows(filtered, snap, selectFocused)
	return menu.WindowCandidates(ranked, snap), nil
}

// workspaceCandidates runs the workspace pipeline.
func workspaceCandidates(snap *model.Snapshot, workspace *filter.Rule, selectFocused bool) ([]menu.Candidate, error) {
	filtered, err := filter.Workspaces(snap.Workspaces, workspace, snap)
	if err != nil {
		return nil, err
	}
	ranked := rank.Workspaces(filtered, snap, selectFocused)
	return menu.WorkspaceCandidates(ranked, snap), nil
}
