package cmd

import (
	"github.com/spf13/cobra"

	"niri-select/internal/menu"
	"niri-select/internal/output"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the ranked candidate list without invoking the picker",
	Long:  "List windows or workspaces the way the picker would order them, as a table, YAML, or JSON.",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().Bool("windows", false, "List windows")
	listCmd.Flags().Bool("workspaces", false, "List workspaces")
	listCmd.MarkFlagsMutuallyExclusive("windows", "workspaces")
	listCmd.MarkFlagsOneRequired("windows", "workspaces")

	addFilterFlags(listCmd)
	listCmd.Flags().Bool("select-focused", false, "Rank the focused item first")
	listCmd.Flags().String("format", "", "Output format: table, yaml, json")
}

func runList(cmd *cobra.Command, args []string) error {
	formatArg, _ := cmd.Flags().GetString("format")
	format, err := output.ParseFormat(formatArg)
	if err != nil {
		return err
	}

	rules, err := parseRuleFlags(cmd)
	if err != nil {
		return err
	}

	client, err := newCompositor()
	if err != nil {
		return err
	}
	snap, err := client.Snapshot()
	if err != nil {
		return err
	}

	windowsMode, _ := cmd.Flags().GetBool("windows")
	selectFocused, _ := cmd.Flags().GetBool("select-focused")

	var cands []menu.Candidate
	if windowsMode {
		cands, err = windowCandidates(snap, rules, selectFocused)
	} else {
		cands, err = workspaceCandidates(snap, rules.workspace, selectFocused)
	}
	if err != nil {
		return err
	}

	return output.PrintCandidates(cands, format)
}
