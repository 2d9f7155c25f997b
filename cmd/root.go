package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"niri-select/internal/compositor"
	"niri-select/internal/config"
	"niri-select/internal/logging"
	"niri-select/internal/menu"
	"niri-select/internal/model"
	"niri-select/internal/picker"
	"niri-select/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "niri-select [flags] [-- fuzzel args]",
	Short: "Pick a niri window or workspace with fuzzel",
	Long: `niri-select shows a fuzzel dmenu of niri windows or workspaces,
ordered so the most likely target is on top, and focuses the chosen one.

Arguments after -- are forwarded verbatim to fuzzel.`,
	Args: cobra.ArbitraryArgs,
	RunE: runSelect,
}

// cfg holds the loaded config file; flags win over it.
var cfg = config.Default()

// Collaborator constructors, swappable in tests.
var (
	newCompositor = func() (compositor.Client, error) { return compositor.NewNiri() }
	newPicker     = func() (picker.Picker, error) { return picker.NewFuzzel() }
)

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)

	rootCmd.PersistentFlags().String("config", "", "Config file path (default ~/.config/niri-select/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")

	rootCmd.Flags().Bool("windows", false, "Select among windows")
	rootCmd.Flags().Bool("workspaces", false, "Select among workspaces")
	rootCmd.MarkFlagsMutuallyExclusive("windows", "workspaces")
	rootCmd.MarkFlagsOneRequired("windows", "workspaces")

	addFilterFlags(rootCmd)
	rootCmd.Flags().Bool("select-focused", false, "Preselect the focused item and rank it first")
	rootCmd.Flags().IntP("width", "w", 0, "Width of the menu in characters")
	rootCmd.Flags().String("prompt", "", "Prompt to display in the menu")
	rootCmd.Flags().String("query", "", "Narrow the list to fuzzy matches of this query before the picker runs")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		path, _ := rootCmd.PersistentFlags().GetString("config")
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		cfg = loaded

		level, _ := rootCmd.PersistentFlags().GetString("log-level")
		if level == "" {
			level = cfg.LogLevel
		}
		return logging.Init(level)
	}
}

func runSelect(cmd *cobra.Command, args []string) error {
	windowsMode, _ := cmd.Flags().GetBool("windows")
	selectFocused, _ := cmd.Flags().GetBool("select-focused")

	// Rule syntax is checked before anything talks to the compositor.
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

	var cands []menu.Candidate
	prompt := "Workspace"
	if windowsMode {
		prompt = "Window"
		cands, err = windowCandidates(snap, rules, selectFocused)
	} else {
		cands, err = workspaceCandidates(snap, rules.workspace, selectFocused)
	}
	if err != nil {
		return err
	}

	if query, _ := cmd.Flags().GetString("query"); query != "" {
		cands = menu.Narrow(cands, query)
	}
	if len(cands) == 0 {
		logging.Info().Msg("nothing to select")
		fmt.Fprintln(os.Stderr, "nothing to select")
		return nil
	}

	if p, _ := cmd.Flags().GetString("prompt"); p != "" {
		prompt = p
	} else if cfg.Prompt != "" {
		prompt = cfg.Prompt
	}
	width, _ := cmd.Flags().GetInt("width")
	if width == 0 {
		width = cfg.Width
	}

	opts := picker.Options{
		Prompt: prompt,
		Width:  width,
		Extra:  append(append([]string{}, cfg.FuzzelArgs...), passthroughArgs(cmd, args)...),
	}
	if selectFocused {
		opts.Select = menu.FocusedLabel(cands)
	}

	p, err := newPicker()
	if err != nil {
		return err
	}
	choice, err := p.Pick(menu.Lines(cands), opts)
	if errors.Is(err, picker.ErrCancelled) {
		logging.Debug().Msg("selection cancelled")
		return nil
	}
	if err != nil {
		return err
	}

	chosen, err := menu.ResolveChoice(choice, menu.BuildIndex(cands))
	if errors.Is(err, menu.ErrUnknownSelection) {
		logging.Warn().Str("choice", choice).Msg("picker returned an unknown entry")
		return nil
	}
	if err != nil {
		return err
	}

	return activate(client, snap, chosen)
}

func activate(client compositor.Client, snap *model.Snapshot, c menu.Candidate) error {
	switch c.Kind {
	case menu.KindWindow:
		if err := client.FocusWindow(c.ID); err != nil {
			return fmt.Errorf("failed to focus window %d: %w", c.ID, err)
		}
	case menu.KindWorkspace:
		ws, ok := snap.WorkspaceByID(c.ID)
		if !ok {
			return fmt.Errorf("workspace %d missing from snapshot", c.ID)
		}
		if err := client.FocusWorkspace(ws); err != nil {
			return fmt.Errorf("failed to focus workspace %d: %w", c.ID, err)
		}
	}
	logging.Info().Int64("id", c.ID).Str("kind", string(c.Kind)).Msg("focused")
	return nil
}

// passthroughArgs returns the arguments after --, verbatim.
func passthroughArgs(cmd *cobra.Command, args []string) []string {
	if at := cmd.ArgsLenAtDash(); at >= 0 {
		return args[at:]
	}
	return nil
}
